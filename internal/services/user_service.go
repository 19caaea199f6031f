package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"gorm.io/gorm"
)

type UserService interface {
	// CreateUser hashes the plain password of the user and stores it
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	// Authenticate returns the user matching the credentials or ErrInvalidCredentials
	Authenticate(email, password string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Role != models.RoleUser && user.Role != models.RoleAdmin {
		return fmt.Errorf("invalid role %q", user.Role)
	}

	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return fmt.Errorf("%w: %s", ErrUserAlreadyExists, user.Email)
	}

	if user.Password != "" {
		if err := user.HashPassword(); err != nil {
			return err
		}
	}
	return s.db.Create(user).Error
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, userLookupError(err)
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, userLookupError(err)
	}
	return &user, nil
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Order("email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
