package services

import (
	"errors"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SessionService stores the server side of login sessions
type SessionService interface {
	// CreateSession opens a session for the user that expires after the configured TTL
	CreateSession(userID uint) (*models.Session, error)
	// GetSession returns an unexpired session with its user loaded, or ErrSessionNotFound
	GetSession(id string) (*models.Session, error)
	// DeleteSession revokes a session; deleting an unknown session is not an error
	DeleteSession(id string) error
}

type sessionService struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewSessionService(db *gorm.DB, ttl time.Duration) SessionService {
	return &sessionService{db: db, ttl: ttl, now: time.Now}
}

func (s *sessionService) CreateSession(userID uint) (*models.Session, error) {
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSession(id string) (*models.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.Session
	if err := s.db.Preload("User").Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.Expired(s.now()) || session.User.ID == 0 {
		s.purge(&session)
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// purge removes a session that can no longer be used
func (s *sessionService) purge(session *models.Session) {
	if err := s.db.Delete(session).Error; err != nil {
		log.WithError(err).WithField("session_id", session.ID).Warn("Failed to delete stale session")
	}
}

func (s *sessionService) DeleteSession(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Session{}).Error
}
