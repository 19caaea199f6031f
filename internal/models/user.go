package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles known by the access control rules
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	Password     string `gorm:"-" json:"-"` // plain text, only set before HashPassword
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:'USER'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HashPassword replaces the plain Password with its bcrypt hash
func (u *User) HashPassword() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Password = ""
	return nil
}

// CheckPassword compares a plain text password with the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
