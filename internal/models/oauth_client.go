package models

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is an API client allowed to request client-credentials tokens.
// It satisfies oauth2.ClientInfo and oauth2.ClientPasswordVerifier.
type OAuthClient struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Secret    string         `gorm:"not null" json:"-"` // bcrypt hash
	Name      string         `json:"name"`
	Domain    string         `json:"domain"`
	UserID    uint           `gorm:"index" json:"user_id"` // tokens are issued on behalf of this user
	Scopes    string         `json:"scopes"`               // space-separated
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

func (c *OAuthClient) GetID() string {
	return c.ID
}

func (c *OAuthClient) GetSecret() string {
	return c.Secret
}

func (c *OAuthClient) GetDomain() string {
	return c.Domain
}

func (c *OAuthClient) IsPublic() bool {
	return false
}

func (c *OAuthClient) GetUserID() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}

// VerifyPassword checks a plain client secret against the stored hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
