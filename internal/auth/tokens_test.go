package auth

import (
	"testing"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte(testSecret)
	session := &models.Session{ID: "6f1c2f0e-8a4b-4f55-9a0e-3b1f0c7d9e21", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	user := &models.User{ID: 7, Role: models.RoleAdmin}

	token, err := IssueSessionToken(secret, session, user)
	require.NoError(t, err)

	identity, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), identity.UserID)
	assert.Equal(t, models.RoleAdmin, identity.Role)
	assert.Equal(t, session.ID, identity.SessionID)
	assert.Empty(t, identity.ClientID)
}

func TestParseTokenRejects(t *testing.T) {
	secret := []byte(testSecret)
	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	valid := func() jwt.MapClaims {
		return jwt.MapClaims{"uid": "1", "role": models.RoleUser, "exp": time.Now().Add(time.Hour).Unix()}
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{"malformed", func() string { return "not-a-jwt" }},
		{"wrong secret", func() string { return sign(jwt.SigningMethodHS256, []byte("other-secret"), valid()) }},
		{"none algorithm", func() string { return sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid()) }},
		{"expired", func() string {
			claims := valid()
			claims["exp"] = time.Now().Add(-time.Minute).Unix()
			return sign(jwt.SigningMethodHS256, secret, claims)
		}},
		{"missing exp", func() string {
			claims := valid()
			delete(claims, "exp")
			return sign(jwt.SigningMethodHS256, secret, claims)
		}},
		{"missing uid", func() string {
			claims := valid()
			delete(claims, "uid")
			return sign(jwt.SigningMethodHS256, secret, claims)
		}},
		{"zero uid", func() string {
			claims := valid()
			claims["uid"] = "0"
			return sign(jwt.SigningMethodHS256, secret, claims)
		}},
		{"unknown role", func() string {
			claims := valid()
			claims["role"] = "root"
			return sign(jwt.SigningMethodHS256, secret, claims)
		}},
		{"issued in the future", func() string {
			claims := valid()
			claims["iat"] = time.Now().Add(time.Hour).Unix()
			return sign(jwt.SigningMethodHS256, secret, claims)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token(), secret)
			assert.Error(t, err)
		})
	}
}

func TestParseTokenNumericUserID(t *testing.T) {
	secret := []byte(testSecret)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"uid":  float64(42),
		"role": models.RoleUser,
		"aud":  []string{"client-a"},
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	identity, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, "client-a", identity.ClientID)
}
