package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "catalog_session"

// Identity is the authenticated caller extracted from a session cookie or a bearer token
type Identity struct {
	UserID    uint
	Role      string
	SessionID string // set for session cookies only
	ClientID  string // set for OAuth2 access tokens only
	Scope     string
}

// IssueSessionToken signs the cookie value representing a login session
func IssueSessionToken(secret []byte, session *models.Session, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sid":  session.ID,
		"uid":  strconv.FormatUint(uint64(user.ID), 10),
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  session.ExpiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken validates an HMAC-signed JWT and extracts the identity it carries
func ParseToken(tokenString string, secret []byte) (*Identity, error) {
	claims, err := parseAndValidateJWT(tokenString, secret)
	if err != nil {
		return nil, err
	}
	return identityFromClaims(claims)
}

// parseJWTToken validates and parses a JWT token using HMAC signing method
// Returns the claims if valid, error otherwise
func parseJWTToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims format")
	}

	return claims, nil
}

// parseAndValidateJWT parses the JWT and performs strict validation
func parseAndValidateJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	claims, err := parseJWTToken(tokenString, secret)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp == nil {
		return nil, errors.New("token missing required 'exp' claim")
	}
	if exp.Before(now) {
		return nil, errors.New("token has expired")
	}

	nbf, err := claims.GetNotBefore()
	if err != nil {
		return nil, fmt.Errorf("invalid nbf claim: %w", err)
	}
	if nbf != nil && nbf.After(now) {
		return nil, errors.New("token not yet valid")
	}

	// iat in the future means a forged or clock-skewed token
	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now.Add(time.Minute)) {
		return nil, errors.New("token issued in the future")
	}

	return claims, nil
}

func identityFromClaims(claims jwt.MapClaims) (*Identity, error) {
	userID, err := extractUserID(claims)
	if err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, errors.New("invalid user identifier: cannot be zero")
	}

	role, err := extractRole(claims)
	if err != nil {
		return nil, err
	}

	identity := &Identity{UserID: userID, Role: role}
	if sid, ok := claims["sid"].(string); ok {
		identity.SessionID = sid
	}
	if aud, ok := claims["aud"].(string); ok && aud != "" {
		identity.ClientID = aud
	} else if audArray, ok := claims["aud"].([]interface{}); ok && len(audArray) > 0 {
		if firstAud, ok := audArray[0].(string); ok {
			identity.ClientID = firstAud
		}
	}
	if scope, ok := claims["scope"].(string); ok {
		identity.Scope = scope
	}
	return identity, nil
}

// extractUserID reads the "uid" claim, which may be a numeric string or a JSON number
func extractUserID(claims jwt.MapClaims) (uint, error) {
	if uid, ok := claims["uid"].(string); ok && uid != "" {
		parsedID, err := strconv.ParseUint(uid, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid uid claim format: must be a numeric string, got: %s", uid)
		}
		return uint(parsedID), nil
	}

	// JSON numbers are parsed as float64
	if uid, ok := claims["uid"].(float64); ok {
		if uid <= 0 {
			return 0, fmt.Errorf("invalid uid claim: must be positive, got: %f", uid)
		}
		return uint(uid), nil
	}

	return 0, errors.New("token missing required 'uid' claim")
}

// extractRole reads the "role" claim; tokens must carry an explicit known role
func extractRole(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", errors.New("token missing required 'role' claim")
	}

	switch role {
	case models.RoleAdmin, models.RoleUser:
		return role, nil
	default:
		return "", fmt.Errorf("invalid role '%s'. Allowed roles: %s, %s", role, models.RoleAdmin, models.RoleUser)
	}
}
