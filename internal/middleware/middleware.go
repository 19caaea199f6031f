package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/auth"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Context keys set by Authenticate
const (
	UserIDKey    = "userID"
	UserRoleKey  = "userRole"
	SessionIDKey = "sessionID"
	AuthTypeKey  = "auth_type"
)

// Values stored under AuthTypeKey
const (
	AuthTypeSession = "session"
	AuthTypeBearer  = "oauth2"
)

// Authenticate resolves the caller from a Bearer access token or the session cookie.
// Requests without credentials continue anonymously; access rules decide what they may reach.
// An invalid Bearer token is rejected with an RFC 6750 error, an invalid cookie is cleared.
func Authenticate(jwtSecret []byte, sessions services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			authenticateBearer(c, authHeader, jwtSecret)
			return
		}

		cookie, err := c.Cookie(auth.SessionCookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		identity, err := auth.ParseToken(cookie, jwtSecret)
		if err == nil && identity.SessionID == "" {
			err = errors.New("token is not a session token")
		}
		var session *models.Session
		if err == nil {
			session, err = sessions.GetSession(identity.SessionID)
		}
		if err == nil && session.UserID != identity.UserID {
			err = errors.New("session belongs to another user")
		}
		if err != nil {
			log.WithError(err).Debug("Discarding invalid session cookie")
			ClearSessionCookie(c)
			c.Next()
			return
		}

		// the stored role wins over the role claim of the cookie
		identity.Role = session.User.Role
		if identity.Role == "" {
			identity.Role = models.RoleUser
		}
		setIdentity(c, identity, AuthTypeSession)
		c.Next()
	}
}

func authenticateBearer(c *gin.Context, authHeader string, jwtSecret []byte) {
	// RFC 6750: Extract Bearer token from Authorization header
	if !strings.HasPrefix(authHeader, "Bearer ") {
		respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_request",
			"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token",
			"Bearer token is empty")
		return
	}

	identity, err := auth.ParseToken(tokenString, jwtSecret)
	if err != nil {
		respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", err.Error())
		return
	}
	// session tokens are only honoured as cookies, where revocation is checked
	if identity.SessionID != "" {
		respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token",
			"Session tokens cannot be used as Bearer tokens")
		return
	}

	setIdentity(c, identity, AuthTypeBearer)
	c.Next()
}

func setIdentity(c *gin.Context, identity *auth.Identity, authType string) {
	c.Set(UserIDKey, identity.UserID)
	c.Set(UserRoleKey, identity.Role)
	c.Set(AuthTypeKey, authType)
	if identity.SessionID != "" {
		c.Set(SessionIDKey, identity.SessionID)
	}
	if identity.ClientID != "" {
		c.Set("client_id", identity.ClientID)
	}
	if identity.Scope != "" {
		c.Set("scope", identity.Scope)
	}
}

// CurrentUserID returns the authenticated user id, if any
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// CurrentRole returns the role of the authenticated caller, or "" when anonymous
func CurrentRole(c *gin.Context) string {
	return c.GetString(UserRoleKey)
}

// ViewData adds the caller identity read by the page layout to data
func ViewData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	role := CurrentRole(c)
	data["role"] = role
	data["authenticated"] = role != ""
	return data
}

// SetSessionCookie stores a signed session token for maxAge seconds
func SetSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, maxAge, "/", "", c.Request.TLS != nil, true)
}

// ClearSessionCookie expires the session cookie in the browser
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", c.Request.TLS != nil, true)
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, status int, errorCode, description string) {
	c.Header("WWW-Authenticate", `Bearer error="`+errorCode+`"`)
	c.JSON(status, gin.H{
		"error":             errorCode,
		"error_description": description,
	})
	c.Abort()
}
