package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Rule grants access to every path under Prefix to the listed roles.
// A rule with no roles permits anonymous callers.
type Rule struct {
	Prefix string
	Roles  []string
}

// Decision is the outcome of evaluating the rule table for a request
type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Rules is an ordered rule table; the first matching rule decides
type Rules []Rule

// DefaultRules protects the account area and the admin area and leaves the catalog public
func DefaultRules() Rules {
	return Rules{
		{Prefix: "/users", Roles: []string{models.RoleUser, models.RoleAdmin}},
		{Prefix: "/admin", Roles: []string{models.RoleAdmin}},
		{Prefix: "/"},
	}
}

// Decide evaluates the rules for path on behalf of a caller holding role ("" when anonymous).
// Paths matching no rule are denied.
func (r Rules) Decide(path, role string) Decision {
	for _, rule := range r {
		if !matchPrefix(rule.Prefix, path) {
			continue
		}
		if len(rule.Roles) == 0 {
			return Allow
		}
		if role == "" {
			return Unauthenticated
		}
		for _, allowed := range rule.Roles {
			if allowed == role {
				return Allow
			}
		}
		return Forbidden
	}
	return Forbidden
}

// matchPrefix matches whole path segments: /admin matches /admin and /admin/x, not /administrator
func matchPrefix(prefix, path string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

// Authorize enforces the rule table after Authenticate has run.
// Unauthenticated page requests are sent to the login form, API requests get JSON errors.
func Authorize(rules Rules) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		role := CurrentRole(c)

		switch rules.Decide(path, role) {
		case Allow:
			c.Next()
		case Unauthenticated:
			if wantsJSON(c) {
				respondWithOAuth2Error(c, http.StatusUnauthorized, "authorization_required",
					"A valid Bearer token is required.")
				return
			}
			c.Redirect(http.StatusFound, "/login?redirect="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
		case Forbidden:
			userID, _ := CurrentUserID(c)
			log.WithFields(log.Fields{
				"path":    path,
				"user_id": userID,
				"role":    role,
			}).Warn("Access denied")
			if wantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Insufficient permissions"))
				return
			}
			c.HTML(http.StatusForbidden, "error", ViewData(c, gin.H{
				"status":  http.StatusForbidden,
				"message": "You do not have permission to access this page.",
			}))
			c.Abort()
		}
	}
}

func wantsJSON(c *gin.Context) bool {
	path := c.Request.URL.Path
	return matchPrefix("/admin/api", path) || matchPrefix("/api", path) || c.GetString(AuthTypeKey) == AuthTypeBearer
}
