package auth

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AccessTokenTTL is the lifetime of client-credentials access tokens
const AccessTokenTTL = time.Hour

// OAuthService issues JWT access tokens for the JSON API through the client-credentials grant
type OAuthService struct {
	server *server.Server
	tokens *GormTokenStore
}

func NewOAuthService(db *gorm.DB, jwtSecret string) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: AccessTokenTTL})

	// Access tokens are JWTs carrying the uid and role of the client's owner
	manager.MapAccessGenerate(NewAccessTokenGenerator([]byte(jwtSecret), jwt.SigningMethodHS512, services.NewUserService(db)))

	tokenStore := NewGormTokenStore(db)
	manager.MustTokenStorage(tokenStore, nil)
	manager.MapClientStorage(NewGormClientStore(db))

	srv := server.NewDefaultServer(manager)
	srv.SetAllowedGrantType(oauth2.ClientCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &OAuthService{
		server: srv,
		tokens: tokenStore,
	}
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}

// HandleToken handles the token endpoint for the client credentials grant
// @Summary Token Endpoint
// @Description Obtain an access token using the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	// purge tokens that can no longer be used before issuing new ones
	if removed, err := o.tokens.RemoveExpired(c.Request.Context(), time.Now()); err != nil {
		log.WithError(err).Warn("Failed to remove expired access tokens")
	} else if removed > 0 {
		log.WithField("removed", removed).Debug("Removed expired access tokens")
	}

	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		log.WithError(err).Warn("Token request failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
