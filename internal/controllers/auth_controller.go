package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/auth"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/forms"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/views"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const invalidCredentialsMessage = "Email o password non validi"

// AuthController handles the login form and logout
type AuthController struct {
	userService    services.UserService
	sessionService services.SessionService
	jwtSecret      []byte
}

func NewAuthController(userService services.UserService, sessionService services.SessionService, jwtSecret string) *AuthController {
	return &AuthController{
		userService:    userService,
		sessionService: sessionService,
		jwtSecret:      []byte(jwtSecret),
	}
}

func (ac *AuthController) LoginForm(c *gin.Context) {
	form := forms.LoginForm{Redirect: forms.SafeRedirect(c.Query("redirect"))}
	render(c, http.StatusOK, views.Login, gin.H{"form": form, "errors": forms.FieldErrors(nil)})
}

func (ac *AuthController) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		ac.renderLogin(c, http.StatusBadRequest, form, forms.BindingError(err), "")
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		logValidationErrors("login", errs)
		ac.renderLogin(c, http.StatusUnprocessableEntity, form, errs, "")
		return
	}

	user, err := ac.userService.Authenticate(form.Email, form.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		log.WithField("email", form.Email).Warn("Failed login attempt")
		ac.renderLogin(c, http.StatusUnauthorized, form, nil, invalidCredentialsMessage)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	session, err := ac.sessionService.CreateSession(user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	token, err := auth.IssueSessionToken(ac.jwtSecret, session, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.SetSessionCookie(c, token, int(time.Until(session.ExpiresAt).Seconds()))
	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("User logged in")
	redirect(c, form.SafeRedirect())
}

// Logout revokes the current session and returns to the home page
func (ac *AuthController) Logout(c *gin.Context) {
	if sessionID := c.GetString(middleware.SessionIDKey); sessionID != "" {
		if err := ac.sessionService.DeleteSession(sessionID); err != nil {
			log.WithError(err).Error("Failed to revoke session")
		}
		userID, _ := middleware.CurrentUserID(c)
		log.WithField("user_id", userID).Info("User logged out")
	}
	middleware.ClearSessionCookie(c)
	redirect(c, "/")
}

func (ac *AuthController) renderLogin(c *gin.Context, status int, form forms.LoginForm, errs forms.FieldErrors, message string) {
	form.Password = ""
	form.Redirect = forms.SafeRedirect(form.Redirect)
	render(c, status, views.Login, gin.H{"form": form, "errors": errs, "error": message})
}
