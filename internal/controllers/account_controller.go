package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/views"
	"github.com/gin-gonic/gin"
)

// AccountController serves the pages of the signed-in area
type AccountController struct {
	userService services.UserService
}

func NewAccountController(userService services.UserService) *AccountController {
	return &AccountController{userService: userService}
}

// Profile shows the signed-in user
func (ac *AccountController) Profile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		redirect(c, "/login?redirect=/users/me")
		return
	}
	user, err := ac.userService.GetUserByID(userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, views.Profile, gin.H{"user": user})
}

// Users lists every account, for administrators
func (ac *AccountController) Users(c *gin.Context) {
	users, err := ac.userService.GetAllUsers()
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, views.Users, gin.H{"users": users})
}
