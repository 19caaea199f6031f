package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/forms"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// render executes a view with the data every page layout needs
func render(c *gin.Context, status int, view string, data gin.H) {
	c.HTML(status, view, middleware.ViewData(c, data))
}

// assignPizza copies a validated form onto the pizza and resolves the selected ingredients
func assignPizza(ingredients services.IngredientService, pizza *models.Pizza, form forms.PizzaForm) error {
	selected, err := ingredients.GetIngredientsByIDs(form.IngredientIDs)
	if err != nil {
		return err
	}
	form.Apply(pizza)
	pizza.Ingredients = selected
	return nil
}

// parseID reads an integer path parameter. On failure it records a bind error
// for the error handler and returns false.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		_ = c.Error(fmt.Errorf("invalid %s: %q", name, c.Param(name))).SetType(gin.ErrorTypeBind)
		return 0, false
	}
	return id, true
}

// logValidationErrors writes one warning per invalid field
func logValidationErrors(form string, errs forms.FieldErrors) {
	for _, fe := range errs {
		log.WithFields(log.Fields{
			"form":  form,
			"field": fe.Field,
		}).Warn(fe.Message)
	}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
