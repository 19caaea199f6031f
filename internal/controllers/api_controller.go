package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/forms"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// CatalogAPIController exposes the catalog as JSON
type CatalogAPIController interface {
	// ListPizzas retrieves all pizzas, optionally filtered by name
	ListPizzas(c *gin.Context)
	// GetPizza retrieves a pizza by its ID
	GetPizza(c *gin.Context)
	// ListOffers retrieves the offers of a pizza
	ListOffers(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type catalogAPIController struct {
	pizzas      services.PizzaService
	ingredients services.IngredientService
}

// NewCatalogAPIController creates a new instance of CatalogAPIController
func NewCatalogAPIController(pizzas services.PizzaService, ingredients services.IngredientService) CatalogAPIController {
	return &catalogAPIController{pizzas: pizzas, ingredients: ingredients}
}

// ListPizzas godoc
// @Summary List pizzas
// @Description Get all pizzas, or the pizzas whose name contains the given text
// @Tags pizzas
// @Produce json
// @Param name query string false "Filter by pizza name (case-insensitive partial match)"
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas [get]
func (ac *catalogAPIController) ListPizzas(c *gin.Context) {
	var (
		pizzas []models.Pizza
		err    error
	)
	if name, ok := c.GetQuery("name"); ok {
		pizzas, err = ac.pizzas.FindPizzasByName(name)
	} else {
		pizzas, err = ac.pizzas.GetAllPizzas()
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pizzas)
}

// GetPizza godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with its ingredients and offers
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id} [get]
func (ac *catalogAPIController) GetPizza(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pizza, err := ac.pizzas.GetPizzaByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pizza)
}

// ListOffers godoc
// @Summary List the offers of a pizza
// @Description Get the offers of a pizza ordered by start date
// @Tags offers
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {array} models.Offer
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id}/offers [get]
func (ac *catalogAPIController) ListOffers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pizza, err := ac.pizzas.GetPizzaByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if pizza.Offers == nil {
		pizza.Offers = []models.Offer{}
	}
	c.JSON(http.StatusOK, pizza.Offers)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza; the price is a decimal string and ingredient_ids selects its ingredients
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body forms.PizzaForm true "Pizza"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 401 {object} map[string]string
// @Failure 403 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /admin/api/v1/pizzas [post]
func (ac *catalogAPIController) CreatePizza(c *gin.Context) {
	form, ok := bindPizzaJSON(c)
	if !ok {
		return
	}

	var pizza models.Pizza
	if err := assignPizza(ac.ingredients, &pizza, form); err != nil {
		_ = c.Error(err)
		return
	}
	created, err := ac.pizzas.SavePizza(pizza)
	if err != nil {
		_ = c.Error(err)
		return
	}
	log.WithFields(log.Fields{"pizza_id": created.ID, "user_id": c.GetUint("userID")}).Info("Pizza created via API")
	c.JSON(http.StatusCreated, created)
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Replace the fields and the ingredient set of a pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body forms.PizzaForm true "Pizza"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /admin/api/v1/pizzas/{id} [put]
func (ac *catalogAPIController) UpdatePizza(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pizza, err := ac.pizzas.GetPizzaByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	form, ok := bindPizzaJSON(c)
	if !ok {
		return
	}

	if err := assignPizza(ac.ingredients, &pizza, form); err != nil {
		_ = c.Error(err)
		return
	}
	updated, err := ac.pizzas.SavePizza(pizza)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza together with its offers
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204 "Pizza deleted"
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /admin/api/v1/pizzas/{id} [delete]
func (ac *catalogAPIController) DeletePizza(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ac.pizzas.DeletePizza(id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindPizzaJSON decodes and validates the request body, answering the request itself on failure
func bindPizzaJSON(c *gin.Context) (forms.PizzaForm, bool) {
	var form forms.PizzaForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body", map[string]interface{}{
			"reason": err.Error(),
		}))
		return form, false
	}
	if errs := form.Validate(); len(errs) > 0 {
		logValidationErrors("pizza", errs)
		c.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrPizzaInvalidData, "Invalid pizza", map[string]interface{}{
			"fields": errs,
		}))
		return form, false
	}
	return form, true
}
