package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/forms"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/views"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// EmptyCatalogMessage is shown by the list view when there is nothing to list
const EmptyCatalogMessage = "Non ci sono pizze"

// PizzaController serves the HTML pages of the catalog
type PizzaController interface {
	Home(c *gin.Context)
	Index(c *gin.Context)
	Show(c *gin.Context)
	SearchByName(c *gin.Context)
	Create(c *gin.Context)
	Store(c *gin.Context)
	Edit(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type pizzaController struct {
	pizzas      services.PizzaService
	ingredients services.IngredientService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(pizzas services.PizzaService, ingredients services.IngredientService) PizzaController {
	return &pizzaController{pizzas: pizzas, ingredients: ingredients}
}

func (pc *pizzaController) Home(c *gin.Context) {
	render(c, http.StatusOK, views.Home, nil)
}

func (pc *pizzaController) Index(c *gin.Context) {
	pizzas, err := pc.pizzas.GetAllPizzas()
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, views.Index, listData(pizzas, ""))
}

func (pc *pizzaController) SearchByName(c *gin.Context) {
	name := c.PostForm("nome")
	pizzas, err := pc.pizzas.FindPizzasByName(name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, views.Index, listData(pizzas, name))
}

func listData(pizzas []models.Pizza, name string) gin.H {
	data := gin.H{"pizze": pizzas, "nome": name}
	if len(pizzas) == 0 {
		data["message"] = EmptyCatalogMessage
	}
	return data
}

func (pc *pizzaController) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pizza, err := pc.pizzas.GetPizzaByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ingredients, err := pc.ingredients.GetAllIngredients()
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, views.Show, gin.H{
		"title":       pizza.Name,
		"pizza":       pizza,
		"offerte":     pizza.Offers,
		"ingredienti": ingredients,
	})
}

func (pc *pizzaController) Create(c *gin.Context) {
	pc.renderForm(c, http.StatusOK, views.Create, models.Pizza{}, forms.PizzaForm{}, nil)
}

func (pc *pizzaController) Store(c *gin.Context) {
	var form forms.PizzaForm
	if err := c.ShouldBind(&form); err != nil {
		errs := forms.BindingError(err)
		logValidationErrors("pizza", errs)
		pc.renderForm(c, http.StatusUnprocessableEntity, views.Create, models.Pizza{}, form, errs)
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		logValidationErrors("pizza", errs)
		pc.renderForm(c, http.StatusUnprocessableEntity, views.Create, models.Pizza{}, form, errs)
		return
	}

	var pizza models.Pizza
	if err := assignPizza(pc.ingredients, &pizza, form); err != nil {
		_ = c.Error(err)
		return
	}
	saved, err := pc.pizzas.SavePizza(pizza)
	if err != nil {
		_ = c.Error(err)
		return
	}
	log.WithFields(log.Fields{"pizza_id": saved.ID, "name": saved.Name}).Info("Pizza created")
	redirect(c, "/pizze")
}

func (pc *pizzaController) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pizza, err := pc.pizzas.GetPizzaByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	pc.renderForm(c, http.StatusOK, views.Edit, pizza, forms.NewPizzaForm(pizza), nil)
}

func (pc *pizzaController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pizza, err := pc.pizzas.GetPizzaByID(id)
	if errors.Is(err, services.ErrPizzaNotFound) {
		log.WithField("pizza_id", id).Warn("Update of unknown pizza")
		redirect(c, "/pizze")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	var form forms.PizzaForm
	if err := c.ShouldBind(&form); err != nil {
		errs := forms.BindingError(err)
		logValidationErrors("pizza", errs)
		pc.renderForm(c, http.StatusUnprocessableEntity, views.Edit, pizza, form, errs)
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		logValidationErrors("pizza", errs)
		pc.renderForm(c, http.StatusUnprocessableEntity, views.Edit, pizza, form, errs)
		return
	}

	if err := assignPizza(pc.ingredients, &pizza, form); err != nil {
		_ = c.Error(err)
		return
	}
	if _, err := pc.pizzas.SavePizza(pizza); err != nil {
		_ = c.Error(err)
		return
	}
	log.WithField("pizza_id", id).Info("Pizza updated")
	redirect(c, "/pizze")
}

func (pc *pizzaController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	err := pc.pizzas.DeletePizza(id)
	switch {
	case errors.Is(err, services.ErrPizzaNotFound):
		log.WithField("pizza_id", id).Warn("Delete of unknown pizza")
	case err != nil:
		_ = c.Error(err)
		return
	default:
		log.WithField("pizza_id", id).Info("Pizza deleted")
	}
	redirect(c, "/pizze")
}

func (pc *pizzaController) renderForm(c *gin.Context, status int, view string, pizza models.Pizza, form forms.PizzaForm, errs forms.FieldErrors) {
	ingredients, err := pc.ingredients.GetAllIngredients()
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, status, view, gin.H{
		"pizza":       pizza,
		"form":        form,
		"errors":      errs,
		"ingredienti": ingredients,
	})
}
