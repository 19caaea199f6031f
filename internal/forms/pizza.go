package forms

import (
	"strings"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// PizzaForm is the payload of the create/update pizza forms and API calls
type PizzaForm struct {
	Name          string `form:"name" json:"name" validate:"required,max=100"`
	Description   string `form:"description" json:"description" validate:"required"`
	Photo         string `form:"photo" json:"photo" validate:"omitempty,url,max=255"`
	Price         string `form:"price" json:"price" validate:"required,positive_decimal"`
	IngredientIDs []int  `form:"ingredientiSelezionati" json:"ingredient_ids"`
}

// NewPizzaForm fills a form with the values of an existing pizza
func NewPizzaForm(pizza models.Pizza) PizzaForm {
	form := PizzaForm{
		Name:          pizza.Name,
		Description:   pizza.Description,
		Photo:         pizza.Photo,
		IngredientIDs: pizza.IngredientIDs(),
	}
	if !pizza.Price.IsZero() {
		form.Price = pizza.Price.StringFixed(2)
	}
	return form
}

// Validate returns the list of invalid fields, empty when the form is valid
func (f *PizzaForm) Validate() FieldErrors {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Photo = strings.TrimSpace(f.Photo)
	f.Price = strings.TrimSpace(f.Price)
	return check(f)
}

// Apply copies the mutable fields of a validated form onto the pizza.
// Ingredients are resolved separately from IngredientIDs.
func (f PizzaForm) Apply(pizza *models.Pizza) {
	pizza.Name = f.Name
	pizza.Description = f.Description
	pizza.Photo = f.Photo
	pizza.Price, _ = decimal.NewFromString(f.Price)
}

// Selected reports whether the ingredient id was ticked in the form
func (f PizzaForm) Selected(id int) bool {
	for _, selected := range f.IngredientIDs {
		if selected == id {
			return true
		}
	}
	return false
}
