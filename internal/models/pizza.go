package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pizza represents a pizza of the catalog with its ingredients and offers
type Pizza struct {
	ID          int             `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:100;not null;index"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Photo       string          `json:"photo" gorm:"size:255"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Ingredients []Ingredient    `json:"ingredients" gorm:"many2many:pizza_ingredients;"`
	Offers      []Offer         `json:"offers,omitempty" gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IngredientIDs returns the ids of the ingredients attached to the pizza
func (p Pizza) IngredientIDs() []int {
	ids := make([]int, 0, len(p.Ingredients))
	for _, ingredient := range p.Ingredients {
		ids = append(ids, ingredient.ID)
	}
	return ids
}

// HasIngredient reports whether the ingredient with the given id is attached to the pizza
func (p Pizza) HasIngredient(id int) bool {
	for _, ingredient := range p.Ingredients {
		if ingredient.ID == id {
			return true
		}
	}
	return false
}
