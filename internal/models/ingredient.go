package models

// Ingredient is a topping that can be shared by many pizzas
type Ingredient struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
}
