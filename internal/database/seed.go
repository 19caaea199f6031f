package database

import (
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedIngredients = []string{
	"Tomato Sauce", "Mozzarella", "Basil", "Pepperoni", "Bell Peppers", "Olives",
	"Mushrooms", "Ham", "Anchovies", "Gorgonzola", "Parmesan", "Onions",
}

var seedPizzas = []struct {
	Name        string
	Description string
	Price       string
	Ingredients []string
}{
	{"Margherita", "Tomato, mozzarella and fresh basil", "7.50", []string{"Tomato Sauce", "Mozzarella", "Basil"}},
	{"Diavola", "Spicy pepperoni on tomato and mozzarella", "9.00", []string{"Tomato Sauce", "Mozzarella", "Pepperoni"}},
	{"Vegetariana", "Peppers, olives, mushrooms and onions", "9.50", []string{"Tomato Sauce", "Mozzarella", "Bell Peppers", "Olives", "Mushrooms", "Onions"}},
	{"Quattro Formaggi", "Mozzarella, gorgonzola and parmesan", "10.00", []string{"Mozzarella", "Gorgonzola", "Parmesan"}},
}

// Seed inserts the default ingredients and, when the catalog is empty, a few pizzas.
// Running it again is harmless.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		ingredients := make([]models.Ingredient, 0, len(seedIngredients))
		for _, name := range seedIngredients {
			ingredients = append(ingredients, models.Ingredient{Name: name})
		}
		if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&ingredients).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Pizza{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Info("Database already seeded with initial data")
			return nil
		}

		log.Info("Database is empty, seeding initial data")
		byName := map[string]models.Ingredient{}
		var stored []models.Ingredient
		if err := tx.Find(&stored).Error; err != nil {
			return err
		}
		for _, ingredient := range stored {
			byName[ingredient.Name] = ingredient
		}

		for _, seed := range seedPizzas {
			pizza := models.Pizza{
				Name:        seed.Name,
				Description: seed.Description,
				Price:       decimal.RequireFromString(seed.Price),
			}
			for _, name := range seed.Ingredients {
				pizza.Ingredients = append(pizza.Ingredients, byName[name])
			}
			if err := tx.Omit("Ingredients.*").Create(&pizza).Error; err != nil {
				return err
			}
		}
		log.WithField("pizzas", len(seedPizzas)).Info("Database seeded successfully")
		return nil
	})
}
