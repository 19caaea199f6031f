package services

import (
	"testing"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/database"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createIngredients(t *testing.T, db *gorm.DB, names ...string) []models.Ingredient {
	ingredients := make([]models.Ingredient, 0, len(names))
	for _, name := range names {
		ingredients = append(ingredients, models.Ingredient{Name: name})
	}
	require.NoError(t, db.Create(&ingredients).Error)
	return ingredients
}

func newPizza(name string, ingredients ...models.Ingredient) models.Pizza {
	return models.Pizza{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString("8.50"),
		Ingredients: ingredients,
	}
}

func date(t *testing.T, value string) datatypes.Date {
	parsed, err := time.Parse(models.DateLayout, value)
	require.NoError(t, err)
	return datatypes.Date(parsed)
}
