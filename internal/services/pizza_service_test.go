package services

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllPizzasEmpty(t *testing.T) {
	service := NewPizzaService(setupTestDB(t))

	pizzas, err := service.GetAllPizzas()
	require.NoError(t, err)
	assert.NotNil(t, pizzas)
	assert.Empty(t, pizzas)
}

func TestSavePizzaAttachesSelectedIngredients(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	ingredients := createIngredients(t, db, "Tomato", "Mozzarella", "Basil")

	saved, err := service.SavePizza(newPizza("Margherita", ingredients[0], ingredients[2]))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	stored, err := service.GetPizzaByID(saved.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{ingredients[0].ID, ingredients[2].ID}, stored.IngredientIDs())
	assert.True(t, decimal.RequireFromString("8.50").Equal(stored.Price))
}

func TestSavePizzaUpdatesIngredientSet(t *testing.T) {
	testCases := []struct {
		name     string
		selected []int // indexes into the created ingredients
	}{
		{"no selection clears the set", nil},
		{"new selection replaces the set", []int{1, 2}},
		{"same selection is kept", []int{0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)
			service := NewPizzaService(db)
			ingredients := createIngredients(t, db, "Tomato", "Mozzarella", "Basil")

			saved, err := service.SavePizza(newPizza("Margherita", ingredients[0]))
			require.NoError(t, err)

			pizza, err := service.GetPizzaByID(saved.ID)
			require.NoError(t, err)
			pizza.Name = "Margherita DOP"
			pizza.Ingredients = nil
			expected := []int{}
			for _, i := range tc.selected {
				pizza.Ingredients = append(pizza.Ingredients, ingredients[i])
				expected = append(expected, ingredients[i].ID)
			}

			_, err = service.SavePizza(pizza)
			require.NoError(t, err)

			stored, err := service.GetPizzaByID(saved.ID)
			require.NoError(t, err)
			assert.Equal(t, "Margherita DOP", stored.Name)
			assert.ElementsMatch(t, expected, stored.IngredientIDs())

			var links int64
			require.NoError(t, db.Table("pizza_ingredients").Where("pizza_id = ?", saved.ID).Count(&links).Error)
			assert.Equal(t, int64(len(expected)), links)
		})
	}
}

func TestGetPizzaByIDNotFound(t *testing.T) {
	service := NewPizzaService(setupTestDB(t))

	_, err := service.GetPizzaByID(42)
	assert.True(t, errors.Is(err, ErrPizzaNotFound))
}

func TestGetPizzaByIDPreloadsOffersInDateOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	saved, err := service.SavePizza(newPizza("Diavola"))
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Offer{Title: "Later", StartDate: date(t, "2025-06-01"), EndDate: date(t, "2025-06-30"), DiscountPercentage: 10, PizzaID: saved.ID}).Error)
	require.NoError(t, db.Create(&models.Offer{Title: "Sooner", StartDate: date(t, "2025-05-01"), EndDate: date(t, "2025-05-31"), DiscountPercentage: 20, PizzaID: saved.ID}).Error)

	pizza, err := service.GetPizzaByID(saved.ID)
	require.NoError(t, err)
	require.Len(t, pizza.Offers, 2)
	assert.Equal(t, "Sooner", pizza.Offers[0].Title)
	assert.Equal(t, "Later", pizza.Offers[1].Title)
}

func TestFindPizzasByName(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	for _, name := range []string{"Margherita", "Marinara", "Diavola", "Tonno 100%"} {
		_, err := service.SavePizza(newPizza(name))
		require.NoError(t, err)
	}

	testCases := []struct {
		query    string
		expected []string
	}{
		{"mar", []string{"Margherita", "Marinara"}},
		{"DIAV", []string{"Diavola"}},
		{"  ", []string{"Margherita", "Marinara", "Diavola", "Tonno 100%"}},
		{"", []string{"Margherita", "Marinara", "Diavola", "Tonno 100%"}},
		{"capricciosa", []string{}},
		{"%", []string{"Tonno 100%"}},
		{"0%", []string{"Tonno 100%"}},
		{"_", []string{}},
		{"M_rgherita", []string{}},
		{"mar%", []string{}},
		{`\`, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			pizzas, err := service.FindPizzasByName(tc.query)
			require.NoError(t, err)
			names := []string{}
			for _, pizza := range pizzas {
				names = append(names, pizza.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestDeletePizzaRemovesOffersAndLinks(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	ingredients := createIngredients(t, db, "Tomato", "Mozzarella")
	saved, err := service.SavePizza(newPizza("Margherita", ingredients...))
	require.NoError(t, err)
	other, err := service.SavePizza(newPizza("Marinara", ingredients[0]))
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Offer{Title: "Promo", StartDate: date(t, "2025-01-01"), EndDate: date(t, "2025-01-31"), DiscountPercentage: 15, PizzaID: saved.ID}).Error)

	require.NoError(t, service.DeletePizza(saved.ID))

	_, err = service.GetPizzaByID(saved.ID)
	assert.True(t, errors.Is(err, ErrPizzaNotFound))

	var offers, links, remainingIngredients int64
	require.NoError(t, db.Model(&models.Offer{}).Where("pizza_id = ?", saved.ID).Count(&offers).Error)
	require.NoError(t, db.Table("pizza_ingredients").Where("pizza_id = ?", saved.ID).Count(&links).Error)
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&remainingIngredients).Error)
	assert.Zero(t, offers)
	assert.Zero(t, links)
	assert.Equal(t, int64(2), remainingIngredients, "ingredients outlive the pizza")

	kept, err := service.GetPizzaByID(other.ID)
	require.NoError(t, err)
	assert.Len(t, kept.Ingredients, 1)
}

func TestDeletePizzaNotFound(t *testing.T) {
	service := NewPizzaService(setupTestDB(t))

	err := service.DeletePizza(99)
	assert.True(t, errors.Is(err, ErrPizzaNotFound))
}
