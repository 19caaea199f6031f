package services

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOfferAttachesToPizza(t *testing.T) {
	db := setupTestDB(t)
	pizzas := NewPizzaService(db)
	offers := NewOfferService(db)
	pizza, err := pizzas.SavePizza(newPizza("Margherita"))
	require.NoError(t, err)

	saved, err := offers.SaveOffer(models.Offer{
		Title:              "Summer",
		StartDate:          date(t, "2025-07-01"),
		EndDate:            date(t, "2025-07-31"),
		DiscountPercentage: 20,
		PizzaID:            pizza.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	list, err := offers.GetOffersByPizzaID(pizza.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, saved.ID, list[0].ID)
	assert.Equal(t, "2025-07-01", list[0].StartsOn())
	assert.Equal(t, "2025-07-31", list[0].EndsOn())
}

func TestSaveOfferRequiresPizza(t *testing.T) {
	offers := NewOfferService(setupTestDB(t))

	_, err := offers.SaveOffer(models.Offer{Title: "Orphan", DiscountPercentage: 5, PizzaID: 12})
	assert.True(t, errors.Is(err, ErrPizzaNotFound))
}

func TestGetOffersByPizzaIDEmpty(t *testing.T) {
	offers := NewOfferService(setupTestDB(t))

	list, err := offers.GetOffersByPizzaID(1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGetOfferByIDNotFound(t *testing.T) {
	offers := NewOfferService(setupTestDB(t))

	_, err := offers.GetOfferByID(3)
	assert.True(t, errors.Is(err, ErrOfferNotFound))
}

func TestUpdateOffer(t *testing.T) {
	db := setupTestDB(t)
	pizzas := NewPizzaService(db)
	offers := NewOfferService(db)
	first, err := pizzas.SavePizza(newPizza("Margherita"))
	require.NoError(t, err)
	second, err := pizzas.SavePizza(newPizza("Diavola"))
	require.NoError(t, err)
	original, err := offers.SaveOffer(models.Offer{
		Title: "Old", StartDate: date(t, "2025-01-01"), EndDate: date(t, "2025-01-31"),
		DiscountPercentage: 10, PizzaID: first.ID,
	})
	require.NoError(t, err)

	changes := models.Offer{
		ID:    999, // ignored, the path identifies the offer
		Title: "New", StartDate: date(t, "2025-02-01"), EndDate: date(t, "2025-02-28"),
		DiscountPercentage: 30,
	}

	testCases := []struct {
		name    string
		offerID int
		pizzaID int
		wantErr error
	}{
		{"missing pizza", original.ID, 404, ErrPizzaNotFound},
		{"missing offer", 404, first.ID, ErrOfferNotFound},
		{"merges fields and moves the offer", original.ID, second.ID, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := offers.UpdateOffer(tc.offerID, tc.pizzaID, changes)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, original.ID, updated.ID)

			stored, err := offers.GetOfferByID(original.ID)
			require.NoError(t, err)
			assert.Equal(t, "New", stored.Title)
			assert.Equal(t, "2025-02-01", stored.StartsOn())
			assert.Equal(t, "2025-02-28", stored.EndsOn())
			assert.Equal(t, 30, stored.DiscountPercentage)
			assert.Equal(t, second.ID, stored.PizzaID)
		})
	}

	// the failed attempts above left the offer untouched until the successful one
	var count int64
	require.NoError(t, db.Model(&models.Offer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
