package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/forms"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestTemplatesRender(t *testing.T) {
	templates, err := Templates()
	require.NoError(t, err)

	basil := models.Ingredient{ID: 1, Name: "Basil"}
	pizza := models.Pizza{
		ID:          3,
		Name:        "Margherita",
		Description: "Tomato & mozzarella",
		Price:       decimal.RequireFromString("8"),
		Ingredients: []models.Ingredient{basil},
	}
	offer := models.Offer{
		ID:                 9,
		Title:              "Summer",
		StartDate:          datatypes.Date(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:            datatypes.Date(time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)),
		DiscountPercentage: 25,
		PizzaID:            3,
	}
	user := &models.User{ID: 1, Email: "admin@pizzeria.local", Role: models.RoleAdmin}

	testCases := []struct {
		view     string
		data     map[string]interface{}
		contains []string
	}{
		{Home, map[string]interface{}{}, []string{"/pizze"}},
		{Index, map[string]interface{}{"pizze": []models.Pizza{pizza}, "role": models.RoleAdmin}, []string{"Margherita", "€ 8.00", "/pizze/delete/3"}},
		{Index, map[string]interface{}{"pizze": []models.Pizza{}, "message": "Non ci sono pizze"}, []string{"Non ci sono pizze"}},
		{Show, map[string]interface{}{"pizza": pizza, "offerte": []models.Offer{offer}, "ingredienti": []models.Ingredient{basil, {ID: 2, Name: "Olives"}}},
			[]string{"Tomato &amp; mozzarella", "Basil", "01/07/2025 - 31/07/2025", "€ 6.00"}},
		{Create, map[string]interface{}{"pizza": models.Pizza{}, "form": forms.PizzaForm{}, "errors": forms.FieldErrors{{Field: "name", Message: "must not be blank"}}, "ingredienti": []models.Ingredient{basil}},
			[]string{`action="/pizze/store"`, "must not be blank", `name="ingredientiSelezionati"`}},
		{Edit, map[string]interface{}{"pizza": pizza, "form": forms.NewPizzaForm(pizza), "errors": forms.FieldErrors(nil), "ingredienti": []models.Ingredient{basil}},
			[]string{`action="/pizze/update/3"`, "checked"}},
		{CreateOffer, map[string]interface{}{"pizza": pizza, "offerta": models.Offer{}, "form": forms.OfferForm{}, "errors": forms.FieldErrors(nil)},
			[]string{`action="/pizze/3/offerte/new"`}},
		{EditOffer, map[string]interface{}{"pizzaID": 3, "offerta": offer, "form": forms.NewOfferForm(offer), "errors": forms.FieldErrors(nil)},
			[]string{`action="/pizze/3/offerte/9/edit"`, `value="2025-07-01"`}},
		{Login, map[string]interface{}{"form": forms.LoginForm{Redirect: "/admin/users"}, "errors": forms.FieldErrors(nil), "error": "Email o password non validi"},
			[]string{`value="/admin/users"`, "Email o password non validi"}},
		{Profile, map[string]interface{}{"user": user, "authenticated": true}, []string{"admin@pizzeria.local", "Logout"}},
		{Users, map[string]interface{}{"users": []models.User{*user, {ID: 2, Email: "mario@pizzeria.local", Role: models.RoleUser}}},
			[]string{"admin@pizzeria.local", `<span class="badge text-bg-danger">ADMIN</span>`, "<td>USER</td>"}},
		{Error, map[string]interface{}{"status": 404, "message": "pizza not found"}, []string{"404", "pizza not found"}},
	}

	for _, tc := range testCases {
		t.Run(tc.view, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, templates.ExecuteTemplate(&out, tc.view, tc.data))
			for _, fragment := range tc.contains {
				assert.Contains(t, out.String(), fragment)
			}
		})
	}
}

func TestFuncMapDiscounted(t *testing.T) {
	discounted := FuncMap()["discounted"].(func(decimal.Decimal, int) string)
	assert.Equal(t, "€ 7.65", discounted(decimal.RequireFromString("8.50"), 10))
	assert.Equal(t, "€ 0.00", discounted(decimal.RequireFromString("8.50"), 100))
}
