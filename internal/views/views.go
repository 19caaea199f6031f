// Package views holds the server-rendered HTML templates of the catalog.
package views

import (
	"embed"
	"html/template"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var files embed.FS

// Names of the views rendered by the controllers
const (
	Home         = "home"
	Index        = "index"
	Show         = "show"
	Create       = "create"
	Edit         = "edit"
	CreateOffer  = "create-offerta"
	EditOffer    = "edit-offerta"
	Login        = "login"
	Profile      = "profile"
	Users        = "users"
	Error        = "error"
	dateFormat   = "02/01/2006"
	priceDecimal = 2
)

// FuncMap returns the helpers available inside templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"price": func(d decimal.Decimal) string {
			return "€ " + d.StringFixed(priceDecimal)
		},
		"discounted": func(d decimal.Decimal, percentage int) string {
			factor := decimal.NewFromInt(int64(100 - percentage)).Div(decimal.NewFromInt(100))
			return "€ " + d.Mul(factor).StringFixed(priceDecimal)
		},
		"date": func(t time.Time) string {
			return t.Format(dateFormat)
		},
		"offerDates": func(o models.Offer) string {
			return time.Time(o.StartDate).Format(dateFormat) + " - " + time.Time(o.EndDate).Format(dateFormat)
		},
		"activeToday": func(o models.Offer) bool {
			return o.ActiveOn(time.Now())
		},
	}
}

// Templates parses every embedded view
func Templates() (*template.Template, error) {
	return template.New("views").Funcs(FuncMap()).ParseFS(files, "templates/*.html")
}
