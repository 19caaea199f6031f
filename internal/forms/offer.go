package forms

import (
	"strings"
	"time"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"gorm.io/datatypes"
)

// OfferForm is the payload of the create/edit offer forms
type OfferForm struct {
	Title              string `form:"title" validate:"required,max=150"`
	StartDate          string `form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string `form:"end_date" validate:"required,datetime=2006-01-02"`
	DiscountPercentage int    `form:"discount_percentage" validate:"required,min=1,max=100"`
}

// NewOfferForm fills a form with the values of an existing offer
func NewOfferForm(offer models.Offer) OfferForm {
	return OfferForm{
		Title:              offer.Title,
		StartDate:          offer.StartsOn(),
		EndDate:            offer.EndsOn(),
		DiscountPercentage: offer.DiscountPercentage,
	}
}

// Validate returns the list of invalid fields, empty when the form is valid
func (f *OfferForm) Validate() FieldErrors {
	f.Title = strings.TrimSpace(f.Title)
	errs := check(f)
	if errs.For("start_date") == "" && errs.For("end_date") == "" {
		start, _ := time.Parse(models.DateLayout, f.StartDate)
		end, _ := time.Parse(models.DateLayout, f.EndDate)
		if end.Before(start) {
			errs = append(errs, FieldError{Field: "end_date", Message: "must not be before the start date"})
		}
	}
	return errs
}

// Offer builds an offer from a validated form; the owning pizza is set by the caller
func (f OfferForm) Offer() models.Offer {
	start, _ := time.Parse(models.DateLayout, f.StartDate)
	end, _ := time.Parse(models.DateLayout, f.EndDate)
	return models.Offer{
		Title:              f.Title,
		StartDate:          datatypes.Date(start),
		EndDate:            datatypes.Date(end),
		DiscountPercentage: f.DiscountPercentage,
	}
}
