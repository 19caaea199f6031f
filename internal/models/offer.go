package models

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the layout used for offer dates in forms and views
const DateLayout = "2006-01-02"

// Offer is a time-bounded discount applied to a single pizza
type Offer struct {
	ID                 int            `json:"id" gorm:"primaryKey"`
	Title              string         `json:"title" gorm:"size:150;not null"`
	StartDate          datatypes.Date `json:"start_date" gorm:"not null"`
	EndDate            datatypes.Date `json:"end_date" gorm:"not null"`
	DiscountPercentage int            `json:"discount_percentage" gorm:"not null"`
	PizzaID            int            `json:"pizza_id" gorm:"not null;index"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// StartsOn returns the start date formatted with DateLayout
func (o Offer) StartsOn() string {
	return formatDate(o.StartDate)
}

// EndsOn returns the end date formatted with DateLayout
func (o Offer) EndsOn() string {
	return formatDate(o.EndDate)
}

// ActiveOn reports whether the offer applies on the day of t
func (o Offer) ActiveOn(t time.Time) bool {
	day := t.Format(DateLayout)
	return o.StartsOn() <= day && day <= o.EndsOn()
}

func formatDate(d datatypes.Date) string {
	if time.Time(d).IsZero() {
		return ""
	}
	return time.Time(d).Format(DateLayout)
}
