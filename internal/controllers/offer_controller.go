package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/forms"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/views"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// OfferController serves the pages that create and edit the offers of a pizza
type OfferController struct {
	pizzas services.PizzaService
	offers services.OfferService
}

func NewOfferController(pizzas services.PizzaService, offers services.OfferService) *OfferController {
	return &OfferController{pizzas: pizzas, offers: offers}
}

// New shows an empty offer form, or goes back to the list when the pizza does not exist
func (oc *OfferController) New(c *gin.Context) {
	pizza, ok := oc.pizzaOrRedirect(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, views.CreateOffer, gin.H{
		"pizza":   pizza,
		"offerta": models.Offer{PizzaID: pizza.ID},
		"form":    forms.OfferForm{},
		"errors":  forms.FieldErrors(nil),
	})
}

func (oc *OfferController) Create(c *gin.Context) {
	pizza, ok := oc.pizzaOrRedirect(c)
	if !ok {
		return
	}

	form, errs := bindOfferForm(c)
	if len(errs) > 0 {
		logValidationErrors("offer", errs)
		render(c, http.StatusUnprocessableEntity, views.CreateOffer, gin.H{
			"pizza":   pizza,
			"offerta": models.Offer{PizzaID: pizza.ID},
			"form":    form,
			"errors":  errs,
		})
		return
	}

	offer := form.Offer()
	offer.PizzaID = pizza.ID
	saved, err := oc.offers.SaveOffer(offer)
	if errors.Is(err, services.ErrPizzaNotFound) {
		redirect(c, "/pizze")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	log.WithFields(log.Fields{"pizza_id": pizza.ID, "offer_id": saved.ID}).Info("Offer created")
	redirect(c, fmt.Sprintf("/pizze/%d", pizza.ID))
}

// Edit shows the form of a stored offer; a missing offer is an error
func (oc *OfferController) Edit(c *gin.Context) {
	pizzaID, ok := parseID(c, "id")
	if !ok {
		return
	}
	offerID, ok := parseID(c, "offertaId")
	if !ok {
		return
	}
	offer, err := oc.offers.GetOfferByID(offerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, views.EditOffer, gin.H{
		"pizzaID": pizzaID,
		"offerta": offer,
		"form":    forms.NewOfferForm(offer),
		"errors":  forms.FieldErrors(nil),
	})
}

// Update merges the submitted fields into the stored offer and attaches it to the pizza in the path
func (oc *OfferController) Update(c *gin.Context) {
	pizzaID, ok := parseID(c, "id")
	if !ok {
		return
	}
	offerID, ok := parseID(c, "offertaId")
	if !ok {
		return
	}

	form, errs := bindOfferForm(c)
	if len(errs) > 0 {
		logValidationErrors("offer", errs)
		render(c, http.StatusUnprocessableEntity, views.EditOffer, gin.H{
			"pizzaID": pizzaID,
			"offerta": models.Offer{ID: offerID, PizzaID: pizzaID},
			"form":    form,
			"errors":  errs,
		})
		return
	}

	if _, err := oc.offers.UpdateOffer(offerID, pizzaID, form.Offer()); err != nil {
		_ = c.Error(err)
		return
	}
	log.WithFields(log.Fields{"pizza_id": pizzaID, "offer_id": offerID}).Info("Offer updated")
	redirect(c, fmt.Sprintf("/pizze/%d", pizzaID))
}

func (oc *OfferController) pizzaOrRedirect(c *gin.Context) (models.Pizza, bool) {
	pizzaID, ok := parseID(c, "id")
	if !ok {
		return models.Pizza{}, false
	}
	pizza, err := oc.pizzas.GetPizzaByID(pizzaID)
	if errors.Is(err, services.ErrPizzaNotFound) {
		log.WithField("pizza_id", pizzaID).Warn("Offer for unknown pizza")
		redirect(c, "/pizze")
		return models.Pizza{}, false
	}
	if err != nil {
		_ = c.Error(err)
		return models.Pizza{}, false
	}
	return pizza, true
}

func bindOfferForm(c *gin.Context) (forms.OfferForm, forms.FieldErrors) {
	var form forms.OfferForm
	if err := c.ShouldBind(&form); err != nil {
		return form, forms.BindingError(err)
	}
	return form, form.Validate()
}
