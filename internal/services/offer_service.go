package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OfferService provides methods to manage the offers attached to pizzas
type OfferService interface {
	// GetOfferByID retrieves an offer by its ID
	GetOfferByID(id int) (models.Offer, error)
	// GetOffersByPizzaID retrieves the offers of a pizza ordered by start date
	GetOffersByPizzaID(pizzaID int) ([]models.Offer, error)
	// SaveOffer inserts or updates an offer; its pizza must exist
	SaveOffer(offer models.Offer) (models.Offer, error)
	// UpdateOffer overwrites the mutable fields of a stored offer and attaches it to the pizza
	UpdateOffer(offerID, pizzaID int, changes models.Offer) (models.Offer, error)
}

type offerService struct {
	db *gorm.DB
}

func NewOfferService(db *gorm.DB) OfferService {
	return &offerService{db: db}
}

func (s *offerService) GetOfferByID(id int) (models.Offer, error) {
	var offer models.Offer
	if err := s.db.First(&offer, id).Error; err != nil {
		return models.Offer{}, offerLookupError(err, id)
	}
	return offer, nil
}

func (s *offerService) GetOffersByPizzaID(pizzaID int) ([]models.Offer, error) {
	offers := []models.Offer{}
	if err := s.db.Where("pizza_id = ?", pizzaID).Scopes(orderOffers).Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *offerService) SaveOffer(offer models.Offer) (models.Offer, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensurePizza(tx, offer.PizzaID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&offer).Error
	})
	if err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (s *offerService) UpdateOffer(offerID, pizzaID int, changes models.Offer) (models.Offer, error) {
	var stored models.Offer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensurePizza(tx, pizzaID); err != nil {
			return err
		}
		if err := tx.First(&stored, offerID).Error; err != nil {
			return offerLookupError(err, offerID)
		}
		stored.Title = changes.Title
		stored.StartDate = changes.StartDate
		stored.EndDate = changes.EndDate
		stored.DiscountPercentage = changes.DiscountPercentage
		stored.PizzaID = pizzaID
		return tx.Omit(clause.Associations).Save(&stored).Error
	})
	if err != nil {
		return models.Offer{}, err
	}
	return stored, nil
}

func ensurePizza(tx *gorm.DB, pizzaID int) error {
	var pizza models.Pizza
	err := tx.Select("id").First(&pizza, pizzaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrPizzaNotFound, pizzaID)
	}
	return err
}

func offerLookupError(err error, id int) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrOfferNotFound, id)
	}
	return err
}
