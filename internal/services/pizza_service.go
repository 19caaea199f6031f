package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PizzaService provides methods to manage the pizzas of the catalog
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas with their ingredients
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza with its ingredients and offers
	GetPizzaByID(id int) (models.Pizza, error)
	// FindPizzasByName retrieves the pizzas whose name contains the given text, ignoring case
	FindPizzasByName(name string) ([]models.Pizza, error)
	// SavePizza inserts a pizza without ID or updates an existing one,
	// replacing its ingredient set with pizza.Ingredients
	SavePizza(pizza models.Pizza) (models.Pizza, error)
	// DeletePizza deletes a pizza together with its offers
	DeletePizza(id int) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func orderIngredients(db *gorm.DB) *gorm.DB {
	return db.Order("name")
}

func orderOffers(db *gorm.DB) *gorm.DB {
	return db.Order("start_date, id")
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.Preload("Ingredients", orderIngredients).Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id int) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.
		Preload("Ingredients", orderIngredients).
		Preload("Offers", orderOffers).
		First(&pizza, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Pizza{}, fmt.Errorf("%w: id %d", ErrPizzaNotFound, id)
	}
	if err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

// likeEscaper makes LIKE wildcards in user input match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *pizzaService) FindPizzasByName(name string) ([]models.Pizza, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.GetAllPizzas()
	}
	pizzas := []models.Pizza{}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(name)) + "%"
	err := s.db.Preload("Ingredients", orderIngredients).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("id").
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) SavePizza(pizza models.Pizza) (models.Pizza, error) {
	ingredients := pizza.Ingredients
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Offers are owned by the offer service and ingredients are linked below
		if err := tx.Omit(clause.Associations).Save(&pizza).Error; err != nil {
			return err
		}
		association := tx.Model(&pizza).Association("Ingredients")
		if len(ingredients) == 0 {
			return association.Clear()
		}
		return association.Replace(ingredients)
	})
	if err != nil {
		return models.Pizza{}, err
	}
	pizza.Ingredients = ingredients
	return pizza, nil
}

func (s *pizzaService) DeletePizza(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrPizzaNotFound, id)
			}
			return err
		}
		if err := tx.Where("pizza_id = ?", pizza.ID).Delete(&models.Offer{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&pizza).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&pizza).Error
	})
}
