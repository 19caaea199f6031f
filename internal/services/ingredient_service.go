package services

import (
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"gorm.io/gorm"
)

// IngredientService provides read access to the ingredients
type IngredientService interface {
	// GetAllIngredients retrieves every ingredient ordered by name
	GetAllIngredients() ([]models.Ingredient, error)
	// GetIngredientsByIDs retrieves the ingredients matching the ids; unknown ids are ignored
	GetIngredientsByIDs(ids []int) ([]models.Ingredient, error)
}

type ingredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) GetAllIngredients() ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	if err := s.db.Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientService) GetIngredientsByIDs(ids []int) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := s.db.Where("id IN ?", ids).Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
