package database

import (
	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"gorm.io/gorm"
)

// Models lists every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.Ingredient{},
		&models.Pizza{},
		&models.Offer{},
		&models.User{},
		&models.Session{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	}
}

// Migrate creates or updates the schema, including the pizza_ingredients join table
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	return db.AutoMigrate(Models()...)
}
