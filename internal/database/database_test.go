package database

import (
	"testing"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrateCreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"pizzas", "ingredients", "pizza_ingredients", "offers", "users", "sessions", "oauth_clients", "oauth_tokens"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	// running it twice is a no-op
	assert.NoError(t, Migrate(db))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var ingredients, pizzas int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&ingredients).Error)
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	assert.Equal(t, int64(len(seedIngredients)), ingredients)
	assert.Equal(t, int64(len(seedPizzas)), pizzas)

	var margherita models.Pizza
	require.NoError(t, db.Preload("Ingredients").Where("name = ?", "Margherita").First(&margherita).Error)
	assert.Equal(t, "7.5", margherita.Price.String())
	assert.Len(t, margherita.Ingredients, 3)
}

func TestSeedKeepsExistingCatalog(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Pizza{Name: "Marinara", Description: "Tomato and garlic"}).Error)

	require.NoError(t, Seed(db))

	var pizzas int64
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	assert.Equal(t, int64(1), pizzas)
}

func TestSetLogLevelSilencesConnectionLogs(t *testing.T) {
	hook := logtest.NewLocal(log)
	defer SetLogLevel(log.GetLevel())

	SetLogLevel(logrus.WarnLevel)
	setupTestDB(t)
	assert.Empty(t, hook.AllEntries())

	SetLogLevel(logrus.InfoLevel)
	setupTestDB(t)
	assert.NotEmpty(t, hook.AllEntries())
}
