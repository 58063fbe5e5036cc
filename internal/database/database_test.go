package database

import (
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite path gets foreign keys enabled",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite path with existing query",
			config:   DatabaseConfig{Driver: "sqlite", Path: "file::memory:?cache=shared"},
			expected: "file::memory:?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite path already enabling foreign keys is untouched",
			config:   DatabaseConfig{Driver: "", Path: "app.db?_foreign_keys=on"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name: "postgres from discrete fields",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "pizza",
				Password: "secret", Name: "pizzas", SSLMode: "disable",
			},
			expected: "host=db user=pizza password=secret dbname=pizzas port=5432 sslmode=disable",
		},
		{
			name:     "postgres url takes precedence",
			config:   DatabaseConfig{Driver: "postgresql", URL: "postgres://pizza:secret@db:5432/pizzas", Host: "ignored"},
			expected: "postgres://pizza:secret@db:5432/pizzas",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", URL: "postgres://pizza:secret@db:5432/pizzas", Password: "secret"}

	assert.NotContains(t, cfg.String(), "secret")
	assert.Contains(t, cfg.String(), "pizza")
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

// memoryConfig gives every caller its own private in-memory database
func memoryConfig() DatabaseConfig {
	return DatabaseConfig{Driver: "sqlite", Path: "file::memory:"}
}

func TestMigrateAndSeed(t *testing.T) {
	db, err := InitDatabase(memoryConfig())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, Seed(db))

	var restaurants, pizzas, restaurantPizzas int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&restaurantPizzas)
	assert.Equal(t, int64(3), restaurants)
	assert.Equal(t, int64(3), pizzas)
	assert.Equal(t, int64(3), restaurantPizzas)

	t.Run("seeding twice is a no-op", func(t *testing.T) {
		require.NoError(t, Seed(db))
		db.Model(&models.Restaurant{}).Count(&restaurants)
		assert.Equal(t, int64(3), restaurants)
	})
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db, err := InitDatabase(memoryConfig())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	err = db.Create(&models.RestaurantPizza{Price: 10, RestaurantID: 42, PizzaID: 42}).Error
	assert.Error(t, err, "insert referencing missing rows must fail")
}

func TestCascadeConstraint(t *testing.T) {
	db, err := InitDatabase(memoryConfig())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	restaurant := models.Restaurant{Name: "Dough Bros", Address: "1 Main St"}
	pizza := models.Pizza{Name: "Margherita", Ingredients: "Dough, Tomato, Cheese"}
	require.NoError(t, db.Create(&restaurant).Error)
	require.NoError(t, db.Create(&pizza).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{Price: 12, RestaurantID: restaurant.ID, PizzaID: pizza.ID}).Error)

	// Deleting the parent row directly still removes its children at the store level
	require.NoError(t, db.Exec("DELETE FROM restaurants WHERE id = ?", restaurant.ID).Error)

	var count int64
	db.Model(&models.RestaurantPizza{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
