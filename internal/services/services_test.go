package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: "file::memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	restaurant models.Restaurant
	margherita models.Pizza
	pepperoni  models.Pizza
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		restaurant: models.Restaurant{Name: "Dough Bros", Address: "1 Main St"},
		margherita: models.Pizza{Name: "Margherita", Ingredients: "Dough, Tomato, Cheese"},
		pepperoni:  models.Pizza{Name: "Pepperoni", Ingredients: "Dough, Tomato, Cheese, Pepperoni"},
	}
	require.NoError(t, db.Create(&f.restaurant).Error)
	require.NoError(t, db.Create(&f.margherita).Error)
	require.NoError(t, db.Create(&f.pepperoni).Error)
	return f
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	count, err := repositories.NewRestaurantPizzaRepository(db).Count(ctx)
	require.NoError(t, err)
	return count
}

func ptr[T any](v T) *T {
	return &v
}

var ctx = context.Background()
