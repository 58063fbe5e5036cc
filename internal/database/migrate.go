package database

import (
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	return db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
}
