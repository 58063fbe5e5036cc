package repositories

import (
	"context"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaRepository reads RestaurantPizza rows from the store
type RestaurantPizzaRepository interface {
	// FindByRestaurantID returns the rows owned by a restaurant, with their pizzas loaded
	FindByRestaurantID(ctx context.Context, restaurantID uint) ([]models.RestaurantPizza, error)
	// FindByIDs returns the rows matching the given ids, ignoring missing ones
	FindByIDs(ctx context.Context, ids []uint) ([]models.RestaurantPizza, error)
	// Count returns the total number of rows
	Count(ctx context.Context) (int64, error)
	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) RestaurantPizzaRepository
}

type restaurantPizzaRepository struct {
	db *gorm.DB
}

// NewRestaurantPizzaRepository creates a new instance of RestaurantPizzaRepository
func NewRestaurantPizzaRepository(db *gorm.DB) RestaurantPizzaRepository {
	return &restaurantPizzaRepository{db: db}
}

func (r *restaurantPizzaRepository) WithTx(tx *gorm.DB) RestaurantPizzaRepository {
	return &restaurantPizzaRepository{db: tx}
}

func (r *restaurantPizzaRepository) FindByRestaurantID(ctx context.Context, restaurantID uint) ([]models.RestaurantPizza, error) {
	var rows []models.RestaurantPizza
	err := r.db.WithContext(ctx).
		Preload("Pizza").
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *restaurantPizzaRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.RestaurantPizza, error) {
	var rows []models.RestaurantPizza
	if len(ids) == 0 {
		return rows, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *restaurantPizzaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RestaurantPizza{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
