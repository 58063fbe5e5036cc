package repositories

import (
	"context"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantRepository reads restaurants from the store
type RestaurantRepository interface {
	// FindAll returns every restaurant without relationships
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	// FindByID returns a restaurant without relationships
	FindByID(ctx context.Context, id uint) (models.Restaurant, error)
	// FindByIDForShare returns a restaurant and holds a share lock on its row until the
	// surrounding transaction ends, so it cannot be deleted underneath the caller
	FindByIDForShare(ctx context.Context, id uint) (models.Restaurant, error)
	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) RestaurantRepository
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new instance of RestaurantRepository
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) WithTx(tx *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: tx}
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return models.Restaurant{}, translate(err)
	}
	return restaurant, nil
}

func (r *restaurantRepository) FindByIDForShare(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, translate(err)
	}
	return restaurant, nil
}
