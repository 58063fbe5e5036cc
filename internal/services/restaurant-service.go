package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/repositories"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/serializers"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantService provides methods to read and delete restaurants
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants in their basic form
	GetAllRestaurants(ctx context.Context) ([]serializers.RestaurantBasic, error)
	// GetRestaurantByID retrieves a restaurant together with the pizzas it offers
	GetRestaurantByID(ctx context.Context, id uint) (serializers.RestaurantDetailed, error)
	// DeleteRestaurant deletes a restaurant and all of its RestaurantPizza rows in one transaction
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db               *gorm.DB
	restaurants      repositories.RestaurantRepository
	restaurantPizzas repositories.RestaurantPizzaRepository
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{
		db:               db,
		restaurants:      repositories.NewRestaurantRepository(db),
		restaurantPizzas: repositories.NewRestaurantPizzaRepository(db),
	}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]serializers.RestaurantBasic, error) {
	restaurants, err := s.restaurants.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return serializers.NewRestaurantBasicList(restaurants), nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (serializers.RestaurantDetailed, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		restaurant, err = s.restaurants.WithTx(tx).FindByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRestaurantNotFound
		}
		if err != nil {
			return err
		}
		restaurant.RestaurantPizzas, err = s.restaurantPizzas.WithTx(tx).FindByRestaurantID(ctx, restaurant.ID)
		return err
	})
	if err != nil {
		return serializers.RestaurantDetailed{}, err
	}

	detailed, err := serializers.NewRestaurantDetailed(restaurant)
	if err != nil {
		log.WithField("restaurant_id", id).WithError(err).Error("Restaurant has an unresolvable relationship")
		return serializers.RestaurantDetailed{}, err
	}
	return detailed, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := s.restaurants.WithTx(tx).FindByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRestaurantNotFound
		}
		if err != nil {
			return err
		}

		result := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantPizza{})
		if result.Error != nil {
			return fmt.Errorf("deleting pizzas of restaurant %d: %w", restaurant.ID, result.Error)
		}
		removed = result.RowsAffected

		if err := tx.Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("deleting restaurant %d: %w", restaurant.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"restaurant_id":             id,
		"restaurant_pizzas_removed": removed,
	}).Info("Restaurant deleted")
	return nil
}
