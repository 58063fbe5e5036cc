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

// CreateRestaurantPizzaInput is the payload used to associate a pizza with a restaurant.
// Pointer fields distinguish a missing value from a zero value.
type CreateRestaurantPizzaInput struct {
	Price        *float64 `json:"price"`
	PizzaID      *uint    `json:"pizza_id"`
	RestaurantID *uint    `json:"restaurant_id"`
}

// RestaurantPizzaService creates associations between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the input and creates the association in one transaction.
	// Any invariant violation is reported as ErrValidation and nothing is written.
	CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (serializers.RestaurantPizzaCreated, error)
}

type restaurantPizzaService struct {
	db          *gorm.DB
	restaurants repositories.RestaurantRepository
	pizzas      repositories.PizzaRepository
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{
		db:          db,
		restaurants: repositories.NewRestaurantRepository(db),
		pizzas:      repositories.NewPizzaRepository(db),
	}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (serializers.RestaurantPizzaCreated, error) {
	if err := validateInput(input); err != nil {
		return serializers.RestaurantPizzaCreated{}, s.rejected(input, err)
	}

	var created serializers.RestaurantPizzaCreated
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := s.restaurants.WithTx(tx).FindByIDForShare(ctx, *input.RestaurantID)
		if errors.Is(err, repositories.ErrNotFound) {
			return s.rejected(input, fmt.Errorf("restaurant %d does not exist", *input.RestaurantID))
		}
		if err != nil {
			return err
		}

		pizza, err := s.pizzas.WithTx(tx).FindByID(ctx, *input.PizzaID)
		if errors.Is(err, repositories.ErrNotFound) {
			return s.rejected(input, fmt.Errorf("pizza %d does not exist", *input.PizzaID))
		}
		if err != nil {
			return err
		}

		rp := models.RestaurantPizza{
			Price:        *input.Price,
			RestaurantID: restaurant.ID,
			PizzaID:      pizza.ID,
		}
		if err := tx.Create(&rp).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return s.rejected(input, fmt.Errorf("foreign key no longer resolves: %w", err))
			}
			return fmt.Errorf("creating restaurant_pizza: %w", err)
		}

		rp.Restaurant = &restaurant
		rp.Pizza = &pizza
		created, err = serializers.NewRestaurantPizzaCreated(rp)
		return err
	})
	if err != nil {
		return serializers.RestaurantPizzaCreated{}, err
	}
	return created, nil
}

// validateInput checks presence and price range, in that order
func validateInput(input CreateRestaurantPizzaInput) error {
	if input.Price == nil {
		return errors.New("price is required")
	}
	if err := models.ValidatePrice(*input.Price); err != nil {
		return err
	}
	if input.RestaurantID == nil {
		return errors.New("restaurant_id is required")
	}
	if input.PizzaID == nil {
		return errors.New("pizza_id is required")
	}
	return nil
}

// rejected logs the specific cause and returns the generic validation error
func (s *restaurantPizzaService) rejected(input CreateRestaurantPizzaInput, cause error) error {
	fields := log.Fields{"reason": cause.Error()}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.RestaurantID != nil {
		fields["restaurant_id"] = *input.RestaurantID
	}
	if input.PizzaID != nil {
		fields["pizza_id"] = *input.PizzaID
	}
	log.WithFields(fields).Warn("RestaurantPizza rejected")
	return fmt.Errorf("%w: %v", ErrValidation, cause)
}
