package services

import (
	"context"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/repositories"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/serializers"
	"gorm.io/gorm"
)

// PizzaService provides read access to pizzas
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas in their basic form
	GetAllPizzas(ctx context.Context) ([]serializers.PizzaBasic, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	pizzas repositories.PizzaRepository
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{pizzas: repositories.NewPizzaRepository(db)}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]serializers.PizzaBasic, error) {
	pizzas, err := s.pizzas.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return serializers.NewPizzaBasicList(pizzas), nil
}
