// Package serializers turns entities into fixed-shape transport views.
//
// Each view expands relationships at most one hop from its root and always
// renders the far side of that hop with a basic view, so no view can recurse
// back into the entity it started from.
package serializers

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
)

// ErrDanglingReference is returned when a relationship points at a row that does not exist
var ErrDanglingReference = errors.New("dangling reference")

// PizzaBasic is a pizza without relationships
type PizzaBasic struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantBasic is a restaurant without relationships
type RestaurantBasic struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantPizzaWithPizza is a RestaurantPizza embedding its pizza but never its restaurant
type RestaurantPizzaWithPizza struct {
	ID           uint       `json:"id"`
	Price        float64    `json:"price"`
	PizzaID      uint       `json:"pizza_id"`
	RestaurantID uint       `json:"restaurant_id"`
	Pizza        PizzaBasic `json:"pizza"`
}

// RestaurantDetailed is a restaurant with the pizzas it offers
type RestaurantDetailed struct {
	RestaurantBasic
	RestaurantPizzas []RestaurantPizzaWithPizza `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreated is returned after a RestaurantPizza is created
type RestaurantPizzaCreated struct {
	RestaurantPizzaWithPizza
	Restaurant RestaurantBasic `json:"restaurant"`
}

// NewPizzaBasic renders a pizza without relationships
func NewPizzaBasic(p models.Pizza) PizzaBasic {
	return PizzaBasic{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewPizzaBasicList renders pizzas in their basic form, never returning nil
func NewPizzaBasicList(pizzas []models.Pizza) []PizzaBasic {
	out := make([]PizzaBasic, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, NewPizzaBasic(p))
	}
	return out
}

// NewRestaurantBasic renders a restaurant without relationships
func NewRestaurantBasic(r models.Restaurant) RestaurantBasic {
	return RestaurantBasic{ID: r.ID, Name: r.Name, Address: r.Address}
}

// NewRestaurantBasicList renders restaurants in their basic form, never returning nil
func NewRestaurantBasicList(restaurants []models.Restaurant) []RestaurantBasic {
	out := make([]RestaurantBasic, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, NewRestaurantBasic(r))
	}
	return out
}

// NewRestaurantPizzaWithPizza requires rp.Pizza to be loaded and to match rp.PizzaID
func NewRestaurantPizzaWithPizza(rp models.RestaurantPizza) (RestaurantPizzaWithPizza, error) {
	if rp.Pizza == nil || rp.Pizza.ID != rp.PizzaID {
		return RestaurantPizzaWithPizza{}, fmt.Errorf("%w: restaurant_pizza %d references pizza %d",
			ErrDanglingReference, rp.ID, rp.PizzaID)
	}
	return RestaurantPizzaWithPizza{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        NewPizzaBasic(*rp.Pizza),
	}, nil
}

// NewRestaurantDetailed requires r.RestaurantPizzas to be loaded together with their pizzas
func NewRestaurantDetailed(r models.Restaurant) (RestaurantDetailed, error) {
	detailed := RestaurantDetailed{
		RestaurantBasic:  NewRestaurantBasic(r),
		RestaurantPizzas: make([]RestaurantPizzaWithPizza, 0, len(r.RestaurantPizzas)),
	}
	for _, rp := range r.RestaurantPizzas {
		view, err := NewRestaurantPizzaWithPizza(rp)
		if err != nil {
			return RestaurantDetailed{}, err
		}
		detailed.RestaurantPizzas = append(detailed.RestaurantPizzas, view)
	}
	return detailed, nil
}

// NewRestaurantPizzaCreated requires both rp.Pizza and rp.Restaurant to be loaded
func NewRestaurantPizzaCreated(rp models.RestaurantPizza) (RestaurantPizzaCreated, error) {
	view, err := NewRestaurantPizzaWithPizza(rp)
	if err != nil {
		return RestaurantPizzaCreated{}, err
	}
	if rp.Restaurant == nil || rp.Restaurant.ID != rp.RestaurantID {
		return RestaurantPizzaCreated{}, fmt.Errorf("%w: restaurant_pizza %d references restaurant %d",
			ErrDanglingReference, rp.ID, rp.RestaurantID)
	}
	return RestaurantPizzaCreated{
		RestaurantPizzaWithPizza: view,
		Restaurant:               NewRestaurantBasic(*rp.Restaurant),
	}, nil
}
