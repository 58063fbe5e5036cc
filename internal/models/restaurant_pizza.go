package models

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

// Price bounds for a RestaurantPizza, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza is the priced association between a restaurant and a pizza
type RestaurantPizza struct {
	ID           uint    `gorm:"primaryKey"`
	Price        float64 `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30"`
	RestaurantID uint    `gorm:"not null;index"`
	PizzaID      uint    `gorm:"not null;index"`

	Restaurant *Restaurant
	Pizza      *Pizza `gorm:"constraint:OnDelete:RESTRICT"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidatePrice reports whether price is a finite number within [MinPrice, MaxPrice]
func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("price must be a finite number")
	}
	if price < MinPrice || price > MaxPrice {
		return fmt.Errorf("price %v must be between %d and %d", price, MinPrice, MaxPrice)
	}
	return nil
}

// BeforeCreate rejects out of range prices before they reach the store
func (rp *RestaurantPizza) BeforeCreate(tx *gorm.DB) error {
	return ValidatePrice(rp.Price)
}
