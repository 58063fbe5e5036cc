// Package repositories exposes the read side of the entity model: lookups by
// id, listings and the RestaurantPizza rows owned by a restaurant.
// Every repository can be rebound to a transaction with WithTx.
package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by primary key matches no row
var ErrNotFound = errors.New("record not found")

// translate maps gorm's not found error onto ErrNotFound
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
