package models

// Restaurant represents a restaurant and the pizzas it offers
type Restaurant struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Address string

	// RestaurantPizzas are owned by the restaurant and removed with it
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
