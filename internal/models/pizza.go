package models

// Pizza represents a pizza that restaurants can offer.
// It has no navigable relationship back to the restaurants offering it.
type Pizza struct {
	ID          uint `gorm:"primaryKey"`
	Name        string
	Ingredients string
}

func (Pizza) TableName() string {
	return "pizzas"
}
