package repositories

import (
	"context"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaRepository reads pizzas from the store
type PizzaRepository interface {
	// FindAll returns every pizza
	FindAll(ctx context.Context) ([]models.Pizza, error)
	// FindByID returns a pizza by its ID
	FindByID(ctx context.Context, id uint) (models.Pizza, error)
	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) PizzaRepository
}

type pizzaRepository struct {
	db *gorm.DB
}

// NewPizzaRepository creates a new instance of PizzaRepository
func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepository{db: db}
}

func (r *pizzaRepository) WithTx(tx *gorm.DB) PizzaRepository {
	return &pizzaRepository{db: tx}
}

func (r *pizzaRepository) FindAll(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := r.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *pizzaRepository) FindByID(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, translate(err)
	}
	return pizza, nil
}
