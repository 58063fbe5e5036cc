package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllPizzas(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	pizzas, err := service.GetAllPizzas(ctx)
	require.NoError(t, err)
	assert.NotNil(t, pizzas)
	assert.Empty(t, pizzas)

	seedFixture(t, db)
	pizzas, err = service.GetAllPizzas(ctx)
	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	assert.Equal(t, "Margherita", pizzas[0].Name)
	assert.Equal(t, "Pepperoni", pizzas[1].Name)
}
