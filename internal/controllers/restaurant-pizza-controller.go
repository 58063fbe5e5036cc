package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza lists a pizza at a restaurant with a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body services.CreateRestaurantPizzaInput true "Price, pizza and restaurant"
// @Success 201 {object} serializers.RestaurantPizzaCreated
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input services.CreateRestaurantPizzaInput
	if err := bindStrictJSON(ctx, &input); err != nil {
		log.WithField("request_id", ctx.GetString(middleware.RequestIDKey)).
			WithError(err).Warn("Invalid restaurant pizza request body")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	if errors.Is(err, services.ErrValidation) {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}
	if err != nil {
		internalError(ctx, err, "Failed to create restaurant pizza")
		return
	}
	ctx.JSON(http.StatusCreated, created)
}
