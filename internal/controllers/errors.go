package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// internalError logs the failure with the request context and hides the details from the client
func internalError(ctx *gin.Context, err error, message string) {
	log.WithFields(log.Fields{
		"request_id": ctx.GetString(middleware.RequestIDKey),
		"method":     ctx.Request.Method,
		"path":       ctx.Request.URL.Path,
	}).WithError(err).Error(message)
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalServer))
}

// parseID reads a positive integer id from the path
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bindStrictJSON decodes exactly one JSON value from the body and rejects anything after it
func bindStrictJSON(ctx *gin.Context, v any) error {
	if ctx.Request.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(ctx.Request.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
