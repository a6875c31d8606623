package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"poros-portal/cmd/api/dto"
	"poros-portal/cmd/api/services"
	"poros-portal/cmd/internal/logger"
)

// respondError translates the service error taxonomy into HTTP statuses.
// Taxonomy errors keep their message; everything else is a dependency
// failure and gets a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
	default:
		logger.Log.Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal server error"})
	}
}

// queryInt parses a query parameter as int, falling back to def when absent
// or non-numeric.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}
