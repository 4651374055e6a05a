package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostal-backend/services"

	"github.com/gin-gonic/gin"
)

// parseID reads the numeric :id route param, replying 400 on garbage.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation/transition/conflict → 400, missing entities → 404, bad
// credentials → 401, anything else → 500.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
		return
	}
	var tErr *services.InvalidTransitionError
	if errors.As(err, &tErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": tErr.Reason})
		return
	}
	var cfErr *services.ConflictError
	if errors.As(err, &cfErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": cfErr.Reason})
		return
	}

	switch {
	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrReportNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
	}
}
