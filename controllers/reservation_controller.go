package controllers

import (
	"net/http"
	"strconv"

	"hostal-backend/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

type CreateReservationRequest struct {
	ClientID  uint   `json:"cliente" binding:"required"`
	RoomID    uint   `json:"habitacion" binding:"required"`
	StartDate string `json:"fecha_inicio" binding:"required"`
	EndDate   string `json:"fecha_fin" binding:"required"`
	PaymentID *uint  `json:"pago"`
}

type UpdateReservationRequest struct {
	StartDate string `json:"fecha_inicio" binding:"required"`
	EndDate   string `json:"fecha_fin" binding:"required"`
	PaymentID *uint  `json:"pago"`
}

// POST /api/reservas
func (ctrl *ReservationController) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := ctrl.Svc.Create(req.ClientID, req.RoomID, req.StartDate, req.EndDate, req.PaymentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// GET /api/reservas
func (ctrl *ReservationController) List(c *gin.Context) {
	filters := services.ReservationFilters{
		Status:    c.Query("estado"),
		StartFrom: c.Query("fecha_inicio"),
		EndUntil:  c.Query("fecha_fin"),
	}
	if raw := c.Query("cliente"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro cliente inválido"})
			return
		}
		filters.ClientID = uint(id)
	}
	if raw := c.Query("habitacion"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro habitacion inválido"})
			return
		}
		filters.RoomID = uint(id)
	}

	reservations, err := ctrl.Svc.List(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GET /api/reservas/:id
func (ctrl *ReservationController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// PUT /api/reservas/:id
func (ctrl *ReservationController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reservation, err := ctrl.Svc.Update(id, req.StartDate, req.EndDate, req.PaymentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// DELETE /api/reservas/:id
func (ctrl *ReservationController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/reservas/:id/checkin
func (ctrl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Svc.CheckIn(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Check-in realizado correctamente."})
}

// POST /api/reservas/:id/checkout
func (ctrl *ReservationController) CheckOut(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Svc.CheckOut(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Check-out realizado correctamente."})
}

// POST /api/reservas/:id/cancelar
func (ctrl *ReservationController) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Svc.Cancel(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Reserva cancelada correctamente."})
}
