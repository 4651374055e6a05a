package controllers

import (
	"net/http"

	"hostal-backend/models"
	"hostal-backend/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

type CreatePaymentRequest struct {
	Amount float64              `json:"monto" binding:"required,min=0.01"`
	Method models.PaymentMethod `json:"tipo_pago"`
	Status models.PaymentStatus `json:"estado"`
	// optional reservation to link, best-effort
	ReservationID *uint `json:"reserva"`
}

type UpdatePaymentRequest struct {
	Amount float64              `json:"monto" binding:"required,min=0.01"`
	Method models.PaymentMethod `json:"tipo_pago"`
	Status models.PaymentStatus `json:"estado"`
}

// POST /api/pagos
func (ctrl *PaymentController) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := ctrl.Svc.Create(req.Amount, req.Method, req.Status, req.ReservationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GET /api/pagos
func (ctrl *PaymentController) List(c *gin.Context) {
	payments, err := ctrl.Svc.List(c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /api/pagos/:id
func (ctrl *PaymentController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// PUT /api/pagos/:id
func (ctrl *PaymentController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := ctrl.Svc.Update(id, req.Amount, req.Method, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// DELETE /api/pagos/:id
func (ctrl *PaymentController) Delete(c *gin.Context) {
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
