package controllers

import (
	"net/http"

	"hostal-backend/models"
	"hostal-backend/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Svc            *services.RoomService
	ReservationSvc *services.ReservationService
}

func NewRoomController(svc *services.RoomService, reservationSvc *services.ReservationService) *RoomController {
	return &RoomController{Svc: svc, ReservationSvc: reservationSvc}
}

type RoomRequest struct {
	Type   string            `json:"tipo" binding:"required"`
	Status models.RoomStatus `json:"estado"`
	Price  float64           `json:"precio" binding:"required,gt=0"`
}

// POST /api/habitaciones
func (ctrl *RoomController) Create(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room := models.Room{Type: req.Type, Status: req.Status, Price: req.Price}
	if err := ctrl.Svc.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GET /api/habitaciones
func (ctrl *RoomController) List(c *gin.Context) {
	rooms, err := ctrl.Svc.List(c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/habitaciones/disponibles?fecha_inicio=YYYY-MM-DD&fecha_fin=YYYY-MM-DD
func (ctrl *RoomController) Available(c *gin.Context) {
	rooms, err := ctrl.ReservationSvc.AvailableRooms(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/habitaciones/:id
func (ctrl *RoomController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// PUT /api/habitaciones/:id
func (ctrl *RoomController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := ctrl.Svc.Update(id, models.Room{Type: req.Type, Status: req.Status, Price: req.Price})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /api/habitaciones/:id
func (ctrl *RoomController) Delete(c *gin.Context) {
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
