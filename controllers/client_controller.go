package controllers

import (
	"net/http"

	"hostal-backend/models"
	"hostal-backend/services"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	Svc *services.ClientService
}

func NewClientController(svc *services.ClientService) *ClientController {
	return &ClientController{Svc: svc}
}

type ClientRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Document string `json:"documento" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"telefono"`
}

// POST /api/clientes
func (ctrl *ClientController) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := models.Client{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := ctrl.Svc.Create(&client); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GET /api/clientes
func (ctrl *ClientController) List(c *gin.Context) {
	clients, err := ctrl.Svc.List(c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GET /api/clientes/:id
func (ctrl *ClientController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	client, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// PUT /api/clientes/:id
func (ctrl *ClientController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client, err := ctrl.Svc.Update(id, models.Client{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DELETE /api/clientes/:id
func (ctrl *ClientController) Delete(c *gin.Context) {
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
