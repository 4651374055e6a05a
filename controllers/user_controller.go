package controllers

import (
	"net/http"

	"hostal-backend/models"
	"hostal-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

type RegisterUserRequest struct {
	Username string          `json:"username" binding:"required"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"rol"`
}

type UpdateUserRequest struct {
	Email    string          `json:"email" binding:"omitempty,email"`
	Password string          `json:"password" binding:"omitempty,min=8"`
	Role     models.UserRole `json:"rol"`
	IsActive *bool           `json:"is_active"`
}

// POST /api/usuarios (public registration)
func (ctrl *UserController) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := ctrl.Svc.Create(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GET /api/usuarios
func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.Svc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/usuarios/:id
func (ctrl *UserController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/usuarios/:id
func (ctrl *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := ctrl.Svc.Update(id, req.Email, req.Password, req.Role, req.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /api/usuarios/:id
func (ctrl *UserController) Delete(c *gin.Context) {
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
