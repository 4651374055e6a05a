package controllers

import (
	"encoding/json"
	"net/http"

	"hostal-backend/models"
	"hostal-backend/services"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

type ReportRequest struct {
	Type       string          `json:"tipo" binding:"required"`
	ReportDate string          `json:"fecha_reporte" binding:"required"`
	UserID     uint            `json:"usuario" binding:"required"`
	Parameters json.RawMessage `json:"parametros"`
}

func (req *ReportRequest) toModel() (*models.Report, error) {
	date, err := utils.ParseDate(req.ReportDate)
	if err != nil {
		return nil, &services.ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
	}
	report := &models.Report{
		Type:       req.Type,
		ReportDate: date,
		UserID:     req.UserID,
	}
	if len(req.Parameters) > 0 {
		report.Parameters = datatypes.JSON(req.Parameters)
	}
	return report, nil
}

// POST /api/reportes
func (ctrl *ReportController) Create(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := req.toModel()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if err := ctrl.Svc.Create(report); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GET /api/reportes
func (ctrl *ReportController) List(c *gin.Context) {
	reports, err := ctrl.Svc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GET /api/reportes/:id
func (ctrl *ReportController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	report, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// PUT /api/reportes/:id
func (ctrl *ReportController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := req.toModel()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	report, err := ctrl.Svc.Update(id, *updated)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DELETE /api/reportes/:id
func (ctrl *ReportController) Delete(c *gin.Context) {
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

// GET /api/reportes/reservas?fecha_inicio=&fecha_fin=&estado=
func (ctrl *ReportController) Reservations(c *gin.Context) {
	rows, err := ctrl.Svc.Reservations(c.Query("fecha_inicio"), c.Query("fecha_fin"), c.Query("estado"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/reportes/ingresos?fecha_inicio=&fecha_fin=&tipo_pago=
func (ctrl *ReportController) Income(c *gin.Context) {
	report, err := ctrl.Svc.Income(c.Query("fecha_inicio"), c.Query("fecha_fin"), c.Query("tipo_pago"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
