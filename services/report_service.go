package services

import (
	"errors"
	"time"

	"hostal-backend/models"
	"hostal-backend/utils"

	"gorm.io/gorm"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// ReservationReportRow is one line of the reservations report.
type ReservationReportRow struct {
	ClientName string                   `gorm:"column:cliente_nombre" json:"cliente_nombre"`
	RoomType   string                   `gorm:"column:habitacion_tipo" json:"habitacion_tipo"`
	StartDate  string                   `gorm:"-" json:"fecha_inicio"`
	EndDate    string                   `gorm:"-" json:"fecha_fin"`
	Status     models.ReservationStatus `gorm:"column:estado" json:"estado"`
}

// IncomeByMethod aggregates payment amounts per tipo_pago.
type IncomeByMethod struct {
	Method models.PaymentMethod `gorm:"column:method" json:"tipo_pago"`
	Total  float64              `gorm:"column:total" json:"total"`
}

// IncomeReport is the income aggregation response: grand total plus the
// per-method breakdown.
type IncomeReport struct {
	Total    float64          `json:"total_general"`
	ByMethod []IncomeByMethod `json:"detalle_por_tipo"`
}

func (s *ReportService) Create(report *models.Report) error {
	var user models.User
	if err := s.DB.First(&user, report.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.DB.Create(report).Error
}

func (s *ReportService) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := s.DB.Preload("User").First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) List() ([]models.Report, error) {
	reports := []models.Report{}
	if err := s.DB.Preload("User").Order("report_date DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportService) Update(id uint, updated models.Report) (*models.Report, error) {
	report, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated.UserID != 0 && updated.UserID != report.UserID {
		var user models.User
		if err := s.DB.First(&user, updated.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		report.UserID = updated.UserID
	}
	updates := map[string]interface{}{
		"type":        updated.Type,
		"report_date": updated.ReportDate,
		"user_id":     report.UserID,
	}
	if updated.Parameters != nil {
		updates["parameters"] = updated.Parameters
	}
	if err := s.DB.Model(report).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *ReportService) Delete(id uint) error {
	report, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(report).Error
}

// Reservations lists reservation rows joined with client and room, filtered
// by optional start date (>=), end date (<=) and estado.
func (s *ReportService) Reservations(startDate, endDate, status string) ([]ReservationReportRow, error) {
	q := s.DB.Model(&models.Reservation{}).
		Select("clients.name AS cliente_nombre, rooms.type AS habitacion_tipo, reservations.start_date, reservations.end_date, reservations.status AS estado").
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Joins("JOIN rooms ON rooms.id = reservations.room_id")

	if startDate != "" {
		from, err := utils.ParseDate(startDate)
		if err != nil {
			return nil, &ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
		}
		q = q.Where("reservations.start_date >= ?", from)
	}
	if endDate != "" {
		until, err := utils.ParseDate(endDate)
		if err != nil {
			return nil, &ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
		}
		q = q.Where("reservations.end_date <= ?", until)
	}
	if status != "" {
		q = q.Where("reservations.status = ?", status)
	}

	var raw []struct {
		ClientName string                   `gorm:"column:cliente_nombre"`
		RoomType   string                   `gorm:"column:habitacion_tipo"`
		StartDate  time.Time                `gorm:"column:start_date"`
		EndDate    time.Time                `gorm:"column:end_date"`
		Status     models.ReservationStatus `gorm:"column:estado"`
	}
	if err := q.Scan(&raw).Error; err != nil {
		return nil, err
	}

	rows := make([]ReservationReportRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, ReservationReportRow{
			ClientName: r.ClientName,
			RoomType:   r.RoomType,
			StartDate:  r.StartDate.Format(utils.DateLayout),
			EndDate:    r.EndDate.Format(utils.DateLayout),
			Status:     r.Status,
		})
	}
	return rows, nil
}

// Income sums payment amounts, filtered by payment date range and tipo_pago,
// and breaks the total down per payment method.
func (s *ReportService) Income(startDate, endDate, method string) (*IncomeReport, error) {
	base := s.DB.Model(&models.Payment{})
	if startDate != "" {
		from, err := utils.ParseDate(startDate)
		if err != nil {
			return nil, &ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
		}
		base = base.Where("date >= ?", from)
	}
	if endDate != "" {
		until, err := utils.ParseDate(endDate)
		if err != nil {
			return nil, &ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
		}
		// inclusive upper bound at date granularity
		base = base.Where("date < ?", until.AddDate(0, 0, 1))
	}
	if method != "" {
		base = base.Where("method = ?", method)
	}

	report := &IncomeReport{ByMethod: []IncomeByMethod{}}

	var total struct {
		Total float64 `gorm:"column:total"`
	}
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&total).Error; err != nil {
		return nil, err
	}
	report.Total = total.Total

	if err := base.Session(&gorm.Session{}).
		Select("method, SUM(amount) AS total").
		Group("method").
		Scan(&report.ByMethod).Error; err != nil {
		return nil, err
	}
	return report, nil
}
