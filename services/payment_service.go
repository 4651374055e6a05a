package services

import (
	"errors"
	"time"

	"hostal-backend/models"

	"gorm.io/gorm"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// Create persists a payment with a server-assigned timestamp. When
// reservationID is given, the linkage is best-effort: a missing reservation
// or one already holding a payment is silently ignored, never an error.
func (s *PaymentService) Create(amount float64, method models.PaymentMethod, status models.PaymentStatus, reservationID *uint) (*models.Payment, error) {
	if method == "" {
		method = models.PaymentCash
	}
	if status == "" {
		status = models.PaymentSuccessful
	}
	if !models.ValidPaymentMethod(method) {
		return nil, validationf("Tipo de pago inválido: %q.", method)
	}
	if !models.ValidPaymentStatus(status) {
		return nil, validationf("Estado de pago inválido: %q.", status)
	}

	payment := models.Payment{
		Amount: amount,
		Date:   time.Now().UTC(),
		Method: method,
		Status: status,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		if reservationID == nil {
			return nil
		}
		var reservation models.Reservation
		if err := tx.First(&reservation, *reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // best-effort: invalid reference is a no-op
			}
			return err
		}
		if reservation.PaymentID != nil {
			return nil
		}
		if err := tx.Model(&reservation).Update("payment_id", payment.ID).Error; err != nil {
			return err
		}
		payment.ReservationID = &reservation.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// fillReservationIDs resolves the reverse payment→reservation reference for
// serialization.
func (s *PaymentService) fillReservationIDs(payments []*models.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ID)
	}

	var refs []struct {
		ID        uint
		PaymentID uint
	}
	if err := s.DB.Model(&models.Reservation{}).
		Select("id, payment_id").
		Where("payment_id IN ?", ids).
		Scan(&refs).Error; err != nil {
		return err
	}

	byPayment := make(map[uint]uint, len(refs))
	for _, r := range refs {
		byPayment[r.PaymentID] = r.ID
	}
	for _, p := range payments {
		if rid, ok := byPayment[p.ID]; ok {
			resID := rid
			p.ReservationID = &resID
		}
	}
	return nil
}

func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if err := s.fillReservationIDs([]*models.Payment{&payment}); err != nil {
		return nil, err
	}
	return &payment, nil
}

// List returns payments newest first; search matches tipo_pago or estado.
func (s *PaymentService) List(search string) ([]models.Payment, error) {
	q := s.DB.Model(&models.Payment{}).Order("date DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("method LIKE ? OR status LIKE ?", like, like)
	}
	payments := []models.Payment{}
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	ptrs := make([]*models.Payment, len(payments))
	for i := range payments {
		ptrs[i] = &payments[i]
	}
	if err := s.fillReservationIDs(ptrs); err != nil {
		return nil, err
	}
	return payments, nil
}

// Update changes amount, method and status. The creation timestamp is
// immutable.
func (s *PaymentService) Update(id uint, amount float64, method models.PaymentMethod, status models.PaymentStatus) (*models.Payment, error) {
	payment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method != "" && !models.ValidPaymentMethod(method) {
		return nil, validationf("Tipo de pago inválido: %q.", method)
	}
	if status != "" && !models.ValidPaymentStatus(status) {
		return nil, validationf("Estado de pago inválido: %q.", status)
	}
	updates := map[string]interface{}{"amount": amount}
	if method != "" {
		updates["method"] = method
	}
	if status != "" {
		updates["status"] = status
	}
	if err := s.DB.Model(payment).Updates(updates).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete detaches the payment from any reservation referencing it, then
// removes it.
func (s *PaymentService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if err := tx.Model(&models.Reservation{}).
			Where("payment_id = ?", id).
			Update("payment_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&payment).Error
	})
}
