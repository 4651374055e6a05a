package services

import (
	"errors"
	"time"

	"hostal-backend/models"
	"hostal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationService drives the reservation lifecycle and owns every room
// state side effect. All compound operations run inside one transaction with
// the room row locked, so two overlapping creates for the same room cannot
// both pass the availability check.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

var activeStates = []models.ReservationStatus{
	models.ReservationPending,
	models.ReservationActive,
}

// ReservationFilters narrows List results. Zero values mean "no filter".
type ReservationFilters struct {
	Status    string
	ClientID  uint
	RoomID    uint
	StartFrom string // fecha_inicio >= (YYYY-MM-DD)
	EndUntil  string // fecha_fin <= (YYYY-MM-DD)
}

func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, &ValidationError{
			Reason: "Debe proporcionar fecha_inicio y fecha_fin en formato YYYY-MM-DD",
		}
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
	}
	return start, end, nil
}

// overlapQuery selects {pendiente, activa} reservations for a room whose
// half-open interval [start, end) overlaps the given window:
// existing.start < end AND existing.end > start.
func overlapQuery(tx *gorm.DB, roomID uint, start, end time.Time) *gorm.DB {
	return tx.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ?", roomID, activeStates).
		Where("start_date < ? AND end_date > ?", end, start)
}

func setRoomStatus(tx *gorm.DB, roomID uint, status models.RoomStatus) error {
	return tx.Model(&models.Room{}).Where("id = ?", roomID).
		Update("status", status).Error
}

// Create validates the window, the room's base state and the overlap
// invariant, then persists the reservation as pendiente and marks the room
// ocupada. The first failing check wins; nothing is aggregated.
func (s *ReservationService) Create(clientID, roomID uint, startDate, endDate string, paymentID *uint) (*models.Reservation, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, &ValidationError{Reason: "La fecha de fin debe ser posterior a la fecha de inicio."}
	}
	if start.Before(utils.Today()) {
		return nil, &ValidationError{Reason: "No se puede reservar una fecha pasada."}
	}

	var reservationID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, clientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.Status != models.RoomAvailable {
			return validationf("La habitación %d no está disponible actualmente.", room.ID)
		}

		var overlapping int64
		if err := overlapQuery(tx, roomID, start, end).Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return &ValidationError{Reason: "La habitación ya está reservada en ese período."}
		}

		if paymentID != nil {
			if err := validatePaymentLink(tx, *paymentID, 0); err != nil {
				return err
			}
		}

		reservation := models.Reservation{
			ClientID:      clientID,
			RoomID:        roomID,
			PaymentID:     paymentID,
			StartDate:     start,
			EndDate:       end,
			Status:        models.ReservationPending,
			ReferenceCode: uuid.NewString(),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}
		reservationID = reservation.ID

		return setRoomStatus(tx, roomID, models.RoomOccupied)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(reservationID)
}

// validatePaymentLink rejects linking a payment that does not exist or is
// already attached to another reservation. excludeID skips the reservation
// being updated.
func validatePaymentLink(tx *gorm.DB, paymentID, excludeID uint) error {
	var payment models.Payment
	if err := tx.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Reason: "El pago indicado no existe."}
		}
		return err
	}
	var taken int64
	q := tx.Model(&models.Reservation{}).Where("payment_id = ?", paymentID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		return &ValidationError{Reason: "El pago ya está asociado a otra reserva."}
	}
	return nil
}

// CheckIn moves a pendiente reservation to activa and keeps the room ocupada.
func (s *ReservationService) CheckIn(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if reservation.Status != models.ReservationPending {
			return &InvalidTransitionError{Reason: "Solo se puede hacer check-in si la reserva está pendiente."}
		}
		if err := tx.Model(&reservation).Update("status", models.ReservationActive).Error; err != nil {
			return err
		}
		return setRoomStatus(tx, reservation.RoomID, models.RoomOccupied)
	})
}

// CheckOut moves an activa reservation to finalizada and frees the room.
func (s *ReservationService) CheckOut(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if reservation.Status != models.ReservationActive {
			return &InvalidTransitionError{Reason: "Solo se puede hacer check-out si la reserva está activa."}
		}
		if err := tx.Model(&reservation).Update("status", models.ReservationFinished).Error; err != nil {
			return err
		}
		return setRoomStatus(tx, reservation.RoomID, models.RoomAvailable)
	})
}

// Cancel voids a pendiente or activa reservation and frees the room.
func (s *ReservationService) Cancel(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if reservation.Status != models.ReservationPending && reservation.Status != models.ReservationActive {
			return &InvalidTransitionError{Reason: "Solo se puede cancelar una reserva pendiente o activa."}
		}
		if err := tx.Model(&reservation).Update("status", models.ReservationCancelled).Error; err != nil {
			return err
		}
		return setRoomStatus(tx, reservation.RoomID, models.RoomAvailable)
	})
}

// Delete removes the reservation. The room is released only when the deleted
// reservation still held it (pendiente or activa); deleting a finalizada or
// cancelada record must not touch a room that may belong to a newer booking.
func (s *ReservationService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if err := tx.Delete(&reservation).Error; err != nil {
			return err
		}
		if reservation.Status == models.ReservationPending || reservation.Status == models.ReservationActive {
			return setRoomStatus(tx, reservation.RoomID, models.RoomAvailable)
		}
		return nil
	})
}

// Update changes the dates and payment linkage of a pendiente or activa
// reservation, revalidating the overlap invariant excluding itself. The room
// cannot be changed; release and rebook instead.
func (s *ReservationService) Update(id uint, startDate, endDate string, paymentID *uint) (*models.Reservation, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, &ValidationError{Reason: "La fecha de fin debe ser posterior a la fecha de inicio."}
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if reservation.Status != models.ReservationPending && reservation.Status != models.ReservationActive {
			return &InvalidTransitionError{Reason: "Solo se puede modificar una reserva pendiente o activa."}
		}

		var overlapping int64
		if err := overlapQuery(tx, reservation.RoomID, start, end).
			Where("id <> ?", reservation.ID).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return &ValidationError{Reason: "La habitación ya está reservada en ese período."}
		}

		updates := map[string]interface{}{
			"start_date": start,
			"end_date":   end,
		}
		if paymentID != nil {
			if err := validatePaymentLink(tx, *paymentID, reservation.ID); err != nil {
				return err
			}
			updates["payment_id"] = *paymentID
		}
		return tx.Model(&reservation).Updates(updates).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(id)
}

// GetByID loads a reservation with its relations.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Client").Preload("Room").Preload("Payment").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// List returns reservations newest-stay-first, narrowed by filters.
func (s *ReservationService) List(filters ReservationFilters) ([]models.Reservation, error) {
	q := s.DB.Model(&models.Reservation{}).
		Preload("Client").Preload("Room").Preload("Payment").
		Order("start_date DESC")

	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.ClientID != 0 {
		q = q.Where("client_id = ?", filters.ClientID)
	}
	if filters.RoomID != 0 {
		q = q.Where("room_id = ?", filters.RoomID)
	}
	if filters.StartFrom != "" {
		from, err := utils.ParseDate(filters.StartFrom)
		if err != nil {
			return nil, &ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
		}
		q = q.Where("start_date >= ?", from)
	}
	if filters.EndUntil != "" {
		until, err := utils.ParseDate(filters.EndUntil)
		if err != nil {
			return nil, &ValidationError{Reason: "Formato de fecha inválido. Use YYYY-MM-DD"}
		}
		q = q.Where("end_date <= ?", until)
	}

	var reservations []models.Reservation
	if err := q.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// AvailableRooms computes rooms whose base state is disponible and which
// have no {pendiente, activa} reservation overlapping [start, end). An empty
// result is not an error.
func (s *ReservationService) AvailableRooms(startDate, endDate string) ([]models.Room, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	occupied := s.DB.Model(&models.Reservation{}).
		Select("room_id").
		Where("status IN ?", activeStates).
		Where("start_date < ? AND end_date > ?", end, start)

	rooms := []models.Room{}
	if err := s.DB.
		Where("status = ?", models.RoomAvailable).
		Where("id NOT IN (?)", occupied).
		Order("type").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
