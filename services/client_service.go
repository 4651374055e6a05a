package services

import (
	"errors"

	"hostal-backend/models"

	"gorm.io/gorm"
)

type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

// checkUniqueness rejects a documento or email already taken by another
// client. excludeID skips the client being updated.
func (s *ClientService) checkUniqueness(tx *gorm.DB, document, email string, excludeID uint) error {
	q := tx.Model(&models.Client{}).Where("document = ?", document)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Reason: "Ya existe un cliente con ese documento."}
	}

	q = tx.Model(&models.Client{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Reason: "Ya existe un cliente con ese email."}
	}
	return nil
}

func (s *ClientService) Create(client *models.Client) error {
	if err := s.checkUniqueness(s.DB, client.Document, client.Email, 0); err != nil {
		return err
	}
	if err := s.DB.Create(client).Error; err != nil {
		// the unique indexes still back the pre-check under concurrency
		if isDuplicateErr(err) {
			return &ValidationError{Reason: "Ya existe un cliente con ese documento o email."}
		}
		return err
	}
	return nil
}

func (s *ClientService) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// List returns clients ordered by name; search matches nombre, documento,
// email or teléfono.
func (s *ClientService) List(search string) ([]models.Client, error) {
	q := s.DB.Model(&models.Client{}).Order("name")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR document LIKE ? OR email LIKE ? OR phone LIKE ?",
			like, like, like, like)
	}
	clients := []models.Client{}
	if err := q.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientService) Update(id uint, updated models.Client) (*models.Client, error) {
	client, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(s.DB, updated.Document, updated.Email, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":     updated.Name,
		"document": updated.Document,
		"email":    updated.Email,
		"phone":    updated.Phone,
	}
	if err := s.DB.Model(client).Updates(updates).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, &ValidationError{Reason: "Ya existe un cliente con ese documento o email."}
		}
		return nil, err
	}
	return client, nil
}

// Delete removes the client and every reservation referencing it, releasing
// the rooms still held by pendiente or activa reservations.
func (s *ClientService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		var reservations []models.Reservation
		if err := lockForUpdate(tx).
			Where("client_id = ?", id).
			Find(&reservations).Error; err != nil {
			return err
		}
		for _, r := range reservations {
			if r.Status == models.ReservationPending || r.Status == models.ReservationActive {
				if err := setRoomStatus(tx, r.RoomID, models.RoomAvailable); err != nil {
					return err
				}
			}
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
}
