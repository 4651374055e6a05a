package services

import (
	"errors"

	"hostal-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if !models.ValidRoomStatus(room.Status) {
		return validationf("Estado de habitación inválido: %q.", room.Status)
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// List returns rooms ordered by type; search matches tipo or estado.
func (s *RoomService) List(search string) ([]models.Room, error) {
	q := s.DB.Model(&models.Room{}).Order("type")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("type LIKE ? OR status LIKE ?", like, like)
	}
	rooms := []models.Room{}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) Update(id uint, updated models.Room) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated.Status != "" && !models.ValidRoomStatus(updated.Status) {
		return nil, validationf("Estado de habitación inválido: %q.", updated.Status)
	}
	updates := map[string]interface{}{
		"type":  updated.Type,
		"price": updated.Price,
	}
	if updated.Status != "" {
		updates["status"] = updated.Status
	}
	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, err
	}
	return room, nil
}

// Delete refuses while any pendiente or activa reservation references the
// room.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		var live int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ? AND status IN ?", id, activeStates).
			Count(&live).Error; err != nil {
			return err
		}
		if live > 0 {
			return &ConflictError{Reason: "No se puede eliminar la habitación. Tiene reservas activas o pendientes."}
		}
		return tx.Delete(&room).Error
	})
}
