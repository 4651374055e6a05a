package services

import (
	"errors"
	"testing"

	"hostal-backend/models"
)

func TestRoomCreateDefaultsAndValidation(t *testing.T) {
	db := setupDB(t)
	svc := NewRoomService(db)

	room := &models.Room{Type: "Individual", Price: 50.00}
	if err := svc.Create(room); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if room.Status != models.RoomAvailable {
		t.Fatalf("status = %q, want disponible", room.Status)
	}

	var vErr *ValidationError
	err := svc.Create(&models.Room{Type: "Doble", Status: "libre", Price: 80.00})
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestRoomUpdate(t *testing.T) {
	db := setupDB(t)
	svc := NewRoomService(db)
	room := mustRoom(t, db, "Doble", models.RoomAvailable, 80.00)

	updated, err := svc.Update(room.ID, models.Room{Type: "Doble Superior", Price: 95.00, Status: models.RoomMaintenance})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Type != "Doble Superior" || updated.Status != models.RoomMaintenance {
		t.Fatalf("updated = %+v", updated)
	}

	// empty status leaves the current one alone
	updated, err = svc.Update(room.ID, models.Room{Type: "Doble Superior", Price: 99.00})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := roomStatus(t, db, room.ID); got != models.RoomMaintenance {
		t.Fatalf("status = %q, want mantenimiento untouched", got)
	}

	var vErr *ValidationError
	if _, err := svc.Update(room.ID, models.Room{Type: "Doble", Price: 80.00, Status: "rota"}); !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	if _, err := svc.Update(9999, models.Room{Type: "Suite", Price: 150.00}); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestRoomDeleteBlockedByLiveReservations(t *testing.T) {
	db := setupDB(t)
	svc := NewRoomService(db)
	reservations := NewReservationService(db)

	client := mustClient(t, db, "Ana", "0912345678", "ana@example.com")
	room := mustRoom(t, db, "Suite", models.RoomAvailable, 150.00)

	reservation, err := reservations.Create(client.ID, room.ID, day(5), day(10), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Delete(room.ID)
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if _, err := svc.GetByID(room.ID); err != nil {
		t.Fatalf("room vanished after refused delete: %v", err)
	}

	// once the stay finishes the room can go
	if err := reservations.CheckIn(reservation.ID); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if err := reservations.CheckOut(reservation.ID); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if err := svc.Delete(room.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("room still readable after delete: %v", err)
	}
}

func TestRoomSearch(t *testing.T) {
	db := setupDB(t)
	svc := NewRoomService(db)

	mustRoom(t, db, "Suite", models.RoomAvailable, 150.00)
	mustRoom(t, db, "Doble", models.RoomMaintenance, 80.00)

	rooms, err := svc.List("mantenimiento")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Type != "Doble" {
		t.Fatalf("search returned %+v", rooms)
	}
}
