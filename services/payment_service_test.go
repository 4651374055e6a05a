package services

import (
	"errors"
	"testing"

	"hostal-backend/models"
)

func TestPaymentCreateDefaults(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db)

	payment, err := svc.Create(150.00, "", "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if payment.Method != models.PaymentCash {
		t.Fatalf("method = %q, want Efectivo", payment.Method)
	}
	if payment.Status != models.PaymentSuccessful {
		t.Fatalf("status = %q, want exitoso", payment.Status)
	}
	if payment.Date.IsZero() {
		t.Fatal("date not assigned")
	}
}

func TestPaymentCreateValidation(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db)

	var vErr *ValidationError
	if _, err := svc.Create(10.00, "Cheque", "", nil); !errors.As(err, &vErr) {
		t.Fatalf("bad method: err = %v, want ValidationError", err)
	}
	if _, err := svc.Create(10.00, "", "devuelto", nil); !errors.As(err, &vErr) {
		t.Fatalf("bad status: err = %v, want ValidationError", err)
	}
}

func TestPaymentLinksReservation(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db)
	reservations := NewReservationService(db)

	client := mustClient(t, db, "Ana", "0912345678", "ana@example.com")
	room := mustRoom(t, db, "Suite", models.RoomAvailable, 150.00)
	reservation, err := reservations.Create(client.ID, room.ID, day(5), day(10), nil)
	if err != nil {
		t.Fatalf("Create reservation: %v", err)
	}

	payment, err := svc.Create(150.00, models.PaymentCard, models.PaymentSuccessful, &reservation.ID)
	if err != nil {
		t.Fatalf("Create payment: %v", err)
	}
	if payment.ReservationID == nil || *payment.ReservationID != reservation.ID {
		t.Fatalf("reverse reference not filled: %+v", payment)
	}

	linked, err := reservations.GetByID(reservation.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if linked.PaymentID == nil || *linked.PaymentID != payment.ID {
		t.Fatalf("reservation not linked: %+v", linked)
	}

	// the roundtrip survives a fresh read
	reloaded, err := svc.GetByID(payment.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if reloaded.ReservationID == nil || *reloaded.ReservationID != reservation.ID {
		t.Fatalf("reverse reference lost on reload: %+v", reloaded)
	}
}

func TestPaymentLinkBestEffort(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db)
	reservations := NewReservationService(db)

	client := mustClient(t, db, "Ana", "0912345678", "ana@example.com")
	room := mustRoom(t, db, "Suite", models.RoomAvailable, 150.00)
	reservation, err := reservations.Create(client.ID, room.ID, day(5), day(10), nil)
	if err != nil {
		t.Fatalf("Create reservation: %v", err)
	}

	// unknown reservation: payment persists, link silently skipped
	unknown := uint(9999)
	orphan, err := svc.Create(20.00, "", "", &unknown)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if orphan.ReservationID != nil {
		t.Fatalf("orphan payment got a reservation: %+v", orphan)
	}

	// first link wins, second attempt is a no-op
	first, err := svc.Create(150.00, "", "", &reservation.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(150.00, "", "", &reservation.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ReservationID != nil {
		t.Fatalf("second payment stole the link: %+v", second)
	}
	linked, _ := reservations.GetByID(reservation.ID)
	if linked.PaymentID == nil || *linked.PaymentID != first.ID {
		t.Fatalf("reservation links %v, want %d", linked.PaymentID, first.ID)
	}
}

func TestPaymentUpdate(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db)

	payment, err := svc.Create(100.00, models.PaymentCash, models.PaymentPending, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	created := payment.Date

	updated, err := svc.Update(payment.ID, 120.00, models.PaymentTransfer, models.PaymentSuccessful)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount != 120.00 || updated.Method != models.PaymentTransfer || updated.Status != models.PaymentSuccessful {
		t.Fatalf("updated = %+v", updated)
	}

	reloaded, err := svc.GetByID(payment.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reloaded.Date.Equal(created) {
		t.Fatalf("date mutated: %v -> %v", created, reloaded.Date)
	}

	var vErr *ValidationError
	if _, err := svc.Update(payment.ID, 120.00, "Cheque", ""); !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestPaymentDeleteDetachesReservation(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db)
	reservations := NewReservationService(db)

	client := mustClient(t, db, "Ana", "0912345678", "ana@example.com")
	room := mustRoom(t, db, "Suite", models.RoomAvailable, 150.00)
	reservation, err := reservations.Create(client.ID, room.ID, day(5), day(10), nil)
	if err != nil {
		t.Fatalf("Create reservation: %v", err)
	}
	payment, err := svc.Create(150.00, "", "", &reservation.ID)
	if err != nil {
		t.Fatalf("Create payment: %v", err)
	}

	if err := svc.Delete(payment.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(payment.ID); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("payment still readable: %v", err)
	}
	detached, err := reservations.GetByID(reservation.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detached.PaymentID != nil {
		t.Fatalf("reservation still references deleted payment: %+v", detached)
	}
}
