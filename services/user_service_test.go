package services

import (
	"errors"
	"testing"

	"hostal-backend/models"
)

func TestUserCreate(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db, NewAuthService(db))

	user, err := svc.Create("recep1", "recep1@hostal.local", "secreto123", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Role != models.RoleReceptionist {
		t.Fatalf("role = %q, want recepcionista", user.Role)
	}
	if !user.IsActive {
		t.Fatal("new user not active")
	}
	if user.Password == "secreto123" {
		t.Fatal("password stored in clear")
	}

	var vErr *ValidationError
	if _, err := svc.Create("recep1", "otro@hostal.local", "secreto123", ""); !errors.As(err, &vErr) {
		t.Fatalf("duplicate username: err = %v, want ValidationError", err)
	}
	if _, err := svc.Create("recep2", "recep2@hostal.local", "secreto123", "invitado"); !errors.As(err, &vErr) {
		t.Fatalf("bad role: err = %v, want ValidationError", err)
	}
}

func TestUserUpdate(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db, NewAuthService(db))

	user := mustUser(t, svc, "recep1", models.RoleReceptionist)

	inactive := false
	updated, err := svc.Update(user.ID, "nuevo@hostal.local", "", models.RoleManager, &inactive)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Email != "nuevo@hostal.local" || updated.Role != models.RoleManager {
		t.Fatalf("updated = %+v", updated)
	}

	reloaded, err := svc.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if reloaded.IsActive {
		t.Fatal("is_active not persisted")
	}

	var vErr *ValidationError
	if _, err := svc.Update(user.ID, "", "", "portero", nil); !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, err := svc.Update(9999, "x@hostal.local", "", "", nil); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserDelete(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db, NewAuthService(db))

	user := mustUser(t, svc, "recep1", models.RoleReceptionist)
	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("user still readable: %v", err)
	}
	if err := svc.Delete(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
