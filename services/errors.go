package services

import (
	"errors"
	"fmt"
)

// Not-found sentinels, matched with errors.Is in the controllers.
var (
	ErrClientNotFound      = errors.New("cliente no encontrado")
	ErrRoomNotFound        = errors.New("habitación no encontrada")
	ErrPaymentNotFound     = errors.New("pago no encontrado")
	ErrReservationNotFound = errors.New("reserva no encontrada")
	ErrReportNotFound      = errors.New("reporte no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
)

// ValidationError covers malformed input, uniqueness conflicts and business
// rule violations (dates, availability, overlap). The Reason is shown to the
// caller verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError rejects a state change requested on a reservation
// whose current state does not allow it. No state is mutated.
type InvalidTransitionError struct {
	Reason string
}

func (e *InvalidTransitionError) Error() string { return e.Reason }

// ConflictError blocks a deletion while dependent records are still live.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }
