package schedule

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Blocking indica se o status ocupa a agenda (participa da
// detecção de conflito).
func Blocking(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// InitialStatus aplica a política de auto-aprovação do salão.
func InitialStatus(autoApprove bool) Status {
	if autoApprove {
		return StatusConfirmed
	}
	return StatusPending
}

// ===============================
// Transitions
// ===============================

// pending -> confirmed | cancelled
// confirmed -> completed | cancelled
// cancelled e completed são terminais
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition aplica a mudança de status e carimba os instantes
// de cancelamento/conclusão.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	from := Status(ap.Status)
	if !CanTransition(from, to) {
		return httperr.ErrBusiness("invalid_transition")
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}
