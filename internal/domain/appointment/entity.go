package appointment

import (
	"time"

	"github.com/bellestudio/salon-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Transition(ap *models.Appointment, target Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), target); err != nil {
		return err
	}

	ap.Status = string(target)

	switch target {
	case StatusDone:
		ap.CompletedAt = &now
	case StatusCanceled:
		ap.CanceledAt = &now
	default:
		ap.CompletedAt = nil
		ap.CanceledAt = nil
	}

	return nil
}

// ToggleCancel alterna CANCELED <-> SCHEDULED e devolve o
// status resultante.
func ToggleCancel(ap *models.Appointment, now time.Time) (Status, error) {
	if err := CanToggleCancel(Status(ap.Status)); err != nil {
		return "", err
	}

	if Status(ap.Status) == StatusCanceled {
		ap.Status = string(StatusScheduled)
		ap.CanceledAt = nil
		return StatusScheduled, nil
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	return StatusCanceled, nil
}
