package appointment

import "github.com/bellestudio/salon-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "SCHEDULED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusRescheduled Status = "RESCHEDULED"
	StatusDone        Status = "DONE"
	StatusNoShow      Status = "NO_SHOW"
	StatusCanceled    Status = "CANCELED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusRescheduled,
		StatusDone, StatusNoShow, StatusCanceled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Transition rules
// ===============================

// CanTransition é o ponto único de decisão do grafo de status.
// Hoje qualquer status alcança qualquer outro por ação explícita
// (comportamento herdado do sistema original); um grafo restrito
// futuro troca apenas esta função.
func CanTransition(from, to Status) error {
	if _, err := ParseStatus(string(from)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(to)); err != nil {
		return err
	}
	return nil
}

// CanToggleCancel valida o toggle dedicado cancelar/reativar:
// só alterna entre SCHEDULED e CANCELED.
func CanToggleCancel(current Status) error {
	if current != StatusScheduled && current != StatusCanceled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
