package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"SCHEDULED", "CONFIRMED", "RESCHEDULED", "DONE", "NO_SHOW", "CANCELED"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	_, err := ParseStatus("FINISHED")
	require.Error(t, err)
	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_status", code)
}

func TestCanTransitionPermissive(t *testing.T) {
	all := []Status{StatusScheduled, StatusConfirmed, StatusRescheduled, StatusDone, StatusNoShow, StatusCanceled}

	// Hoje todo par de status conhecidos é alcançável por ação explícita.
	for _, from := range all {
		for _, to := range all {
			assert.NoError(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.Error(t, CanTransition(StatusScheduled, "PENDING"))
	assert.Error(t, CanTransition("UNKNOWN", StatusDone))
}

func TestCanToggleCancel(t *testing.T) {
	assert.NoError(t, CanToggleCancel(StatusScheduled))
	assert.NoError(t, CanToggleCancel(StatusCanceled))

	for _, s := range []Status{StatusConfirmed, StatusRescheduled, StatusDone, StatusNoShow} {
		assert.Error(t, CanToggleCancel(s), "%s", s)
	}
}

func TestTransitionSideEffects(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Transition(ap, StatusDone, now))
	assert.Equal(t, "DONE", ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
	assert.Nil(t, ap.CanceledAt)

	ap = &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Transition(ap, StatusCanceled, now))
	assert.Equal(t, "CANCELED", ap.Status)
	require.NotNil(t, ap.CanceledAt)
	assert.Nil(t, ap.CompletedAt)
}

func TestToggleCancelRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}

	got, err := ToggleCancel(ap, now)
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, got)
	assert.Equal(t, "CANCELED", ap.Status)
	require.NotNil(t, ap.CanceledAt)

	// Reativar volta exatamente para SCHEDULED, mesmo que o
	// agendamento tenha passado por CONFIRMED antes de cancelar.
	got, err = ToggleCancel(ap, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, got)
	assert.Equal(t, "SCHEDULED", ap.Status)
	assert.Nil(t, ap.CanceledAt)

	ap = &models.Appointment{Status: string(StatusDone)}
	_, err = ToggleCancel(ap, now)
	require.Error(t, err)
	assert.Equal(t, "DONE", ap.Status)
}
