package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "CONFIRMED", "CANCELLED"} {
		got, err := ParseBookingStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, BookingStatus(raw), got)
	}

	_, err := ParseBookingStatus("APPROVED")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Lowercase is not normalized; clients send canonical values.
	_, err = ParseBookingStatus("pending")
	assert.Error(t, err)
}

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		// Same-state updates stay idempotent, even on terminal states.
		{StatusPending, StatusPending, true},
		{StatusConfirmed, StatusConfirmed, true},
		{StatusCancelled, StatusCancelled, true},
	}
	for _, c := range cases {
		assert.Equalf(t, c.allowed, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestParseReservationStatusOnlyDecisions(t *testing.T) {
	for _, raw := range []string{"CONFIRMED", "REJECTED"} {
		got, err := ParseReservationStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, ReservationStatus(raw), got)
	}
	// The initial state is not a decision an operator can take.
	_, err := ParseReservationStatus("PENDING_APPROVAL")
	assert.True(t, IsValidation(err))
}
