package domain

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	switch BookingStatus(raw) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(raw), nil
	default:
		return "", ValidationError{Field: "status", Msg: "estado desconocido: " + raw}
	}
}

// transitions lists the legal moves. Terminal states only allow the
// idempotent same-state update.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {},
	StatusCancelled: {},
}

// CanTransition reports whether moving from -> to is allowed.
// A same-state update is always allowed so repeated confirmations
// stay idempotent.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether a status accepts no further changes.
func (s BookingStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// ReservationStatus mirrors the restaurant reservation lifecycle.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING_APPROVAL"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationRejected  ReservationStatus = "REJECTED"
)

// ParseReservationStatus accepts only the two decisions an operator can take.
func ParseReservationStatus(raw string) (ReservationStatus, error) {
	switch ReservationStatus(raw) {
	case ReservationConfirmed, ReservationRejected:
		return ReservationStatus(raw), nil
	default:
		return "", ValidationError{Field: "status", Msg: "estado debe ser CONFIRMED o REJECTED"}
	}
}
