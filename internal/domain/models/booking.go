package models

import "time"

// Booking is one row of the booking ledger. Exactly one of ScheduleID
// or ExperienceID is set.
type Booking struct {
	ID                 int64     `json:"id"`
	Code               string    `json:"code"`
	UserID             int64     `json:"userId"`
	ScheduleID         int64     `json:"scheduleId,omitempty"`
	ExperienceID       int64     `json:"experienceId,omitempty"`
	Status             string    `json:"status"`
	TotalPrice         float64   `json:"totalPrice"`
	SeatNumber         string    `json:"seatNumber,omitempty"`
	PassengerName      string    `json:"passengerName,omitempty"`
	PassengerDocType   string    `json:"passengerDocType,omitempty"`
	PassengerDocNumber string    `json:"passengerDocNumber,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// BookingInput is what callers provide to open a ledger entry.
type BookingInput struct {
	UserID             int64
	ScheduleID         int64
	ExperienceID       int64
	Status             string
	TotalPrice         float64
	SeatNumber         string
	PassengerName      string
	PassengerDocType   string
	PassengerDocNumber string
}

// BookingDetail embeds the catalog context clients render alongside a
// booking.
type BookingDetail struct {
	Booking
	UserEmail   string    `json:"userEmail,omitempty"`
	Origin      string    `json:"origin,omitempty"`
	Destination string    `json:"destination,omitempty"`
	BoatName    string    `json:"boatName,omitempty"`
	Departure   time.Time `json:"departureTime,omitzero"`
	Experience  string    `json:"experienceTitle,omitempty"`
}
