package models

import "time"

// Operator is the company profile behind boats and experiences.
type Operator struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	CompanyName string `json:"companyName"`
	Description string `json:"description,omitempty"`
}

type Boat struct {
	ID         int64  `json:"id"`
	OperatorID int64  `json:"operatorId"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	Type       string `json:"type,omitempty"`
	Features   string `json:"features,omitempty"`
}

type Route struct {
	ID          int64  `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DurationMin int    `json:"duration"`
	DistanceKm  int    `json:"distance"`
}

// Schedule is a departure of a boat on a route. Seat capacity comes
// from the boat and is immutable for admission purposes.
type Schedule struct {
	ID            int64     `json:"id"`
	BoatID        int64     `json:"boatId"`
	RouteID       int64     `json:"routeId"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Price         float64   `json:"price"`
}

// ScheduleDetail is the list/detail projection with embedded boat and
// route plus remaining seats.
type ScheduleDetail struct {
	Schedule
	Boat           Boat  `json:"boat"`
	Route          Route `json:"route"`
	SeatsAvailable int   `json:"seatsAvailable"`
}

// Experience is a tour or lodge package. Capacity is nullable:
// 0 with HasCapacity=false means unbounded.
type Experience struct {
	ID          int64   `json:"id"`
	OperatorID  int64   `json:"operatorId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration,omitempty"`
	Location    string  `json:"location,omitempty"`
	Images      string  `json:"images,omitempty"`
	Capacity    int     `json:"capacity,omitempty"`
	HasCapacity bool    `json:"-"`
}
