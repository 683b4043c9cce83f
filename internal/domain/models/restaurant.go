package models

import "time"

type Restaurant struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
}

type Dish struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
}

type Review struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	UserID       int64     `json:"userId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Reservation is a table request against a restaurant. It is born
// PENDING_APPROVAL and decided by the owner or an admin.
type Reservation struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	UserID        int64     `json:"userId"`
	RestaurantID  int64     `json:"restaurantId"`
	Pax           int       `json:"pax"`
	RequestedDate time.Time `json:"requestedDate"`
	OperatorNote  string    `json:"operatorNote,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
