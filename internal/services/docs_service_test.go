package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/selvawasi/backend/internal/domain/models"
)

func TestDocsServiceGenerateTicket(t *testing.T) {
	loader := func(id int64) (models.BookingDetail, error) {
		return models.BookingDetail{
			Booking: models.Booking{
				ID:                 id,
				Code:               "abc-123",
				UserID:             7,
				ScheduleID:         3,
				Status:             "CONFIRMED",
				TotalPrice:         55,
				SeatNumber:         "4",
				PassengerName:      "Tester",
				PassengerDocType:   "DNI",
				PassengerDocNumber: "12345678",
			},
			UserEmail:   "tester@example.com",
			Origin:      "Iquitos",
			Destination: "Nauta",
			BoatName:    "Río Veloz",
			Departure:   time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateTicket(1)
	if err != nil {
		t.Fatalf("GenerateTicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateTicket returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if filename != "ticket-abc-123.pdf" {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestDocsServiceFilenameSanitized(t *testing.T) {
	loader := func(id int64) (models.BookingDetail, error) {
		return models.BookingDetail{
			Booking: models.Booking{ID: id, Code: "a/b c", Status: "CONFIRMED"},
		}, nil
	}

	svc := DocsService{Loader: loader}

	_, filename, err := svc.GenerateTicket(2)
	if err != nil {
		t.Fatalf("GenerateTicket returned error: %v", err)
	}
	if filename != "ticket-a-b-c.pdf" {
		t.Fatalf("filename not sanitized: %s", filename)
	}
}
