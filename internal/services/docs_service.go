package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/repositories"
	"github.com/selvawasi/backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking e-tickets as PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
	Loader      func(int64) (models.BookingDetail, error)
}

func (s DocsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	if s.DB != nil {
		return repositories.BookingRepository{DB: s.DB}
	}
	return repositories.BookingRepository{DB: intconfig.DB}
}

// GenerateTicket returns the PDF bytes and a download filename.
func (s DocsService) GenerateTicket(bookingID int64) ([]byte, string, error) {
	detail, err := s.loadDetail(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildTicketPDF(detail)
}

func (s DocsService) loadDetail(bookingID int64) (models.BookingDetail, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.bookings().GetDetail(bookingID)
}

func buildTicketPDF(d models.BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket SelvaWasi", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET SELVAWASI")
	pdf.Ln(12)

	trip := d.Experience
	if trip == "" {
		trip = fmt.Sprintf("%s -> %s (%s)", safe(d.Origin, "-"), safe(d.Destination, "-"), safe(d.BoatName, "-"))
	}
	departure := "-"
	if !d.Departure.IsZero() {
		departure = utils.FormatDateTime(d.Departure)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Pasajero   : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Documento  : %s %s", safe(d.PassengerDocType, "-"), safe(d.PassengerDocNumber, "-")),
		fmt.Sprintf("Viaje      : %s", trip),
		fmt.Sprintf("Salida     : %s", departure),
		fmt.Sprintf("Asiento    : %s", safe(d.SeatNumber, "-")),
		fmt.Sprintf("Estado     : %s", safe(d.Status, "-")),
		fmt.Sprintf("Total      : %s", utils.FormatSoles(d.TotalPrice)),
		fmt.Sprintf("Reserva    : %s", safe(d.Code, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Nota: este e-ticket es válido para 1 pasajero. Preséntelo al embarcar.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ticket-%s.pdf", safeFilenamePart(d.Code))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "booking"
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "-")
	return replacer.Replace(s)
}
