package services

import (
	"database/sql"
	"strings"
	"time"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/google/uuid"
)

// ReservationService handles restaurant table requests.
type ReservationService struct {
	ReservationRepo repositories.ReservationRepository
	RestaurantRepo  repositories.RestaurantRepository
	DB              *sql.DB
}

func (s ReservationService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReservationService) reservations() repositories.ReservationRepository {
	if s.ReservationRepo.DB != nil {
		return s.ReservationRepo
	}
	return repositories.ReservationRepository{DB: s.db()}
}

func (s ReservationService) restaurants() repositories.RestaurantRepository {
	if s.RestaurantRepo.DB != nil {
		return s.RestaurantRepo
	}
	return repositories.RestaurantRepository{DB: s.db()}
}

type ReservationInput struct {
	UserID        int64
	RestaurantID  int64
	Pax           int
	RequestedDate time.Time
	OperatorNote  string
}

// Create registers a PENDING_APPROVAL reservation after checking the
// restaurant exists.
func (s ReservationService) Create(in ReservationInput) (models.Reservation, error) {
	if in.UserID <= 0 {
		return models.Reservation{}, domain.ValidationError{Field: "userId", Msg: "id de usuario requerido"}
	}
	if in.Pax <= 0 {
		return models.Reservation{}, domain.ValidationError{Field: "pax", Msg: "pax debe ser mayor que 0"}
	}
	if in.RequestedDate.IsZero() {
		return models.Reservation{}, domain.ValidationError{Field: "requestedDate", Msg: "fecha requerida"}
	}
	if _, err := s.restaurants().GetByID(in.RestaurantID); err != nil {
		return models.Reservation{}, err
	}

	return s.reservations().Create(models.Reservation{
		Code:          uuid.NewString(),
		UserID:        in.UserID,
		RestaurantID:  in.RestaurantID,
		Pax:           in.Pax,
		RequestedDate: in.RequestedDate,
		OperatorNote:  strings.TrimSpace(in.OperatorNote),
		Status:        string(domain.ReservationPending),
	})
}

// ListFor scopes the listing: admins see everything, restaurant owners
// see their own restaurant's queue.
func (s ReservationService) ListFor(rc domain.RequestContext) ([]models.Reservation, error) {
	if rc.IsAdmin() {
		return s.reservations().List()
	}
	rest, err := s.restaurants().GetByOwner(rc.UserID)
	if err != nil {
		return nil, err
	}
	return s.reservations().ListByRestaurant(rest.ID)
}

// Decide moves a reservation to CONFIRMED or REJECTED. Only the owner
// of the restaurant or an admin may decide.
func (s ReservationService) Decide(rc domain.RequestContext, id int64, rawStatus string) (models.Reservation, error) {
	status, err := domain.ParseReservationStatus(rawStatus)
	if err != nil {
		return models.Reservation{}, err
	}

	rv, err := s.reservations().GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}

	if !rc.IsAdmin() {
		rest, err := s.restaurants().GetByID(rv.RestaurantID)
		if err != nil {
			return models.Reservation{}, err
		}
		if rest.UserID != rc.UserID {
			return models.Reservation{}, domain.ConflictError{Resource: "reservation", Msg: "no autorizado para decidir esta reserva"}
		}
	}

	return s.reservations().UpdateStatus(id, string(status))
}
