package services

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/selvawasi/backend/internal/cache"
	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/google/uuid"
)

const (
	msgScheduleFull   = "Esta salida ya no tiene asientos disponibles."
	msgExperienceFull = "Esta experiencia ya no tiene cupos disponibles."
)

// BookingService owns admission (capacity guard) and the booking
// ledger lifecycle.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// Create admits and persists one booking. The capacity check and the
// insert run inside a single transaction; the FOR UPDATE lock on the
// bookable unit's row closes the check-then-act gap, so two concurrent
// requests cannot both pass the count.
func (s BookingService) Create(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	if in.UserID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "userId", Msg: "id de usuario requerido"}
	}
	if in.ScheduleID > 0 && in.ExperienceID > 0 {
		return models.Booking{}, domain.ValidationError{Field: "scheduleId", Msg: "indique horario o experiencia, no ambos"}
	}
	if in.ScheduleID <= 0 && in.ExperienceID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "scheduleId", Msg: "se requiere horario o experiencia"}
	}

	status := domain.StatusPending
	if strings.TrimSpace(in.Status) != "" {
		parsed, err := domain.ParseBookingStatus(in.Status)
		if err != nil {
			return models.Booking{}, err
		}
		status = parsed
	}

	repo := s.bookings()

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	seat := strings.TrimSpace(in.SeatNumber)

	if in.ScheduleID > 0 {
		capacity, err := repo.LockScheduleCapacity(tx, in.ScheduleID)
		if err != nil {
			return models.Booking{}, err
		}
		occupied, err := repo.CountConfirmedSchedule(tx, in.ScheduleID)
		if err != nil {
			return models.Booking{}, err
		}
		// capacity 0 always rejects
		if occupied >= capacity {
			return models.Booking{}, domain.CapacityError{Unit: "schedule", Msg: msgScheduleFull}
		}
		if seat == "" {
			seat = strconv.Itoa(occupied + 1)
		}
	} else {
		capacity, limited, err := repo.LockExperienceCapacity(tx, in.ExperienceID)
		if err != nil {
			return models.Booking{}, err
		}
		if limited {
			occupied, err := repo.CountConfirmedExperience(tx, in.ExperienceID)
			if err != nil {
				return models.Booking{}, err
			}
			if occupied >= capacity {
				return models.Booking{}, domain.CapacityError{Unit: "experience", Msg: msgExperienceFull}
			}
		}
	}

	booking := models.Booking{
		Code:               uuid.NewString(),
		UserID:             in.UserID,
		ScheduleID:         in.ScheduleID,
		ExperienceID:       in.ExperienceID,
		Status:             string(status),
		TotalPrice:         in.TotalPrice,
		SeatNumber:         seat,
		PassengerName:      strings.TrimSpace(in.PassengerName),
		PassengerDocType:   strings.TrimSpace(in.PassengerDocType),
		PassengerDocNumber: strings.TrimSpace(in.PassengerDocNumber),
	}

	id, err := repo.Insert(tx, booking)
	if err != nil {
		return models.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	cache.InvalidateSchedule(ctx, in.ScheduleID)

	return repo.GetByID(id)
}

// SeatsAvailable reports remaining seats for a schedule, served from
// the cache when warm.
func (s BookingService) SeatsAvailable(ctx context.Context, scheduleID int64, capacity int) (int, error) {
	if seats, ok := cache.GetSeatsAvailable(ctx, scheduleID); ok {
		return seats, nil
	}
	occupied, err := s.bookings().ConfirmedForSchedule(scheduleID)
	if err != nil {
		return 0, err
	}
	seats := capacity - occupied
	if seats < 0 {
		seats = 0
	}
	cache.SetSeatsAvailable(ctx, scheduleID, seats)
	return seats, nil
}

func (s BookingService) List() ([]models.Booking, error) {
	return s.bookings().List()
}

func (s BookingService) ListByUser(userID int64) ([]models.Booking, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "userId", Msg: "id de usuario requerido"}
	}
	return s.bookings().ListByUser(userID)
}

func (s BookingService) GetByID(id int64) (models.Booking, error) {
	return s.bookings().GetByID(id)
}

func (s BookingService) GetByCode(code string) (models.Booking, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Booking{}, domain.ValidationError{Field: "code", Msg: "código requerido"}
	}
	return s.bookings().GetByCode(code)
}

func (s BookingService) GetDetail(id int64) (models.BookingDetail, error) {
	return s.bookings().GetDetail(id)
}

// UpdateStatus applies an FSM-validated transition. Repeating a
// terminal status is accepted and does nothing, keeping the call
// idempotent.
func (s BookingService) UpdateStatus(ctx context.Context, id int64, raw string) (models.Booking, error) {
	next, err := domain.ParseBookingStatus(raw)
	if err != nil {
		return models.Booking{}, err
	}

	repo := s.bookings()
	current, err := repo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}

	from := domain.BookingStatus(current.Status)
	if from == next {
		return current, nil
	}
	if !domain.CanTransition(from, next) {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      "transición de estado no permitida: " + current.Status + " -> " + raw,
		}
	}

	if err := repo.UpdateStatus(id, string(next)); err != nil {
		return models.Booking{}, err
	}
	cache.InvalidateSchedule(ctx, current.ScheduleID)
	return repo.GetByID(id)
}

func (s BookingService) Delete(ctx context.Context, id int64) error {
	current, err := s.bookings().GetByID(id)
	if err != nil {
		return err
	}
	if err := s.bookings().Delete(id); err != nil {
		return err
	}
	cache.InvalidateSchedule(ctx, current.ScheduleID)
	return nil
}
