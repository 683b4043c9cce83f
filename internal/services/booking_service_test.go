package services

import (
	"context"
	"errors"
	"testing"
	"time"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingColumns = []string{
	"id", "code", "user_id", "schedule_id", "experience_id",
	"status", "total_price", "seat_number", "passenger_name",
	"passenger_doc_type", "passenger_doc_number", "created_at",
}

func bookingRow(id int64, scheduleID int64, status, seat string) *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns).AddRow(
		id, "code-abc", int64(7), scheduleID, int64(0),
		status, 50.0, seat, "Tester", "DNI", "12345678", time.Now(),
	)
}

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func expectScheduleAdmission(mock sqlmock.Sqlmock, scheduleID int64, capacity, occupied int) {
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.capacity").WithArgs(scheduleID).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(capacity))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE schedule_id").WithArgs(scheduleID).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(occupied))
}

func TestCreateBookingFillsCapacityThenRejects(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	in := models.BookingInput{UserID: 7, ScheduleID: 3, Status: "CONFIRMED", TotalPrice: 50}

	// First admission: 0 of 2 seats taken, gets seat "1".
	expectScheduleAdmission(mock, 3, 2, 0)
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT id, code, user_id").WithArgs(int64(101)).
		WillReturnRows(bookingRow(101, 3, "CONFIRMED", "1"))

	first, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("first admission failed: %v", err)
	}
	if first.ID != 101 {
		t.Fatalf("unexpected booking id: %d", first.ID)
	}

	// Second admission still fits.
	expectScheduleAdmission(mock, 3, 2, 1)
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(102, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT id, code, user_id").WithArgs(int64(102)).
		WillReturnRows(bookingRow(102, 3, "CONFIRMED", "2"))

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("second admission failed: %v", err)
	}

	// Third admission finds the schedule full and must roll back.
	expectScheduleAdmission(mock, 3, 2, 2)
	mock.ExpectRollback()

	_, err = svc.Create(context.Background(), in)
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	var capErr domain.CapacityError
	if !errors.As(err, &capErr) || capErr.Msg != "Esta salida ya no tiene asientos disponibles." {
		t.Fatalf("unexpected capacity message: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingSeatAutoAssignedFromOccupancy(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectScheduleAdmission(mock, 3, 10, 4)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(sqlmock.AnyArg(), int64(7), int64(3), nil, "CONFIRMED", 50.0, "5", "", "", "").
		WillReturnResult(sqlmock.NewResult(110, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT id, code, user_id").WithArgs(int64(110)).
		WillReturnRows(bookingRow(110, 3, "CONFIRMED", "5"))

	b, err := svc.Create(context.Background(), models.BookingInput{
		UserID: 7, ScheduleID: 3, Status: "CONFIRMED", TotalPrice: 50,
	})
	if err != nil {
		t.Fatalf("admission failed: %v", err)
	}
	if b.SeatNumber != "5" {
		t.Fatalf("seat should follow occupancy, got %q", b.SeatNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRequiresExactlyOneUnit(t *testing.T) {
	svc, _, closeDB := newBookingService(t)
	defer closeDB()

	_, err := svc.Create(context.Background(), models.BookingInput{UserID: 7})
	if !domain.IsValidation(err) {
		t.Fatalf("neither unit should be rejected, got %v", err)
	}

	_, err = svc.Create(context.Background(), models.BookingInput{UserID: 7, ScheduleID: 1, ExperienceID: 2})
	if !domain.IsValidation(err) {
		t.Fatalf("both units should be rejected, got %v", err)
	}
}

func TestCreateBookingZeroCapacityAlwaysRejects(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectScheduleAdmission(mock, 9, 0, 0)
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), models.BookingInput{UserID: 7, ScheduleID: 9, Status: "CONFIRMED"})
	if !domain.IsCapacity(err) {
		t.Fatalf("capacity 0 must reject, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingUnknownScheduleIsNotFound(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.capacity").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), models.BookingInput{UserID: 7, ScheduleID: 404})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateBookingUnlimitedExperienceSkipsCount(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT capacity FROM experiences").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(nil))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(200, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT id, code, user_id").WithArgs(int64(200)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
			200, "code-exp", int64(7), int64(0), int64(5),
			"CONFIRMED", 120.0, "", "Tester", "DNI", "12345678", time.Now(),
		))

	b, err := svc.Create(context.Background(), models.BookingInput{
		UserID: 7, ExperienceID: 5, Status: "CONFIRMED", TotalPrice: 120,
	})
	if err != nil {
		t.Fatalf("unlimited experience must admit: %v", err)
	}
	if b.ExperienceID != 5 {
		t.Fatalf("unexpected experience id: %d", b.ExperienceID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingLimitedExperienceFull(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT capacity FROM experiences").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(8))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE experience_id").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(8))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), models.BookingInput{UserID: 7, ExperienceID: 5, Status: "CONFIRMED"})
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
}

func TestCreateBookingRejectsUnknownStatus(t *testing.T) {
	svc, _, closeDB := newBookingService(t)
	defer closeDB()

	_, err := svc.Create(context.Background(), models.BookingInput{UserID: 7, ScheduleID: 1, Status: "APPROVED"})
	if !domain.IsValidation(err) {
		t.Fatalf("unknown status should be a validation error, got %v", err)
	}
}

func TestUpdateStatusIdempotentOnSameState(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, code, user_id").WithArgs(int64(300)).
		WillReturnRows(bookingRow(300, 3, "CONFIRMED", "1"))

	b, err := svc.UpdateStatus(context.Background(), 300, "CONFIRMED")
	if err != nil {
		t.Fatalf("repeating the same status must succeed: %v", err)
	}
	if b.Status != "CONFIRMED" {
		t.Fatalf("status changed unexpectedly: %s", b.Status)
	}
	// No UPDATE statement was expected: the transition is a no-op.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, code, user_id").WithArgs(int64(301)).
		WillReturnRows(bookingRow(301, 3, "CANCELLED", "1"))

	_, err := svc.UpdateStatus(context.Background(), 301, "CONFIRMED")
	if !domain.IsConflict(err) {
		t.Fatalf("cancelled booking must not be confirmable, got %v", err)
	}
}

func TestUpdateStatusAppliesLegalTransition(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, code, user_id").WithArgs(int64(302)).
		WillReturnRows(bookingRow(302, 3, "PENDING", "1"))
	mock.ExpectExec("UPDATE bookings SET status").WithArgs("CONFIRMED", int64(302)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, code, user_id").WithArgs(int64(302)).
		WillReturnRows(bookingRow(302, 3, "CONFIRMED", "1"))

	b, err := svc.UpdateStatus(context.Background(), 302, "CONFIRMED")
	if err != nil {
		t.Fatalf("pending -> confirmed must succeed: %v", err)
	}
	if b.Status != "CONFIRMED" {
		t.Fatalf("status not updated: %s", b.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeatsAvailableNeverNegative(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE schedule_id").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(12))

	seats, err := svc.SeatsAvailable(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("SeatsAvailable error: %v", err)
	}
	if seats != 0 {
		t.Fatalf("overbooked schedule must report 0 seats, got %d", seats)
	}
}
