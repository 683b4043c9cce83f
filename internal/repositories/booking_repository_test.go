package repositories

import (
	"testing"
	"time"

	"github.com/selvawasi/backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingListByUserScopedAndOrdered(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"id", "code", "user_id", "schedule_id", "experience_id",
		"status", "total_price", "seat_number", "passenger_name",
		"passenger_doc_type", "passenger_doc_number", "created_at",
	}
	now := time.Now()
	mock.ExpectQuery("WHERE user_id = \\? ORDER BY created_at DESC").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, "b", int64(7), int64(1), int64(0), "CONFIRMED", 30.0, "2", "", "", "", now).
			AddRow(1, "a", int64(7), int64(1), int64(0), "PENDING", 30.0, "1", "", "", "", now.Add(-time.Hour)))

	repo := BookingRepository{DB: db}
	got, err := repo.ListByUser(7)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Fatalf("unexpected result order: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE id = \\?").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := BookingRepository{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingDeleteMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM bookings").WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := BookingRepository{DB: db}
	if err := repo.Delete(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
