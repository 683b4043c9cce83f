package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	intdb "github.com/selvawasi/backend/internal/db"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

type ReservationRepository struct {
	DB *sql.DB
}

func (r ReservationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reservationSelect = `
	SELECT id, code, user_id, restaurant_id, pax, requested_date,
	       COALESCE(operator_note, ''), status, created_at
	FROM reservations`

func scanReservation(row interface{ Scan(...any) error }) (models.Reservation, error) {
	var rv models.Reservation
	err := row.Scan(&rv.ID, &rv.Code, &rv.UserID, &rv.RestaurantID, &rv.Pax,
		&rv.RequestedDate, &rv.OperatorNote, &rv.Status, &rv.CreatedAt)
	return rv, err
}

func (r ReservationRepository) Create(rv models.Reservation) (models.Reservation, error) {
	res, err := r.db().Exec(`
		INSERT INTO reservations (code, user_id, restaurant_id, pax, requested_date, operator_note, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`, rv.Code, rv.UserID, rv.RestaurantID, rv.Pax, rv.RequestedDate, intdb.NullIfEmpty(rv.OperatorNote), rv.Status)
	if err != nil {
		return models.Reservation{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r ReservationRepository) GetByID(id int64) (models.Reservation, error) {
	rv, err := scanReservation(r.db().QueryRow(reservationSelect+` WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return rv, domain.NotFoundError{Resource: "reservation", Err: err}
	}
	if err != nil {
		return rv, domain.InternalError{Err: err}
	}
	return rv, nil
}

func (r ReservationRepository) collect(rows *sql.Rows) ([]models.Reservation, error) {
	defer rows.Close()
	out := []models.Reservation{}
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r ReservationRepository) List() ([]models.Reservation, error) {
	rows, err := r.db().Query(reservationSelect + ` ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return r.collect(rows)
}

func (r ReservationRepository) ListByRestaurant(restaurantID int64) ([]models.Reservation, error) {
	rows, err := r.db().Query(reservationSelect+` WHERE restaurant_id = ? ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return r.collect(rows)
}

func (r ReservationRepository) ListRecent(limit int) ([]models.Reservation, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db().Query(reservationSelect+` ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return r.collect(rows)
}

func (r ReservationRepository) UpdateStatus(id int64, status string) (models.Reservation, error) {
	if _, err := r.db().Exec(`UPDATE reservations SET status = ? WHERE id = ?`, status, id); err != nil {
		return models.Reservation{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r ReservationRepository) CountPending() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM reservations WHERE status = 'PENDING_APPROVAL'`).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
