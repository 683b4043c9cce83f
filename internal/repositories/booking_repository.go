package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	intdb "github.com/selvawasi/backend/internal/db"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

// BookingRepository is the booking ledger. The capacity-sensitive
// operations take an explicit *sql.Tx so the guard check and the insert
// share one atomic scope.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// LockScheduleCapacity reads the boat capacity behind a schedule while
// taking a row lock, serializing concurrent admissions for that boat.
func (r BookingRepository) LockScheduleCapacity(tx *sql.Tx, scheduleID int64) (int, error) {
	var capacity int
	err := tx.QueryRow(`
		SELECT b.capacity
		FROM schedules s
		JOIN boats b ON b.id = s.boat_id
		WHERE s.id = ?
		FOR UPDATE
	`, scheduleID).Scan(&capacity)
	if err == sql.ErrNoRows {
		return 0, domain.NotFoundError{Resource: "schedule", Err: err}
	}
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return capacity, nil
}

// LockExperienceCapacity reads (and locks) an experience's capacity.
// ok=false means the experience has no capacity limit.
func (r BookingRepository) LockExperienceCapacity(tx *sql.Tx, experienceID int64) (capacity int, ok bool, err error) {
	var c sql.NullInt64
	err = tx.QueryRow(`
		SELECT capacity FROM experiences WHERE id = ? FOR UPDATE
	`, experienceID).Scan(&c)
	if err == sql.ErrNoRows {
		return 0, false, domain.NotFoundError{Resource: "experience", Err: err}
	}
	if err != nil {
		return 0, false, domain.InternalError{Err: err}
	}
	return int(c.Int64), c.Valid, nil
}

// CountConfirmedSchedule counts CONFIRMED ledger rows for a schedule
// inside the admission transaction.
func (r BookingRepository) CountConfirmedSchedule(tx *sql.Tx, scheduleID int64) (int, error) {
	var n int
	err := tx.QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE schedule_id = ? AND status = 'CONFIRMED'
	`, scheduleID).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// CountConfirmedExperience is the experience-side twin of
// CountConfirmedSchedule.
func (r BookingRepository) CountConfirmedExperience(tx *sql.Tx, experienceID int64) (int, error) {
	var n int
	err := tx.QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE experience_id = ? AND status = 'CONFIRMED'
	`, experienceID).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// ConfirmedForSchedule is the unlocked read used by availability views.
func (r BookingRepository) ConfirmedForSchedule(scheduleID int64) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE schedule_id = ? AND status = 'CONFIRMED'
	`, scheduleID).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// Insert writes a new ledger row within the admission transaction.
func (r BookingRepository) Insert(tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO bookings
			(code, user_id, schedule_id, experience_id, status, total_price,
			 seat_number, passenger_name, passenger_doc_type, passenger_doc_number, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, b.Code, b.UserID, intdb.NullID(b.ScheduleID), intdb.NullID(b.ExperienceID),
		b.Status, b.TotalPrice, b.SeatNumber, b.PassengerName, b.PassengerDocType, b.PassengerDocNumber)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

const bookingSelect = `
	SELECT id, code, user_id, COALESCE(schedule_id, 0), COALESCE(experience_id, 0),
	       status, total_price, seat_number, passenger_name,
	       passenger_doc_type, passenger_doc_number, created_at
	FROM bookings`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.Code, &b.UserID, &b.ScheduleID, &b.ExperienceID,
		&b.Status, &b.TotalPrice, &b.SeatNumber, &b.PassengerName,
		&b.PassengerDocType, &b.PassengerDocNumber, &b.CreatedAt)
	return b, err
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(bookingSelect+` WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r BookingRepository) GetByCode(code string) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(bookingSelect+` WHERE code = ?`, code))
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r BookingRepository) collect(rows *sql.Rows) ([]models.Booking, error) {
	defer rows.Close()
	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) List() ([]models.Booking, error) {
	rows, err := r.db().Query(bookingSelect + ` ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return r.collect(rows)
}

// ListByUser returns only the given user's bookings, newest first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(bookingSelect+` WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return r.collect(rows)
}

func (r BookingRepository) UpdateStatus(id int64, status string) error {
	if _, err := r.db().Exec(`UPDATE bookings SET status = ? WHERE id = ?`, status, id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r BookingRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// GetDetail resolves the catalog context an e-ticket or detail view
// renders with the booking.
func (r BookingRepository) GetDetail(id int64) (models.BookingDetail, error) {
	var (
		d     models.BookingDetail
		email sql.NullString
		orig  sql.NullString
		dest  sql.NullString
		boat  sql.NullString
		dep   sql.NullTime
		exp   sql.NullString
	)
	err := r.db().QueryRow(`
		SELECT bk.id, bk.code, bk.user_id, COALESCE(bk.schedule_id, 0), COALESCE(bk.experience_id, 0),
		       bk.status, bk.total_price, bk.seat_number, bk.passenger_name,
		       bk.passenger_doc_type, bk.passenger_doc_number, bk.created_at,
		       u.email, r.origin, r.destination, bo.name, s.departure_time, e.title
		FROM bookings bk
		JOIN users u ON u.id = bk.user_id
		LEFT JOIN schedules s ON s.id = bk.schedule_id
		LEFT JOIN routes r ON r.id = s.route_id
		LEFT JOIN boats bo ON bo.id = s.boat_id
		LEFT JOIN experiences e ON e.id = bk.experience_id
		WHERE bk.id = ?
	`, id).Scan(&d.ID, &d.Code, &d.UserID, &d.ScheduleID, &d.ExperienceID,
		&d.Status, &d.TotalPrice, &d.SeatNumber, &d.PassengerName,
		&d.PassengerDocType, &d.PassengerDocNumber, &d.CreatedAt,
		&email, &orig, &dest, &boat, &dep, &exp)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return d, domain.InternalError{Err: err}
	}
	d.UserEmail = email.String
	d.Origin = orig.String
	d.Destination = dest.String
	d.BoatName = boat.String
	d.Departure = dep.Time
	d.Experience = exp.String
	return d, nil
}
