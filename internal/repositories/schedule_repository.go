package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const scheduleDetailSelect = `
	SELECT s.id, s.boat_id, s.route_id, s.departure_time, s.arrival_time, s.price,
	       b.id, b.operator_id, b.name, b.capacity, b.type, COALESCE(b.features, ''),
	       r.id, r.origin, r.destination, r.duration_min, r.distance_km
	FROM schedules s
	JOIN boats b ON b.id = s.boat_id
	JOIN routes r ON r.id = s.route_id`

func scanScheduleDetail(row interface{ Scan(...any) error }) (models.ScheduleDetail, error) {
	var d models.ScheduleDetail
	err := row.Scan(
		&d.ID, &d.BoatID, &d.RouteID, &d.DepartureTime, &d.ArrivalTime, &d.Price,
		&d.Boat.ID, &d.Boat.OperatorID, &d.Boat.Name, &d.Boat.Capacity, &d.Boat.Type, &d.Boat.Features,
		&d.Route.ID, &d.Route.Origin, &d.Route.Destination, &d.Route.DurationMin, &d.Route.DistanceKm,
	)
	return d, err
}

// ListDetailed returns schedules with their boat and route embedded,
// the projection the catalog pages render.
func (r ScheduleRepository) ListDetailed() ([]models.ScheduleDetail, error) {
	rows, err := r.db().Query(scheduleDetailSelect + ` ORDER BY s.departure_time ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.ScheduleDetail{}
	for rows.Next() {
		d, err := scanScheduleDetail(rows)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r ScheduleRepository) GetDetail(id int64) (models.ScheduleDetail, error) {
	d, err := scanScheduleDetail(r.db().QueryRow(scheduleDetailSelect+` WHERE s.id = ?`, id))
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "schedule", Err: err}
	}
	if err != nil {
		return d, domain.InternalError{Err: err}
	}
	return d, nil
}

func (r ScheduleRepository) Create(s models.Schedule) (models.Schedule, error) {
	res, err := r.db().Exec(`
		INSERT INTO schedules (boat_id, route_id, departure_time, arrival_time, price)
		VALUES (?, ?, ?, ?, ?)
	`, s.BoatID, s.RouteID, s.DepartureTime, s.ArrivalTime, s.Price)
	if err != nil {
		return models.Schedule{}, domain.InternalError{Err: err}
	}
	s.ID, _ = res.LastInsertId()
	return s, nil
}

func (r ScheduleRepository) Update(id int64, s models.Schedule) (models.Schedule, error) {
	_, err := r.db().Exec(`
		UPDATE schedules SET boat_id = ?, route_id = ?, departure_time = ?, arrival_time = ?, price = ?
		WHERE id = ?
	`, s.BoatID, s.RouteID, s.DepartureTime, s.ArrivalTime, s.Price, id)
	if err != nil {
		return models.Schedule{}, domain.InternalError{Err: err}
	}
	d, err := r.GetDetail(id)
	if err != nil {
		return models.Schedule{}, err
	}
	return d.Schedule, nil
}

func (r ScheduleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "schedule"}
	}
	return nil
}
