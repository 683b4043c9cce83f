package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RouteRepository) List() ([]models.Route, error) {
	rows, err := r.db().Query(`
		SELECT id, origin, destination, duration_min, distance_km
		FROM routes
		ORDER BY origin, destination
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.Origin, &rt.Destination, &rt.DurationMin, &rt.DistanceKm); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r RouteRepository) GetByID(id int64) (models.Route, error) {
	var rt models.Route
	err := r.db().QueryRow(`
		SELECT id, origin, destination, duration_min, distance_km
		FROM routes
		WHERE id = ?
	`, id).Scan(&rt.ID, &rt.Origin, &rt.Destination, &rt.DurationMin, &rt.DistanceKm)
	if err == sql.ErrNoRows {
		return rt, domain.NotFoundError{Resource: "route", Err: err}
	}
	if err != nil {
		return rt, domain.InternalError{Err: err}
	}
	return rt, nil
}

func (r RouteRepository) Create(rt models.Route) (models.Route, error) {
	res, err := r.db().Exec(`
		INSERT INTO routes (origin, destination, duration_min, distance_km)
		VALUES (?, ?, ?, ?)
	`, rt.Origin, rt.Destination, rt.DurationMin, rt.DistanceKm)
	if err != nil {
		return models.Route{}, domain.InternalError{Err: err}
	}
	rt.ID, _ = res.LastInsertId()
	return rt, nil
}

func (r RouteRepository) Update(id int64, rt models.Route) (models.Route, error) {
	_, err := r.db().Exec(`
		UPDATE routes SET origin = ?, destination = ?, duration_min = ?, distance_km = ?
		WHERE id = ?
	`, rt.Origin, rt.Destination, rt.DurationMin, rt.DistanceKm, id)
	if err != nil {
		return models.Route{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r RouteRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM routes WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "route"}
	}
	return nil
}
