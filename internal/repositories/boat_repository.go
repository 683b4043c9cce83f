package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

type BoatRepository struct {
	DB *sql.DB
}

func (r BoatRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BoatRepository) List() ([]models.Boat, error) {
	rows, err := r.db().Query(`
		SELECT id, operator_id, name, capacity, type, COALESCE(features, '')
		FROM boats
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Boat{}
	for rows.Next() {
		var b models.Boat
		if err := rows.Scan(&b.ID, &b.OperatorID, &b.Name, &b.Capacity, &b.Type, &b.Features); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BoatRepository) GetByID(id int64) (models.Boat, error) {
	var b models.Boat
	err := r.db().QueryRow(`
		SELECT id, operator_id, name, capacity, type, COALESCE(features, '')
		FROM boats
		WHERE id = ?
	`, id).Scan(&b.ID, &b.OperatorID, &b.Name, &b.Capacity, &b.Type, &b.Features)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "boat", Err: err}
	}
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r BoatRepository) Create(b models.Boat) (models.Boat, error) {
	res, err := r.db().Exec(`
		INSERT INTO boats (operator_id, name, capacity, type, features)
		VALUES (?, ?, ?, ?, ?)
	`, b.OperatorID, b.Name, b.Capacity, b.Type, b.Features)
	if err != nil {
		return models.Boat{}, domain.InternalError{Err: err}
	}
	b.ID, _ = res.LastInsertId()
	return b, nil
}

func (r BoatRepository) Update(id int64, b models.Boat) (models.Boat, error) {
	res, err := r.db().Exec(`
		UPDATE boats SET name = ?, capacity = ?, type = ?, features = ?
		WHERE id = ?
	`, b.Name, b.Capacity, b.Type, b.Features, id)
	if err != nil {
		return models.Boat{}, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return models.Boat{}, err
		}
	}
	return r.GetByID(id)
}

func (r BoatRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM boats WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "boat"}
	}
	return nil
}

func (r BoatRepository) Count() (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM boats`).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
