package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	intdb "github.com/selvawasi/backend/internal/db"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

type ExperienceRepository struct {
	DB *sql.DB
}

func (r ExperienceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanExperience(row interface{ Scan(...any) error }) (models.Experience, error) {
	var (
		e        models.Experience
		capacity sql.NullInt64
	)
	err := row.Scan(&e.ID, &e.OperatorID, &e.Title, &e.Description, &e.Price,
		&e.Duration, &e.Location, &e.Images, &capacity)
	if capacity.Valid {
		e.Capacity = int(capacity.Int64)
		e.HasCapacity = true
	}
	return e, err
}

const experienceSelect = `
	SELECT id, operator_id, title, COALESCE(description, ''), price,
	       duration, location, COALESCE(images, ''), capacity
	FROM experiences`

func (r ExperienceRepository) List() ([]models.Experience, error) {
	rows, err := r.db().Query(experienceSelect + ` ORDER BY title ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r ExperienceRepository) GetByID(id int64) (models.Experience, error) {
	e, err := scanExperience(r.db().QueryRow(experienceSelect+` WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return e, domain.NotFoundError{Resource: "experience", Err: err}
	}
	if err != nil {
		return e, domain.InternalError{Err: err}
	}
	return e, nil
}

func (r ExperienceRepository) Create(e models.Experience) (models.Experience, error) {
	res, err := r.db().Exec(`
		INSERT INTO experiences (operator_id, title, description, price, duration, location, images, capacity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.OperatorID, e.Title, intdb.NullIfEmpty(e.Description), e.Price, e.Duration, e.Location, intdb.NullIfEmpty(e.Images), capacityValue(e))
	if err != nil {
		return models.Experience{}, domain.InternalError{Err: err}
	}
	e.ID, _ = res.LastInsertId()
	return e, nil
}

func (r ExperienceRepository) Update(id int64, e models.Experience) (models.Experience, error) {
	_, err := r.db().Exec(`
		UPDATE experiences
		SET title = ?, description = ?, price = ?, duration = ?, location = ?, images = ?, capacity = ?
		WHERE id = ?
	`, e.Title, intdb.NullIfEmpty(e.Description), e.Price, e.Duration, e.Location, intdb.NullIfEmpty(e.Images), capacityValue(e), id)
	if err != nil {
		return models.Experience{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

// capacityValue maps the nullable capacity onto a driver value.
func capacityValue(e models.Experience) any {
	if e.HasCapacity {
		return e.Capacity
	}
	return nil
}

func (r ExperienceRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "experience"}
	}
	return nil
}
