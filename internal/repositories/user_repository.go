package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the user plus the stored bcrypt hash for login.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, email, password_hash, full_name, role, created_at
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Email, &hash, &u.FullName, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, "", domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return u, "", domain.InternalError{Err: err}
	}
	return u, hash, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, email, full_name, role, created_at
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return u, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepository) EmailTaken(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n); err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

func (r UserRepository) Create(email, passwordHash, fullName, role string) (models.User, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (email, password_hash, full_name, role, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, email, passwordHash, fullName, role)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`
		SELECT id, email, full_name, role, created_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.CreatedAt); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// ListRecent feeds the admin activity feed.
func (r UserRepository) ListRecent(limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db().Query(`
		SELECT id, email, full_name, role, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.CreatedAt); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) UpdateFullName(email, fullName string) (models.User, error) {
	if _, err := r.db().Exec(`UPDATE users SET full_name = ? WHERE email = ?`, fullName, email); err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	u, _, err := r.GetByEmail(email)
	return u, err
}

func (r UserRepository) UpdateRole(id int64, role string) error {
	res, err := r.db().Exec(`UPDATE users SET role = ? WHERE id = ?`, role, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

func (r UserRepository) Count() (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
