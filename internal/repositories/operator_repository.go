package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

type OperatorRepository struct {
	DB *sql.DB
}

func (r OperatorRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r OperatorRepository) GetByUser(userID int64) (models.Operator, error) {
	var op models.Operator
	err := r.db().QueryRow(`
		SELECT id, user_id, company_name, COALESCE(description, '')
		FROM operators
		WHERE user_id = ?
	`, userID).Scan(&op.ID, &op.UserID, &op.CompanyName, &op.Description)
	if err == sql.ErrNoRows {
		return op, domain.NotFoundError{Resource: "operator", Err: err}
	}
	if err != nil {
		return op, domain.InternalError{Err: err}
	}
	return op, nil
}

func (r OperatorRepository) Create(op models.Operator) (models.Operator, error) {
	res, err := r.db().Exec(`
		INSERT INTO operators (user_id, company_name, description)
		VALUES (?, ?, ?)
	`, op.UserID, op.CompanyName, op.Description)
	if err != nil {
		return models.Operator{}, domain.InternalError{Err: err}
	}
	op.ID, _ = res.LastInsertId()
	return op, nil
}
