package repositories

import (
	"database/sql"

	intconfig "github.com/selvawasi/backend/internal/config"
	intdb "github.com/selvawasi/backend/internal/db"
	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
)

type RestaurantRepository struct {
	DB *sql.DB
}

func (r RestaurantRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RestaurantRepository) List() ([]models.Restaurant, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, name, COALESCE(description, ''), address
		FROM restaurants
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Restaurant{}
	for rows.Next() {
		var rest models.Restaurant
		if err := rows.Scan(&rest.ID, &rest.UserID, &rest.Name, &rest.Description, &rest.Address); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

func (r RestaurantRepository) GetByID(id int64) (models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db().QueryRow(`
		SELECT id, user_id, name, COALESCE(description, ''), address
		FROM restaurants
		WHERE id = ?
	`, id).Scan(&rest.ID, &rest.UserID, &rest.Name, &rest.Description, &rest.Address)
	if err == sql.ErrNoRows {
		return rest, domain.NotFoundError{Resource: "restaurant", Err: err}
	}
	if err != nil {
		return rest, domain.InternalError{Err: err}
	}
	return rest, nil
}

// GetByOwner finds the restaurant an owner account manages.
func (r RestaurantRepository) GetByOwner(userID int64) (models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db().QueryRow(`
		SELECT id, user_id, name, COALESCE(description, ''), address
		FROM restaurants
		WHERE user_id = ?
	`, userID).Scan(&rest.ID, &rest.UserID, &rest.Name, &rest.Description, &rest.Address)
	if err == sql.ErrNoRows {
		return rest, domain.NotFoundError{Resource: "restaurant", Err: err}
	}
	if err != nil {
		return rest, domain.InternalError{Err: err}
	}
	return rest, nil
}

func (r RestaurantRepository) Create(rest models.Restaurant) (models.Restaurant, error) {
	res, err := r.db().Exec(`
		INSERT INTO restaurants (user_id, name, description, address)
		VALUES (?, ?, ?, ?)
	`, rest.UserID, rest.Name, intdb.NullIfEmpty(rest.Description), rest.Address)
	if err != nil {
		return models.Restaurant{}, domain.InternalError{Err: err}
	}
	rest.ID, _ = res.LastInsertId()
	return rest, nil
}

func (r RestaurantRepository) Update(id int64, rest models.Restaurant) (models.Restaurant, error) {
	_, err := r.db().Exec(`
		UPDATE restaurants SET name = ?, description = ?, address = ?
		WHERE id = ?
	`, rest.Name, intdb.NullIfEmpty(rest.Description), rest.Address, id)
	if err != nil {
		return models.Restaurant{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r RestaurantRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM restaurants WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "restaurant"}
	}
	return nil
}

func (r RestaurantRepository) Count() (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM restaurants`).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

func (r RestaurantRepository) ListDishes(restaurantID int64) ([]models.Dish, error) {
	rows, err := r.db().Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price
		FROM dishes
		WHERE restaurant_id = ?
		ORDER BY name ASC
	`, restaurantID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Dish{}
	for rows.Next() {
		var d models.Dish
		if err := rows.Scan(&d.ID, &d.RestaurantID, &d.Name, &d.Description, &d.Price); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r RestaurantRepository) CreateDish(d models.Dish) (models.Dish, error) {
	res, err := r.db().Exec(`
		INSERT INTO dishes (restaurant_id, name, description, price)
		VALUES (?, ?, ?, ?)
	`, d.RestaurantID, d.Name, intdb.NullIfEmpty(d.Description), d.Price)
	if err != nil {
		return models.Dish{}, domain.InternalError{Err: err}
	}
	d.ID, _ = res.LastInsertId()
	return d, nil
}

// UpdateDish is scoped by restaurant so an owner cannot edit across menus.
func (r RestaurantRepository) UpdateDish(restaurantID, dishID int64, d models.Dish) (models.Dish, error) {
	res, err := r.db().Exec(`
		UPDATE dishes SET name = ?, description = ?, price = ?
		WHERE id = ? AND restaurant_id = ?
	`, d.Name, intdb.NullIfEmpty(d.Description), d.Price, dishID, restaurantID)
	if err != nil {
		return models.Dish{}, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// distinguish missing row from an unchanged update
		var exists int64
		if err := r.db().QueryRow(`SELECT id FROM dishes WHERE id = ? AND restaurant_id = ?`, dishID, restaurantID).Scan(&exists); err == sql.ErrNoRows {
			return models.Dish{}, domain.NotFoundError{Resource: "dish"}
		}
	}
	d.ID = dishID
	d.RestaurantID = restaurantID
	return d, nil
}

func (r RestaurantRepository) DeleteDish(id int64) error {
	res, err := r.db().Exec(`DELETE FROM dishes WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "dish"}
	}
	return nil
}

func (r RestaurantRepository) ListReviews(restaurantID int64) ([]models.Review, error) {
	rows, err := r.db().Query(`
		SELECT id, restaurant_id, user_id, rating, COALESCE(comment, ''), created_at
		FROM reviews
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.RestaurantID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r RestaurantRepository) CreateReview(rv models.Review) (models.Review, error) {
	res, err := r.db().Exec(`
		INSERT INTO reviews (restaurant_id, user_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, rv.RestaurantID, rv.UserID, rv.Rating, rv.Comment)
	if err != nil {
		return models.Review{}, domain.InternalError{Err: err}
	}
	rv.ID, _ = res.LastInsertId()
	return rv, nil
}
