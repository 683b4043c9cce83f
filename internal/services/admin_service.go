package services

import (
	"database/sql"
	"sort"
	"time"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/repositories"
)

// AdminService aggregates dashboard numbers and the recent activity feed.
type AdminService struct {
	UserRepo        repositories.UserRepository
	RestaurantRepo  repositories.RestaurantRepository
	BoatRepo        repositories.BoatRepository
	ReservationRepo repositories.ReservationRepository
	DB              *sql.DB
}

func (s AdminService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

type AdminStats struct {
	UsersCount          int     `json:"usersCount"`
	RestaurantsCount    int     `json:"restaurantsCount"`
	BoatsCount          int     `json:"boatsCount"`
	PendingReservations int     `json:"pendingReservations"`
	Revenue             float64 `json:"revenue"`
}

type ActivityItem struct {
	ID      int64     `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	User    string    `json:"user"`
	Date    time.Time `json:"date"`
}

func (s AdminService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s AdminService) restaurants() repositories.RestaurantRepository {
	if s.RestaurantRepo.DB != nil {
		return s.RestaurantRepo
	}
	return repositories.RestaurantRepository{DB: s.db()}
}

func (s AdminService) boats() repositories.BoatRepository {
	if s.BoatRepo.DB != nil {
		return s.BoatRepo
	}
	return repositories.BoatRepository{DB: s.db()}
}

func (s AdminService) reservations() repositories.ReservationRepository {
	if s.ReservationRepo.DB != nil {
		return s.ReservationRepo
	}
	return repositories.ReservationRepository{DB: s.db()}
}

func (s AdminService) Stats() (AdminStats, error) {
	var out AdminStats
	var err error

	if out.UsersCount, err = s.users().Count(); err != nil {
		return out, err
	}
	if out.RestaurantsCount, err = s.restaurants().Count(); err != nil {
		return out, err
	}
	if out.BoatsCount, err = s.boats().Count(); err != nil {
		return out, err
	}
	if out.PendingReservations, err = s.reservations().CountPending(); err != nil {
		return out, err
	}

	// Confirmed booking revenue; reservations carry no amount yet.
	err = s.db().QueryRow(`
		SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status = 'CONFIRMED'
	`).Scan(&out.Revenue)
	if err != nil {
		return out, err
	}
	return out, nil
}

// Activity merges the latest reservations and signups into one feed,
// newest first, capped at limit.
func (s AdminService) Activity(limit int) ([]ActivityItem, error) {
	if limit <= 0 {
		limit = 5
	}

	reservations, err := s.reservations().ListRecent(limit)
	if err != nil {
		return nil, err
	}
	newUsers, err := s.users().ListRecent(limit)
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(reservations)+len(newUsers))
	for _, rv := range reservations {
		rest, _ := s.restaurants().GetByID(rv.RestaurantID)
		user, _ := s.users().GetByID(rv.UserID)
		who := user.FullName
		if who == "" {
			who = user.Email
		}
		items = append(items, ActivityItem{
			ID:      rv.ID,
			Type:    "RESERVATION",
			Message: "Nueva reserva para " + rest.Name,
			User:    who,
			Date:    rv.CreatedAt,
		})
	}
	for _, u := range newUsers {
		who := u.FullName
		if who == "" {
			who = u.Email
		}
		items = append(items, ActivityItem{
			ID:      u.ID,
			Type:    "USER",
			Message: "Nuevo usuario registrado",
			User:    who,
			Date:    u.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
