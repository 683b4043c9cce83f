package config

import (
	"database/sql"

	intdb "github.com/selvawasi/backend/internal/db"
)

// EnsureSchema creates the tables the app expects when they are missing.
// Statements are IF NOT EXISTS so re-running on an existing database is safe.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			full_name VARCHAR(255) NOT NULL DEFAULT '',
			role VARCHAR(50) NOT NULL DEFAULT 'USER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS operators (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			company_name VARCHAR(255) NOT NULL,
			description TEXT,
			UNIQUE KEY uniq_operators_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS boats (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			operator_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			capacity INT NOT NULL,
			type VARCHAR(100) NOT NULL DEFAULT '',
			features TEXT,
			KEY idx_boats_operator (operator_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS routes (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			origin VARCHAR(255) NOT NULL,
			destination VARCHAR(255) NOT NULL,
			duration_min INT NOT NULL DEFAULT 0,
			distance_km INT NOT NULL DEFAULT 0
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS schedules (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			boat_id BIGINT NOT NULL,
			route_id BIGINT NOT NULL,
			departure_time DATETIME NOT NULL,
			arrival_time DATETIME NOT NULL,
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			KEY idx_schedules_boat (boat_id),
			KEY idx_schedules_route (route_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS experiences (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			operator_id BIGINT NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			duration VARCHAR(100) NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			images TEXT,
			capacity INT NULL,
			KEY idx_experiences_operator (operator_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(64) NOT NULL,
			user_id BIGINT NOT NULL,
			schedule_id BIGINT NULL,
			experience_id BIGINT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			total_price DECIMAL(10,2) NOT NULL DEFAULT 0,
			seat_number VARCHAR(20) NOT NULL DEFAULT '',
			passenger_name VARCHAR(255) NOT NULL DEFAULT '',
			passenger_doc_type VARCHAR(20) NOT NULL DEFAULT '',
			passenger_doc_number VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_bookings_code (code),
			KEY idx_bookings_user (user_id),
			KEY idx_bookings_schedule (schedule_id),
			KEY idx_bookings_experience (experience_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS restaurants (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			address VARCHAR(255) NOT NULL DEFAULT '',
			UNIQUE KEY uniq_restaurants_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS dishes (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			restaurant_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			KEY idx_dishes_restaurant (restaurant_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS reviews (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			restaurant_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			rating INT NOT NULL,
			comment TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			KEY idx_reviews_restaurant (restaurant_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS reservations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(64) NOT NULL,
			user_id BIGINT NOT NULL,
			restaurant_id BIGINT NOT NULL,
			pax INT NOT NULL,
			requested_date DATETIME NOT NULL,
			operator_note TEXT,
			status VARCHAR(30) NOT NULL DEFAULT 'PENDING_APPROVAL',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_reservations_code (code),
			KEY idx_reservations_user (user_id),
			KEY idx_reservations_restaurant (restaurant_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}

	// Columns added after the first release; databases bootstrapped
	// before them only get the ALTER, existing data stays untouched.
	if intdb.HasTable(db, "experiences") && !intdb.HasColumn(db, "experiences", "capacity") {
		if _, err := db.Exec(`ALTER TABLE experiences ADD COLUMN capacity INT NULL`); err != nil {
			return err
		}
	}
	if intdb.HasTable(db, "reservations") && !intdb.HasColumn(db, "reservations", "operator_note") {
		if _, err := db.Exec(`ALTER TABLE reservations ADD COLUMN operator_note TEXT`); err != nil {
			return err
		}
	}
	return nil
}
