package db

import (
	"database/sql"

	"railway/internal/utils"
)

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	`CREATE TABLE IF NOT EXISTS trains (
	id INT AUTO_INCREMENT PRIMARY KEY,
	train_number INT NOT NULL UNIQUE,
	train_name VARCHAR(100) NOT NULL,
	source_station VARCHAR(50) NOT NULL,
	destination_station VARCHAR(50) NOT NULL,
	fare INT NOT NULL,
	schedule TIME NOT NULL,
	available_seats INT NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	`CREATE TABLE IF NOT EXISTS bookings (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	train_id INT NOT NULL,
	booking_date DATE NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (train_id) REFERENCES trains(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// EnsureSchema creates the three tables when any of them is missing.
func EnsureSchema(db *sql.DB) error {
	if HasTable(db, "users") && HasTable(db, "trains") && HasTable(db, "bookings") {
		return nil
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	utils.LogEvent("schema", "ensure", "tables created")
	return nil
}

type seedTrain struct {
	number   int64
	name     string
	source   string
	dest     string
	fare     int64
	schedule string
	seats    int64
}

var sampleTrains = []seedTrain{
	{12345, "Howrah Express", "Howrah", "Digha", 150, "08:00:00", 100},
	{67890, "Darjeeling Mail", "Sealdah", "Darjeeling", 500, "22:05:00", 150},
	{11223, "Kolkata Local", "Ballygunge", "Sealdah", 20, "06:30:00", 50},
	{44556, "Shatabdi Express", "Howrah", "New Jalpaiguri", 700, "05:40:00", 200},
}

// SeedTrains inserts the sample catalog on first run. A non-empty trains
// table is left untouched.
func SeedTrains(db *sql.DB) error {
	var count int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM trains`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, t := range sampleTrains {
		_, err := db.Exec(`
			INSERT INTO trains (train_number, train_name, source_station, destination_station, fare, schedule, available_seats)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, t.number, t.name, t.source, t.dest, t.fare, t.schedule, t.seats)
		if err != nil {
			return err
		}
	}
	utils.LogEvent("schema", "seed", "sample trains inserted")
	return nil
}
