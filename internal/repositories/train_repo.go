package repositories

import (
	"database/sql"
	"errors"

	"railway/internal/domain/models"
)

type TrainRepo struct {
	DB *sql.DB
}

// List returns the full catalog ordered by id. An empty catalog yields an
// empty slice, not an error.
func (r TrainRepo) List() ([]models.Train, error) {
	rows, err := r.DB.Query(`
		SELECT id, train_number, train_name, source_station, destination_station, fare, schedule, available_seats
		FROM trains
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Train{}
	for rows.Next() {
		var t models.Train
		if err := rows.Scan(&t.ID, &t.Number, &t.Name, &t.Source, &t.Destination, &t.Fare, &t.Schedule, &t.AvailableSeats); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Exists reports whether a train with the given id is in the catalog.
func (r TrainRepo) Exists(id int64) (bool, error) {
	var found int64
	err := r.DB.QueryRow(`SELECT id FROM trains WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FareAndSeats is the point lookup backing the booking guards. found=false
// means the train does not exist.
func (r TrainRepo) FareAndSeats(id int64) (fare, seats int64, found bool, err error) {
	err = r.DB.QueryRow(`SELECT fare, available_seats FROM trains WHERE id = ?`, id).Scan(&fare, &seats)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}
	return fare, seats, true, nil
}
