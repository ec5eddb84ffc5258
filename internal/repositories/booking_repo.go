package repositories

import (
	"database/sql"

	intdb "railway/internal/db"
	"railway/internal/domain/models"
)

type BookingRepo struct {
	DB *sql.DB
}

// ReserveSeats performs the conditional seat decrement inside tx. It reports
// false when the train no longer has count seats free; in that case nothing
// was changed. The WHERE guard is what keeps available_seats from ever going
// negative, even if the store is shared someday.
func (r BookingRepo) ReserveSeats(tx *sql.Tx, trainID int64, count int) (bool, error) {
	res, err := tx.Exec(`
		UPDATE trains
		SET available_seats = available_seats - ?
		WHERE id = ? AND available_seats >= ?
	`, count, trainID, count)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ReleaseSeat returns exactly one seat to the train inside tx.
func (r BookingRepo) ReleaseSeat(tx *sql.Tx, trainID int64) error {
	_, err := tx.Exec(`
		UPDATE trains
		SET available_seats = available_seats + 1
		WHERE id = ?
	`, trainID)
	return err
}

// Insert records one booking row inside tx and returns its id.
func (r BookingRepo) Insert(tx *sql.Tx, userID, trainID int64, date string) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO bookings (user_id, train_id, booking_date)
		VALUES (?, ?, ?)
	`, userID, trainID, date)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes one booking row inside tx.
func (r BookingRepo) Delete(tx *sql.Tx, bookingID int64) error {
	_, err := tx.Exec(`DELETE FROM bookings WHERE id = ?`, bookingID)
	return err
}

// OwnedTrainID resolves the train referenced by a booking, scoped to the
// owning user. Returns sql.ErrNoRows when the booking does not exist or
// belongs to someone else. Accepts either the DB handle or an open tx.
func (r BookingRepo) OwnedTrainID(q intdb.QueryRower, bookingID, userID int64) (int64, error) {
	var trainID int64
	err := q.QueryRow(`
		SELECT train_id FROM bookings WHERE id = ? AND user_id = ?
	`, bookingID, userID).Scan(&trainID)
	if err != nil {
		return 0, err
	}
	return trainID, nil
}

const bookingDetailSelect = `
	SELECT b.id, t.train_name, t.source_station, t.destination_station, DATE_FORMAT(b.booking_date, '%Y-%m-%d')
	FROM bookings b
	JOIN trains t ON b.train_id = t.id
`

// ListByUser returns the user's bookings joined with train details.
func (r BookingRepo) ListByUser(userID int64) ([]models.BookingDetail, error) {
	rows, err := r.DB.Query(bookingDetailSelect+` WHERE b.user_id = ? ORDER BY b.id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDetail{}
	for rows.Next() {
		var d models.BookingDetail
		if err := rows.Scan(&d.BookingID, &d.TrainName, &d.Source, &d.Destination, &d.BookingDate); err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Detail fetches one owned booking with its train details.
// Returns sql.ErrNoRows when absent or owned by another user.
func (r BookingRepo) Detail(bookingID, userID int64) (models.BookingDetail, error) {
	var d models.BookingDetail
	err := r.DB.QueryRow(bookingDetailSelect+` WHERE b.id = ? AND b.user_id = ?`, bookingID, userID).
		Scan(&d.BookingID, &d.TrainName, &d.Source, &d.Destination, &d.BookingDate)
	if err != nil {
		return models.BookingDetail{}, err
	}
	return d, nil
}
