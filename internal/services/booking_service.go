package services

import (
	"database/sql"
	"errors"
	"fmt"

	"railway/internal/domain"
	"railway/internal/domain/models"
	"railway/internal/repositories"
	"railway/internal/utils"
)

// MaxTicketsPerBooking caps how many tickets a single multi-ticket booking
// may cover.
const MaxTicketsPerBooking = 5

// BookingService owns the seat-inventory contract: every successful booking
// pairs a conditional seat decrement with its booking rows in one
// transaction, and cancellation reverses both together. Partial outcomes
// never commit.
type BookingService struct {
	DB       *sql.DB
	Trains   repositories.TrainRepo
	Bookings repositories.BookingRepo
}

// TotalFare computes the fare for a multi-ticket booking.
func TotalFare(farePerTicket int64, tickets int) int64 {
	return farePerTicket * int64(tickets)
}

// BookOne reserves a single seat for the user on the given date.
func (s BookingService) BookOne(userID, trainID int64, date string) (int64, error) {
	ids, err := s.book(userID, trainID, date, 1)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// BookMany reserves count seats and records one booking row per ticket,
// all-or-nothing.
func (s BookingService) BookMany(userID, trainID int64, date string, count int) ([]int64, error) {
	return s.book(userID, trainID, date, count)
}

func (s BookingService) book(userID, trainID int64, date string, count int) ([]int64, error) {
	if count < 1 || count > MaxTicketsPerBooking {
		return nil, domain.ValidationError{Field: "tickets", Msg: fmt.Sprintf("must be between 1 and %d", MaxTicketsPerBooking)}
	}

	exists, err := s.Trains.Exists(trainID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	if !exists {
		return nil, domain.NotFoundError{Resource: "train"}
	}

	if !utils.ValidDate(date) {
		return nil, domain.ValidationError{Field: "booking_date", Msg: "use YYYY-MM-DD"}
	}

	_, seats, found, err := s.Trains.FareAndSeats(trainID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	if !found {
		return nil, domain.NotFoundError{Resource: "train"}
	}
	if seats < int64(count) {
		return nil, domain.InsufficientSeatsError{TrainID: trainID, Requested: count}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// The WHERE guard re-checks availability at update time; the read above
	// is only a fast path for a friendlier error.
	ok, err := s.Bookings.ReserveSeats(tx, trainID, count)
	if err != nil {
		return nil, domain.BookingFailedError{Err: err}
	}
	if !ok {
		return nil, domain.InsufficientSeatsError{TrainID: trainID, Requested: count}
	}

	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		id, err := s.Bookings.Insert(tx, userID, trainID, date)
		if err != nil {
			return nil, domain.BookingFailedError{Err: err}
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		committed = true // commit failed, nothing to roll back
		return nil, domain.BookingFailedError{Err: err}
	}
	committed = true

	utils.LogEvent("booking", "book", fmt.Sprintf("user_id=%d train_id=%d tickets=%d", userID, trainID, count))
	return ids, nil
}

// Cancel deletes an owned booking and returns its seat to the train, both in
// one transaction.
func (s BookingService) Cancel(userID, bookingID int64) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	trainID, err := s.Bookings.OwnedTrainID(tx, bookingID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return domain.InternalError{Err: err}
	}

	if err := s.Bookings.Delete(tx, bookingID); err != nil {
		return domain.InternalError{Err: err}
	}
	if err := s.Bookings.ReleaseSeat(tx, trainID); err != nil {
		return domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		committed = true
		return domain.InternalError{Err: err}
	}
	committed = true

	utils.LogEvent("booking", "cancel", fmt.Sprintf("user_id=%d booking_id=%d train_id=%d", userID, bookingID, trainID))
	return nil
}

// ListForUser returns the user's booking history joined with train details.
func (s BookingService) ListForUser(userID int64) ([]models.BookingDetail, error) {
	out, err := s.Bookings.ListByUser(userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// Detail fetches a single owned booking for ticket rendering.
func (s BookingService) Detail(userID, bookingID int64) (models.BookingDetail, error) {
	d, err := s.Bookings.Detail(bookingID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BookingDetail{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.BookingDetail{}, domain.InternalError{Err: err}
	}
	return d, nil
}
