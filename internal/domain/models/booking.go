package models

// Booking is one reserved seat on a train for a calendar date.
type Booking struct {
	ID          int64
	UserID      int64
	TrainID     int64
	BookingDate string // YYYY-MM-DD
}

// BookingDetail is the bookings-trains join shown in history listings and
// printed on tickets.
type BookingDetail struct {
	BookingID   int64
	TrainName   string
	Source      string
	Destination string
	BookingDate string // YYYY-MM-DD
}

// Passenger holds per-ticket details collected at booking time. They are
// shown to the operator and printed on the ticket but never persisted; the
// bookings table stores only user, train and date.
type Passenger struct {
	Name   string
	Age    string
	Gender string
}
