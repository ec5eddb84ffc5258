package models

// Train mirrors the trains table. AvailableSeats is the live counter mutated
// by booking and cancellation; fare is a whole-rupee amount.
type Train struct {
	ID             int64  // trains.id
	Number         int64  // trains.train_number
	Name           string // trains.train_name
	Source         string // trains.source_station
	Destination    string // trains.destination_station
	Fare           int64  // trains.fare
	Schedule       string // trains.schedule (HH:MM:SS)
	AvailableSeats int64  // trains.available_seats
}
