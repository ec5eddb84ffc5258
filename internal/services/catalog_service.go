package services

import (
	"railway/internal/domain"
	"railway/internal/domain/models"
	"railway/internal/repositories"
)

// CatalogService is the read-only view over the train catalog.
type CatalogService struct {
	Trains repositories.TrainRepo
}

func (s CatalogService) ListTrains() ([]models.Train, error) {
	trains, err := s.Trains.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return trains, nil
}

func (s CatalogService) TrainExists(id int64) (bool, error) {
	exists, err := s.Trains.Exists(id)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return exists, nil
}

// FareAndSeats reports fare per ticket and the live seat counter.
// found=false is a valid "no such train" result, not an error.
func (s CatalogService) FareAndSeats(id int64) (fare, seats int64, found bool, err error) {
	fare, seats, found, err = s.Trains.FareAndSeats(id)
	if err != nil {
		return 0, 0, false, domain.InternalError{Err: err}
	}
	return fare, seats, found, nil
}
