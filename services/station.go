package services

import (
	"context"

	"go.uber.org/zap"

	"trainpay/models"
	"trainpay/store"
)

// StationService manages the station registry.
type StationService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewStationService(st store.Store, logger *zap.SugaredLogger) *StationService {
	return &StationService{store: st, logger: logger}
}

// Create registers a station under its caller-supplied id.
func (s *StationService) Create(ctx context.Context, req models.CreateStationRequest) (*models.Station, error) {
	station := &models.Station{
		StationID:   req.StationID,
		StationName: req.StationName,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
	}
	if err := s.store.CreateStation(ctx, station); err != nil {
		return nil, err
	}
	s.logger.Infow("station created", "station_id", station.StationID, "station_name", station.StationName)
	return station, nil
}

// List returns all registered stations.
func (s *StationService) List(ctx context.Context) ([]models.Station, error) {
	return s.store.ListStations(ctx)
}

// TrainsAt returns the trains calling at a station, or store.ErrNotFound
// for an unknown station.
func (s *StationService) TrainsAt(ctx context.Context, stationID int64) ([]models.StationTrain, error) {
	if _, err := s.store.GetStation(ctx, stationID); err != nil {
		return nil, err
	}
	return s.store.TrainsAtStation(ctx, stationID)
}
