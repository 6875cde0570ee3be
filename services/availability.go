package services

import (
	"context"

	"go.uber.org/zap"

	"trainpay/models"
	"trainpay/store"
)

// AvailabilityService locates trains that can serve a trip.
type AvailabilityService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewAvailabilityService(st store.Store, logger *zap.SugaredLogger) *AvailabilityService {
	return &AvailabilityService{store: st, logger: logger}
}

// FindTrains returns the candidate trains for a trip: trains with a stop
// whose station id lies in [stationFrom, stationTo] and whose departure
// is at or after timeAfter. The station range is a coarse filter, not a
// reachability check; it deliberately mirrors the fare model's use of
// station ids as distance. An empty result is not an error.
func (s *AvailabilityService) FindTrains(ctx context.Context, stationFrom, stationTo int64, timeAfter string) ([]models.Departure, error) {
	departures, err := s.store.FindDepartures(ctx, stationFrom, stationTo, timeAfter)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("availability search",
		"station_from", stationFrom,
		"station_to", stationTo,
		"time_after", timeAfter,
		"candidates", len(departures),
	)
	return departures, nil
}
