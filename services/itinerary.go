package services

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"trainpay/models"
	"trainpay/store"
)

// ItineraryService reconstructs the journey schedule for a set of
// candidate trains.
type ItineraryService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewItineraryService(st store.Store, logger *zap.SugaredLogger) *ItineraryService {
	return &ItineraryService{store: st, logger: logger}
}

type visitKey struct {
	stationID int64
	trainID   int64
}

// Build fetches every candidate train's stops in parallel, joins on the
// full set of lookups, deduplicates repeated (station, train) visits and
// returns the merged events sorted by departure time ascending. Ties keep
// candidate order, so the output is deterministic for a fixed snapshot.
// An empty candidate set yields an empty itinerary immediately.
func (s *ItineraryService) Build(ctx context.Context, trains []models.Departure) ([]models.StationVisit, error) {
	if len(trains) == 0 {
		return []models.StationVisit{}, nil
	}

	// Scatter one lookup per train; a train with zero stops still counts
	// as completed via the wait group.
	stopsByTrain := make([][]models.Stop, len(trains))
	errs := make([]error, len(trains))
	var wg sync.WaitGroup
	for i, train := range trains {
		wg.Add(1)
		go func(i int, trainID int64) {
			defer wg.Done()
			stopsByTrain[i], errs[i] = s.store.StopsByTrain(ctx, trainID)
		}(i, train.TrainID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[visitKey]struct{})
	visits := []models.StationVisit{}
	for i, train := range trains {
		for _, stop := range stopsByTrain[i] {
			key := visitKey{stationID: stop.StationID, trainID: train.TrainID}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			visits = append(visits, models.StationVisit{
				StationID:     stop.StationID,
				TrainID:       train.TrainID,
				ArrivalTime:   stop.ArrivalTime,
				DepartureTime: stop.DepartureTime,
			})
		}
	}

	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].DepartureTime < visits[j].DepartureTime
	})

	s.logger.Debugw("itinerary built", "trains", len(trains), "visits", len(visits))
	return visits, nil
}
