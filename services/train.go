package services

import (
	"context"

	"go.uber.org/zap"

	"trainpay/models"
	"trainpay/store"
)

// TrainService registers trains and their stop schedules.
type TrainService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewTrainService(st store.Store, logger *zap.SugaredLogger) *TrainService {
	return &TrainService{store: st, logger: logger}
}

// Create registers a train with its ordered stop sequence and derives the
// service window: service_start is the first stop's departure,
// service_ends the last stop's arrival.
func (s *TrainService) Create(ctx context.Context, req models.CreateTrainRequest) (*models.Train, error) {
	if len(req.Stops) == 0 {
		return nil, ErrInvalidRequest
	}

	train := &models.Train{
		TrainID:      req.TrainID,
		TrainName:    req.TrainName,
		Capacity:     req.Capacity,
		ServiceStart: req.Stops[0].DepartureTime,
		ServiceEnds:  req.Stops[len(req.Stops)-1].ArrivalTime,
		NumStations:  len(req.Stops),
	}

	stops := make([]models.Stop, 0, len(req.Stops))
	for _, in := range req.Stops {
		stops = append(stops, models.Stop{
			TrainID:       req.TrainID,
			StationID:     in.StationID,
			ArrivalTime:   in.ArrivalTime,
			DepartureTime: in.DepartureTime,
			Fare:          in.Fare,
		})
	}

	if err := s.store.CreateTrain(ctx, train, stops); err != nil {
		return nil, err
	}

	s.logger.Infow("train created",
		"train_id", train.TrainID,
		"train_name", train.TrainName,
		"num_stations", train.NumStations,
	)
	return train, nil
}
