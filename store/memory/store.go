// Package memory implements the ledger store on mutex-guarded maps. It
// backs the test suite and the "memory" store driver for local runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"trainpay/models"
	"trainpay/store"
)

type Store struct {
	mu sync.RWMutex

	users    map[int64]*models.User
	stations map[int64]*models.Station
	trains   map[int64]*models.Train

	// stops keeps insertion order per train; tickets keep commit order.
	stops   []models.Stop
	tickets []models.Ticket

	userSeq   int64
	stopSeq   int64
	ticketSeq int64
}

func New() *Store {
	return &Store{
		users:    make(map[int64]*models.User),
		stations: make(map[int64]*models.Station),
		trains:   make(map[int64]*models.Train),
	}
}

var _ store.Store = (*Store)(nil)

func (s *Store) CreateUser(_ context.Context, userName string, balance int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	user := &models.User{UserID: s.userSeq, UserName: userName, Balance: balance}
	s.users[user.UserID] = user
	return &models.User{UserID: user.UserID, UserName: user.UserName, Balance: user.Balance}, nil
}

func (s *Store) GetUser(_ context.Context, userID int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *Store) CreditBalance(_ context.Context, userID, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, store.ErrNotFound
	}
	user.Balance += amount
	return user.Balance, nil
}

func (s *Store) CreateStation(_ context.Context, station *models.Station) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stations[station.StationID]; exists {
		return store.ErrAlreadyExists
	}
	copied := *station
	s.stations[station.StationID] = &copied
	return nil
}

func (s *Store) GetStation(_ context.Context, stationID int64) (*models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	station, ok := s.stations[stationID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *station
	return &copied, nil
}

func (s *Store) ListStations(_ context.Context) ([]models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stations := make([]models.Station, 0, len(s.stations))
	for _, station := range s.stations {
		stations = append(stations, *station)
	}
	sort.Slice(stations, func(i, j int) bool { return stations[i].StationID < stations[j].StationID })
	return stations, nil
}

func (s *Store) CreateTrain(_ context.Context, train *models.Train, stops []models.Stop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.trains[train.TrainID]; exists {
		return store.ErrAlreadyExists
	}
	copied := *train
	s.trains[train.TrainID] = &copied

	for _, stop := range stops {
		s.stopSeq++
		stop.StopID = s.stopSeq
		stop.TrainID = train.TrainID
		s.stops = append(s.stops, stop)
	}
	return nil
}

func (s *Store) TrainsAtStation(_ context.Context, stationID int64) ([]models.StationTrain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trains := []models.StationTrain{}
	for _, stop := range s.stops {
		if stop.StationID != stationID {
			continue
		}
		trains = append(trains, models.StationTrain{
			TrainID:       stop.TrainID,
			ArrivalTime:   stop.ArrivalTime,
			DepartureTime: stop.DepartureTime,
		})
	}
	sort.SliceStable(trains, func(i, j int) bool {
		if trains[i].DepartureTime != trains[j].DepartureTime {
			return trains[i].DepartureTime < trains[j].DepartureTime
		}
		return trains[i].TrainID < trains[j].TrainID
	})
	return trains, nil
}

// FindDepartures applies the same coarse filter as the postgres driver:
// station id inside the inclusive range, departure at or after the bound,
// earliest qualifying departure kept per train.
func (s *Store) FindDepartures(_ context.Context, stationFrom, stationTo int64, timeAfter string) ([]models.Departure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	earliest := make(map[int64]string)
	for _, stop := range s.stops {
		if stop.StationID < stationFrom || stop.StationID > stationTo {
			continue
		}
		if stop.DepartureTime < timeAfter {
			continue
		}
		if dep, ok := earliest[stop.TrainID]; !ok || stop.DepartureTime < dep {
			earliest[stop.TrainID] = stop.DepartureTime
		}
	}

	departures := make([]models.Departure, 0, len(earliest))
	for trainID, dep := range earliest {
		departures = append(departures, models.Departure{TrainID: trainID, DepartureTime: dep})
	}
	sort.Slice(departures, func(i, j int) bool { return departures[i].TrainID < departures[j].TrainID })
	return departures, nil
}

func (s *Store) StopsByTrain(_ context.Context, trainID int64) ([]models.Stop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stops := []models.Stop{}
	for _, stop := range s.stops {
		if stop.TrainID == trainID {
			stops = append(stops, stop)
		}
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].DepartureTime < stops[j].DepartureTime })
	return stops, nil
}

// IssueTicket holds the store lock across the read-check-write, so the
// debit is serialized with every other balance mutation and ticket ids
// come out strictly increasing in commit order.
func (s *Store) IssueTicket(_ context.Context, walletID, fare int64) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var balance int64
	user, ok := s.users[walletID]
	if ok {
		balance = user.Balance
	}
	if balance < fare {
		return nil, &store.InsufficientFundsError{Shortfall: fare - balance}
	}

	balance -= fare
	if ok {
		user.Balance = balance
	}

	s.ticketSeq++
	ticket := models.Ticket{TicketID: s.ticketSeq, WalletID: walletID, Balance: balance}
	s.tickets = append(s.tickets, ticket)
	return &ticket, nil
}

// Tickets returns all committed tickets in commit order. Test helper.
func (s *Store) Tickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}
