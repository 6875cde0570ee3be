// Package postgres implements the ledger store on PostgreSQL via
// database/sql and lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"trainpay/models"
	"trainpay/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ store.Store = (*Store)(nil)

// uniqueViolation is the class 23 code pq reports for primary key conflicts
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (s *Store) CreateUser(ctx context.Context, userName string, balance int64) (*models.User, error) {
	user := &models.User{UserName: userName, Balance: balance}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (user_name, balance)
		VALUES ($1, $2)
		RETURNING user_id
	`, userName, balance).Scan(&user.UserID)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, user_name, balance
		FROM users
		WHERE user_id = $1
	`, userID).Scan(&user.UserID, &user.UserName, &user.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreditBalance(ctx context.Context, userID, amount int64) (int64, error) {
	var balance int64
	err := s.db.QueryRowContext(ctx, `
		UPDATE users
		SET balance = balance + $1
		WHERE user_id = $2
		RETURNING balance
	`, amount, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, store.ErrNotFound
		}
		return 0, fmt.Errorf("error crediting balance: %w", err)
	}
	return balance, nil
}

func (s *Store) CreateStation(ctx context.Context, station *models.Station) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stations (station_id, station_name, longitude, latitude)
		VALUES ($1, $2, $3, $4)
	`, station.StationID, station.StationName, station.Longitude, station.Latitude)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("error creating station: %w", err)
	}
	return nil
}

func (s *Store) GetStation(ctx context.Context, stationID int64) (*models.Station, error) {
	var station models.Station
	err := s.db.QueryRowContext(ctx, `
		SELECT station_id, station_name, longitude, latitude
		FROM stations
		WHERE station_id = $1
	`, stationID).Scan(&station.StationID, &station.StationName, &station.Longitude, &station.Latitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &station, nil
}

func (s *Store) ListStations(ctx context.Context) ([]models.Station, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT station_id, station_name, longitude, latitude
		FROM stations
		ORDER BY station_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := []models.Station{}
	for rows.Next() {
		var station models.Station
		if err := rows.Scan(&station.StationID, &station.StationName, &station.Longitude, &station.Latitude); err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}
	return stations, rows.Err()
}

func (s *Store) CreateTrain(ctx context.Context, train *models.Train, stops []models.Stop) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trains (train_id, train_name, capacity, service_start, service_ends, num_stations)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, train.TrainID, train.TrainName, train.Capacity, train.ServiceStart, train.ServiceEnds, train.NumStations)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("error creating train: %w", err)
	}

	for _, stop := range stops {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO stops (train_id, station_id, arrival_time, departure_time, fare)
			VALUES ($1, $2, $3, $4, $5)
		`, train.TrainID, stop.StationID, stop.ArrivalTime, stop.DepartureTime, stop.Fare)
		if err != nil {
			return fmt.Errorf("error creating stop: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit train: %w", err)
	}
	return nil
}

func (s *Store) TrainsAtStation(ctx context.Context, stationID int64) ([]models.StationTrain, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT trains.train_id, stops.arrival_time, stops.departure_time
		FROM stops
		JOIN trains ON stops.train_id = trains.train_id
		WHERE stops.station_id = $1
		ORDER BY stops.departure_time, trains.train_id
	`, stationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trains := []models.StationTrain{}
	for rows.Next() {
		var st models.StationTrain
		if err := rows.Scan(&st.TrainID, &st.ArrivalTime, &st.DepartureTime); err != nil {
			return nil, err
		}
		trains = append(trains, st)
	}
	return trains, rows.Err()
}

// FindDepartures uses a numeric range test on station ids, not a
// per-train ordered-path check: any stop numerically between the two
// stations qualifies. Coarse by design of the original fare model.
func (s *Store) FindDepartures(ctx context.Context, stationFrom, stationTo int64, timeAfter string) ([]models.Departure, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.train_id, MIN(s.departure_time)
		FROM trains t
		JOIN stops s ON t.train_id = s.train_id
		WHERE s.station_id >= $1 AND s.station_id <= $2
			AND s.departure_time >= $3
		GROUP BY t.train_id
		ORDER BY t.train_id
	`, stationFrom, stationTo, timeAfter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departures := []models.Departure{}
	for rows.Next() {
		var dep models.Departure
		if err := rows.Scan(&dep.TrainID, &dep.DepartureTime); err != nil {
			return nil, err
		}
		departures = append(departures, dep)
	}
	return departures, rows.Err()
}

func (s *Store) StopsByTrain(ctx context.Context, trainID int64) ([]models.Stop, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT stop_id, train_id, station_id, arrival_time, departure_time, fare
		FROM stops
		WHERE train_id = $1
		ORDER BY departure_time, stop_id
	`, trainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stops := []models.Stop{}
	for rows.Next() {
		var stop models.Stop
		if err := rows.Scan(&stop.StopID, &stop.TrainID, &stop.StationID, &stop.ArrivalTime, &stop.DepartureTime, &stop.Fare); err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, rows.Err()
}

// IssueTicket runs the debit and the ticket insert in one transaction.
// The debit is a conditional update, so a concurrent purchase that
// drained the wallet after the caller's sufficiency check fails here
// instead of overdrawing.
func (s *Store) IssueTicket(ctx context.Context, walletID, fare int64) (*models.Ticket, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var balance int64
	err = tx.QueryRowContext(ctx, `
		UPDATE users
		SET balance = balance - $1
		WHERE user_id = $2 AND balance >= $1
		RETURNING balance
	`, fare, walletID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		// No debit happened: the wallet is unknown or short of funds.
		err = tx.QueryRowContext(ctx, `
			SELECT balance FROM users WHERE user_id = $1
		`, walletID).Scan(&balance)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// Unknown wallet spends like an empty one.
			balance = 0
			if fare > 0 {
				return nil, &store.InsufficientFundsError{Shortfall: fare}
			}
		case err != nil:
			return nil, err
		default:
			return nil, &store.InsufficientFundsError{Shortfall: fare - balance}
		}
	} else if err != nil {
		return nil, fmt.Errorf("error debiting wallet: %w", err)
	}

	ticket := &models.Ticket{WalletID: walletID, Balance: balance}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO tickets (wallet_id, balance)
		VALUES ($1, $2)
		RETURNING ticket_id
	`, walletID, balance).Scan(&ticket.TicketID)
	if err != nil {
		return nil, fmt.Errorf("error storing ticket: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ticket: %w", err)
	}
	return ticket, nil
}
