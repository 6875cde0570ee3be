// Package store defines the ledger store: persistent records for users,
// stations, trains, stops and tickets. Two drivers implement it: postgres
// (production) and memory (tests, local development).
package store

import (
	"context"
	"errors"
	"fmt"

	"trainpay/models"
)

// Sentinel errors shared by all drivers.
var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// InsufficientFundsError is returned by IssueTicket when the wallet
// cannot cover the fare at commit time. Shortfall is the exact top-up
// needed to make the purchase succeed.
type InsufficientFundsError struct {
	Shortfall int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("store: insufficient funds, short %d", e.Shortfall)
}

// Store is the data-access layer for the ticketing service.
type Store interface {
	// CreateUser inserts a user and assigns its id.
	CreateUser(ctx context.Context, userName string, balance int64) (*models.User, error)
	// GetUser returns a user by id, or ErrNotFound.
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	// CreditBalance atomically adds amount to a wallet and returns the
	// new balance, or ErrNotFound for an unknown wallet.
	CreditBalance(ctx context.Context, userID, amount int64) (int64, error)

	// CreateStation inserts a station with its caller-supplied id.
	CreateStation(ctx context.Context, station *models.Station) error
	// GetStation returns a station by id, or ErrNotFound.
	GetStation(ctx context.Context, stationID int64) (*models.Station, error)
	// ListStations returns all stations ordered by id.
	ListStations(ctx context.Context) ([]models.Station, error)

	// CreateTrain inserts a train and its stop sequence, preserving the
	// given stop order.
	CreateTrain(ctx context.Context, train *models.Train, stops []models.Stop) error
	// TrainsAtStation returns the trains calling at a station.
	TrainsAtStation(ctx context.Context, stationID int64) ([]models.StationTrain, error)
	// FindDepartures returns, per train, the earliest stop whose station
	// falls in the inclusive range [stationFrom, stationTo] and whose
	// departure is at or after timeAfter. Results are ordered by train id.
	FindDepartures(ctx context.Context, stationFrom, stationTo int64, timeAfter string) ([]models.Departure, error)
	// StopsByTrain returns a train's stops ordered by departure time.
	StopsByTrain(ctx context.Context, trainID int64) ([]models.Stop, error)

	// IssueTicket atomically allocates the next ticket id, debits the
	// wallet by fare and writes the ticket record. Either all of it
	// commits or none of it does. A wallet that cannot cover the fare at
	// commit time yields *InsufficientFundsError; an unknown wallet is
	// treated as holding a zero balance.
	IssueTicket(ctx context.Context, walletID, fare int64) (*models.Ticket, error)
}
