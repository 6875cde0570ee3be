package database

import (
	"database/sql"

	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id BIGSERIAL PRIMARY KEY,
		user_name TEXT NOT NULL,
		balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS stations (
		station_id BIGINT PRIMARY KEY,
		station_name TEXT NOT NULL,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS trains (
		train_id BIGINT PRIMARY KEY,
		train_name TEXT NOT NULL,
		capacity INT NOT NULL DEFAULT 0,
		service_start TEXT NOT NULL,
		service_ends TEXT NOT NULL,
		num_stations INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stops (
		stop_id BIGSERIAL PRIMARY KEY,
		train_id BIGINT NOT NULL REFERENCES trains (train_id),
		station_id BIGINT NOT NULL REFERENCES stations (station_id),
		arrival_time TEXT NOT NULL,
		departure_time TEXT NOT NULL,
		fare BIGINT NOT NULL DEFAULT 0
	)`,
	// ticket_id is BIGSERIAL so ids are allocated by the database inside
	// the purchase transaction; concurrent purchases can never collide.
	// No FK on wallet_id: a purchase against an unknown wallet is allowed
	// to go through at zero balance.
	`CREATE TABLE IF NOT EXISTS tickets (
		ticket_id BIGSERIAL PRIMARY KEY,
		wallet_id BIGINT NOT NULL,
		balance BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stops_station_departure ON stops (station_id, departure_time)`,
	`CREATE INDEX IF NOT EXISTS idx_stops_train ON stops (train_id)`,
}

// RunMigrations ensures all required tables exist
func RunMigrations(db *sql.DB, logger *zap.SugaredLogger) error {
	logger.Info("Checking database schema...")

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	logger.Info("Database schema is up to date")
	return nil
}
