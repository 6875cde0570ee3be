package models

// Station represents a railway station
type Station struct {
	StationID   int64   `json:"station_id"`
	StationName string  `json:"station_name"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
}

// CreateStationRequest represents a station creation request
type CreateStationRequest struct {
	StationID   int64   `json:"station_id" binding:"required"`
	StationName string  `json:"station_name" binding:"required"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
}
