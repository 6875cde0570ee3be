package models

// Train represents a train with its derived service window.
// ServiceStart is the first stop's departure, ServiceEnds the last stop's
// arrival, and NumStations the count of stops supplied at creation.
type Train struct {
	TrainID      int64  `json:"train_id"`
	TrainName    string `json:"train_name"`
	Capacity     int    `json:"capacity"`
	ServiceStart string `json:"service_start"`
	ServiceEnds  string `json:"service_ends"`
	NumStations  int    `json:"num_stations"`
}

// Stop is a single scheduled visit of one train to one station.
// Times are temporal strings that compare lexicographically.
type Stop struct {
	StopID        int64  `json:"stop_id,omitempty"`
	TrainID       int64  `json:"train_id"`
	StationID     int64  `json:"station_id"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	Fare          int64  `json:"fare"`
}

// StopInput represents one stop in a train creation request
type StopInput struct {
	StationID     int64  `json:"station_id" binding:"required"`
	ArrivalTime   string `json:"arrival_time" binding:"required"`
	DepartureTime string `json:"departure_time" binding:"required"`
	Fare          int64  `json:"fare"`
}

// CreateTrainRequest represents a train creation request with its
// ordered stop sequence
type CreateTrainRequest struct {
	TrainID   int64       `json:"train_id" binding:"required"`
	TrainName string      `json:"train_name" binding:"required"`
	Capacity  int         `json:"capacity"`
	Stops     []StopInput `json:"stops" binding:"required,min=1"`
}

// StationTrain describes a train calling at a particular station
type StationTrain struct {
	TrainID       int64  `json:"train_id"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
}

// Departure is an availability search result: a candidate train and its
// earliest qualifying departure
type Departure struct {
	TrainID       int64  `json:"train_id"`
	DepartureTime string `json:"departure_time"`
}
