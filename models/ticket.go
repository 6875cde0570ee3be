package models

// Ticket is the persisted record of a purchase. Balance is the wallet
// balance snapshot immediately after the debit.
type Ticket struct {
	TicketID int64 `json:"ticket_id"`
	WalletID int64 `json:"wallet_id"`
	Balance  int64 `json:"balance"`
}

// StationVisit is one event in a ticket's itinerary
type StationVisit struct {
	StationID     int64  `json:"station_id"`
	TrainID       int64  `json:"train_id"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
}

// PurchaseRequest represents a ticket purchase request; all fields are
// required
type PurchaseRequest struct {
	WalletID    int64  `json:"wallet_id" binding:"required"`
	TimeAfter   string `json:"time_after" binding:"required"`
	StationFrom int64  `json:"station_from" binding:"required"`
	StationTo   int64  `json:"station_to" binding:"required"`
}

// PurchaseResponse represents a successful purchase. Stations is the
// transient itinerary; it is returned to the caller but not persisted.
type PurchaseResponse struct {
	TicketID int64          `json:"ticket_id"`
	Balance  int64          `json:"balance"`
	WalletID int64          `json:"wallet_id"`
	Stations []StationVisit `json:"stations"`
}
