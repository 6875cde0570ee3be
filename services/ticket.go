package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"trainpay/models"
	"trainpay/store"
)

// TicketService orchestrates a ticket purchase: fare computation, balance
// check, availability search, itinerary build and the atomic debit +
// ticket write.
type TicketService struct {
	store        store.Store
	availability *AvailabilityService
	itinerary    *ItineraryService
	logger       *zap.SugaredLogger
}

func NewTicketService(st store.Store, logger *zap.SugaredLogger) *TicketService {
	return &TicketService{
		store:        st,
		availability: NewAvailabilityService(st, logger),
		itinerary:    NewItineraryService(st, logger),
		logger:       logger,
	}
}

// Purchase issues a ticket for the requested trip, debiting the wallet by
// the fare. Every business-rule failure short-circuits before any state
// is mutated; only the final store.IssueTicket call writes, and it is
// all-or-nothing.
func (s *TicketService) Purchase(ctx context.Context, req models.PurchaseRequest) (*models.PurchaseResponse, error) {
	if req.WalletID == 0 || req.TimeAfter == "" || req.StationFrom == 0 || req.StationTo == 0 {
		return nil, ErrInvalidRequest
	}

	fare := Fare(req.StationFrom, req.StationTo)

	// An unknown wallet spends like an empty one; the wallet endpoints
	// return 404 but the purchase path never does.
	var balance int64
	user, err := s.store.GetUser(ctx, req.WalletID)
	switch {
	case err == nil:
		balance = user.Balance
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, err
	}

	if balance < fare {
		return nil, &store.InsufficientFundsError{Shortfall: fare - balance}
	}

	trains, err := s.availability.FindTrains(ctx, req.StationFrom, req.StationTo, req.TimeAfter)
	if err != nil {
		return nil, err
	}
	if len(trains) == 0 {
		return nil, ErrNoServiceAvailable
	}

	stations, err := s.itinerary.Build(ctx, trains)
	if err != nil {
		return nil, err
	}

	// The sufficiency check above may be stale by now; IssueTicket
	// re-validates under the store's own serialization and reports a
	// fresh shortfall if a concurrent purchase won the race.
	ticket, err := s.store.IssueTicket(ctx, req.WalletID, fare)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("ticket issued",
		"ticket_id", ticket.TicketID,
		"wallet_id", ticket.WalletID,
		"fare", fare,
		"balance", ticket.Balance,
	)

	return &models.PurchaseResponse{
		TicketID: ticket.TicketID,
		Balance:  ticket.Balance,
		WalletID: ticket.WalletID,
		Stations: stations,
	}, nil
}
