// Package handlers exposes the HTTP surface via gin.
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trainpay/services"
	"trainpay/store"
)

// Handler bundles the service layer behind the HTTP routes.
type Handler struct {
	users    *services.UserService
	stations *services.StationService
	trains   *services.TrainService
	wallets  *services.WalletService
	tickets  *services.TicketService
	logger   *zap.SugaredLogger
}

func New(st store.Store, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		users:    services.NewUserService(st, logger),
		stations: services.NewStationService(st, logger),
		trains:   services.NewTrainService(st, logger),
		wallets:  services.NewWalletService(st, logger),
		tickets:  services.NewTicketService(st, logger),
		logger:   logger,
	}
}

// RegisterRoutes mounts every endpoint under the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/users", h.CreateUser)

	api.POST("/stations", h.CreateStation)
	api.GET("/stations", h.ListStations)
	api.GET("/stations/:station_id/trains", h.TrainsAtStation)

	api.POST("/trains", h.CreateTrain)

	api.GET("/wallets/:wallet_id", h.GetWallet)
	api.PUT("/wallets/:wallet_id", h.TopUpWallet)

	api.POST("/tickets", h.PurchaseTicket)
}
