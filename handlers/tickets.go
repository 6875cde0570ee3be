package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"trainpay/models"
	"trainpay/services"
	"trainpay/store"
)

// PurchaseTicket runs the full purchase transaction and returns the
// issued ticket with its itinerary
func (h *Handler) PurchaseTicket(c *gin.Context) {
	var req models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required parameters"})
		return
	}

	ticket, err := h.tickets.Purchase(c.Request.Context(), req)
	if err != nil {
		var short *store.InsufficientFundsError
		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required parameters"})
		case errors.As(err, &short):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"message": fmt.Sprintf("Recharge amount: %d to purchase the ticket", short.Shortfall),
			})
		case errors.Is(err, services.ErrNoServiceAvailable):
			c.JSON(http.StatusForbidden, gin.H{
				"message": fmt.Sprintf("No ticket available for station: %d to station: %d", req.StationFrom, req.StationTo),
			})
		default:
			h.logger.Errorw("error purchasing ticket", "wallet_id", req.WalletID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, ticket)
}
