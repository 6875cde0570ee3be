package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainpay/models"
	"trainpay/services"
	"trainpay/store"
)

// GetWallet returns a wallet's balance and owner
func (h *Handler) GetWallet(c *gin.Context) {
	walletID, err := strconv.ParseInt(c.Param("wallet_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet ID"})
		return
	}

	wallet, err := h.wallets.Balance(c.Request.Context(), walletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": fmt.Sprintf("Wallet with id: %d was not found", walletID),
			})
			return
		}
		h.logger.Errorw("error reading wallet", "wallet_id", walletID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// TopUpWallet adds funds to a wallet, within the allowed recharge range
func (h *Handler) TopUpWallet(c *gin.Context) {
	walletID, err := strconv.ParseInt(c.Param("wallet_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet ID"})
		return
	}

	var req models.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.wallets.TopUp(c.Request.Context(), walletID, req.Recharge)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message": fmt.Sprintf("Wallet with id: %d was not found", walletID),
			})
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Invalid amount: %d", req.Recharge),
			})
		default:
			h.logger.Errorw("error recharging wallet", "wallet_id", walletID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, wallet)
}
