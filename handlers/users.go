package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trainpay/models"
)

// CreateUser creates a user with an initial wallet balance
func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("error creating user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, user)
}
