package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trainpay/models"
)

// CreateTrain registers a train with its ordered stop list
func (h *Handler) CreateTrain(c *gin.Context) {
	var req models.CreateTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	train, err := h.trains.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("error creating train", "train_id", req.TrainID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, train)
}
