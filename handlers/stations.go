package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainpay/models"
	"trainpay/store"
)

// CreateStation registers a station
func (h *Handler) CreateStation(c *gin.Context) {
	var req models.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	station, err := h.stations.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("error creating station", "station_id", req.StationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, station)
}

// ListStations returns all stations
func (h *Handler) ListStations(c *gin.Context) {
	stations, err := h.stations.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing stations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stations": stations})
}

// TrainsAtStation lists the trains calling at a station
func (h *Handler) TrainsAtStation(c *gin.Context) {
	stationID, err := strconv.ParseInt(c.Param("station_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station ID"})
		return
	}

	trains, err := h.stations.TrainsAt(c.Request.Context(), stationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": fmt.Sprintf("Station with id: %d was not found", stationID),
			})
			return
		}
		h.logger.Errorw("error listing trains at station", "station_id", stationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"station_id": stationID, "trains": trains})
}
