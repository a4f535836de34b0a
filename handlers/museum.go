package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"museumguide-backend/catalog"
	"museumguide-backend/clock"
	"museumguide-backend/models"
)

type MuseumHandler struct {
	clock clock.Clock
	log   *logrus.Logger
}

func NewMuseumHandler(clk clock.Clock, log *logrus.Logger) *MuseumHandler {
	return &MuseumHandler{clock: clk, log: log}
}

// GetMuseumData returns the full static catalog.
func (h *MuseumHandler) GetMuseumData(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}

// GetTours returns the tour formats plus the guides working today.
func (h *MuseumHandler) GetTours(c *gin.Context) {
	weekday := h.clock.Now().Weekday().String()
	c.JSON(http.StatusOK, gin.H{
		"tour_types":       catalog.TourTypes(),
		"available_guides": catalog.GuidesAvailableOn(weekday),
	})
}

// BookTour confirms a guided-tour booking. There is no availability ledger
// yet; the confirmation echoes the request with a fresh booking id.
func (h *MuseumHandler) BookTour(c *gin.Context) {
	var req models.BookTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groupSize := req.GroupSize
	if groupSize == 0 {
		groupSize = 1
	}

	bookingID := uuid.NewString()
	h.log.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"guide_id":   req.GuideID,
		"tour_type":  req.TourType,
	}).Info("tour booked")

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"booking_id": bookingID,
		"confirmation": models.TourBookingConfirmation{
			GuideID:      req.GuideID,
			TourType:     req.TourType,
			Date:         req.Date,
			Time:         req.Time,
			GroupSize:    groupSize,
			VisitorName:  req.VisitorName,
			VisitorEmail: req.VisitorEmail,
			BookingID:    bookingID,
		},
	})
}
