package booking

import (
	"errors"
	"net/http"
	"strconv"

	"vehiclerental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/check-availability", h.CheckAvailability)
	rg.POST("/bookings", h.CreateBooking)
}

// CheckAvailability handles GET /api/bookings/check-availability.
func (h *Handler) CheckAvailability(c *gin.Context) {
	vehicleID := c.Query("vehicleId")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if vehicleID == "" || startDate == "" || endDate == "" {
		response.Error(c, http.StatusBadRequest, "VehicleId, startDate, and endDate are required")
		return
	}

	id, err := strconv.ParseInt(vehicleID, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VehicleId must be a number")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), id, startDate, endDate)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			response.Error(c, http.StatusBadRequest, ve.Message)
			return
		}
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Failed to check availability", err.Error())
		return
	}

	message := "Vehicle is available"
	if !available {
		message = "Vehicle is not available for selected dates"
	}
	c.JSON(http.StatusOK, AvailabilityResponse{
		Available: available,
		Message:   message,
	})
}

// CreateBooking handles POST /api/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.Error(c, http.StatusBadRequest, ve.Message)
		case errors.Is(err, ErrVehicleNotFound):
			response.Error(c, http.StatusNotFound, "Vehicle not found")
		case errors.Is(err, ErrConflict):
			response.ErrorWithDetail(c, http.StatusConflict,
				"Vehicle is already booked for the selected dates",
				"Please choose different dates or another vehicle")
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": toBookingResponse(b),
	})
}
