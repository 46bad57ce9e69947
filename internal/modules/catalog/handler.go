package catalog

import (
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
	rg.GET("/vehicles/types", h.GetVehicleTypes)
	rg.GET("/vehicles", h.GetVehiclesByType)
}

// GetVehicleTypes handles GET /api/vehicles/types?wheels=2|4.
func (h *Handler) GetVehicleTypes(c *gin.Context) {
	wheelsParam := c.Query("wheels")
	if wheelsParam == "" {
		response.Error(c, http.StatusBadRequest, "Wheels parameter is required")
		return
	}

	wheels, err := strconv.Atoi(wheelsParam)
	if err != nil || (wheels != 2 && wheels != 4) {
		response.Error(c, http.StatusBadRequest, "Wheels parameter must be 2 or 4")
		return
	}

	types, err := h.service.ListVehicleTypes(c.Request.Context(), wheels)
	if err != nil {
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Failed to fetch vehicle types", err.Error())
		return
	}

	c.JSON(http.StatusOK, toVehicleTypeResponses(types))
}

// GetVehiclesByType handles GET /api/vehicles?typeId={id}.
func (h *Handler) GetVehiclesByType(c *gin.Context) {
	typeParam := c.Query("typeId")
	if typeParam == "" {
		response.Error(c, http.StatusBadRequest, "typeId parameter is required")
		return
	}

	typeID, err := strconv.ParseInt(typeParam, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "typeId parameter must be a number")
		return
	}

	vehicles, err := h.service.ListVehiclesByType(c.Request.Context(), typeID)
	if err != nil {
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Failed to fetch vehicles", err.Error())
		return
	}

	c.JSON(http.StatusOK, toVehicleResponses(vehicles))
}
