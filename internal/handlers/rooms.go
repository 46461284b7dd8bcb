package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stavquote/internal/middleware"
	"stavquote/internal/models"
	"stavquote/internal/pricing"
	"stavquote/internal/services"
)

// RoomHandler exposes room pricing and persistence.
type RoomHandler struct {
	roomService      *services.RoomService
	priceListService *services.PriceListService
	logger           *logrus.Logger
}

// NewRoomHandler builds the room handler.
func NewRoomHandler(roomService *services.RoomService, priceListService *services.PriceListService, logger *logrus.Logger) *RoomHandler {
	return &RoomHandler{
		roomService:      roomService,
		priceListService: priceListService,
		logger:           logger,
	}
}

// PriceRoomRequest is the payload for the pure pricing endpoint.
type PriceRoomRequest struct {
	Room      models.Room       `json:"room" binding:"required"`
	PriceList *models.PriceList `json:"price_list"`
	ProjectID string            `json:"project_id,omitempty"`
}

// SaveRoomRequest is the payload for the delta save endpoint.
type SaveRoomRequest struct {
	WorkItems []models.WorkItem `json:"work_items" binding:"required"`
}

// PriceRoom computes a room price breakdown
// @Summary Price a room
// @Description Computes the full price breakdown for the posted work items against a price list. When no price list is posted, the project snapshot or the general list is used. Nothing is persisted.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PriceRoomRequest true "Room and price list"
// @Success 200 {object} models.RoomPriceBreakdown
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/rooms/price [post]
func (h *RoomHandler) PriceRoom(c *gin.Context) {
	var request PriceRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.WithError(err).Error("Invalid room pricing payload")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: *models.NewValidationError("Invalid request payload", err.Error()),
		})
		return
	}

	priceList := request.PriceList
	if priceList == nil {
		contractorID, _, _, err := middleware.GetContractorFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: *models.NewAuthenticationError("Contractor not authenticated"),
			})
			return
		}

		if request.ProjectID != "" {
			priceList, err = h.priceListService.GetProjectPriceList(contractorID.String(), request.ProjectID)
		} else {
			priceList, err = h.priceListService.GetGeneralPriceList(contractorID.String())
		}
		if err != nil {
			h.logger.WithError(err).Error("Failed to resolve price list")
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: *models.NewNotFoundError("Price list not found"),
			})
			return
		}
	}

	breakdown := pricing.CalculateRoomPriceWithMaterials(&request.Room, priceList)

	h.logger.WithFields(logrus.Fields{
		"room_id": request.Room.ID,
		"items":   len(request.Room.WorkItems),
		"total":   breakdown.Total,
	}).Info("Room priced")

	c.JSON(http.StatusOK, breakdown)
}

// GetItems loads the persisted items of a room
// @Summary Load room items
// @Description Loads every persisted work item of a room, with door and window children attached.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /api/rooms/{roomID}/items [get]
func (h *RoomHandler) GetItems(c *gin.Context) {
	roomID := c.Param("roomID")

	items, err := h.roomService.LoadRoomItems(roomID)
	if err != nil {
		h.logger.WithError(err).WithField("room_id", roomID).Error("Failed to load room items")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: *models.NewInternalError("Failed to load room items"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_id":    roomID,
		"work_items": items,
	})
}

// SaveRoom persists the edited items of a room
// @Summary Save room items
// @Description Diffs the posted items against the persisted ones and applies the minimal inserts, updates and deletes. Per-item failures are reported, not fatal.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID"
// @Param request body SaveRoomRequest true "Edited work items"
// @Success 200 {object} models.SaveReport
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/rooms/{roomID}/save [post]
func (h *RoomHandler) SaveRoom(c *gin.Context) {
	roomID := c.Param("roomID")

	var request SaveRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.WithError(err).Error("Invalid room save payload")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: *models.NewValidationError("Invalid request payload", err.Error()),
		})
		return
	}

	contractorID, _, _, err := middleware.GetContractorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: *models.NewAuthenticationError("Contractor not authenticated"),
		})
		return
	}

	report, err := h.roomService.SaveRoom(roomID, contractorID.String(), request.WorkItems)
	if err != nil {
		h.logger.WithError(err).WithField("room_id", roomID).Error("Room save failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: *models.NewInternalError("Failed to save room"),
		})
		return
	}

	status := http.StatusOK
	if !report.OK() {
		// Partial success; the client retries the listed items.
		status = http.StatusMultiStatus
	}
	c.JSON(status, report)
}
