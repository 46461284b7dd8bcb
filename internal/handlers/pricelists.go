package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stavquote/internal/middleware"
	"stavquote/internal/models"
	"stavquote/internal/services"
)

// PriceListHandler exposes the general price list and project snapshots.
type PriceListHandler struct {
	priceListService *services.PriceListService
	logger           *logrus.Logger
}

// NewPriceListHandler builds the price list handler.
func NewPriceListHandler(priceListService *services.PriceListService, logger *logrus.Logger) *PriceListHandler {
	return &PriceListHandler{
		priceListService: priceListService,
		logger:           logger,
	}
}

// GetGeneral returns the contractor's general price list
// @Summary Get general price list
// @Description Loads the authenticated contractor's general price list.
// @Tags price-lists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PriceList
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/price-lists/general [get]
func (h *PriceListHandler) GetGeneral(c *gin.Context) {
	contractorID, _, _, err := middleware.GetContractorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: *models.NewAuthenticationError("Contractor not authenticated"),
		})
		return
	}

	priceList, err := h.priceListService.GetGeneralPriceList(contractorID.String())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load general price list")
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: *models.NewNotFoundError("Price list not found"),
		})
		return
	}

	c.JSON(http.StatusOK, priceList)
}

// SaveGeneral stores the contractor's general price list
// @Summary Save general price list
// @Description Stores the general price list and refreshes its flat mirror columns.
// @Tags price-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PriceList true "Price list"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/price-lists/general [put]
func (h *PriceListHandler) SaveGeneral(c *gin.Context) {
	contractorID, _, _, err := middleware.GetContractorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: *models.NewAuthenticationError("Contractor not authenticated"),
		})
		return
	}

	var priceList models.PriceList
	if err := c.ShouldBindJSON(&priceList); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: *models.NewValidationError("Invalid price list payload", err.Error()),
		})
		return
	}

	if err := h.priceListService.SaveGeneralPriceList(contractorID.String(), &priceList); err != nil {
		h.logger.WithError(err).Error("Failed to save general price list")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: *models.NewInternalError("Failed to save price list"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// Snapshot freezes the general price list onto a project
// @Summary Snapshot price list onto a project
// @Description Deep-copies the contractor's general price list onto the project so later edits to the general list do not reprice existing quotes.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} models.PriceList
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/projects/{id}/snapshot [post]
func (h *PriceListHandler) Snapshot(c *gin.Context) {
	projectID := c.Param("id")

	contractorID, _, _, err := middleware.GetContractorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: *models.NewAuthenticationError("Contractor not authenticated"),
		})
		return
	}

	snapshot, err := h.priceListService.SnapshotForProject(contractorID.String(), projectID)
	if err != nil {
		h.logger.WithError(err).WithField("project_id", projectID).Error("Failed to snapshot price list")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: *models.NewInternalError("Failed to snapshot price list"),
		})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
