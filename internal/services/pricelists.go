package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"stavquote/internal/models"
	"stavquote/pkg/database"
)

// PriceListService manages the contractor's general price list and the
// per-project snapshots frozen from it.
type PriceListService struct {
	dbClient *database.Client
	logger   *logrus.Logger
}

// NewPriceListService builds the price list service.
func NewPriceListService(dbClient *database.Client, logger *logrus.Logger) *PriceListService {
	return &PriceListService{
		dbClient: dbClient,
		logger:   logger,
	}
}

// GetGeneralPriceList loads the contractor's current general price list.
func (s *PriceListService) GetGeneralPriceList(userID string) (*models.PriceList, error) {
	priceList, err := s.dbClient.LoadGeneralPriceList(userID)
	if err != nil {
		return nil, err
	}
	if priceList == nil {
		return nil, fmt.Errorf("no price list found for user: %s", userID)
	}
	return priceList, nil
}

// SaveGeneralPriceList stores the general price list and refreshes the flat
// mirror columns alongside the JSON document.
func (s *PriceListService) SaveGeneralPriceList(userID string, priceList *models.PriceList) error {
	return s.dbClient.SavePriceList(userID, priceList)
}

// SnapshotForProject freezes the contractor's general price list onto a
// project. The snapshot is a deep copy, so later edits to the general list
// leave already-quoted projects untouched.
func (s *PriceListService) SnapshotForProject(userID, projectID string) (*models.PriceList, error) {
	general, err := s.GetGeneralPriceList(userID)
	if err != nil {
		return nil, err
	}

	snapshot, err := general.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("copying price list for project %s: %w", projectID, err)
	}

	if err := s.dbClient.SaveProjectSnapshot(projectID, snapshot); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"project_id": projectID,
	}).Info("Price list frozen onto project")

	return snapshot, nil
}

// GetProjectPriceList returns the project's frozen price list, falling back
// to the contractor's general list when the project never snapshotted one.
func (s *PriceListService) GetProjectPriceList(userID, projectID string) (*models.PriceList, error) {
	snapshot, err := s.dbClient.LoadProjectSnapshot(projectID)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		return snapshot, nil
	}
	return s.GetGeneralPriceList(userID)
}
