package services

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"stavquote/internal/delta"
	"stavquote/internal/mapping"
	"stavquote/internal/models"
	"stavquote/pkg/database"
)

const (
	doorsTable   = "doors"
	windowsTable = "windows"
)

// RoomService loads and saves the work items of a room across the
// per-category tables.
type RoomService struct {
	dbClient *database.Client
	logger   *logrus.Logger
}

// NewRoomService builds the room service.
func NewRoomService(dbClient *database.Client, logger *logrus.Logger) *RoomService {
	return &RoomService{
		dbClient: dbClient,
		logger:   logger,
	}
}

// LoadRoomItems collects a room's work items from every category table.
// Items of wall categories come back with their door and window children
// attached.
func (s *RoomService) LoadRoomItems(roomID string) ([]models.WorkItem, error) {
	var items []models.WorkItem

	for _, spec := range mapping.AllTables() {
		rows, err := s.dbClient.LoadRoomRows(spec.Name, roomID)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", spec.Name, err)
		}

		for i := range rows {
			item := mapping.DatabaseToWorkItem(&rows[i])
			if item == nil {
				continue
			}
			if spec.ParentColumn != "" && item.CID != "" {
				dw, err := s.loadItemOpenings(spec.ParentColumn, item.CID)
				if err != nil {
					return nil, err
				}
				item.DoorWindowItems = dw
			}
			items = append(items, *item)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"room_id":     roomID,
		"total_items": len(items),
	}).Debug("Room items loaded")

	return items, nil
}

func (s *RoomService) loadItemOpenings(parentColumn, parentCID string) (*models.DoorWindowItems, error) {
	doors, err := s.dbClient.LoadOpenings(doorsTable, parentColumn, parentCID)
	if err != nil {
		return nil, fmt.Errorf("loading doors: %w", err)
	}
	windows, err := s.dbClient.LoadOpenings(windowsTable, parentColumn, parentCID)
	if err != nil {
		return nil, fmt.Errorf("loading windows: %w", err)
	}
	if len(doors) == 0 && len(windows) == 0 {
		return nil, nil
	}
	return &models.DoorWindowItems{Doors: doors, Windows: windows}, nil
}

// SaveRoom persists the edited item set. The original rows are loaded first,
// the delta decides the minimal writes, and the writes fan out with each
// item's failure captured independently so one bad row does not abort the
// rest.
func (s *RoomService) SaveRoom(roomID, userID string, items []models.WorkItem) (*models.SaveReport, error) {
	original, err := s.LoadRoomItems(roomID)
	if err != nil {
		return nil, fmt.Errorf("loading original items: %w", err)
	}

	d := delta.ComputeWorkItemsDelta(original, items)

	originalByCID := make(map[string]*models.WorkItem, len(original))
	for i := range original {
		if original[i].CID != "" {
			originalByCID[original[i].CID] = &original[i]
		}
	}

	report := &models.SaveReport{Unchanged: len(d.Unchanged)}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	fail := func(item *models.WorkItem) {
		mu.Lock()
		report.FailedIDs = append(report.FailedIDs, reportKey(item))
		mu.Unlock()
	}

	for i := range d.ToDelete {
		wg.Add(1)
		go func(item *models.WorkItem) {
			defer wg.Done()
			if err := s.deleteItem(item); err != nil {
				s.logger.WithError(err).WithField("c_id", item.CID).Error("Failed to delete work item")
				fail(item)
				return
			}
			mu.Lock()
			report.Deleted++
			mu.Unlock()
		}(&d.ToDelete[i])
	}

	for i := range d.ToInsert {
		wg.Add(1)
		go func(item *models.WorkItem) {
			defer wg.Done()
			row := mapping.WorkItemToDatabase(item, roomID, userID)
			if row == nil {
				s.logger.WithFields(logrus.Fields{
					"property_id": item.PropertyID,
					"item_id":     item.ID,
				}).Warn("Work item has no persistence table, skipping")
				mu.Lock()
				report.SkippedIDs = append(report.SkippedIDs, reportKey(item))
				mu.Unlock()
				return
			}
			if err := s.dbClient.UpsertWorkItemRow(row); err != nil {
				fail(item)
				return
			}
			if err := s.writeAllOpenings(item); err != nil {
				s.logger.WithError(err).WithField("c_id", item.CID).Error("Failed to save openings")
				fail(item)
				return
			}
			mu.Lock()
			report.Inserted++
			mu.Unlock()
		}(&d.ToInsert[i])
	}

	for i := range d.ToUpdate {
		wg.Add(1)
		go func(item *models.WorkItem) {
			defer wg.Done()
			row := mapping.WorkItemToDatabase(item, roomID, userID)
			if row == nil {
				mu.Lock()
				report.SkippedIDs = append(report.SkippedIDs, reportKey(item))
				mu.Unlock()
				return
			}
			if err := s.dbClient.UpsertWorkItemRow(row); err != nil {
				fail(item)
				return
			}
			if err := s.applyOpeningDeltas(originalByCID[item.CID], item); err != nil {
				s.logger.WithError(err).WithField("c_id", item.CID).Error("Failed to update openings")
				fail(item)
				return
			}
			mu.Lock()
			report.Updated++
			mu.Unlock()
		}(&d.ToUpdate[i])
	}

	wg.Wait()

	s.logger.WithFields(logrus.Fields{
		"room_id":   roomID,
		"inserted":  report.Inserted,
		"updated":   report.Updated,
		"deleted":   report.Deleted,
		"unchanged": report.Unchanged,
		"failed":    len(report.FailedIDs),
		"skipped":   len(report.SkippedIDs),
	}).Info("Room saved")

	return report, nil
}

// deleteItem removes a work item row and, for wall categories, its door and
// window children.
func (s *RoomService) deleteItem(item *models.WorkItem) error {
	table := mapping.GetTableName(item.PropertyID, item)
	if table == "" {
		return fmt.Errorf("no table for property %s", item.PropertyID)
	}
	spec := mapping.SpecForTable(table)
	if spec != nil && spec.ParentColumn != "" && item.CID != "" {
		if err := s.dbClient.DeleteOpeningsByParent(doorsTable, spec.ParentColumn, item.CID); err != nil {
			return err
		}
		if err := s.dbClient.DeleteOpeningsByParent(windowsTable, spec.ParentColumn, item.CID); err != nil {
			return err
		}
	}
	return s.dbClient.DeleteWorkItemRow(table, item.CID)
}

// writeAllOpenings writes every door and window child of a fresh item.
func (s *RoomService) writeAllOpenings(item *models.WorkItem) error {
	if item.DoorWindowItems == nil {
		return nil
	}
	spec := mapping.SpecForTable(mapping.GetTableName(item.PropertyID, item))
	if spec == nil || spec.ParentColumn == "" {
		return nil
	}
	for i := range item.DoorWindowItems.Doors {
		if err := s.dbClient.UpsertOpening(doorsTable, spec.ParentColumn, item.CID, &item.DoorWindowItems.Doors[i]); err != nil {
			return err
		}
	}
	for i := range item.DoorWindowItems.Windows {
		if err := s.dbClient.UpsertOpening(windowsTable, spec.ParentColumn, item.CID, &item.DoorWindowItems.Windows[i]); err != nil {
			return err
		}
	}
	return nil
}

// applyOpeningDeltas diffs an updated item's doors and windows against the
// persisted ones and applies the minimal writes.
func (s *RoomService) applyOpeningDeltas(orig, curr *models.WorkItem) error {
	spec := mapping.SpecForTable(mapping.GetTableName(curr.PropertyID, curr))
	if spec == nil || spec.ParentColumn == "" {
		return nil
	}

	var origDoors, origWindows, currDoors, currWindows []models.Opening
	if orig != nil && orig.DoorWindowItems != nil {
		origDoors = orig.DoorWindowItems.Doors
		origWindows = orig.DoorWindowItems.Windows
	}
	if curr.DoorWindowItems != nil {
		currDoors = curr.DoorWindowItems.Doors
		currWindows = curr.DoorWindowItems.Windows
	}

	if err := s.applyOpeningDelta(doorsTable, spec.ParentColumn, curr.CID, origDoors, currDoors); err != nil {
		return err
	}
	return s.applyOpeningDelta(windowsTable, spec.ParentColumn, curr.CID, origWindows, currWindows)
}

func (s *RoomService) applyOpeningDelta(table, parentColumn, parentCID string, original, current []models.Opening) error {
	d := delta.ComputeDoorWindowDelta(original, current)
	for i := range d.ToDelete {
		if err := s.dbClient.DeleteOpening(table, d.ToDelete[i].CID); err != nil {
			return err
		}
	}
	for i := range d.ToInsert {
		if err := s.dbClient.UpsertOpening(table, parentColumn, parentCID, &d.ToInsert[i]); err != nil {
			return err
		}
	}
	for i := range d.ToUpdate {
		if err := s.dbClient.UpsertOpening(table, parentColumn, parentCID, &d.ToUpdate[i]); err != nil {
			return err
		}
	}
	return nil
}

// reportKey identifies an item in the save report, matching the delta's
// keying.
func reportKey(item *models.WorkItem) string {
	if item.CID != "" {
		return item.CID
	}
	return item.ID
}
