// Package delta classifies edited work items into minimal database writes.
package delta

import (
	"encoding/json"

	"stavquote/internal/mapping"
	"stavquote/internal/models"
)

// Result partitions the current item set by the write each item needs. The
// delta exists purely to cut round-trips to the data store; applying it has
// no transactional guarantee.
type Result struct {
	ToInsert  []models.WorkItem
	ToUpdate  []models.WorkItem
	ToDelete  []models.WorkItem
	Unchanged []models.WorkItem
}

// OpeningsResult is the analogous partition for one door or window
// collection.
type OpeningsResult struct {
	ToInsert  []models.Opening
	ToUpdate  []models.Opening
	ToDelete  []models.Opening
	Unchanged []models.Opening
}

// ComputeWorkItemsDelta diffs the persisted item set against the edited one.
// Both sides are keyed by c_id (database id as fallback); items without
// either key are always fresh inserts. An item whose target table changed,
// e.g. a custom work flipped to custom material, lands in both ToDelete and
// ToInsert because the two tables are disjoint and an update cannot move a
// row between them.
func ComputeWorkItemsDelta(original, current []models.WorkItem) Result {
	var result Result

	originalByKey := make(map[string]*models.WorkItem, len(original))
	for i := range original {
		if key := itemKey(&original[i]); key != "" {
			originalByKey[key] = &original[i]
		}
	}

	seen := make(map[string]bool, len(current))
	for i := range current {
		item := current[i]
		key := itemKey(&item)
		if key == "" {
			result.ToInsert = append(result.ToInsert, item)
			continue
		}
		orig, exists := originalByKey[key]
		if !exists {
			result.ToInsert = append(result.ToInsert, item)
			continue
		}
		seen[key] = true

		origTable := mapping.GetTableName(orig.PropertyID, orig)
		currTable := mapping.GetTableName(item.PropertyID, &item)
		if origTable != currTable {
			result.ToDelete = append(result.ToDelete, *orig)
			result.ToInsert = append(result.ToInsert, item)
			continue
		}

		switch {
		case rowChanged(orig, &item):
			result.ToUpdate = append(result.ToUpdate, item)
		case openingsChanged(orig, &item):
			// The parent row is byte-identical but its door/window children
			// moved; the save pipeline batches child writes with parent
			// updates, so the parent is still classified as an update.
			result.ToUpdate = append(result.ToUpdate, item)
		default:
			result.Unchanged = append(result.Unchanged, item)
		}
	}

	for i := range original {
		if key := itemKey(&original[i]); key != "" && !seen[key] {
			result.ToDelete = append(result.ToDelete, original[i])
		}
	}

	return result
}

// ComputeDoorWindowDelta diffs one opening collection, keyed like the parent
// items. Two openings are equal when their width and height match.
func ComputeDoorWindowDelta(original, current []models.Opening) OpeningsResult {
	var result OpeningsResult

	originalByKey := make(map[string]*models.Opening, len(original))
	for i := range original {
		if key := openingKey(&original[i]); key != "" {
			originalByKey[key] = &original[i]
		}
	}

	seen := make(map[string]bool, len(current))
	for i := range current {
		opening := current[i]
		key := openingKey(&opening)
		if key == "" {
			result.ToInsert = append(result.ToInsert, opening)
			continue
		}
		orig, exists := originalByKey[key]
		if !exists {
			result.ToInsert = append(result.ToInsert, opening)
			continue
		}
		seen[key] = true
		if orig.Width != opening.Width || orig.Height != opening.Height {
			result.ToUpdate = append(result.ToUpdate, opening)
		} else {
			result.Unchanged = append(result.Unchanged, opening)
		}
	}

	for i := range original {
		if key := openingKey(&original[i]); key != "" && !seen[key] {
			result.ToDelete = append(result.ToDelete, original[i])
		}
	}

	return result
}

// rowChanged compares the database-row representations of both versions
// after stripping volatile metadata, via serialized structural equality.
func rowChanged(orig, curr *models.WorkItem) bool {
	// Mapping assigns a fresh c_id to items that lack one; compare copies so
	// the diff never mutates its inputs.
	o, c := *orig, *curr
	origRow := mapping.WorkItemToDatabase(&o, "", "")
	currRow := mapping.WorkItemToDatabase(&c, "", "")
	if origRow == nil || currRow == nil {
		return origRow != currRow
	}
	return serializeStable(origRow) != serializeStable(currRow)
}

// serializeStable renders a row's non-volatile columns deterministically;
// encoding/json sorts map keys, which makes the output comparable.
func serializeStable(row *mapping.Row) string {
	stripped := make(map[string]interface{}, len(row.Columns))
	for k, v := range row.Columns {
		stripped[k] = v
	}
	for _, volatile := range mapping.VolatileColumns {
		delete(stripped, volatile)
	}
	raw, err := json.Marshal(stripped)
	if err != nil {
		return ""
	}
	return row.Table + ":" + string(raw)
}

// openingsChanged reports whether either child collection differs.
func openingsChanged(orig, curr *models.WorkItem) bool {
	origDoors, origWindows := orig.Openings()
	currDoors, currWindows := curr.Openings()
	return collectionDiffers(origDoors, currDoors) || collectionDiffers(origWindows, currWindows)
}

func collectionDiffers(original, current []models.Opening) bool {
	d := ComputeDoorWindowDelta(original, current)
	return len(d.ToInsert) > 0 || len(d.ToUpdate) > 0 || len(d.ToDelete) > 0
}

func itemKey(item *models.WorkItem) string {
	if item.CID != "" {
		return item.CID
	}
	return item.ID
}

func openingKey(opening *models.Opening) string {
	if opening.CID != "" {
		return opening.CID
	}
	return opening.ID
}
