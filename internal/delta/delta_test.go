package delta

import (
	"testing"

	"stavquote/internal/models"
)

func wallItem(cid, width, height string) models.WorkItem {
	return models.WorkItem{
		CID:        cid,
		PropertyID: models.PropPlasteringWall,
		Name:       "Plastering",
		Fields: map[string]string{
			models.FieldWidth:  width,
			models.FieldHeight: height,
		},
	}
}

func TestComputeWorkItemsDeltaUnchanged(t *testing.T) {
	original := []models.WorkItem{wallItem("a", "3", "2"), wallItem("b", "4", "2.5")}
	current := []models.WorkItem{wallItem("a", "3", "2"), wallItem("b", "4", "2.5")}

	d := ComputeWorkItemsDelta(original, current)

	if len(d.Unchanged) != 2 {
		t.Errorf("len(Unchanged) = %d, want 2", len(d.Unchanged))
	}
	if len(d.ToInsert)+len(d.ToUpdate)+len(d.ToDelete) != 0 {
		t.Errorf("identical sets produced writes: %+v", d)
	}
}

func TestComputeWorkItemsDeltaClassification(t *testing.T) {
	original := []models.WorkItem{
		wallItem("keep", "3", "2"),
		wallItem("edit", "4", "2.5"),
		wallItem("gone", "2", "2"),
	}
	current := []models.WorkItem{
		wallItem("keep", "3", "2"),
		wallItem("edit", "4", "3"),
		wallItem("", "5", "2"),
	}

	d := ComputeWorkItemsDelta(original, current)

	if len(d.Unchanged) != 1 || d.Unchanged[0].CID != "keep" {
		t.Errorf("Unchanged = %+v, want the keep item", d.Unchanged)
	}
	if len(d.ToUpdate) != 1 || d.ToUpdate[0].CID != "edit" {
		t.Errorf("ToUpdate = %+v, want the edited item", d.ToUpdate)
	}
	if len(d.ToInsert) != 1 {
		t.Errorf("len(ToInsert) = %d, want the keyless item", len(d.ToInsert))
	}
	if len(d.ToDelete) != 1 || d.ToDelete[0].CID != "gone" {
		t.Errorf("ToDelete = %+v, want the removed item", d.ToDelete)
	}
}

func TestComputeWorkItemsDeltaFallsBackToDatabaseID(t *testing.T) {
	orig := wallItem("", "3", "2")
	orig.ID = "row-1"
	curr := wallItem("", "3", "2.5")
	curr.ID = "row-1"

	d := ComputeWorkItemsDelta([]models.WorkItem{orig}, []models.WorkItem{curr})

	if len(d.ToUpdate) != 1 || d.ToUpdate[0].ID != "row-1" {
		t.Errorf("delta = %+v, want an update keyed by database id", d)
	}
}

func TestComputeWorkItemsDeltaTableMigration(t *testing.T) {
	orig := models.WorkItem{
		CID:          "c1",
		PropertyID:   models.PropCustomWork,
		SelectedType: models.TypeWork,
		SelectedUnit: models.UnitPiece,
		Fields: map[string]string{
			models.FieldName:     "Extra",
			models.FieldQuantity: "2",
			models.FieldPrice:    "10",
		},
	}
	curr := orig
	curr.SelectedType = models.TypeMaterial

	d := ComputeWorkItemsDelta([]models.WorkItem{orig}, []models.WorkItem{curr})

	// custom_works and custom_materials are disjoint tables, so the flip
	// cannot be an update.
	if len(d.ToDelete) != 1 || d.ToDelete[0].SelectedType != models.TypeWork {
		t.Errorf("ToDelete = %+v, want the original work row", d.ToDelete)
	}
	if len(d.ToInsert) != 1 || d.ToInsert[0].SelectedType != models.TypeMaterial {
		t.Errorf("ToInsert = %+v, want the new material row", d.ToInsert)
	}
	if len(d.ToUpdate) != 0 || len(d.Unchanged) != 0 {
		t.Errorf("table migration produced %+v, want only delete+insert", d)
	}
}

func TestComputeWorkItemsDeltaOpeningsOnlyChange(t *testing.T) {
	orig := wallItem("a", "3", "2")
	orig.DoorWindowItems = &models.DoorWindowItems{
		Doors: []models.Opening{{CID: "d1", Width: 1, Height: 2}},
	}
	curr := wallItem("a", "3", "2")
	curr.DoorWindowItems = &models.DoorWindowItems{
		Doors: []models.Opening{{CID: "d1", Width: 1, Height: 2.1}},
	}

	d := ComputeWorkItemsDelta([]models.WorkItem{orig}, []models.WorkItem{curr})

	if len(d.ToUpdate) != 1 {
		t.Errorf("delta = %+v, want an update carrying the opening change", d)
	}
}

func TestComputeWorkItemsDeltaDoesNotMutateInputs(t *testing.T) {
	orig := wallItem("", "3", "2")
	orig.ID = "row-1"
	curr := wallItem("", "3", "2.5")
	curr.ID = "row-1"
	original := []models.WorkItem{orig}
	current := []models.WorkItem{curr}

	ComputeWorkItemsDelta(original, current)

	// The row comparison runs the items through the database mapping, which
	// assigns missing c_ids; that must never leak into the inputs.
	if original[0].CID != "" || current[0].CID != "" {
		t.Errorf("delta assigned c_ids to its inputs: %q, %q", original[0].CID, current[0].CID)
	}
}

func TestComputeDoorWindowDelta(t *testing.T) {
	original := []models.Opening{
		{CID: "keep", Width: 1, Height: 2},
		{CID: "edit", Width: 1, Height: 2},
		{CID: "gone", Width: 0.8, Height: 2},
	}
	current := []models.Opening{
		{CID: "keep", Width: 1, Height: 2},
		{CID: "edit", Width: 1.2, Height: 2},
		{Width: 0.6, Height: 0.6},
	}

	d := ComputeDoorWindowDelta(original, current)

	if len(d.Unchanged) != 1 || d.Unchanged[0].CID != "keep" {
		t.Errorf("Unchanged = %+v, want the keep opening", d.Unchanged)
	}
	if len(d.ToUpdate) != 1 || d.ToUpdate[0].CID != "edit" {
		t.Errorf("ToUpdate = %+v, want the resized opening", d.ToUpdate)
	}
	if len(d.ToInsert) != 1 {
		t.Errorf("len(ToInsert) = %d, want the keyless opening", len(d.ToInsert))
	}
	if len(d.ToDelete) != 1 || d.ToDelete[0].CID != "gone" {
		t.Errorf("ToDelete = %+v, want the removed opening", d.ToDelete)
	}
}
