package mapping

import "stavquote/internal/models"

// Family selects the column shape a work-category table uses.
type Family int

const (
	// FamilyWall stores size1=width, size2=height.
	FamilyWall Family = iota
	// FamilyFloorArea stores size1=width, size2=length.
	FamilyFloorArea
	// FamilyBrick is a wall with four complementary-work flags.
	FamilyBrick
	// FamilyPlasterboard is a wall with a numeric sheet-type column.
	FamilyPlasterboard
	// FamilyTiling is a floor area with the large-format toggle and the
	// three edge-work lengths.
	FamilyTiling
	// FamilyFloor stores width, length and an optional circumference.
	FamilyFloor
	// FamilyLength stores a single length.
	FamilyLength
	// FamilyCount stores a piece count.
	FamilyCount
	// FamilyOutlet stores an outlet count.
	FamilyOutlet
	// FamilyDuration stores worked hours.
	FamilyDuration
	// FamilySanitary stores a sub-type string, a count and a user-entered
	// per-piece product price.
	FamilySanitary
	// FamilyInstallation stores a count and a user-entered per-piece price.
	FamilyInstallation
	// FamilyCustom stores free-form title/quantity/unit/price rows shared by
	// custom work and commute.
	FamilyCustom
	// FamilyScaffolding stores the scaffolding geometry and rental days.
	FamilyScaffolding
	// FamilyRental stores a named rental and its duration.
	FamilyRental
)

// TableSpec describes one work-category table. ParentColumn names the
// foreign-key column door/window child rows use to reference rows of this
// table; it is empty for categories without openings.
type TableSpec struct {
	Name         string
	Family       Family
	PropertyID   string
	ParentColumn string
}

// tableSpecs is the full registry, one entry per persistence table.
var tableSpecs = []TableSpec{
	{"brick_partitions", FamilyBrick, models.PropBrickPartition, "brick_partition_id"},
	{"brick_load_bearing_walls", FamilyBrick, models.PropBrickLoadBearingWall, "brick_load_bearing_wall_id"},
	{"plasterboarding_ceilings", FamilyPlasterboard, models.PropPlasterboardingCeiling, ""},
	{"plasterboarding_partitions", FamilyPlasterboard, models.PropPlasterboardingPartition, "plasterboarding_partition_id"},
	{"plasterboarding_offset_walls", FamilyPlasterboard, models.PropPlasterboardingOffsetWall, "plasterboarding_offset_wall_id"},
	{"netting_walls", FamilyWall, models.PropNettingWall, "netting_wall_id"},
	{"netting_ceilings", FamilyWall, models.PropNettingCeiling, ""},
	{"plastering_walls", FamilyWall, models.PropPlasteringWall, "plastering_wall_id"},
	{"plastering_ceilings", FamilyWall, models.PropPlasteringCeiling, ""},
	{"penetration_coatings", FamilyWall, models.PropPenetrationCoating, "penetration_coating_id"},
	{"painting_walls", FamilyWall, models.PropPaintingWall, "painting_wall_id"},
	{"painting_ceilings", FamilyWall, models.PropPaintingCeiling, ""},
	{"levellings", FamilyFloorArea, models.PropLevelling, ""},
	{"floating_floors", FamilyFloor, models.PropFloatingFloor, ""},
	{"tilings", FamilyTiling, models.PropTiling, ""},
	{"pavings", FamilyTiling, models.PropPaving, ""},
	{"groutings", FamilyFloorArea, models.PropGrouting, ""},
	{"sanitary_installations", FamilySanitary, models.PropSanitaryInstallation, ""},
	{"window_installations", FamilyInstallation, models.PropWindowInstallation, ""},
	{"door_jamb_installations", FamilyInstallation, models.PropDoorJambInstallation, ""},
	{"window_linings", FamilyLength, models.PropWindowLining, ""},
	{"wirings", FamilyOutlet, models.PropWiring, ""},
	{"electrical_outlets", FamilyOutlet, models.PropElectricalOutlet, ""},
	{"plumbings", FamilyCount, models.PropPlumbing, ""},
	{"demolition_works", FamilyDuration, models.PropDemolitionWork, ""},
	{"debris_removals", FamilyDuration, models.PropDebrisRemoval, ""},
	{"debris_disposals", FamilyCount, models.PropDebrisDisposal, ""},
	{"core_drills", FamilyCount, models.PropCoreDrilling, ""},
	{"custom_works", FamilyCustom, models.PropCustomWork, ""},
	{"custom_materials", FamilyCustom, models.PropCustomWork, ""},
	{"scaffoldings", FamilyScaffolding, models.PropScaffolding, ""},
	{"rentals", FamilyRental, models.PropRentals, ""},
}

var specByTable = func() map[string]*TableSpec {
	m := make(map[string]*TableSpec, len(tableSpecs))
	for i := range tableSpecs {
		m[tableSpecs[i].Name] = &tableSpecs[i]
	}
	return m
}()

var specByProperty = func() map[string]*TableSpec {
	m := make(map[string]*TableSpec, len(tableSpecs))
	for i := range tableSpecs {
		spec := &tableSpecs[i]
		// custom_materials shares the CUSTOM_WORK property; the work table
		// wins in the default lookup and GetTableName handles the split.
		if _, exists := m[spec.PropertyID]; !exists {
			m[spec.PropertyID] = spec
		}
	}
	return m
}()

// GetTableName resolves the persistence table for a work item, or "" for an
// unknown property. Custom work items flip between custom_works and
// custom_materials based on the selected sub-type, which is why the delta
// computer treats that flip as a table migration.
func GetTableName(propertyID string, item *models.WorkItem) string {
	switch propertyID {
	case models.PropCustomWork:
		if item != nil && item.SelectedType == models.TypeMaterial {
			return "custom_materials"
		}
		return "custom_works"
	case models.PropCommute:
		return "custom_works"
	}
	if spec, ok := specByProperty[propertyID]; ok {
		return spec.Name
	}
	return ""
}

// SpecForTable returns the registry entry for a table name, or nil.
func SpecForTable(table string) *TableSpec {
	return specByTable[table]
}

// AllTables lists every work-category table, in registry order. The room
// loader iterates this to collect a room's rows.
func AllTables() []TableSpec {
	return tableSpecs
}
