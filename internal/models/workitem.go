package models

// Property identifiers select both the pricing category and the persistence
// table family of a work item. The string values are stable and stored in
// client-side state, never in the database (the table name is).
const (
	PropBrickPartition            = "BRICK_PARTITION"
	PropBrickLoadBearingWall      = "BRICK_LOAD_BEARING_WALL"
	PropPlasterboardingCeiling    = "PLASTERBOARDING_CEILING"
	PropPlasterboardingPartition  = "PLASTERBOARDING_PARTITION"
	PropPlasterboardingOffsetWall = "PLASTERBOARDING_OFFSET_WALL"
	PropNettingWall               = "NETTING_WALL"
	PropNettingCeiling            = "NETTING_CEILING"
	PropPlasteringWall            = "PLASTERING_WALL"
	PropPlasteringCeiling         = "PLASTERING_CEILING"
	PropPenetrationCoating        = "PENETRATION_COATING"
	PropPaintingWall              = "PAINTING_WALL"
	PropPaintingCeiling           = "PAINTING_CEILING"
	PropLevelling                 = "LEVELLING"
	PropFloatingFloor             = "FLOATING_FLOOR"
	PropTiling                    = "TILING"
	PropPaving                    = "PAVING"
	PropGrouting                  = "GROUTING"
	PropSanitaryInstallation      = "SANITARY_INSTALLATION"
	PropWindowInstallation        = "WINDOW_INSTALLATION"
	PropDoorJambInstallation      = "DOOR_JAMB_INSTALLATION"
	PropWindowLining              = "WINDOW_LINING"
	PropWiring                    = "WIRING"
	PropElectricalOutlet          = "ELECTRICAL_OUTLET"
	PropPlumbing                  = "PLUMBING"
	PropDemolitionWork            = "DEMOLITION_WORK"
	PropDebrisRemoval             = "DEBRIS_REMOVAL"
	PropDebrisDisposal            = "DEBRIS_DISPOSAL"
	PropCoreDrilling              = "CORE_DRILLING"
	PropCommute                   = "COMMUTE"
	PropCustomWork                = "CUSTOM_WORK"
	PropScaffolding               = "SCAFFOLDING"
	PropRentals                   = "RENTALS"
)

// Field names as the UI writes them. Historic records mix English and Slovak
// labels, so every read goes through a bilingual lookup.
const (
	FieldWidth            = "Width"
	FieldWidthSK          = "Šírka"
	FieldHeight           = "Height"
	FieldHeightSK         = "Výška"
	FieldLength           = "Length"
	FieldLengthSK         = "Dĺžka"
	FieldCount            = "Count"
	FieldCountSK          = "Počet"
	FieldOutlets          = "Number of outlets"
	FieldOutletsSK        = "Počet zásuviek"
	FieldCircumference    = "Circumference"
	FieldCircumferenceSK  = "Obvod"
	FieldDuration         = "Duration"
	FieldDurationSK       = "Trvanie"
	FieldDistance         = "Distance"
	FieldDistanceSK       = "Vzdialenosť"
	FieldDays             = "Days"
	FieldDaysSK           = "Dni"
	FieldRentalDuration   = "Rental duration"
	FieldRentalDurationSK = "Doba prenájmu"
	FieldPrice            = "Price"
	FieldPriceSK          = "Cena"
	FieldQuantity         = "Quantity"
	FieldQuantitySK       = "Množstvo"
	FieldName             = "Name"
	FieldNameSK           = "Názov"
	FieldDoors            = "Doors"
	FieldDoorsSK          = "Dvere"
	FieldWindows          = "Windows"
	FieldWindowsSK        = "Okná"
	FieldJollyEdging      = "Jolly edging"
	FieldJollyEdgingSK    = "Jolly hrana"
	FieldPlinthCutting    = "Plinth cutting"
	FieldPlinthCuttingSK  = "Rezanie sokla"
	FieldPlinthBonding    = "Plinth bonding"
	FieldPlinthBondingSK  = "Lepenie sokla"
	FieldAbove60          = "Above 60cm"
	FieldAbove60SK        = "Nad 60cm"
)

// Physical units produced by the quantity deriver.
const (
	UnitSquareMeter = "m²"
	UnitMeter       = "m"
	UnitPiece       = "piece"
	UnitHour        = "hour"
	UnitKilometer   = "km"
	UnitDay         = "day"
)

// Selected plasterboarding sheet types. The numeric codes are what the
// plasterboarding tables persist in their type column.
const (
	TypeSimple = "Simple"
	TypeDouble = "Double"
	TypeTriple = "Triple"
)

// Custom-work sub-types. Flipping between them moves the item to a different
// table, which the delta computer turns into a delete+insert pair.
const (
	TypeWork     = "Work"
	TypeMaterial = "Material"
)

// Opening is a door or window cut out of a wall item. It is owned by exactly
// one work item and its area is subtracted from the parent's quantity.
type Opening struct {
	ID     string  `json:"id,omitempty"`
	CID    string  `json:"c_id,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DoorWindowItems groups the structured openings of a work item. Old records
// predate structured openings and carry plain door/window counts in Fields
// instead; a nil DoorWindowItems pointer selects the legacy flat deduction.
type DoorWindowItems struct {
	Doors   []Opening `json:"doors"`
	Windows []Opening `json:"windows"`
}

// WorkItem is the in-memory shape of one priced line of a room. Fields holds
// free-form user input keyed by semantic label; which keys are present, not a
// type tag, decides how the quantity is derived.
type WorkItem struct {
	ID                 string            `json:"id,omitempty"`
	CID                string            `json:"c_id,omitempty"`
	PropertyID         string            `json:"property_id"`
	Name               string            `json:"name"`
	Subtitle           string            `json:"subtitle,omitempty"`
	SelectedType       string            `json:"selected_type,omitempty"`
	SelectedUnit       string            `json:"selected_unit,omitempty"`
	Fields             map[string]string `json:"fields"`
	ComplementaryWorks map[string]int    `json:"complementary_works,omitempty"`
	DoorWindowItems    *DoorWindowItems  `json:"door_window_items,omitempty"`
	LinkedToParent     bool              `json:"linked_to_parent,omitempty"`
	LinkedWorkKey      string            `json:"linked_work_key,omitempty"`
}

// Openings returns the structured doors and windows, or nil slices when the
// item still uses the legacy count fields.
func (w *WorkItem) Openings() ([]Opening, []Opening) {
	if w.DoorWindowItems == nil {
		return nil, nil
	}
	return w.DoorWindowItems.Doors, w.DoorWindowItems.Windows
}
