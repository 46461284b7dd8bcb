package pricing

import (
	"stavquote/internal/models"
)

// Legacy flat opening deductions for records that predate structured
// door/window children.
const (
	legacyDoorArea   = 2.0
	legacyWindowArea = 1.5
)

// Hard-coded scaffolding rates. Scaffolding is deliberately not catalog
// driven: assembly per m² plus a daily rental per m².
const (
	scaffoldingAssemblyRate = 30.0
	scaffoldingDailyRate    = 10.0
)

// Quantity is the deriver's result. Scaffolding rentals short-circuit the
// unit/quantity pair and return a pre-combined cost instead, because their
// price has two components (assembly plus daily rental).
type Quantity struct {
	Value        float64
	Unit         string
	Combined     bool
	CombinedCost float64
}

// DeriveQuantityAndUnit computes a work item's quantity and physical unit
// from its free-form field bag. The checks run in a fixed priority order and
// the first matching combination wins; real records can carry several field
// keys at once, so the order must not change.
func DeriveQuantityAndUnit(fields map[string]string, propertyID string, subtitle string, dw *models.DoorWindowItems) Quantity {
	width := fieldNumber(fields, models.FieldWidth, models.FieldWidthSK)
	height := fieldNumber(fields, models.FieldHeight, models.FieldHeightSK)
	length := fieldNumber(fields, models.FieldLength, models.FieldLengthSK)

	hasWidth := fieldPresent(fields, models.FieldWidth, models.FieldWidthSK)
	hasHeight := fieldPresent(fields, models.FieldHeight, models.FieldHeightSK)
	hasLength := fieldPresent(fields, models.FieldLength, models.FieldLengthSK)

	switch {
	case hasWidth && hasHeight:
		return areaQuantity(width*height, fields, dw)
	case hasWidth && hasLength:
		return areaQuantity(width*length, fields, dw)
	case hasLength && !hasHeight:
		return Quantity{Value: clampZero(length), Unit: models.UnitMeter}
	}

	if fieldPresent(fields, models.FieldCount, models.FieldCountSK, models.FieldOutlets, models.FieldOutletsSK) {
		count := fieldNumber(fields, models.FieldCount, models.FieldCountSK)
		if count == 0 {
			count = fieldNumber(fields, models.FieldOutlets, models.FieldOutletsSK)
		}
		return Quantity{Value: clampZero(count), Unit: models.UnitPiece}
	}

	hasDistance := fieldPresent(fields, models.FieldDistance, models.FieldDistanceSK)

	// Commute multiplies distance by days and must win over the plain
	// duration check below, since commute records carry both keys.
	if hasDistance && propertyID == models.PropCommute {
		distance := fieldNumber(fields, models.FieldDistance, models.FieldDistanceSK)
		days := fieldNumber(fields, models.FieldDays, models.FieldDaysSK)
		if days < 1 {
			days = 1
		}
		return Quantity{Value: clampZero(distance * days), Unit: models.UnitKilometer}
	}

	if fieldPresent(fields, models.FieldDuration, models.FieldDurationSK) {
		duration := fieldNumber(fields, models.FieldDuration, models.FieldDurationSK)
		return Quantity{Value: clampZero(duration), Unit: models.UnitHour}
	}

	if fieldPresent(fields, models.FieldCircumference, models.FieldCircumferenceSK) {
		circumference := fieldNumber(fields, models.FieldCircumference, models.FieldCircumferenceSK)
		return Quantity{Value: clampZero(circumference), Unit: models.UnitMeter}
	}

	if hasDistance {
		distance := fieldNumber(fields, models.FieldDistance, models.FieldDistanceSK)
		return Quantity{Value: clampZero(distance), Unit: models.UnitKilometer}
	}

	if fieldPresent(fields, models.FieldRentalDuration, models.FieldRentalDurationSK) {
		days := fieldNumber(fields, models.FieldRentalDuration, models.FieldRentalDurationSK)
		if mentionsScaffolding(subtitle) {
			// Scaffolding pricing is two-component, so the deriver returns a
			// pre-combined cost instead of a unit/quantity pair.
			area := width * height
			if area == 0 {
				area = length * height
			}
			cost := area*scaffoldingAssemblyRate + area*scaffoldingDailyRate*days
			return Quantity{Combined: true, CombinedCost: clampZero(cost)}
		}
		return Quantity{Value: clampZero(days), Unit: models.UnitDay}
	}

	return Quantity{Unit: models.UnitSquareMeter}
}

// areaQuantity subtracts door and window openings from an area-based
// quantity and clamps the result at zero. Items without structured openings
// fall back to the legacy flat deduction read from the count fields.
func areaQuantity(area float64, fields map[string]string, dw *models.DoorWindowItems) Quantity {
	if dw != nil {
		for _, d := range dw.Doors {
			area -= d.Width * d.Height
		}
		for _, w := range dw.Windows {
			area -= w.Width * w.Height
		}
	} else {
		doors := fieldNumber(fields, models.FieldDoors, models.FieldDoorsSK)
		windows := fieldNumber(fields, models.FieldWindows, models.FieldWindowsSK)
		area -= doors*legacyDoorArea + windows*legacyWindowArea
	}
	return Quantity{Value: clampZero(area), Unit: models.UnitSquareMeter}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
