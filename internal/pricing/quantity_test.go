package pricing

import (
	"math"
	"testing"

	"stavquote/internal/models"
)

func TestDeriveQuantityAndUnit(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		propertyID string
		dw         *models.DoorWindowItems
		wantValue  float64
		wantUnit   string
	}{
		{
			name:       "width and height give square meters",
			fields:     map[string]string{models.FieldWidth: "3", models.FieldHeight: "2"},
			propertyID: models.PropPlasteringWall,
			wantValue:  6,
			wantUnit:   models.UnitSquareMeter,
		},
		{
			name:       "width and length give square meters",
			fields:     map[string]string{models.FieldWidth: "2", models.FieldLength: "5"},
			propertyID: models.PropLevelling,
			wantValue:  10,
			wantUnit:   models.UnitSquareMeter,
		},
		{
			name: "area wins over count when both are present",
			fields: map[string]string{
				models.FieldWidth:  "2",
				models.FieldHeight: "3",
				models.FieldCount:  "4",
			},
			propertyID: models.PropPlasteringWall,
			wantValue:  6,
			wantUnit:   models.UnitSquareMeter,
		},
		{
			name:       "length alone gives meters",
			fields:     map[string]string{models.FieldLength: "4"},
			propertyID: models.PropWindowLining,
			wantValue:  4,
			wantUnit:   models.UnitMeter,
		},
		{
			name:       "count gives pieces",
			fields:     map[string]string{models.FieldCount: "3"},
			propertyID: models.PropPlumbing,
			wantValue:  3,
			wantUnit:   models.UnitPiece,
		},
		{
			name:       "slovak outlet count gives pieces",
			fields:     map[string]string{models.FieldOutletsSK: "5"},
			propertyID: models.PropElectricalOutlet,
			wantValue:  5,
			wantUnit:   models.UnitPiece,
		},
		{
			name: "commute multiplies distance by days",
			fields: map[string]string{
				models.FieldDistance: "20",
				models.FieldDays:     "3",
			},
			propertyID: models.PropCommute,
			wantValue:  60,
			wantUnit:   models.UnitKilometer,
		},
		{
			name:       "commute without days assumes one day",
			fields:     map[string]string{models.FieldDistance: "20"},
			propertyID: models.PropCommute,
			wantValue:  20,
			wantUnit:   models.UnitKilometer,
		},
		{
			name:       "duration gives hours",
			fields:     map[string]string{models.FieldDuration: "8"},
			propertyID: models.PropDemolitionWork,
			wantValue:  8,
			wantUnit:   models.UnitHour,
		},
		{
			name:       "circumference gives meters",
			fields:     map[string]string{models.FieldCircumferenceSK: "12"},
			propertyID: models.PropFloatingFloor,
			wantValue:  12,
			wantUnit:   models.UnitMeter,
		},
		{
			name:       "distance without commute gives kilometers",
			fields:     map[string]string{models.FieldDistance: "7"},
			propertyID: models.PropDebrisDisposal,
			wantValue:  7,
			wantUnit:   models.UnitKilometer,
		},
		{
			name:       "rental duration gives days",
			fields:     map[string]string{models.FieldRentalDuration: "5"},
			propertyID: models.PropRentals,
			wantValue:  5,
			wantUnit:   models.UnitDay,
		},
		{
			name:       "comma decimals parse as dots",
			fields:     map[string]string{models.FieldWidth: "2,5", models.FieldHeight: "2"},
			propertyID: models.PropPlasteringWall,
			wantValue:  5,
			wantUnit:   models.UnitSquareMeter,
		},
		{
			name:       "malformed numbers coerce to zero",
			fields:     map[string]string{models.FieldWidth: "abc", models.FieldHeight: "2"},
			propertyID: models.PropPlasteringWall,
			wantValue:  0,
			wantUnit:   models.UnitSquareMeter,
		},
		{
			name:       "empty fields default to zero square meters",
			fields:     map[string]string{},
			propertyID: models.PropPlasteringWall,
			wantValue:  0,
			wantUnit:   models.UnitSquareMeter,
		},
		{
			name: "structured openings are subtracted from the area",
			fields: map[string]string{
				models.FieldWidth:  "3",
				models.FieldHeight: "2.5",
			},
			propertyID: models.PropPlasteringWall,
			dw: &models.DoorWindowItems{
				Doors: []models.Opening{{Width: 1, Height: 2}},
			},
			wantValue: 5.5,
			wantUnit:  models.UnitSquareMeter,
		},
		{
			name: "openings larger than the wall clamp at zero",
			fields: map[string]string{
				models.FieldWidth:  "1",
				models.FieldHeight: "1",
			},
			propertyID: models.PropPlasteringWall,
			dw: &models.DoorWindowItems{
				Doors: []models.Opening{{Width: 2, Height: 2}},
			},
			wantValue: 0,
			wantUnit:  models.UnitSquareMeter,
		},
		{
			name: "legacy counts deduct flat areas without structured openings",
			fields: map[string]string{
				models.FieldWidth:   "4",
				models.FieldHeight:  "3",
				models.FieldDoors:   "2",
				models.FieldWindows: "1",
			},
			propertyID: models.PropPaintingWall,
			wantValue:  6.5,
			wantUnit:   models.UnitSquareMeter,
		},
		{
			name: "structured openings override the legacy counts",
			fields: map[string]string{
				models.FieldWidth:  "4",
				models.FieldHeight: "3",
				models.FieldDoors:  "2",
			},
			propertyID: models.PropPaintingWall,
			dw:         &models.DoorWindowItems{Windows: []models.Opening{{Width: 1, Height: 1}}},
			wantValue:  11,
			wantUnit:   models.UnitSquareMeter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveQuantityAndUnit(tt.fields, tt.propertyID, "", tt.dw)
			if got.Combined {
				t.Fatalf("DeriveQuantityAndUnit(%v) returned a combined cost, want %v %s", tt.fields, tt.wantValue, tt.wantUnit)
			}
			if math.Abs(got.Value-tt.wantValue) > 0.001 {
				t.Errorf("DeriveQuantityAndUnit(%v) = %v, want %v", tt.fields, got.Value, tt.wantValue)
			}
			if got.Unit != tt.wantUnit {
				t.Errorf("DeriveQuantityAndUnit(%v) unit = %q, want %q", tt.fields, got.Unit, tt.wantUnit)
			}
		})
	}
}

func TestDeriveQuantityScaffoldingRental(t *testing.T) {
	fields := map[string]string{
		models.FieldLength:         "4",
		models.FieldHeight:         "2",
		models.FieldRentalDuration: "3",
	}

	got := DeriveQuantityAndUnit(fields, models.PropRentals, "Lešenie", nil)
	if !got.Combined {
		t.Fatalf("DeriveQuantityAndUnit scaffolding rental = %+v, want combined cost", got)
	}
	// 8 m² of scaffolding: assembly 8*30 plus rental 8*10*3.
	want := 8*30.0 + 8*10.0*3
	if math.Abs(got.CombinedCost-want) > 0.001 {
		t.Errorf("DeriveQuantityAndUnit scaffolding cost = %v, want %v", got.CombinedCost, want)
	}
}

func TestDeriveQuantityRentalWithoutScaffoldingSubtitle(t *testing.T) {
	fields := map[string]string{models.FieldRentalDuration: "3"}

	got := DeriveQuantityAndUnit(fields, models.PropRentals, "Core drill", nil)
	if got.Combined {
		t.Fatalf("DeriveQuantityAndUnit plain rental = %+v, want day quantity", got)
	}
	if math.Abs(got.Value-3) > 0.001 || got.Unit != models.UnitDay {
		t.Errorf("DeriveQuantityAndUnit plain rental = %v %s, want 3 %s", got.Value, got.Unit, models.UnitDay)
	}
}
