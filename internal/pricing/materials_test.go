package pricing

import (
	"math"
	"testing"

	"stavquote/internal/models"
)

func TestCalculateWorkItemPackagedMaterial(t *testing.T) {
	priceList := &models.PriceList{
		Material: []models.PriceListEntry{
			{
				Name:     "Sadrokartónová doska",
				Subtitle: "Priečka jednoduchá",
				Price:    5,
				Capacity: &models.Capacity{Value: 2.4, Unit: "m²"},
			},
		},
	}
	work := &models.PriceListEntry{Name: "Sadrokartón", Subtitle: "Priečka jednoduchá", Price: 12}

	tests := []struct {
		name             string
		width            string
		height           string
		wantWorkCost     float64
		wantMaterialCost float64
		wantMaterialQty  float64
	}{
		{
			name:   "partial package rounds up",
			width:  "3",
			height: "2.5",
			// 7.5 m² needs ceil(7.5/2.4) = 4 boards.
			wantWorkCost:     90,
			wantMaterialCost: 20,
			wantMaterialQty:  7.5,
		},
		{
			name:             "exact multiple buys whole packages",
			width:            "2",
			height:           "2.4",
			wantWorkCost:     57.6,
			wantMaterialCost: 10,
			wantMaterialQty:  4.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &models.WorkItem{
				PropertyID:   models.PropPlasterboardingPartition,
				Name:         "Plasterboarding",
				Subtitle:     "Partition",
				SelectedType: models.TypeSimple,
				Fields: map[string]string{
					models.FieldWidth:  tt.width,
					models.FieldHeight: tt.height,
				},
			}
			calc := CalculateWorkItemWithMaterials(item, work, priceList, 0, false, 0)
			if math.Abs(calc.WorkCost-tt.wantWorkCost) > 0.001 {
				t.Errorf("WorkCost = %v, want %v", calc.WorkCost, tt.wantWorkCost)
			}
			if math.Abs(calc.MaterialCost-tt.wantMaterialCost) > 0.001 {
				t.Errorf("MaterialCost = %v, want %v", calc.MaterialCost, tt.wantMaterialCost)
			}
			if math.Abs(calc.MaterialQuantity-tt.wantMaterialQty) > 0.001 {
				t.Errorf("MaterialQuantity = %v, want %v", calc.MaterialQuantity, tt.wantMaterialQty)
			}
		})
	}
}

func TestCalculateWorkItemContinuousMaterial(t *testing.T) {
	priceList := &models.PriceList{
		Material: []models.PriceListEntry{
			{Name: "Omietka", Price: 3},
		},
	}
	work := &models.PriceListEntry{Name: "Omietanie", Price: 10}
	item := &models.WorkItem{
		PropertyID: models.PropPlasteringWall,
		Name:       "Plastering",
		Fields: map[string]string{
			models.FieldWidth:  "2",
			models.FieldHeight: "3",
		},
	}

	calc := CalculateWorkItemWithMaterials(item, work, priceList, 0, false, 0)
	if math.Abs(calc.WorkCost-60) > 0.001 {
		t.Errorf("WorkCost = %v, want 60", calc.WorkCost)
	}
	// No package capacity: 6 m² at 3 each.
	if math.Abs(calc.MaterialCost-18) > 0.001 {
		t.Errorf("MaterialCost = %v, want 18", calc.MaterialCost)
	}
}

func TestCalculateWorkItemFloatingFloorWaste(t *testing.T) {
	priceList := &models.PriceList{
		Material: []models.PriceListEntry{
			{Name: "Plávajúca podlaha", Price: 8},
		},
	}
	work := &models.PriceListEntry{Name: "Plávajúca podlaha", Price: 7}
	item := &models.WorkItem{
		PropertyID: models.PropFloatingFloor,
		Name:       "Floating floor",
		Fields: map[string]string{
			models.FieldWidth:  "2",
			models.FieldLength: "5",
		},
	}

	calc := CalculateWorkItemWithMaterials(item, work, priceList, 0, false, 0)
	if math.Abs(calc.WorkCost-70) > 0.001 {
		t.Errorf("WorkCost = %v, want 70", calc.WorkCost)
	}
	// 10 m² inflated by 10% waste and rounded up to 11.
	if math.Abs(calc.MaterialQuantity-11) > 0.001 {
		t.Errorf("MaterialQuantity = %v, want 11", calc.MaterialQuantity)
	}
	if math.Abs(calc.MaterialCost-88) > 0.001 {
		t.Errorf("MaterialCost = %v, want 88", calc.MaterialCost)
	}
}

func TestCalculateWorkItemLargeFormatSkipsMaterial(t *testing.T) {
	priceList := &models.PriceList{
		Material: []models.PriceListEntry{
			{Name: "Obkladačky", Price: 20},
			{Name: "Lepidlo", Subtitle: "Obklad", Price: 10},
		},
	}
	work := &models.PriceListEntry{Name: "Veľký formát", Subtitle: "nad 60cm", Price: 25}
	item := &models.WorkItem{
		PropertyID: models.PropTiling,
		Name:       "Tiling",
		Fields: map[string]string{
			models.FieldWidth:   "5",
			models.FieldHeight:  "1",
			models.FieldAbove60: "1",
		},
	}

	calc := CalculateWorkItemWithMaterials(item, work, priceList, 5, false, 0)
	if math.Abs(calc.WorkCost-125) > 0.001 {
		t.Errorf("WorkCost = %v, want 125", calc.WorkCost)
	}
	if calc.MaterialCost != 0 || calc.Material != "" || calc.AdditionalMaterialCost != 0 {
		t.Errorf("large format costed material: %+v, want none", calc)
	}
}

func TestCalculateWorkItemTilingAdhesive(t *testing.T) {
	priceList := &models.PriceList{
		Material: []models.PriceListEntry{
			{
				Name:     "Lepidlo",
				Subtitle: "Obklad a dlažba",
				Price:    10,
				Capacity: &models.Capacity{Value: 4, Unit: "m²"},
			},
		},
	}
	work := &models.PriceListEntry{Name: "Obklad", Price: 12}
	item := &models.WorkItem{
		PropertyID: models.PropTiling,
		Name:       "Tiling",
		Fields: map[string]string{
			models.FieldWidth:  "5",
			models.FieldHeight: "1",
		},
	}

	// Adhesive is costed off the room aggregate, not this item's area.
	calc := CalculateWorkItemWithMaterials(item, work, priceList, 10, false, 0)
	if calc.AdditionalMaterial != "Lepidlo" {
		t.Errorf("AdditionalMaterial = %q, want Lepidlo", calc.AdditionalMaterial)
	}
	if math.Abs(calc.AdditionalMaterialQuantity-3) > 0.001 {
		t.Errorf("AdditionalMaterialQuantity = %v, want 3 packages", calc.AdditionalMaterialQuantity)
	}
	if math.Abs(calc.AdditionalMaterialCost-30) > 0.001 {
		t.Errorf("AdditionalMaterialCost = %v, want 30", calc.AdditionalMaterialCost)
	}
	if math.Abs(calc.MaterialCost-30) > 0.001 {
		t.Errorf("MaterialCost = %v, want 30", calc.MaterialCost)
	}

	skipped := CalculateWorkItemWithMaterials(item, work, priceList, 10, true, 0)
	if skipped.AdditionalMaterialCost != 0 {
		t.Errorf("AdditionalMaterialCost with skip = %v, want 0", skipped.AdditionalMaterialCost)
	}
}

func TestCalculateWorkItemSanitary(t *testing.T) {
	work := &models.PriceListEntry{Name: "Montáž sanity", Subtitle: "Toilet", Price: 30}
	item := &models.WorkItem{
		PropertyID:   models.PropSanitaryInstallation,
		Name:         "Sanitary installation",
		SelectedType: "Toilet",
		Fields: map[string]string{
			models.FieldCount: "2",
			models.FieldPrice: "150",
		},
	}

	calc := CalculateWorkItemWithMaterials(item, work, &models.PriceList{}, 0, false, 0)
	if math.Abs(calc.WorkCost-60) > 0.001 {
		t.Errorf("WorkCost = %v, want 60", calc.WorkCost)
	}
	// Product price is typed by the contractor, not read from the catalog.
	if math.Abs(calc.MaterialCost-300) > 0.001 {
		t.Errorf("MaterialCost = %v, want 300", calc.MaterialCost)
	}
	if calc.Material != "Toilet" {
		t.Errorf("Material = %q, want Toilet", calc.Material)
	}
}

func TestCalculateWorkItemCustomWork(t *testing.T) {
	item := &models.WorkItem{
		PropertyID:   models.PropCustomWork,
		Name:         "Custom work",
		SelectedUnit: models.UnitPiece,
		Fields: map[string]string{
			models.FieldQuantity: "3",
			models.FieldPrice:    "25",
		},
	}

	calc := CalculateWorkItemWithMaterials(item, nil, &models.PriceList{}, 0, false, 0)
	if math.Abs(calc.WorkCost-75) > 0.001 {
		t.Errorf("WorkCost = %v, want 75", calc.WorkCost)
	}
	if math.Abs(calc.Quantity-3) > 0.001 || calc.Unit != models.UnitPiece {
		t.Errorf("quantity = %v %s, want 3 %s", calc.Quantity, calc.Unit, models.UnitPiece)
	}
}

func TestCalculateWorkItemUnmatchedSlot(t *testing.T) {
	item := &models.WorkItem{
		PropertyID: models.PropPlasteringWall,
		Name:       "Plastering",
		Fields: map[string]string{
			models.FieldWidth:  "2",
			models.FieldHeight: "3",
		},
	}

	calc := CalculateWorkItemWithMaterials(item, nil, &models.PriceList{}, 0, false, 0)
	if calc.WorkCost != 0 || calc.MaterialCost != 0 {
		t.Errorf("unmatched slot costed %+v, want zero contribution", calc)
	}
	if math.Abs(calc.Quantity-6) > 0.001 {
		t.Errorf("Quantity = %v, want 6", calc.Quantity)
	}
}
