package pricing

import (
	"testing"

	"stavquote/internal/models"
)

func TestFindPriceListItemPlasterboarding(t *testing.T) {
	priceList := &models.PriceList{
		Work: []models.PriceListEntry{
			{Name: "Sadrokartón", Subtitle: "Strop", Price: 10},
			{Name: "Sadrokartón", Subtitle: "Priečka jednoduchá", Price: 12},
			{Name: "Sadrokartón", Subtitle: "Priečka dvojitá", Price: 15},
			{Name: "Sadrokartón", Subtitle: "Predsadená stena dvojitá", Price: 14},
		},
	}

	tests := []struct {
		name         string
		propertyID   string
		subtitle     string
		selectedType string
		wantSubtitle string
	}{
		{
			name:         "english partition with simple type matches slovak slot",
			propertyID:   models.PropPlasterboardingPartition,
			subtitle:     "Partition",
			selectedType: models.TypeSimple,
			wantSubtitle: "Priečka jednoduchá",
		},
		{
			name:         "double type selects the double slot",
			propertyID:   models.PropPlasterboardingPartition,
			subtitle:     "Partition",
			selectedType: models.TypeDouble,
			wantSubtitle: "Priečka dvojitá",
		},
		{
			name:         "ceiling ignores the selected type",
			propertyID:   models.PropPlasterboardingCeiling,
			subtitle:     "Ceiling",
			selectedType: models.TypeSimple,
			wantSubtitle: "Strop",
		},
		{
			name:         "offset wall with double type",
			propertyID:   models.PropPlasterboardingOffsetWall,
			subtitle:     "Offset wall",
			selectedType: models.TypeDouble,
			wantSubtitle: "Predsadená stena dvojitá",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &models.WorkItem{
				PropertyID:   tt.propertyID,
				Name:         "Plasterboarding",
				Subtitle:     tt.subtitle,
				SelectedType: tt.selectedType,
			}
			got := FindPriceListItem(item, priceList)
			if got == nil {
				t.Fatalf("FindPriceListItem(%s/%s) = nil, want %q", tt.propertyID, tt.selectedType, tt.wantSubtitle)
			}
			if got.Subtitle != tt.wantSubtitle {
				t.Errorf("FindPriceListItem(%s/%s) = %q, want %q", tt.propertyID, tt.selectedType, got.Subtitle, tt.wantSubtitle)
			}
		})
	}
}

func TestFindPriceListItemNettingCeilingWallSplit(t *testing.T) {
	priceList := &models.PriceList{
		Work: []models.PriceListEntry{
			{Name: "Sieťkovanie", Subtitle: "Strop", Price: 7},
			{Name: "Sieťkovanie", Subtitle: "Stena", Price: 6},
		},
	}

	wall := &models.WorkItem{PropertyID: models.PropNettingWall, Name: "Netting", Subtitle: "Wall"}
	if got := FindPriceListItem(wall, priceList); got == nil || got.Subtitle != "Stena" {
		t.Errorf("FindPriceListItem(netting wall) = %v, want Stena slot", got)
	}

	ceiling := &models.WorkItem{PropertyID: models.PropNettingCeiling, Name: "Netting", Subtitle: "Ceiling"}
	if got := FindPriceListItem(ceiling, priceList); got == nil || got.Subtitle != "Strop" {
		t.Errorf("FindPriceListItem(netting ceiling) = %v, want Strop slot", got)
	}
}

func TestFindPriceListItemSanitaryExactSubtitle(t *testing.T) {
	priceList := &models.PriceList{
		Installations: []models.PriceListEntry{
			{Name: "Montáž sanity", Subtitle: "Toilet bowl", Price: 45},
			{Name: "Montáž sanity", Subtitle: "Toilet", Price: 30},
		},
	}

	item := &models.WorkItem{
		PropertyID:   models.PropSanitaryInstallation,
		Name:         "Sanitary installation",
		SelectedType: "Toilet",
	}
	got := FindPriceListItem(item, priceList)
	if got == nil || got.Subtitle != "Toilet" {
		t.Errorf("FindPriceListItem(sanitary Toilet) = %v, want the Toilet slot", got)
	}

	item.SelectedType = "Bidet"
	if got := FindPriceListItem(item, priceList); got != nil {
		t.Errorf("FindPriceListItem(sanitary Bidet) = %v, want nil without an exact slot", got)
	}
}

func TestFindPriceListItemPainting(t *testing.T) {
	priceList := &models.PriceList{
		Work: []models.PriceListEntry{
			{Name: "Maľovanie", Subtitle: "strop", Price: 4},
			{Name: "Maľovanie", Subtitle: "wall", Price: 3},
		},
	}

	wall := &models.WorkItem{PropertyID: models.PropPaintingWall, Name: "Painting", Subtitle: "Stena"}
	if got := FindPriceListItem(wall, priceList); got == nil || got.Subtitle != "wall" {
		t.Errorf("FindPriceListItem(painting Stena) = %v, want the wall slot", got)
	}

	ceiling := &models.WorkItem{PropertyID: models.PropPaintingCeiling, Name: "Painting"}
	if got := FindPriceListItem(ceiling, priceList); got == nil || got.Subtitle != "strop" {
		t.Errorf("FindPriceListItem(painting ceiling) = %v, want the strop slot", got)
	}

	untagged := &models.PriceList{
		Work: []models.PriceListEntry{{Name: "Painting", Price: 3}},
	}
	if got := FindPriceListItem(wall, untagged); got == nil {
		t.Errorf("FindPriceListItem(painting wall, untagged slot) = nil, want the untagged slot")
	}
}

func TestFindPriceListItemLargeFormat(t *testing.T) {
	priceList := &models.PriceList{
		Work: []models.PriceListEntry{
			{Name: "Obklad", Price: 12},
			{Name: "Veľký formát", Subtitle: "nad 60cm", Price: 25},
		},
	}

	tests := []struct {
		name string
		item *models.WorkItem
	}{
		{
			name: "above-60 toggle selects the large format slot",
			item: &models.WorkItem{
				PropertyID: models.PropTiling,
				Name:       "Tiling",
				Fields:     map[string]string{models.FieldAbove60: "1"},
			},
		},
		{
			name: "above-60 subtitle selects the large format slot",
			item: &models.WorkItem{
				PropertyID: models.PropTiling,
				Name:       "Tiling",
				Subtitle:   "Obklad nad 60 cm",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPriceListItem(tt.item, priceList)
			if got == nil || got.Name != "Veľký formát" {
				t.Errorf("FindPriceListItem(%s) = %v, want the large format slot", tt.name, got)
			}
		})
	}

	plain := &models.WorkItem{PropertyID: models.PropTiling, Name: "Tiling"}
	if got := FindPriceListItem(plain, priceList); got == nil || got.Name != "Obklad" {
		t.Errorf("FindPriceListItem(plain tiling) = %v, want the Obklad slot", got)
	}
}

func TestFindPriceListItemRentalsByName(t *testing.T) {
	priceList := &models.PriceList{
		Others: []models.PriceListEntry{
			{Name: "Core drill rental", Price: 15},
		},
	}

	item := &models.WorkItem{PropertyID: models.PropRentals, Name: "Core drill rental"}
	if got := FindPriceListItem(item, priceList); got == nil || got.Price != 15 {
		t.Errorf("FindPriceListItem(rental by name) = %v, want the rental slot", got)
	}

	unnamed := &models.WorkItem{PropertyID: models.PropRentals}
	if got := FindPriceListItem(unnamed, priceList); got != nil {
		t.Errorf("FindPriceListItem(unnamed rental) = %v, want nil", got)
	}
}

func TestFindPriceListItemNilInputs(t *testing.T) {
	priceList := &models.PriceList{Work: []models.PriceListEntry{{Name: "Tiling", Price: 12}}}

	if got := FindPriceListItem(nil, priceList); got != nil {
		t.Errorf("FindPriceListItem(nil item) = %v, want nil", got)
	}
	item := &models.WorkItem{PropertyID: models.PropTiling, Name: "Tiling"}
	if got := FindPriceListItem(item, nil); got != nil {
		t.Errorf("FindPriceListItem(nil price list) = %v, want nil", got)
	}
}
