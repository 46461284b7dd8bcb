package mapping

import (
	"math"
	"testing"

	"stavquote/internal/models"
)

func TestMirrorPriceList(t *testing.T) {
	priceList := &models.PriceList{
		Work: []models.PriceListEntry{
			{Name: "Plasterboarding", Subtitle: "Simple, partition", Price: 12},
			{Name: "Plasterboarding", Subtitle: "Ceiling", Price: 14},
			{Name: "Tiling", Price: 18},
		},
		Material: []models.PriceListEntry{
			{Name: "Adhesive", Subtitle: "Tiling and paving", Price: 10},
		},
		Installations: []models.PriceListEntry{
			{Name: "Sanitary installation", Subtitle: "Toilet", Price: 30},
		},
		Others: []models.PriceListEntry{
			{Name: "Commute", Price: 0.5},
		},
	}

	columns := MirrorPriceList(priceList)

	want := map[string]float64{
		"pb_partition_simple_price": 12,
		"pb_ceiling_price":          14,
		"tiling_price":              18,
		"tiling_adhesive_price":     10,
		"sanitary_toilet_price":     30,
		"commute_price":             0.5,
	}
	for column, price := range want {
		got, ok := columns[column]
		if !ok {
			t.Errorf("MirrorPriceList missing column %q", column)
			continue
		}
		if math.Abs(got-price) > 0.001 {
			t.Errorf("MirrorPriceList[%s] = %v, want %v", column, got, price)
		}
	}

	// Slots the list does not carry must be absent, not zero.
	if _, ok := columns["paving_price"]; ok {
		t.Errorf("MirrorPriceList mirrored an absent slot: paving_price")
	}
}

func TestPriceListColumnsMatchSlots(t *testing.T) {
	columns := PriceListColumns()
	if len(columns) == 0 {
		t.Fatal("PriceListColumns returned no columns")
	}
	seen := make(map[string]bool, len(columns))
	for _, column := range columns {
		if column == "" {
			t.Error("empty column name in the mirror registry")
		}
		if seen[column] {
			t.Errorf("duplicate mirror column %q", column)
		}
		seen[column] = true
	}
}
