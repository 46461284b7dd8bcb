package models

import "testing"

func TestPriceListSnapshotIsIndependent(t *testing.T) {
	general := &PriceList{
		Work: []PriceListEntry{
			{Name: "Tiling", Price: 12},
		},
		Material: []PriceListEntry{
			{Name: "Adhesive", Subtitle: "Tiling", Price: 10, Capacity: &Capacity{Value: 4, Unit: "m²"}},
		},
	}

	snapshot, err := general.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	general.Work[0].Price = 99
	general.Material[0].Capacity.Value = 1

	if snapshot.Work[0].Price != 12 {
		t.Errorf("snapshot work price = %v, want 12 after mutating the source", snapshot.Work[0].Price)
	}
	if snapshot.Material[0].Capacity == nil || snapshot.Material[0].Capacity.Value != 4 {
		t.Errorf("snapshot capacity = %+v, want a deep copy", snapshot.Material[0].Capacity)
	}
}
