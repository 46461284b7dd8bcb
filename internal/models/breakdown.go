package models

// ItemCalculation is the per-item result of the pricing engine, kept in the
// breakdown so the UI can render a fully itemized quote.
type ItemCalculation struct {
	ItemID                     string  `json:"item_id,omitempty"`
	Name                       string  `json:"name"`
	Subtitle                   string  `json:"subtitle,omitempty"`
	Quantity                   float64 `json:"quantity"`
	Unit                       string  `json:"unit,omitempty"`
	WorkCost                   float64 `json:"work_cost"`
	MaterialCost               float64 `json:"material_cost"`
	Material                   string  `json:"material,omitempty"`
	MaterialQuantity           float64 `json:"material_quantity,omitempty"`
	AdditionalMaterial         string  `json:"additional_material,omitempty"`
	AdditionalMaterialQuantity float64 `json:"additional_material_quantity,omitempty"`
	AdditionalMaterialCost     float64 `json:"additional_material_cost,omitempty"`
}

// RoomPriceBreakdown is the derived, never persisted, result of pricing one
// room. It is recomputed in full from the current items and price list.
type RoomPriceBreakdown struct {
	WorkTotal             float64           `json:"work_total"`
	MaterialTotal         float64           `json:"material_total"`
	OthersTotal           float64           `json:"others_total"`
	Total                 float64           `json:"total"`
	BaseWorkTotal         float64           `json:"base_work_total"`
	BaseMaterialTotal     float64           `json:"base_material_total"`
	AuxiliaryWorkCost     float64           `json:"auxiliary_work_cost"`
	AuxiliaryMaterialCost float64           `json:"auxiliary_material_cost"`
	Items                 []ItemCalculation `json:"items"`
	MaterialItems         []ItemCalculation `json:"material_items"`
	OthersItems           []ItemCalculation `json:"others_items"`
}

// Room is the pricing engine's input: the items currently edited in one room.
type Room struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name,omitempty"`
	WorkItems []WorkItem `json:"work_items"`
}

// SaveReport is the structured outcome of a best-effort room save. Failed
// and skipped items are surfaced to the caller instead of only being logged.
type SaveReport struct {
	Inserted   int      `json:"inserted"`
	Updated    int      `json:"updated"`
	Deleted    int      `json:"deleted"`
	Unchanged  int      `json:"unchanged"`
	FailedIDs  []string `json:"failed_ids,omitempty"`
	SkippedIDs []string `json:"skipped_ids,omitempty"`
}

// OK reports whether every write landed.
func (r *SaveReport) OK() bool {
	return len(r.FailedIDs) == 0 && len(r.SkippedIDs) == 0
}
