package mapping

import (
	"strings"

	"stavquote/internal/models"
)

// PriceListSlot ties one named catalog slot to the numeric column a second
// consumer system reads from the price_lists table. Matching is by name plus
// subtitle substring, case-insensitively; positions in the category arrays
// are irrelevant here.
type PriceListSlot struct {
	Category string
	Name     string
	Subtitle string
	Column   string
}

// priceListSlots mirrors the catalog into flat columns. The slot names are
// the current English ones; MirrorPriceList also accepts the Slovak aliases
// via substring matching on either language.
var priceListSlots = []PriceListSlot{
	{"work", "Brick partitions", "", "brick_partition_price"},
	{"work", "Brick load-bearing wall", "", "brick_load_bearing_wall_price"},
	{"work", "Plasterboarding", "simple, partition", "pb_partition_simple_price"},
	{"work", "Plasterboarding", "double, partition", "pb_partition_double_price"},
	{"work", "Plasterboarding", "triple, partition", "pb_partition_triple_price"},
	{"work", "Plasterboarding", "simple, offset wall", "pb_offset_wall_simple_price"},
	{"work", "Plasterboarding", "double, offset wall", "pb_offset_wall_double_price"},
	{"work", "Plasterboarding", "triple, offset wall", "pb_offset_wall_triple_price"},
	{"work", "Plasterboarding", "ceiling", "pb_ceiling_price"},
	{"work", "Netting", "wall", "netting_wall_price"},
	{"work", "Netting", "ceiling", "netting_ceiling_price"},
	{"work", "Plastering", "wall", "plastering_wall_price"},
	{"work", "Plastering", "ceiling", "plastering_ceiling_price"},
	{"work", "Penetration coating", "", "penetration_coating_price"},
	{"work", "Painting", "wall", "painting_wall_price"},
	{"work", "Painting", "ceiling", "painting_ceiling_price"},
	{"work", "Levelling", "", "levelling_price"},
	{"work", "Floating floor", "", "floating_floor_price"},
	{"work", "Tiling", "", "tiling_price"},
	{"work", "Paving", "", "paving_price"},
	{"work", "Large format", "above 60cm", "large_format_price"},
	{"work", "Grouting", "", "grouting_price"},
	{"work", "Skirting", "", "skirting_price"},
	{"work", "Jolly edging", "jolly", "jolly_edging_price"},
	{"work", "Plinth cutting", "plinth cutting", "plinth_cutting_price"},
	{"work", "Plinth bonding", "plinth bonding", "plinth_bonding_price"},
	{"work", "Demolition work", "", "demolition_work_price"},
	{"work", "Debris removal", "", "debris_removal_price"},
	{"work", "Debris disposal", "", "debris_disposal_price"},
	{"work", "Core drilling", "", "core_drilling_price"},
	{"work", "Wiring", "", "wiring_price"},
	{"work", "Electrical outlet", "", "electrical_outlet_price"},
	{"work", "Plumbing", "", "plumbing_price"},
	{"work", "Window lining", "", "window_lining_price"},
	{"work", "Auxiliary and finishing work", "", "auxiliary_work_rate"},
	{"material", "Plasterboard", "simple, partition", "pb_board_partition_simple_price"},
	{"material", "Plasterboard", "double, partition", "pb_board_partition_double_price"},
	{"material", "Plasterboard", "triple, partition", "pb_board_partition_triple_price"},
	{"material", "Plasterboard", "simple, offset wall", "pb_board_offset_simple_price"},
	{"material", "Plasterboard", "double, offset wall", "pb_board_offset_double_price"},
	{"material", "Plasterboard", "triple, offset wall", "pb_board_offset_triple_price"},
	{"material", "Plasterboard", "ceiling", "pb_board_ceiling_price"},
	{"material", "Mesh", "", "mesh_price"},
	{"material", "Plaster", "", "plaster_price"},
	{"material", "Penetration coat", "", "penetration_coat_price"},
	{"material", "Paint", "", "paint_price"},
	{"material", "Bricks", "", "bricks_price"},
	{"material", "Levelling compound", "", "levelling_compound_price"},
	{"material", "Floating floor", "", "floating_floor_material_price"},
	{"material", "Tiles", "", "tiles_price"},
	{"material", "Pavement tiles", "", "pavement_tiles_price"},
	{"material", "Adhesive", "tiling", "tiling_adhesive_price"},
	{"material", "Adhesive", "netting", "netting_adhesive_price"},
	{"material", "Grout", "", "grout_price"},
	{"material", "Skirting board", "", "skirting_board_price"},
	{"material", "Auxiliary and fastening material", "", "auxiliary_material_rate"},
	{"installations", "Sanitary installation", "toilet", "sanitary_toilet_price"},
	{"installations", "Sanitary installation", "sink", "sanitary_sink_price"},
	{"installations", "Sanitary installation", "bathtub", "sanitary_bathtub_price"},
	{"installations", "Sanitary installation", "shower", "sanitary_shower_price"},
	{"installations", "Sanitary installation", "tap", "sanitary_tap_price"},
	{"installations", "Sanitary installation", "boiler", "sanitary_boiler_price"},
	{"installations", "Window installation", "", "window_installation_price"},
	{"installations", "Door jamb installation", "", "door_jamb_installation_price"},
	{"others", "Commute", "", "commute_price"},
	{"others", "Scaffolding", "", "scaffolding_price"},
	{"others", "Core drill rental", "", "core_drill_rental_price"},
	{"others", "Tool rental", "", "tool_rental_price"},
}

// MirrorPriceList flattens a price list into the legacy per-slot numeric
// columns. Slots the list does not carry are simply absent from the result.
func MirrorPriceList(priceList *models.PriceList) map[string]float64 {
	columns := make(map[string]float64, len(priceListSlots))
	for _, slot := range priceListSlots {
		if entry := findSlotEntry(priceList, slot); entry != nil {
			columns[slot.Column] = entry.Price
		}
	}
	return columns
}

// PriceListColumns lists every mirrored column name, in slot order. The
// migration and the mirror writer share this list.
func PriceListColumns() []string {
	names := make([]string, len(priceListSlots))
	for i, slot := range priceListSlots {
		names[i] = slot.Column
	}
	return names
}

func findSlotEntry(priceList *models.PriceList, slot PriceListSlot) *models.PriceListEntry {
	var category []models.PriceListEntry
	switch slot.Category {
	case "work":
		category = priceList.Work
	case "material":
		category = priceList.Material
	case "installations":
		category = priceList.Installations
	case "others":
		category = priceList.Others
	}
	for i := range category {
		entry := &category[i]
		if !containsFold(entry.Name, slot.Name) && !containsFold(slot.Name, entry.Name) {
			continue
		}
		if slot.Subtitle == "" || containsFold(entry.Subtitle, slot.Subtitle) {
			return entry
		}
	}
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
