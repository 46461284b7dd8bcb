package pricing

import (
	"github.com/sirupsen/logrus"

	"stavquote/internal/models"
)

// Auxiliary surcharge applied when the price list carries no explicit
// auxiliary slot: 10% on work and material alike.
const defaultAuxiliaryRate = 0.10

// roomTotals carries the aggregate areas computed in the first pass. Several
// costs (adhesive, grout, skirting, edge work) are priced per room, not per
// item, so they cannot be derived inside the per-item loop.
type roomTotals struct {
	tilingPavingArea       float64
	groutingArea           float64
	nettingArea            float64
	floatingFloorPerimeter float64
	jollyEdgingLength      float64
	plinthCuttingLength    float64
	plinthBondingLength    float64
}

// CalculateRoomPriceWithMaterials prices a whole room: every work item, the
// derived materials, the room-aggregate secondary costs and the auxiliary
// surcharges. The result is recomputed in full on every call; nothing is
// cached.
func CalculateRoomPriceWithMaterials(room *models.Room, priceList *models.PriceList) *models.RoomPriceBreakdown {
	breakdown := &models.RoomPriceBreakdown{}
	if room == nil || priceList == nil {
		return breakdown
	}

	totals := aggregateRoomTotals(room)

	tilingAdhesiveDone := false
	nettingAdhesiveDone := false

	for i := range room.WorkItems {
		item := &room.WorkItems[i]

		switch {
		case isScaffoldingItem(item):
			addScaffoldingLines(breakdown, item)
			continue
		case isOtherItem(item):
			addOtherLine(breakdown, item, priceList)
			continue
		}

		priceItem := FindPriceListItem(item, priceList)
		if priceItem == nil && item.PropertyID != models.PropCustomWork {
			logrus.WithFields(logrus.Fields{
				"property_id": item.PropertyID,
				"name":        item.Name,
			}).Debug("No price list entry matched; item contributes zero cost")
		}

		skipAdhesive := false
		switch item.PropertyID {
		case models.PropTiling, models.PropPaving:
			skipAdhesive = tilingAdhesiveDone || isLargeFormat(item)
			if !skipAdhesive {
				tilingAdhesiveDone = true
			}
		case models.PropNettingWall, models.PropNettingCeiling:
			skipAdhesive = nettingAdhesiveDone
			nettingAdhesiveDone = true
		}

		calc := CalculateWorkItemWithMaterials(item, priceItem, priceList, totals.tilingPavingArea, skipAdhesive, totals.nettingArea)

		line := models.ItemCalculation{
			ItemID:                     itemKey(item),
			Name:                       item.Name,
			Subtitle:                   item.Subtitle,
			Quantity:                   calc.Quantity,
			Unit:                       calc.Unit,
			WorkCost:                   calc.WorkCost,
			MaterialCost:               calc.MaterialCost,
			Material:                   calc.Material,
			MaterialQuantity:           calc.MaterialQuantity,
			AdditionalMaterial:         calc.AdditionalMaterial,
			AdditionalMaterialQuantity: calc.AdditionalMaterialQuantity,
			AdditionalMaterialCost:     calc.AdditionalMaterialCost,
		}
		breakdown.Items = append(breakdown.Items, line)
		breakdown.BaseWorkTotal += calc.WorkCost

		if calc.MaterialCost != 0 {
			breakdown.BaseMaterialTotal += calc.MaterialCost
			breakdown.MaterialItems = append(breakdown.MaterialItems, models.ItemCalculation{
				ItemID:       itemKey(item) + "-material",
				Name:         materialLineName(calc, item),
				Quantity:     calc.MaterialQuantity,
				MaterialCost: calc.MaterialCost,
			})
		}
	}

	addGroutingLines(breakdown, priceList, totals.groutingArea)
	addSkirtingLines(breakdown, priceList, totals.floatingFloorPerimeter)
	addEdgeWorkLine(breakdown, priceList, jollyEdgingTokens, totals.jollyEdgingLength, "jolly-edging")
	addEdgeWorkLine(breakdown, priceList, plinthCuttingTokens, totals.plinthCuttingLength, "plinth-cutting")
	addEdgeWorkLine(breakdown, priceList, plinthBondingTokens, totals.plinthBondingLength, "plinth-bonding")

	applyAuxiliarySurcharges(breakdown, priceList)
	breakdown.Total = breakdown.WorkTotal + breakdown.MaterialTotal + breakdown.OthersTotal
	return breakdown
}

// aggregateRoomTotals is the first pass over the items: it sums the
// room-wide areas and lengths the second pass and the post-pass lines need.
func aggregateRoomTotals(room *models.Room) roomTotals {
	var totals roomTotals
	for i := range room.WorkItems {
		item := &room.WorkItems[i]
		switch item.PropertyID {
		case models.PropTiling, models.PropPaving:
			q := DeriveQuantityAndUnit(item.Fields, item.PropertyID, item.Subtitle, item.DoorWindowItems)
			if !isLargeFormat(item) {
				totals.tilingPavingArea += q.Value
				totals.groutingArea += q.Value
			}
			totals.jollyEdgingLength += fieldNumber(item.Fields, models.FieldJollyEdging, models.FieldJollyEdgingSK)
			totals.plinthCuttingLength += fieldNumber(item.Fields, models.FieldPlinthCutting, models.FieldPlinthCuttingSK)
			totals.plinthBondingLength += fieldNumber(item.Fields, models.FieldPlinthBonding, models.FieldPlinthBondingSK)
		case models.PropNettingWall, models.PropNettingCeiling:
			q := DeriveQuantityAndUnit(item.Fields, item.PropertyID, item.Subtitle, item.DoorWindowItems)
			totals.nettingArea += q.Value
		case models.PropFloatingFloor:
			totals.floatingFloorPerimeter += floatingFloorPerimeter(item)
		}
	}
	return totals
}

// floatingFloorPerimeter is 2×(width+length), or the circumference field
// directly when the contractor measured it.
func floatingFloorPerimeter(item *models.WorkItem) float64 {
	if fieldPresent(item.Fields, models.FieldCircumference, models.FieldCircumferenceSK) {
		return fieldNumber(item.Fields, models.FieldCircumference, models.FieldCircumferenceSK)
	}
	width := fieldNumber(item.Fields, models.FieldWidth, models.FieldWidthSK)
	length := fieldNumber(item.Fields, models.FieldLength, models.FieldLengthSK)
	return 2 * (width + length)
}

// isScaffoldingItem covers both the dedicated scaffolding property and a
// scaffolding rental line.
func isScaffoldingItem(item *models.WorkItem) bool {
	if item.PropertyID == models.PropScaffolding {
		return true
	}
	return item.PropertyID == models.PropRentals &&
		(mentionsScaffolding(item.Name) || mentionsScaffolding(item.Subtitle))
}

// isOtherItem reports whether the item lands in the "others" section of the
// breakdown rather than work/material.
func isOtherItem(item *models.WorkItem) bool {
	switch item.PropertyID {
	case models.PropCustomWork, models.PropCommute, models.PropRentals:
		return true
	}
	return false
}

// addScaffoldingLines splits one scaffolding item into two synthetic lines:
// assembly at 30 €/m² and rental at 10 €/m²/day. The rates are deliberately
// hard-coded rather than catalog-driven.
func addScaffoldingLines(breakdown *models.RoomPriceBreakdown, item *models.WorkItem) {
	width := fieldNumber(item.Fields, models.FieldWidth, models.FieldWidthSK)
	height := fieldNumber(item.Fields, models.FieldHeight, models.FieldHeightSK)
	length := fieldNumber(item.Fields, models.FieldLength, models.FieldLengthSK)
	days := fieldNumber(item.Fields, models.FieldRentalDuration, models.FieldRentalDurationSK)

	area := width * height
	if area == 0 {
		area = length * height
	}

	assembly := area * scaffoldingAssemblyRate
	rental := area * scaffoldingDailyRate * days

	breakdown.OthersItems = append(breakdown.OthersItems,
		models.ItemCalculation{
			ItemID:   itemKey(item) + "-assembly",
			Name:     item.Name,
			Subtitle: "assembly",
			Quantity: area,
			Unit:     models.UnitSquareMeter,
			WorkCost: assembly,
		},
		models.ItemCalculation{
			ItemID:   itemKey(item) + "-rental",
			Name:     item.Name,
			Subtitle: "rental",
			Quantity: days,
			Unit:     models.UnitDay,
			WorkCost: rental,
		},
	)
	breakdown.OthersTotal += assembly + rental
}

// addOtherLine prices a custom-work, commute or rental item into the others
// section.
func addOtherLine(breakdown *models.RoomPriceBreakdown, item *models.WorkItem, priceList *models.PriceList) {
	priceItem := FindPriceListItem(item, priceList)
	calc := CalculateWorkItemWithMaterials(item, priceItem, priceList, 0, true, 0)

	cost := calc.WorkCost + calc.MaterialCost
	breakdown.OthersItems = append(breakdown.OthersItems, models.ItemCalculation{
		ItemID:   itemKey(item),
		Name:     otherLineName(item),
		Subtitle: item.Subtitle,
		Quantity: calc.Quantity,
		Unit:     calc.Unit,
		WorkCost: cost,
	})
	breakdown.OthersTotal += cost
}

// addGroutingLines adds the room-wide grouting work and grout material,
// costed once on the aggregate tiling/paving area rather than per item.
func addGroutingLines(breakdown *models.RoomPriceBreakdown, priceList *models.PriceList, area float64) {
	if area <= 0 {
		return
	}
	if work := findEntryByName(priceList, groutingNames); work != nil {
		cost := area * work.Price
		breakdown.Items = append(breakdown.Items, models.ItemCalculation{
			ItemID:   "room-grouting",
			Name:     work.Name,
			Quantity: area,
			Unit:     models.UnitSquareMeter,
			WorkCost: cost,
		})
		breakdown.BaseWorkTotal += cost
	}
	if grout := findMaterialEntry(priceList, groutNames, nil); grout != nil {
		cost := packagedCost(grout, area)
		quantity := area
		if packages := requiredPackages(grout, area); packages > 0 {
			quantity = packages
		}
		breakdown.MaterialItems = append(breakdown.MaterialItems, models.ItemCalculation{
			ItemID:       "room-grout",
			Name:         grout.Name,
			Quantity:     quantity,
			MaterialCost: cost,
		})
		breakdown.BaseMaterialTotal += cost
	}
}

// addSkirtingLines adds skirting work and skirting-board material on the
// aggregate floating-floor perimeter. The work lookup tries the current slot
// name first and falls back to the legacy alias used by old snapshots.
func addSkirtingLines(breakdown *models.RoomPriceBreakdown, priceList *models.PriceList, perimeter float64) {
	if perimeter <= 0 {
		return
	}
	work := findEntryByName(priceList, skirtingWorkNames)
	if work == nil {
		work = findEntryByName(priceList, skirtingLegacyNames)
	}
	if work != nil {
		cost := perimeter * work.Price
		breakdown.Items = append(breakdown.Items, models.ItemCalculation{
			ItemID:   "room-skirting",
			Name:     work.Name,
			Quantity: perimeter,
			Unit:     models.UnitMeter,
			WorkCost: cost,
		})
		breakdown.BaseWorkTotal += cost
	}
	if board := findMaterialEntry(priceList, skirtingBoardNames, nil); board != nil {
		cost := packagedCost(board, perimeter)
		quantity := perimeter
		if packages := requiredPackages(board, perimeter); packages > 0 {
			quantity = packages
		}
		breakdown.MaterialItems = append(breakdown.MaterialItems, models.ItemCalculation{
			ItemID:       "room-skirting-board",
			Name:         board.Name,
			Quantity:     quantity,
			MaterialCost: cost,
		})
		breakdown.BaseMaterialTotal += cost
	}
}

// addEdgeWorkLine prices one of the tiling edge works (jolly edging, plinth
// cutting, plinth bonding) from its aggregate length against a
// subtitle-keyed catalog slot.
func addEdgeWorkLine(breakdown *models.RoomPriceBreakdown, priceList *models.PriceList, tokens []string, length float64, idSuffix string) {
	if length <= 0 {
		return
	}
	entry := findEntryBySubtitle(priceList, tokens)
	if entry == nil {
		return
	}
	cost := length * entry.Price
	breakdown.Items = append(breakdown.Items, models.ItemCalculation{
		ItemID:   "room-" + idSuffix,
		Name:     entry.Name,
		Subtitle: entry.Subtitle,
		Quantity: length,
		Unit:     models.UnitMeter,
		WorkCost: cost,
	})
	breakdown.BaseWorkTotal += cost
}

// applyAuxiliarySurcharges reads the auxiliary work and material percentages
// from the price list itself and applies them to the base totals. Missing
// slots fall back to a flat 10%.
func applyAuxiliarySurcharges(breakdown *models.RoomPriceBreakdown, priceList *models.PriceList) {
	workRate := auxiliaryRate(findEntryByName(priceList, auxiliaryWorkNames))
	materialRate := auxiliaryRate(findEntryByName(priceList, auxiliaryMaterialNames))

	breakdown.AuxiliaryWorkCost = breakdown.BaseWorkTotal * workRate
	breakdown.AuxiliaryMaterialCost = breakdown.BaseMaterialTotal * materialRate
	breakdown.WorkTotal = breakdown.BaseWorkTotal + breakdown.AuxiliaryWorkCost
	breakdown.MaterialTotal = breakdown.BaseMaterialTotal + breakdown.AuxiliaryMaterialCost
}

// auxiliaryRate interprets a catalog slot's price as a percentage.
func auxiliaryRate(entry *models.PriceListEntry) float64 {
	if entry == nil {
		return defaultAuxiliaryRate
	}
	return entry.Price / 100
}

// itemKey prefers the stable client id over the database id.
func itemKey(item *models.WorkItem) string {
	if item.CID != "" {
		return item.CID
	}
	return item.ID
}

// materialLineName labels a derived material line.
func materialLineName(calc WorkItemCalculation, item *models.WorkItem) string {
	if calc.Material != "" {
		return calc.Material
	}
	return item.Name
}

// otherLineName prefers the typed name field of custom items.
func otherLineName(item *models.WorkItem) string {
	if name := item.Fields[models.FieldName]; name != "" {
		return name
	}
	if name := item.Fields[models.FieldNameSK]; name != "" {
		return name
	}
	return item.Name
}
