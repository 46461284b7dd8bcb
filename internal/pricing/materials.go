package pricing

import (
	"math"

	"stavquote/internal/models"
)

// Floating-floor boards are cut to fit, so the required material is inflated
// by 10% waste and rounded up before package division.
const floatingFloorWasteFactor = 1.1

// WorkItemCalculation is the priced result of a single work item.
type WorkItemCalculation struct {
	WorkCost                   float64
	MaterialCost               float64
	Material                   string
	MaterialQuantity           float64
	AdditionalMaterial         string
	AdditionalMaterialQuantity float64
	AdditionalMaterialCost     float64
	Quantity                   float64
	Unit                       string
}

// CalculateWorkItemWithMaterials prices one work item against its matched
// catalog entry and derives the dependent material consumption.
//
// The tiling/paving and netting adhesives are a room-wide cost: the caller
// pre-aggregates the total areas and passes skipAdhesive for every item after
// the first of its kind, so the shared adhesive is costed exactly once per
// room off the aggregate area.
func CalculateWorkItemWithMaterials(item *models.WorkItem, priceItem *models.PriceListEntry, priceList *models.PriceList, totalTilingPavingArea float64, skipAdhesive bool, totalNettingArea float64) WorkItemCalculation {
	q := DeriveQuantityAndUnit(item.Fields, item.PropertyID, item.Subtitle, item.DoorWindowItems)
	calc := WorkItemCalculation{Quantity: q.Value, Unit: q.Unit}

	if q.Combined {
		calc.WorkCost = q.CombinedCost
		return calc
	}

	// Custom work and custom material bypass the catalog entirely: the
	// contractor types both the quantity and the per-unit price.
	if item.PropertyID == models.PropCustomWork {
		quantity := fieldNumber(item.Fields, models.FieldQuantity, models.FieldQuantitySK)
		price := fieldNumber(item.Fields, models.FieldPrice, models.FieldPriceSK)
		calc.Quantity = quantity
		calc.Unit = item.SelectedUnit
		calc.WorkCost = quantity * price
		return calc
	}

	if priceItem == nil {
		// Unmatched catalog slot: zero contribution, never an error.
		return calc
	}

	switch item.PropertyID {
	case models.PropSanitaryInstallation, models.PropWindowInstallation, models.PropDoorJambInstallation:
		// Work is catalog-rated, but the paired product price is typed by
		// the contractor rather than resolved from the catalog.
		calc.WorkCost = q.Value * priceItem.Price
		unitPrice := fieldNumber(item.Fields, models.FieldPrice, models.FieldPriceSK)
		calc.MaterialCost = q.Value * unitPrice
		calc.Material = item.SelectedType
		calc.MaterialQuantity = q.Value
		return calc
	}

	calc.WorkCost = q.Value * priceItem.Price

	// Large-format tiling/paving uses a different material system priced
	// elsewhere; no material and no adhesive is costed for it.
	if isLargeFormat(item) {
		return calc
	}

	if material := findMatchingMaterial(item, priceItem.Name, priceList); material != nil {
		materialQuantity := q.Value
		if item.PropertyID == models.PropFloatingFloor {
			materialQuantity = math.Ceil(materialQuantity * floatingFloorWasteFactor)
		}
		calc.Material = material.Name
		calc.MaterialQuantity = materialQuantity
		calc.MaterialCost = packagedCost(material, materialQuantity)
	}

	switch item.PropertyID {
	case models.PropTiling, models.PropPaving:
		if !skipAdhesive {
			applyAdhesive(&calc, priceList, adhesiveTilingTokens, totalTilingPavingArea)
		}
	case models.PropNettingWall, models.PropNettingCeiling:
		if !skipAdhesive {
			applyAdhesive(&calc, priceList, adhesiveNettingTokens, totalNettingArea)
		}
	}

	return calc
}

// findMatchingMaterial resolves the material slot consumed by a matched work
// entry. It mirrors the matcher's bilingual subtitle logic but searches only
// the material category through the work→material name mapping.
func findMatchingMaterial(item *models.WorkItem, workName string, priceList *models.PriceList) *models.PriceListEntry {
	aliases := materialNamesFor(workName)
	if aliases == nil {
		return nil
	}

	for i := range priceList.Material {
		entry := &priceList.Material[i]
		if !nameMatchesAny(entry.Name, aliases) {
			continue
		}
		if materialSubtitleMatches(item, entry.Subtitle) {
			return entry
		}
	}
	return nil
}

// materialSubtitleMatches mirrors the work matcher's compound-subtitle rules
// on the material side.
func materialSubtitleMatches(item *models.WorkItem, entrySubtitle string) bool {
	if plasterboardingFamily(item.PropertyID) || nettingFamily(item.PropertyID) {
		if !ceilingWallCompatible(item.Subtitle, entrySubtitle) {
			return false
		}
	}
	if plasterboardingFamily(item.PropertyID) && item.SelectedType != "" {
		return plasterboardSubtitleMatches(item, entrySubtitle)
	}
	if item.Subtitle == "" || entrySubtitle == "" {
		return true
	}
	return subtitleTokensOverlap(item.Subtitle, entrySubtitle)
}

// packagedCost prices a material quantity. Materials declaring a package
// capacity are bought in whole packages; the rest are continuous.
func packagedCost(material *models.PriceListEntry, quantity float64) float64 {
	if material.Capacity != nil && material.Capacity.Value > 0 {
		packages := math.Ceil(quantity / material.Capacity.Value)
		return packages * material.Price
	}
	return quantity * material.Price
}

// requiredPackages returns the whole-package count for a quantity, or 0 for
// continuous materials.
func requiredPackages(material *models.PriceListEntry, quantity float64) float64 {
	if material.Capacity == nil || material.Capacity.Value <= 0 {
		return 0
	}
	return math.Ceil(quantity / material.Capacity.Value)
}

// applyAdhesive attaches the shared adhesive cost, computed from the room's
// aggregate area, to the current item's calculation.
func applyAdhesive(calc *WorkItemCalculation, priceList *models.PriceList, subtitleTokens []string, aggregateArea float64) {
	if aggregateArea <= 0 {
		return
	}
	adhesive := findMaterialEntry(priceList, adhesiveNames, subtitleTokens)
	if adhesive == nil {
		return
	}
	calc.AdditionalMaterial = adhesive.Name
	calc.AdditionalMaterialQuantity = aggregateArea
	if packages := requiredPackages(adhesive, aggregateArea); packages > 0 {
		calc.AdditionalMaterialQuantity = packages
	}
	calc.AdditionalMaterialCost = packagedCost(adhesive, aggregateArea)
	calc.MaterialCost += calc.AdditionalMaterialCost
}
