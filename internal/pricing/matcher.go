package pricing

import (
	"stavquote/internal/models"
)

// FindPriceListItem locates the single catalog entry pricing a work item, or
// nil when the list has no matching slot. A nil result means the item simply
// contributes zero cost; partially configured price lists are a normal state
// during onboarding and must never raise an error here.
func FindPriceListItem(item *models.WorkItem, priceList *models.PriceList) *models.PriceListEntry {
	if item == nil || priceList == nil {
		return nil
	}

	// Large-format tiling/paving bypasses the normal rate entirely and is
	// priced from the dedicated Large Format slot.
	if isLargeFormat(item) {
		return findLargeFormatEntry(priceList)
	}

	aliases := targetAliases(item)
	if len(aliases) == 0 {
		return nil
	}

	for _, category := range categoriesInOrder(priceList) {
		for i := range category {
			entry := &category[i]
			if !nameMatchesAny(entry.Name, aliases) {
				continue
			}
			if subtitleMatches(item, entry) {
				return entry
			}
		}
	}
	return nil
}

// targetAliases resolves the catalog names an item may match. Rentals carry
// heterogeneous named sub-items (scaffolding, core drill, tool rental), so
// their target is the item's own name rather than a property-derived one.
func targetAliases(item *models.WorkItem) []string {
	if item.PropertyID == models.PropRentals {
		if item.Name == "" {
			return nil
		}
		return []string{item.Name}
	}
	return targetNames[item.PropertyID]
}

// categoriesInOrder returns the four catalog partitions in the fixed search
// order: work, material, installations, others.
func categoriesInOrder(priceList *models.PriceList) [][]models.PriceListEntry {
	return [][]models.PriceListEntry{
		priceList.Work,
		priceList.Material,
		priceList.Installations,
		priceList.Others,
	}
}

// subtitleMatches applies the per-family disambiguation rules to a
// name-matched candidate.
func subtitleMatches(item *models.WorkItem, entry *models.PriceListEntry) bool {
	// Sanitary sub-types are many and collision-prone, so only an exact
	// subtitle equality counts.
	if item.PropertyID == models.PropSanitaryInstallation {
		if item.SelectedType != "" {
			return normalize(entry.Subtitle) == normalize(item.SelectedType)
		}
		return normalize(entry.Subtitle) == normalize(item.Subtitle)
	}

	// Wall and ceiling slots must never cross-match for plasterboarding and
	// netting, regardless of the other rules.
	if plasterboardingFamily(item.PropertyID) || nettingFamily(item.PropertyID) {
		if !ceilingWallCompatible(item.Subtitle, entry.Subtitle) {
			return false
		}
	}

	if plasterboardingFamily(item.PropertyID) && item.SelectedType != "" {
		return plasterboardSubtitleMatches(item, entry.Subtitle)
	}

	if paintingFamily(item.PropertyID) {
		return paintingSubtitleMatches(item, entry.Subtitle)
	}

	if item.Subtitle == "" {
		return true
	}
	return subtitleTokensOverlap(item.Subtitle, entry.Subtitle)
}

// ceilingWallCompatible rejects candidates whose subtitle sits on the other
// side of the wall/ceiling split than the item's.
func ceilingWallCompatible(itemSubtitle, entrySubtitle string) bool {
	if mentionsCeiling(itemSubtitle) && !mentionsCeiling(entrySubtitle) {
		return false
	}
	if !mentionsCeiling(itemSubtitle) && mentionsCeiling(entrySubtitle) {
		return false
	}
	return true
}

// plasterboardSubtitleMatches requires the candidate subtitle to carry both
// the structural location token (partition, offset wall or ceiling) and the
// selected sheet-type token. Ceiling slots carry no type suffix.
func plasterboardSubtitleMatches(item *models.WorkItem, entrySubtitle string) bool {
	var locationOK bool
	switch item.PropertyID {
	case models.PropPlasterboardingCeiling:
		// Ceiling entries have no type suffix; the location alone decides.
		return mentionsCeiling(entrySubtitle)
	case models.PropPlasterboardingPartition:
		locationOK = mentionsPartition(entrySubtitle)
	case models.PropPlasterboardingOffsetWall:
		locationOK = mentionsOffsetWall(entrySubtitle)
	}
	if !locationOK {
		return false
	}
	tokens := typeTokens(item.SelectedType)
	if tokens == nil {
		return true
	}
	return containsAny(entrySubtitle, tokens)
}

// paintingSubtitleMatches accepts Slovak "stena"/"strop" and English
// "wall"/"ceiling" as equivalent, since the UI mixes both languages across
// records.
func paintingSubtitleMatches(item *models.WorkItem, entrySubtitle string) bool {
	wantCeiling := item.PropertyID == models.PropPaintingCeiling || mentionsCeiling(item.Subtitle)
	if wantCeiling {
		return mentionsCeiling(entrySubtitle)
	}
	// Wall painting: accept explicit wall subtitles and untagged slots, but
	// never a ceiling slot.
	if mentionsCeiling(entrySubtitle) {
		return false
	}
	return entrySubtitle == "" || mentionsWall(entrySubtitle)
}

// subtitleTokensOverlap is the generic fallback: the candidate subtitle must
// contain the item's subtitle (or the reverse) case-insensitively, or share
// one of the structural tokens.
func subtitleTokensOverlap(itemSubtitle, entrySubtitle string) bool {
	a := normalize(itemSubtitle)
	b := normalize(entrySubtitle)
	if a == "" || b == "" {
		return true
	}
	if containsEither(a, b) {
		return true
	}
	for _, group := range [][]string{wallTokens, ceilingTokens, partitionTokens, offsetWallTokens} {
		if containsAny(a, group) && containsAny(b, group) {
			return true
		}
	}
	return false
}

// isLargeFormat reports whether a tiling/paving item has the above-60cm
// toggle set.
func isLargeFormat(item *models.WorkItem) bool {
	if item.PropertyID != models.PropTiling && item.PropertyID != models.PropPaving {
		return false
	}
	return fieldFlag(item.Fields, models.FieldAbove60, models.FieldAbove60SK) || mentionsAbove60(item.Subtitle)
}

// findLargeFormatEntry resolves the dedicated Large Format work slot,
// distinguished by its above-60cm subtitle.
func findLargeFormatEntry(priceList *models.PriceList) *models.PriceListEntry {
	for _, category := range categoriesInOrder(priceList) {
		for i := range category {
			entry := &category[i]
			if nameMatchesAny(entry.Name, largeFormatNames) && mentionsAbove60(entry.Subtitle) {
				return entry
			}
		}
	}
	// Fall back to a Large Format slot without the subtitle marker.
	for _, category := range categoriesInOrder(priceList) {
		for i := range category {
			entry := &category[i]
			if nameMatchesAny(entry.Name, largeFormatNames) {
				return entry
			}
		}
	}
	return nil
}

// findEntryByName searches all categories for a slot whose name matches the
// alias group, without subtitle disambiguation.
func findEntryByName(priceList *models.PriceList, aliases []string) *models.PriceListEntry {
	for _, category := range categoriesInOrder(priceList) {
		for i := range category {
			entry := &category[i]
			if nameMatchesAny(entry.Name, aliases) {
				return entry
			}
		}
	}
	return nil
}

// findEntryBySubtitle searches all categories for a slot whose subtitle
// carries one of the tokens.
func findEntryBySubtitle(priceList *models.PriceList, tokens []string) *models.PriceListEntry {
	for _, category := range categoriesInOrder(priceList) {
		for i := range category {
			entry := &category[i]
			if containsAny(entry.Subtitle, tokens) {
				return entry
			}
		}
	}
	return nil
}

// findMaterialEntry searches only the material category for a slot matching
// the alias group, with optional subtitle tokens for disambiguation.
func findMaterialEntry(priceList *models.PriceList, aliases []string, subtitleTokens []string) *models.PriceListEntry {
	for i := range priceList.Material {
		entry := &priceList.Material[i]
		if !nameMatchesAny(entry.Name, aliases) {
			continue
		}
		if subtitleTokens == nil || containsAny(entry.Subtitle, subtitleTokens) {
			return entry
		}
	}
	return nil
}
