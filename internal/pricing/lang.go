package pricing

import (
	"strconv"
	"strings"

	"stavquote/internal/models"
)

// Historic records mix English and Slovak labels in names, subtitles and
// field keys, so every textual comparison here runs over token groups that
// carry both languages (plus diacritic-stripped Slovak variants typed on
// foreign keyboards).

var (
	wallTokens       = []string{"wall", "stena", "steny"}
	ceilingTokens    = []string{"ceiling", "strop"}
	partitionTokens  = []string{"partition", "priečka", "priecka", "priečky", "priecky"}
	offsetWallTokens = []string{"offset wall", "predsadená stena", "predsadena stena", "predsadenej"}
	simpleTokens     = []string{"simple", "jednoduch"}
	doubleTokens     = []string{"double", "dvojit"}
	tripleTokens     = []string{"triple", "trojit"}
	scaffoldTokens   = []string{"scaffolding", "lešenie", "lesenie"}
	above60Tokens    = []string{"above 60", "nad 60"}
)

// normalize lowercases and trims a catalog or item string for matching.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsAny reports whether s contains at least one of the tokens,
// case-insensitively.
func containsAny(s string, tokens []string) bool {
	n := normalize(s)
	for _, tok := range tokens {
		if strings.Contains(n, tok) {
			return true
		}
	}
	return false
}

func mentionsWall(s string) bool        { return containsAny(s, wallTokens) }
func mentionsCeiling(s string) bool     { return containsAny(s, ceilingTokens) }
func mentionsPartition(s string) bool   { return containsAny(s, partitionTokens) }
func mentionsOffsetWall(s string) bool  { return containsAny(s, offsetWallTokens) }
func mentionsScaffolding(s string) bool { return containsAny(s, scaffoldTokens) }
func mentionsAbove60(s string) bool     { return containsAny(s, above60Tokens) }

// typeTokens returns the bilingual token group for a selected sheet type.
func typeTokens(selectedType string) []string {
	switch selectedType {
	case models.TypeSimple:
		return simpleTokens
	case models.TypeDouble:
		return doubleTokens
	case models.TypeTriple:
		return tripleTokens
	}
	return nil
}

// parseNumber coerces free-form user input to a float. Missing, empty and
// malformed values become 0, mirroring the tolerant reads at the UI boundary.
func parseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	// Slovak keyboards produce comma decimals.
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// fieldNumber reads a numeric field by any of its bilingual names.
func fieldNumber(fields map[string]string, names ...string) float64 {
	for _, name := range names {
		if raw, ok := fields[name]; ok {
			return parseNumber(raw)
		}
	}
	return 0
}

// fieldPresent reports whether any of the bilingual names carries a
// non-empty value.
func fieldPresent(fields map[string]string, names ...string) bool {
	for _, name := range names {
		if raw, ok := fields[name]; ok && strings.TrimSpace(raw) != "" {
			return true
		}
	}
	return false
}

// fieldFlag reads a boolean toggle field ("1", "true", "yes", "áno").
func fieldFlag(fields map[string]string, names ...string) bool {
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		switch normalize(raw) {
		case "1", "true", "yes", "áno", "ano":
			return true
		}
	}
	return false
}
