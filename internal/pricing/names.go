package pricing

import (
	"strings"

	"stavquote/internal/models"
)

// targetNames maps a property identifier to the catalog names it may match.
// The first name is the current one; the rest are legacy aliases kept so old
// price-list snapshots still resolve.
var targetNames = map[string][]string{
	models.PropBrickPartition:            {"Brick partitions", "Murovanie priečok"},
	models.PropBrickLoadBearingWall:      {"Brick load-bearing wall", "Murovanie nosného muriva"},
	models.PropPlasterboardingCeiling:    {"Plasterboarding", "Sadrokartón"},
	models.PropPlasterboardingPartition:  {"Plasterboarding", "Sadrokartón"},
	models.PropPlasterboardingOffsetWall: {"Plasterboarding", "Sadrokartón"},
	models.PropNettingWall:               {"Netting", "Sieťkovanie"},
	models.PropNettingCeiling:            {"Netting", "Sieťkovanie"},
	models.PropPlasteringWall:            {"Plastering", "Omietanie"},
	models.PropPlasteringCeiling:         {"Plastering", "Omietanie"},
	models.PropPenetrationCoating:        {"Penetration coating", "Penetračný náter"},
	models.PropPaintingWall:              {"Painting", "Maľovanie"},
	models.PropPaintingCeiling:           {"Painting", "Maľovanie"},
	models.PropLevelling:                 {"Levelling", "Nivelačná stierka"},
	models.PropFloatingFloor:             {"Floating floor", "Plávajúca podlaha"},
	models.PropTiling:                    {"Tiling", "Obklad"},
	models.PropPaving:                    {"Paving", "Dlažba"},
	models.PropGrouting:                  {"Grouting", "Škárovanie"},
	models.PropSanitaryInstallation:      {"Sanitary installation", "Montáž sanity"},
	models.PropWindowInstallation:        {"Window installation", "Montáž okna"},
	models.PropDoorJambInstallation:      {"Door jamb installation", "Montáž zárubne"},
	models.PropWindowLining:              {"Window lining", "Špaleta"},
	models.PropWiring:                    {"Wiring", "Elektroinštalácia"},
	models.PropElectricalOutlet:          {"Electrical outlet", "Zásuvka"},
	models.PropPlumbing:                  {"Plumbing", "Vodoinštalácia"},
	models.PropDemolitionWork:            {"Demolition work", "Búracie práce"},
	models.PropDebrisRemoval:             {"Debris removal", "Vynášanie sute"},
	models.PropDebrisDisposal:            {"Debris disposal", "Odvoz sute"},
	models.PropCoreDrilling:              {"Core drilling", "Jadrové vŕtanie"},
	models.PropCommute:                   {"Commute", "Cesta"},
	models.PropScaffolding:               {"Scaffolding", "Lešenie"},
}

// workMaterialNames maps a matched work name to the name of the material it
// consumes. Keys and values are alias groups so either language resolves.
var workMaterialNames = []struct {
	work     []string
	material []string
}{
	{[]string{"Plasterboarding", "Sadrokartón"}, []string{"Plasterboard", "Sadrokartónová doska"}},
	{[]string{"Netting", "Sieťkovanie"}, []string{"Mesh", "Sieťka"}},
	{[]string{"Plastering", "Omietanie"}, []string{"Plaster", "Omietka"}},
	{[]string{"Penetration coating", "Penetračný náter"}, []string{"Penetration coat", "Penetrácia"}},
	{[]string{"Painting", "Maľovanie"}, []string{"Paint", "Farba"}},
	{[]string{"Brick partitions", "Murovanie priečok"}, []string{"Bricks", "Tehly"}},
	{[]string{"Brick load-bearing wall", "Murovanie nosného muriva"}, []string{"Bricks", "Tehly"}},
	{[]string{"Levelling", "Nivelačná stierka"}, []string{"Levelling compound", "Nivelačná hmota"}},
	{[]string{"Floating floor", "Plávajúca podlaha"}, []string{"Floating floor", "Plávajúca podlaha"}},
	{[]string{"Tiling", "Obklad"}, []string{"Tiles", "Obkladačky"}},
	{[]string{"Paving", "Dlažba"}, []string{"Pavement tiles", "Dlaždice"}},
}

// Catalog slots referenced directly by the aggregator and material deriver.
var (
	largeFormatNames      = []string{"Large format", "Veľký formát"}
	adhesiveNames         = []string{"Adhesive", "Lepidlo"}
	adhesiveTilingTokens  = []string{"tiling", "paving", "obklad", "dlažba", "dlazba"}
	adhesiveNettingTokens = []string{"netting", "sieťkovanie", "sietkovanie"}
	groutNames            = []string{"Grout", "Škárovacia hmota"}
	groutingNames         = []string{"Grouting", "Škárovanie"}
	skirtingWorkNames     = []string{"Skirting", "Montáž soklových líšt"}
	// Old snapshots carried skirting under a different slot name; the lookup
	// tries the current name first, then this alias.
	skirtingLegacyNames    = []string{"Skirting board installation", "Lišty"}
	skirtingBoardNames     = []string{"Skirting board", "Soklová lišta"}
	jollyEdgingTokens      = []string{"jolly", "jolly hrana"}
	plinthCuttingTokens    = []string{"plinth cutting", "rezanie sokla"}
	plinthBondingTokens    = []string{"plinth bonding", "lepenie sokla"}
	auxiliaryWorkNames     = []string{"Auxiliary and finishing work", "Pomocné a ukončovacie práce"}
	auxiliaryMaterialNames = []string{"Auxiliary and fastening material", "Pomocný a spojovací materiál"}
)

// plasterboardingFamily reports whether the property belongs to the
// plasterboarding type×location matching rule.
func plasterboardingFamily(propertyID string) bool {
	switch propertyID {
	case models.PropPlasterboardingCeiling,
		models.PropPlasterboardingPartition,
		models.PropPlasterboardingOffsetWall:
		return true
	}
	return false
}

// nettingFamily reports whether the property belongs to the netting
// wall/ceiling exclusivity rule.
func nettingFamily(propertyID string) bool {
	return propertyID == models.PropNettingWall || propertyID == models.PropNettingCeiling
}

// paintingFamily reports whether the property uses the cross-language
// wall/ceiling equivalence rule.
func paintingFamily(propertyID string) bool {
	return propertyID == models.PropPaintingWall || propertyID == models.PropPaintingCeiling
}

// materialNamesFor resolves the material alias group for a matched work
// name, or nil when the work has no catalog material.
func materialNamesFor(workName string) []string {
	for _, m := range workMaterialNames {
		if nameMatchesAny(workName, m.work) {
			return m.material
		}
	}
	return nil
}

// nameMatchesAny reports whether a catalog name matches one of the target
// aliases by case-insensitive substring in either direction.
func nameMatchesAny(name string, aliases []string) bool {
	n := normalize(name)
	if n == "" {
		return false
	}
	for _, alias := range aliases {
		a := normalize(alias)
		if a == "" {
			continue
		}
		if n == a || containsEither(n, a) {
			return true
		}
	}
	return false
}

func containsEither(a, b string) bool {
	if len(a) < len(b) {
		a, b = b, a
	}
	return len(b) > 0 && strings.Contains(a, b)
}
