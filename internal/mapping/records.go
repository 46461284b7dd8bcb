package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"stavquote/internal/models"
)

// Row is the flat database representation of one work item: a target table
// plus its column values. Column maps are what the delta computer compares,
// so every value written here must come out of the database reads with the
// same type.
type Row struct {
	Table   string
	Columns map[string]interface{}
}

// Column names shared by every work-category table.
const (
	ColID     = "id"
	ColCID    = "c_id"
	ColRoomID = "room_id"
	ColUserID = "user_id"
)

// VolatileColumns are stripped before structural comparison: they change on
// every write without the item itself having changed.
var VolatileColumns = []string{ColRoomID, ColCID, ColUserID, "updated_at", "date_created", "created_at"}

// Titles the commute reader recognizes on legacy rows that predate the kind
// column. A custom work literally named like this and priced in km would be
// misread as commute, which is why new writes carry the discriminator.
var commuteTitles = []string{"Commute", "Cesta"}

// Kind discriminator values for the shared custom_works table.
const (
	KindWork    = "work"
	KindCommute = "commute"
)

// WorkItemToDatabase converts an in-memory work item to its flat row shape.
// It returns nil for properties without a registered table; the caller
// surfaces those as skipped rather than failing the whole save. The c_id is
// preserved when present and generated exactly once for new items, keeping
// upsert-by-c_id idempotent.
func WorkItemToDatabase(item *models.WorkItem, roomID, userID string) *Row {
	table := GetTableName(item.PropertyID, item)
	if table == "" {
		return nil
	}
	spec := SpecForTable(table)
	if spec == nil {
		return nil
	}

	if item.CID == "" {
		item.CID = uuid.New().String()
	}

	cols := map[string]interface{}{
		ColCID:    item.CID,
		ColRoomID: roomID,
		ColUserID: userID,
	}
	if item.ID != "" {
		cols[ColID] = item.ID
	}

	switch spec.Family {
	case FamilyWall:
		cols["size1"] = num(item, models.FieldWidth, models.FieldWidthSK)
		cols["size2"] = num(item, models.FieldHeight, models.FieldHeightSK)
	case FamilyFloorArea:
		cols["size1"] = num(item, models.FieldWidth, models.FieldWidthSK)
		cols["size2"] = num(item, models.FieldLength, models.FieldLengthSK)
	case FamilyBrick:
		cols["size1"] = num(item, models.FieldWidth, models.FieldWidthSK)
		cols["size2"] = num(item, models.FieldHeight, models.FieldHeightSK)
		cols["netting"] = flag(item, "netting")
		cols["plastering"] = flag(item, "plastering")
		cols["penetration"] = flag(item, "penetration")
		cols["painting"] = flag(item, "painting")
	case FamilyPlasterboard:
		cols["size1"] = num(item, models.FieldWidth, models.FieldWidthSK)
		cols["size2"] = num(item, models.FieldHeight, models.FieldHeightSK)
		cols["type"] = plasterboardTypeCode(item.SelectedType)
	case FamilyTiling:
		cols["size1"] = num(item, models.FieldWidth, models.FieldWidthSK)
		cols["size2"] = num(item, models.FieldHeight, models.FieldHeightSK)
		cols["large_format"] = isLargeFormatField(item)
		cols["jolly_edging"] = num(item, models.FieldJollyEdging, models.FieldJollyEdgingSK)
		cols["plinth_cutting"] = num(item, models.FieldPlinthCutting, models.FieldPlinthCuttingSK)
		cols["plinth_bonding"] = num(item, models.FieldPlinthBonding, models.FieldPlinthBondingSK)
	case FamilyFloor:
		cols["size1"] = num(item, models.FieldWidth, models.FieldWidthSK)
		cols["size2"] = num(item, models.FieldLength, models.FieldLengthSK)
		cols["circumference"] = num(item, models.FieldCircumference, models.FieldCircumferenceSK)
	case FamilyLength:
		cols["size1"] = num(item, models.FieldLength, models.FieldLengthSK)
	case FamilyCount:
		cols["count"] = num(item, models.FieldCount, models.FieldCountSK)
	case FamilyOutlet:
		cols["outlet_count"] = num(item, models.FieldOutlets, models.FieldOutletsSK, models.FieldCount, models.FieldCountSK)
	case FamilyDuration:
		cols["duration"] = num(item, models.FieldDuration, models.FieldDurationSK)
	case FamilySanitary:
		cols["type"] = item.SelectedType
		cols["count"] = num(item, models.FieldCount, models.FieldCountSK)
		cols["price_per_sanitary"] = num(item, models.FieldPrice, models.FieldPriceSK)
	case FamilyInstallation:
		cols["count"] = num(item, models.FieldCount, models.FieldCountSK)
		cols["price_per_piece"] = num(item, models.FieldPrice, models.FieldPriceSK)
	case FamilyCustom:
		cols["title"] = text(item, models.FieldName, models.FieldNameSK)
		cols["quantity"] = customQuantity(item)
		cols["unit"] = customUnit(item)
		cols["price_per_unit"] = num(item, models.FieldPrice, models.FieldPriceSK)
		cols["kind"] = customKind(item)
		if item.PropertyID == models.PropCommute {
			cols["days"] = num(item, models.FieldDays, models.FieldDaysSK)
		}
	case FamilyScaffolding:
		cols["size1"] = num(item, models.FieldLength, models.FieldLengthSK, models.FieldWidth, models.FieldWidthSK)
		cols["size2"] = num(item, models.FieldHeight, models.FieldHeightSK)
		cols["rental_days"] = num(item, models.FieldRentalDuration, models.FieldRentalDurationSK)
	case FamilyRental:
		cols["title"] = item.Name
		cols["rental_days"] = num(item, models.FieldRentalDuration, models.FieldRentalDurationSK)
	}

	return &Row{Table: table, Columns: cols}
}

// DatabaseToWorkItem converts a persisted row back to the in-memory shape.
// Every column written by WorkItemToDatabase for the table's family is read
// back here, keeping the two directions symmetric. Returns nil for an
// unknown table.
func DatabaseToWorkItem(row *Row) *models.WorkItem {
	spec := SpecForTable(row.Table)
	if spec == nil {
		return nil
	}

	item := &models.WorkItem{
		PropertyID: spec.PropertyID,
		Fields:     map[string]string{},
	}
	item.ID = colString(row, ColID)
	item.CID = colString(row, ColCID)

	switch spec.Family {
	case FamilyWall:
		setNum(item, models.FieldWidth, colFloat(row, "size1"))
		setNum(item, models.FieldHeight, colFloat(row, "size2"))
	case FamilyFloorArea:
		setNum(item, models.FieldWidth, colFloat(row, "size1"))
		setNum(item, models.FieldLength, colFloat(row, "size2"))
	case FamilyBrick:
		setNum(item, models.FieldWidth, colFloat(row, "size1"))
		setNum(item, models.FieldHeight, colFloat(row, "size2"))
		item.ComplementaryWorks = map[string]int{
			"netting":     colInt(row, "netting"),
			"plastering":  colInt(row, "plastering"),
			"penetration": colInt(row, "penetration"),
			"painting":    colInt(row, "painting"),
		}
	case FamilyPlasterboard:
		setNum(item, models.FieldWidth, colFloat(row, "size1"))
		setNum(item, models.FieldHeight, colFloat(row, "size2"))
		item.SelectedType = plasterboardTypeName(colInt(row, "type"))
	case FamilyTiling:
		setNum(item, models.FieldWidth, colFloat(row, "size1"))
		setNum(item, models.FieldHeight, colFloat(row, "size2"))
		if colBool(row, "large_format") {
			item.Fields[models.FieldAbove60] = "1"
		}
		setNum(item, models.FieldJollyEdging, colFloat(row, "jolly_edging"))
		setNum(item, models.FieldPlinthCutting, colFloat(row, "plinth_cutting"))
		setNum(item, models.FieldPlinthBonding, colFloat(row, "plinth_bonding"))
	case FamilyFloor:
		setNum(item, models.FieldWidth, colFloat(row, "size1"))
		setNum(item, models.FieldLength, colFloat(row, "size2"))
		setNum(item, models.FieldCircumference, colFloat(row, "circumference"))
	case FamilyLength:
		setNum(item, models.FieldLength, colFloat(row, "size1"))
	case FamilyCount:
		setNum(item, models.FieldCount, colFloat(row, "count"))
	case FamilyOutlet:
		setNum(item, models.FieldOutlets, colFloat(row, "outlet_count"))
	case FamilyDuration:
		setNum(item, models.FieldDuration, colFloat(row, "duration"))
	case FamilySanitary:
		item.SelectedType = colString(row, "type")
		setNum(item, models.FieldCount, colFloat(row, "count"))
		setNum(item, models.FieldPrice, colFloat(row, "price_per_sanitary"))
	case FamilyInstallation:
		setNum(item, models.FieldCount, colFloat(row, "count"))
		setNum(item, models.FieldPrice, colFloat(row, "price_per_piece"))
	case FamilyCustom:
		item.Name = colString(row, "title")
		item.Fields[models.FieldName] = colString(row, "title")
		setNum(item, models.FieldQuantity, colFloat(row, "quantity"))
		item.SelectedUnit = colString(row, "unit")
		setNum(item, models.FieldPrice, colFloat(row, "price_per_unit"))
		if days := colFloat(row, "days"); days != 0 {
			setNum(item, models.FieldDays, days)
		}
		item.PropertyID = customProperty(row)
		if row.Table == "custom_materials" {
			item.SelectedType = models.TypeMaterial
		} else if item.PropertyID == models.PropCustomWork {
			item.SelectedType = models.TypeWork
		}
		if item.PropertyID == models.PropCommute {
			// Commute derives km from the distance field on reload.
			setNum(item, models.FieldDistance, colFloat(row, "quantity"))
		}
	case FamilyScaffolding:
		setNum(item, models.FieldLength, colFloat(row, "size1"))
		setNum(item, models.FieldHeight, colFloat(row, "size2"))
		setNum(item, models.FieldRentalDuration, colFloat(row, "rental_days"))
	case FamilyRental:
		item.Name = colString(row, "title")
		setNum(item, models.FieldRentalDuration, colFloat(row, "rental_days"))
	}

	return item
}

// customProperty classifies a custom_works row. Rows written by this code
// carry an explicit kind column; rows from before the column existed fall
// back to the legacy title/unit heuristic.
func customProperty(row *Row) string {
	if row.Table == "custom_materials" {
		return models.PropCustomWork
	}
	switch colString(row, "kind") {
	case KindCommute:
		return models.PropCommute
	case KindWork:
		return models.PropCustomWork
	}
	title := colString(row, "title")
	unit := colString(row, "unit")
	for _, t := range commuteTitles {
		if strings.EqualFold(title, t) && strings.EqualFold(unit, models.UnitKilometer) {
			return models.PropCommute
		}
	}
	return models.PropCustomWork
}

func customKind(item *models.WorkItem) string {
	if item.PropertyID == models.PropCommute {
		return KindCommute
	}
	return KindWork
}

func customQuantity(item *models.WorkItem) float64 {
	if item.PropertyID == models.PropCommute {
		return num(item, models.FieldDistance, models.FieldDistanceSK)
	}
	return num(item, models.FieldQuantity, models.FieldQuantitySK)
}

func customUnit(item *models.WorkItem) string {
	if item.PropertyID == models.PropCommute {
		return models.UnitKilometer
	}
	return item.SelectedUnit
}

func plasterboardTypeCode(selectedType string) int {
	switch selectedType {
	case models.TypeSimple:
		return 1
	case models.TypeDouble:
		return 2
	case models.TypeTriple:
		return 3
	}
	return 0
}

func plasterboardTypeName(code int) string {
	switch code {
	case 1:
		return models.TypeSimple
	case 2:
		return models.TypeDouble
	case 3:
		return models.TypeTriple
	}
	return ""
}

func isLargeFormatField(item *models.WorkItem) bool {
	for _, name := range []string{models.FieldAbove60, models.FieldAbove60SK} {
		switch strings.ToLower(strings.TrimSpace(item.Fields[name])) {
		case "1", "true", "yes", "áno", "ano":
			return true
		}
	}
	return false
}

// num reads a numeric field by any of its bilingual names, coercing
// malformed input to 0.
func num(item *models.WorkItem, names ...string) float64 {
	for _, name := range names {
		raw, ok := item.Fields[name]
		if !ok {
			continue
		}
		raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0
		}
		return v
	}
	return 0
}

func text(item *models.WorkItem, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(item.Fields[name]); v != "" {
			return v
		}
	}
	return item.Name
}

func flag(item *models.WorkItem, key string) int {
	if item.ComplementaryWorks == nil {
		return 0
	}
	return item.ComplementaryWorks[key]
}

func setNum(item *models.WorkItem, field string, v float64) {
	if v == 0 {
		return
	}
	item.Fields[field] = strconv.FormatFloat(v, 'f', -1, 64)
}

func colString(row *Row, name string) string {
	switch v := row.Columns[name].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func colFloat(row *Row, name string) float64 {
	switch v := row.Columns[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	}
	return 0
}

func colInt(row *Row, name string) int {
	return int(colFloat(row, name))
}

func colBool(row *Row, name string) bool {
	switch v := row.Columns[name].(type) {
	case bool:
		return v
	case string:
		return v == "t" || v == "true" || v == "1"
	case int, int64, float64:
		return colFloat(row, name) != 0
	}
	return false
}
