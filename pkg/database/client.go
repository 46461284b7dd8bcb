package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/sirupsen/logrus"

	"stavquote/internal/mapping"
	"stavquote/internal/models"
)

// Client is the PostgreSQL client the services persist through. All work
// item writes are keyed by c_id so retried saves stay idempotent.
type Client struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewClient opens a pooled connection to PostgreSQL and verifies it.
func NewClient(host, port, dbname, user, password, sslmode string, logger *logrus.Logger) (*Client, error) {
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		host, port, dbname, user, password, sslmode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging PostgreSQL: %w", err)
	}

	logger.Info("Connected to PostgreSQL")

	return &Client{
		db:     db,
		logger: logger,
	}, nil
}

// Close closes the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying sql.DB.
func (c *Client) GetDB() *sql.DB {
	return c.db
}

// QueryRow proxies to the underlying sql.DB.
func (c *Client) QueryRow(query string, args ...interface{}) *sql.Row {
	return c.db.QueryRow(query, args...)
}

// Query proxies to the underlying sql.DB.
func (c *Client) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return c.db.Query(query, args...)
}

// Exec proxies to the underlying sql.DB.
func (c *Client) Exec(query string, args ...interface{}) (sql.Result, error) {
	return c.db.Exec(query, args...)
}

// UpsertWorkItemRow inserts or updates one work item row by its c_id.
func (c *Client) UpsertWorkItemRow(row *mapping.Row) error {
	cols := make([]string, 0, len(row.Columns)+1)
	for name := range row.Columns {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	if _, ok := row.Columns[mapping.ColID]; !ok {
		cols = append([]string{mapping.ColID}, cols...)
		row.Columns[mapping.ColID] = uuid.New().String()
	}

	placeholders := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	updates := make([]string, 0, len(cols))
	for i, name := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row.Columns[name]
		if name != mapping.ColID && name != mapping.ColCID {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", name, name))
		}
	}
	updates = append(updates, "updated_at = NOW()")

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (c_id) DO UPDATE SET %s",
		row.Table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	if _, err := c.db.Exec(query, args...); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"table": row.Table,
			"c_id":  row.Columns[mapping.ColCID],
		}).Error("Failed to upsert work item row")
		return fmt.Errorf("upserting into %s: %w", row.Table, err)
	}
	return nil
}

// DeleteWorkItemRow removes a work item row by c_id.
func (c *Client) DeleteWorkItemRow(table, cid string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE c_id = $1", table)
	if _, err := c.db.Exec(query, cid); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"table": table,
			"c_id":  cid,
		}).Error("Failed to delete work item row")
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	return nil
}

// LoadRoomRows reads every row of one work-category table for a room. The
// scan is generic over the table's columns so each family keeps its own
// shape.
func (c *Client) LoadRoomRows(table, roomID string) ([]mapping.Row, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE room_id = $1", table)
	rows, err := c.db.Query(query, roomID)
	if err != nil {
		return nil, fmt.Errorf("loading rows from %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []mapping.Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		cols := make(map[string]interface{}, len(columns))
		for i, name := range columns {
			cols[name] = normalizeValue(values[i])
		}
		result = append(result, mapping.Row{Table: table, Columns: cols})
	}
	return result, rows.Err()
}

// LoadOpenings reads the door or window children of one parent row.
func (c *Client) LoadOpenings(table, parentColumn, parentCID string) ([]models.Opening, error) {
	query := fmt.Sprintf("SELECT id, c_id, width, height FROM %s WHERE %s = $1", table, parentColumn)
	rows, err := c.db.Query(query, parentCID)
	if err != nil {
		return nil, fmt.Errorf("loading openings from %s: %w", table, err)
	}
	defer rows.Close()

	var openings []models.Opening
	for rows.Next() {
		var o models.Opening
		if err := rows.Scan(&o.ID, &o.CID, &o.Width, &o.Height); err != nil {
			return nil, err
		}
		openings = append(openings, o)
	}
	return openings, rows.Err()
}

// UpsertOpening writes one door or window row, linked to its parent through
// the family's foreign-key column.
func (c *Client) UpsertOpening(table, parentColumn, parentCID string, opening *models.Opening) error {
	if opening.CID == "" {
		opening.CID = uuid.New().String()
	}
	id := opening.ID
	if id == "" {
		id = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, c_id, width, height, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (c_id) DO UPDATE SET width = EXCLUDED.width, height = EXCLUDED.height, updated_at = NOW()`,
		table, parentColumn)

	if _, err := c.db.Exec(query, id, opening.CID, opening.Width, opening.Height, parentCID); err != nil {
		return fmt.Errorf("upserting opening into %s: %w", table, err)
	}
	return nil
}

// DeleteOpeningsByParent removes every door or window row of one parent.
func (c *Client) DeleteOpeningsByParent(table, parentColumn, parentCID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, parentColumn)
	if _, err := c.db.Exec(query, parentCID); err != nil {
		return fmt.Errorf("deleting openings from %s: %w", table, err)
	}
	return nil
}

// DeleteOpening removes one door or window row by c_id.
func (c *Client) DeleteOpening(table, cid string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE c_id = $1", table)
	if _, err := c.db.Exec(query, cid); err != nil {
		return fmt.Errorf("deleting opening from %s: %w", table, err)
	}
	return nil
}

// LoadGeneralPriceList reads the contractor's general price list.
func (c *Client) LoadGeneralPriceList(userID string) (*models.PriceList, error) {
	var raw []byte
	err := c.db.QueryRow("SELECT data FROM price_lists WHERE user_id = $1", userID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("loading price list: %w", err)
	}

	var priceList models.PriceList
	if err := json.Unmarshal(raw, &priceList); err != nil {
		return nil, fmt.Errorf("decoding price list: %w", err)
	}
	return &priceList, nil
}

// SavePriceList upserts the general price list JSON and mirrors the flat
// slot columns the legacy consumer reads.
func (c *Client) SavePriceList(userID string, priceList *models.PriceList) error {
	raw, err := json.Marshal(priceList)
	if err != nil {
		return fmt.Errorf("encoding price list: %w", err)
	}

	columns := mapping.MirrorPriceList(priceList)
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	query := `
		INSERT INTO price_lists (id, user_id, data) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`
	if _, err := c.db.Exec(query, uuid.New().String(), userID, raw); err != nil {
		return fmt.Errorf("saving price list: %w", err)
	}

	if len(names) > 0 {
		sets := make([]string, 0, len(names))
		args := []interface{}{userID}
		for _, name := range names {
			args = append(args, columns[name])
			sets = append(sets, fmt.Sprintf("%s = $%d", name, len(args)))
		}
		mirror := fmt.Sprintf("UPDATE price_lists SET %s WHERE user_id = $1", strings.Join(sets, ", "))
		if _, err := c.db.Exec(mirror, args...); err != nil {
			return fmt.Errorf("mirroring price list columns: %w", err)
		}
	}

	c.logger.WithField("user_id", userID).Info("Price list saved")
	return nil
}

// SaveProjectSnapshot freezes a price list onto a project.
func (c *Client) SaveProjectSnapshot(projectID string, priceList *models.PriceList) error {
	raw, err := json.Marshal(priceList)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	result, err := c.db.Exec(
		"UPDATE projects SET price_list_snapshot = $2, updated_at = NOW() WHERE id = $1",
		projectID, raw,
	)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("no project found with ID: %s", projectID)
	}

	c.logger.WithField("project_id", projectID).Info("Price list snapshot saved")
	return nil
}

// LoadProjectSnapshot reads a project's frozen price list, or nil when the
// project has none.
func (c *Client) LoadProjectSnapshot(projectID string) (*models.PriceList, error) {
	var raw []byte
	err := c.db.QueryRow("SELECT price_list_snapshot FROM projects WHERE id = $1", projectID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no project found with ID: %s", projectID)
		}
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var priceList models.PriceList
	if err := json.Unmarshal(raw, &priceList); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &priceList, nil
}

// normalizeValue converts driver types to the forms the mapper reads.
func normalizeValue(v interface{}) interface{} {
	switch value := v.(type) {
	case []byte:
		return string(value)
	default:
		return value
	}
}
