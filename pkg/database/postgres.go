package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations executes every pending SQL migration, recording each in the
// schema_migrations ledger so reruns are no-ops.
func (c *Client) RunMigrations() error {
	if err := c.createMigrationsTable(); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var filenames []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			filenames = append(filenames, entry.Name())
		}
	}
	sort.Strings(filenames)

	for _, filename := range filenames {
		if err := c.runMigration(filename); err != nil {
			return fmt.Errorf("running migration %s: %w", filename, err)
		}
	}

	c.logger.WithField("count", len(filenames)).Info("Migrations up to date")
	return nil
}

func (c *Client) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			filename VARCHAR(255) UNIQUE NOT NULL,
			executed_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := c.db.Exec(query)
	return err
}

// runMigration executes one migration file if it has not run yet.
func (c *Client) runMigration(filename string) error {
	var exists bool
	err := c.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE filename = $1)",
		filename,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	content, err := migrationsFS.ReadFile("migrations/" + filename)
	if err != nil {
		return err
	}

	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(string(content)); err != nil {
		return fmt.Errorf("executing SQL: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (filename) VALUES ($1)", filename,
	); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	c.logger.WithField("migration", filename).Info("Migration executed")
	return nil
}

// Transaction runs fn inside a database transaction.
func (c *Client) Transaction(fn func(*sql.Tx) error) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies the database connection is alive.
func (c *Client) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return c.db.PingContext(ctx)
}
