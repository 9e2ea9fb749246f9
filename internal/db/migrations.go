package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
)

// schema holds the full relational model. Lifecycle rules live in the
// database: removing a daycare cascades to its classrooms and children,
// removing a classroom detaches its children (classroom_id set to NULL),
// removing a child or parent cascades to their enrollments.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS daycare (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		phone TEXT,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS classroom (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		daycare_id INTEGER REFERENCES daycare(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS parent (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS child (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		date_of_birth DATE,
		classroom_id INTEGER REFERENCES classroom(id) ON DELETE SET NULL,
		daycare_id INTEGER REFERENCES daycare(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS enrollment (
		id SERIAL PRIMARY KEY,
		child_id INTEGER REFERENCES child(id) ON DELETE CASCADE,
		parent_id INTEGER REFERENCES parent(id) ON DELETE CASCADE
	)`,
}

func RunMigrations(ctx context.Context, db *bun.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	slog.Info("database migrations completed successfully")
	return nil
}
