package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
)

// seedData populates an empty database with a small working set. IDs are
// explicit so the sequences need a setval afterwards.
var seedData = []string{
	`INSERT INTO daycare (id, name, address, phone, email) VALUES
		(1, 'Happy Kids Daycare', '12 Sunshine Ave', '555-0101', 'hello@happykids.example'),
		(2, 'Little Steps', '48 Meadow Lane', '555-0102', 'contact@littlesteps.example')`,
	`INSERT INTO classroom (id, name, daycare_id) VALUES
		(1, 'Sunflowers', 1),
		(2, 'Ladybugs', 1),
		(3, 'Acorns', 2)`,
	`INSERT INTO parent (id, name, phone, email) VALUES
		(1, 'Maria Lopez', '555-0201', 'maria.lopez@example.com'),
		(2, 'James Carter', '555-0202', 'james.carter@example.com'),
		(3, 'Priya Sharma', '555-0203', 'priya.sharma@example.com')`,
	`INSERT INTO child (id, name, date_of_birth, classroom_id, daycare_id) VALUES
		(1, 'Sofia Lopez', '2021-03-14', 1, 1),
		(2, 'Ethan Carter', '2020-11-02', 2, 1),
		(3, 'Anaya Sharma', '2022-01-27', 3, 2),
		(4, 'Liam Carter', '2021-07-19', NULL, 1)`,
	`INSERT INTO enrollment (id, child_id, parent_id) VALUES
		(1, 1, 1),
		(2, 2, 2),
		(3, 3, 3),
		(4, 4, 2)`,
	`SELECT setval('daycare_id_seq', (SELECT MAX(id) FROM daycare))`,
	`SELECT setval('classroom_id_seq', (SELECT MAX(id) FROM classroom))`,
	`SELECT setval('parent_id_seq', (SELECT MAX(id) FROM parent))`,
	`SELECT setval('child_id_seq', (SELECT MAX(id) FROM child))`,
	`SELECT setval('enrollment_id_seq', (SELECT MAX(id) FROM enrollment))`,
}

// Seed inserts the sample data set unless the daycare table already has rows.
func Seed(ctx context.Context, db *bun.DB) error {
	var count int
	if err := db.NewRaw("SELECT COUNT(*) FROM daycare").Scan(ctx, &count); err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, stmt := range seedData {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	slog.Info("database seeded with sample data")
	return nil
}
