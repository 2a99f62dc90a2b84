package main

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/content"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/resource"
)

//go:embed data/content.json
var embeddedContent []byte

func init() {
	registerSeeder(&ContentSeeder{})
}

// ContentSeedData maps resource names to their seed records. Record keys
// must match the field names declared in the catalog schema.
type ContentSeedData map[string][]map[string]any

// ContentSeeder implements Seeder for the portal's content catalog.
// It loads seed data from an embedded file or an external file path.
type ContentSeeder struct {
	file string
}

// Name returns "content" as the seeder identifier.
func (s *ContentSeeder) Name() string {
	return "content"
}

// Description returns a human-readable description of this seeder.
func (s *ContentSeeder) Description() string {
	return "Seeds village portal content for every catalog resource"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *ContentSeeder) SetFile(path string) {
	s.file = path
}

// Seed inserts records for every catalog resource present in the seed
// data. Tables that already contain rows are skipped so repeated runs
// stay idempotent.
func (s *ContentSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, schema := range content.Catalog() {
		records, ok := data[schema.Name]
		if !ok {
			continue
		}

		populated, err := tableHasRows(ctx, tx, schema.Table)
		if err != nil {
			return fmt.Errorf("check %s: %w", schema.Table, err)
		}
		if populated {
			continue
		}

		for _, values := range records {
			if err := insertRecord(ctx, tx, schema, values); err != nil {
				return fmt.Errorf("insert into %s: %w", schema.Table, err)
			}
		}
	}

	return nil
}

func (s *ContentSeeder) loadSeedData() (ContentSeedData, error) {
	raw := embeddedContent
	if s.file != "" {
		external, err := os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = external
	}

	var data ContentSeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return data, nil
}

func tableHasRows(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	var count int
	if err := tx.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM public.%s", table)).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func insertRecord(ctx context.Context, tx *sql.Tx, schema resource.Schema, values map[string]any) error {
	cols := make([]string, 0, len(schema.Fields))
	placeholders := make([]string, 0, len(schema.Fields))
	args := make([]any, 0, len(schema.Fields))

	for _, f := range schema.Fields {
		raw, ok := values[f.Name]
		if !ok {
			continue
		}

		cols = append(cols, f.Name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(cols)))
		args = append(args, seedArg(f, f.Coerce(raw)))
	}

	q := fmt.Sprintf(
		"INSERT INTO public.%s (%s) VALUES (%s)",
		schema.Table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)

	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

// seedArg converts a canonical field value into its driver representation.
func seedArg(f resource.Field, value any) any {
	if f.Type == resource.TypeDate {
		if s, ok := value.(string); ok {
			if t, err := time.Parse(resource.DateFormat, s); err == nil {
				return t
			}
			return nil
		}
	}
	return value
}
