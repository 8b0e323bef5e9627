// Package history keeps the recipes generated during the current session in
// an in-memory SQLite database. Nothing is written to disk and the data is
// gone once the process exits.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/sazon/internal/models"
	_ "modernc.org/sqlite"
)

// Store records generated recipes for the lifetime of the process
type Store struct {
	db *sql.DB
}

// Open creates the in-memory database and its schema
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// every connection to :memory: is a separate database, so keep exactly one
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing history db", "error", closeErr)
		}
		return nil, fmt.Errorf("history database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing history db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run history migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// runMigrations creates the recipes table
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS recipes (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			ingredients TEXT NOT NULL,
			vegetarian INTEGER NOT NULL DEFAULT 0,
			vegan INTEGER NOT NULL DEFAULT 0,
			gluten_free INTEGER NOT NULL DEFAULT 0,
			dairy_free INTEGER NOT NULL DEFAULT 0,
			generated_at TEXT NOT NULL
		)
	`)
	return err
}

// Record stores a generated recipe
func (s *Store) Record(ctx context.Context, recipe *models.Recipe) error {
	if recipe == nil {
		return ErrNilRecipe
	}

	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}

	r := recipe.Restrictions
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recipes (id, title, body, ingredients, vegetarian, vegan, gluten_free, dairy_free, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID, recipe.Title, recipe.Text, string(ingredients),
		r.Vegetarian, r.Vegan, r.GlutenFree, r.DairyFree,
		recipe.GeneratedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record recipe: %w", err)
	}
	return nil
}

// List returns every recorded recipe, oldest first
func (s *Store) List(ctx context.Context) ([]*models.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, body, ingredients, vegetarian, vegan, gluten_free, dairy_free, generated_at
		FROM recipes
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Error("error closing rows", "error", closeErr)
		}
	}()

	recipes := []*models.Recipe{}
	for rows.Next() {
		var (
			recipe      models.Recipe
			ingredients string
			generatedAt string
		)
		if err := rows.Scan(
			&recipe.ID, &recipe.Title, &recipe.Text, &ingredients,
			&recipe.Restrictions.Vegetarian, &recipe.Restrictions.Vegan,
			&recipe.Restrictions.GlutenFree, &recipe.Restrictions.DairyFree,
			&generatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		if err := json.Unmarshal([]byte(ingredients), &recipe.Ingredients); err != nil {
			return nil, fmt.Errorf("failed to decode ingredients: %w", err)
		}
		recipe.GeneratedAt, err = time.Parse(time.RFC3339Nano, generatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse generated_at: %w", err)
		}
		recipes = append(recipes, &recipe)
	}
	return recipes, rows.Err()
}

// Count returns how many recipes were generated this session
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// Close releases the database, discarding everything recorded
func (s *Store) Close() error {
	return s.db.Close()
}
