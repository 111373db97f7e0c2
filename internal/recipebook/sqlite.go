package recipebook

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// recipesSchema is the table layout of a SQLite recipe book. Row order
// (rowid) is the recipe insertion order.
const recipesSchema = `
CREATE TABLE IF NOT EXISTS recipes (
	first   TEXT NOT NULL,
	second  TEXT NOT NULL,
	product TEXT NOT NULL
);`

func readSQLite(path string) ([]types.Recipe, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT first, second, product FROM recipes ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", path, err)
	}
	defer rows.Close()

	var recipes []types.Recipe
	for rows.Next() {
		var r types.Recipe
		if err := rows.Scan(&r.First, &r.Second, &r.Product); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", path, err)
	}
	return recipes, nil
}

// writeSQLite builds the book in a temp database next to path and renames
// it into place.
func writeSQLite(path string, recipes []types.Recipe) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".recipes-*.db")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := fillSQLite(tmpName, recipes); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func fillSQLite(path string, recipes []types.Recipe) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(recipesSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO recipes (first, second, product) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recipes {
		if _, err := stmt.Exec(r.First, r.Second, r.Product); err != nil {
			return fmt.Errorf("inserting %s + %s: %w", r.First, r.Second, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
