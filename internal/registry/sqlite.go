package registry

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"treehouse-guestlist/internal/models"
)

// Private in-memory database; nothing outlives the process.
const sqliteDSN = "file::memory:?mode=memory&cache=private&_foreign_keys=on"

const sqliteSchema = `CREATE TABLE IF NOT EXISTS visitors (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	name   TEXT    NOT NULL,
	action TEXT    NOT NULL,
	note   TEXT    NOT NULL DEFAULT '',
	age    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_name ON visitors(name);`

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens an in-memory SQLite database holding the visitor table
func NewSQLiteStore() (Store, error) {
	db, err := sql.Open("sqlite3", sqliteDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to :memory: would get its own empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Append(v models.Visitor) error {
	_, err := s.db.Exec(
		`INSERT INTO visitors(name, action, note, age) VALUES (?, ?, ?, ?)`,
		v.Name, string(v.Action.Kind()), models.NoteOf(v.Action), v.Age,
	)
	if err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

func (s *sqliteStore) Find(name string) (*models.Visitor, error) {
	row := s.db.QueryRow(
		`SELECT name, action, note, age FROM visitors WHERE name = ? ORDER BY id LIMIT 1`,
		name,
	)
	v, err := scanVisitor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *sqliteStore) List() ([]models.Visitor, error) {
	rows, err := s.db.Query(`SELECT name, action, note, age FROM visitors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	visitors := make([]models.Visitor, 0)
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, err
		}
		visitors = append(visitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visitors: %w", err)
	}
	return visitors, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVisitor(row scanner) (models.Visitor, error) {
	var (
		name, kind, note string
		age              int8
	)
	if err := row.Scan(&name, &kind, &note, &age); err != nil {
		return models.Visitor{}, err
	}

	action, err := models.ParseAction(models.ActionKind(kind), note)
	if err != nil {
		return models.Visitor{}, fmt.Errorf("visitor %q: %w", name, err)
	}

	// Stored names are already lowercase.
	return models.Visitor{Name: name, Action: action, Age: age}, nil
}
