package export

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SchemaVersion bumps when the exported table layout changes.
const SchemaVersion = 1

// SQLiteExporter writes a catalog snapshot to a standalone SQLite file.
type SQLiteExporter struct {
	snap *Snapshot
}

// NewSQLiteExporter creates an exporter for the given snapshot.
func NewSQLiteExporter(snap *Snapshot) *SQLiteExporter {
	return &SQLiteExporter{snap: snap}
}

// Export writes the database to path, replacing any existing file.
func (e *SQLiteExporter) Export(path string) error {
	_ = os.Remove(path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := createSchema(db); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := e.insertBooks(db); err != nil {
		return fmt.Errorf("insert books: %w", err)
	}
	if err := e.insertPublisherCounts(db); err != nil {
		return fmt.Errorf("insert publisher counts: %w", err)
	}
	if err := e.insertMeta(db); err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}
	if _, err := db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	return nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE books (
		book_id         TEXT PRIMARY KEY,
		book_name       TEXT NOT NULL,
		book_author     TEXT,
		book_publisher  TEXT,
		book_isbn       TEXT,
		book_price      REAL,
		interview_times INTEGER
	);
	CREATE INDEX idx_books_publisher ON books(book_publisher);
	CREATE INDEX idx_books_author ON books(book_author);

	CREATE TABLE publisher_counts (
		publisher TEXT PRIMARY KEY,
		count     INTEGER NOT NULL
	);

	CREATE TABLE meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	_, err := db.Exec(schema)
	return err
}

func (e *SQLiteExporter) insertBooks(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO books (book_id, book_name, book_author, book_publisher, book_isbn, book_price, interview_times)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, b := range e.snap.Books {
		_, err := stmt.Exec(b.ID, b.Name, b.Author, b.Publisher, b.ISBN, b.Price, b.InterviewTimes)
		if err != nil {
			return fmt.Errorf("insert book %s: %w", b.ID, err)
		}
	}
	return tx.Commit()
}

func (e *SQLiteExporter) insertPublisherCounts(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO publisher_counts (publisher, count) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range e.snap.Stats.Publishers {
		if _, err := stmt.Exec(p.Publisher, p.Count); err != nil {
			return fmt.Errorf("insert publisher %s: %w", p.Publisher, err)
		}
	}
	return tx.Commit()
}

func (e *SQLiteExporter) insertMeta(db *sql.DB) error {
	meta := map[string]string{
		"generated_at":   e.snap.TakenAt.UTC().Format(time.RFC3339),
		"book_count":     fmt.Sprintf("%d", len(e.snap.Books)),
		"schema_version": fmt.Sprintf("%d", SchemaVersion),
	}
	for key, value := range meta {
		if _, err := db.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("insert meta %s: %w", key, err)
		}
	}
	return nil
}
