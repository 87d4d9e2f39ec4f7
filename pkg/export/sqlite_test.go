package export

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

func TestSQLiteExport(t *testing.T) {
	snap := &Snapshot{
		TakenAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Books: []model.Book{
			{ID: "B001", Name: "Go in Action", Author: "Kennedy", Publisher: "Manning", ISBN: "978-1617291784", Price: 39.99, InterviewTimes: 7},
			{ID: "B002", Name: "图书馆学导论", Author: "王某", Publisher: "高等教育出版社", Price: 25.50},
		},
		Stats: model.Statistics{
			Publishers: []model.PublisherCount{
				{Publisher: "Manning", Count: 1},
				{Publisher: "高等教育出版社", Count: 1},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "catalog.db")
	if err := NewSQLiteExporter(snap).Export(path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open exported db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		t.Fatalf("count books: %v", err)
	}
	if count != 2 {
		t.Fatalf("books = %d, want 2", count)
	}

	var name string
	var price float64
	row := db.QueryRow(`SELECT book_name, book_price FROM books WHERE book_id = ?`, "B002")
	if err := row.Scan(&name, &price); err != nil {
		t.Fatalf("read B002: %v", err)
	}
	if name != "图书馆学导论" || price != 25.50 {
		t.Fatalf("B002 = %q / %.2f, want original values", name, price)
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM publisher_counts`).Scan(&count); err != nil {
		t.Fatalf("count publishers: %v", err)
	}
	if count != 2 {
		t.Fatalf("publisher_counts = %d, want 2", count)
	}

	var version string
	if err := db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version); err != nil {
		t.Fatalf("read schema_version: %v", err)
	}
	if version != "1" {
		t.Fatalf("schema_version = %s, want 1", version)
	}
}

func TestSQLiteExportReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	big := &Snapshot{Books: []model.Book{{ID: "B001", Name: "a"}, {ID: "B002", Name: "b"}}}
	if err := NewSQLiteExporter(big).Export(path); err != nil {
		t.Fatalf("first export: %v", err)
	}

	small := &Snapshot{Books: []model.Book{{ID: "B009", Name: "c"}}}
	if err := NewSQLiteExporter(small).Export(path); err != nil {
		t.Fatalf("second export: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("books = %d after re-export, want 1", count)
	}
}
