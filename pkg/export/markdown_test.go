package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

func reportSnapshot() *Snapshot {
	return &Snapshot{
		TakenAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Stats: model.Statistics{
			Total:          3,
			AvgPrice:       40.5,
			MinPrice:       19.9,
			MaxPrice:       59.0,
			TotalBorrows:   12,
			PopularBook:    "Go in Action",
			PopularBorrows: 7,
			Publishers: []model.PublisherCount{
				{Publisher: "Manning", Count: 2},
				{Publisher: "O'Reilly", Count: 1},
			},
		},
		Books: []model.Book{
			{ID: "B002", Name: "Learning Go", Author: "Bodner", Publisher: "O'Reilly", ISBN: "978-1492077213", Price: 59.0},
			{ID: "B001", Name: "Go | in Action", Author: "Kennedy", Publisher: "Manning", ISBN: "978-1617291784", Price: 39.99, InterviewTimes: 7},
		},
	}
}

func TestGenerateMarkdown(t *testing.T) {
	out, err := GenerateMarkdown(reportSnapshot(), "Book Catalog Report")
	if err != nil {
		t.Fatalf("GenerateMarkdown: %v", err)
	}

	for _, want := range []string{
		"# Book Catalog Report",
		"| **Books** | 3 |",
		"| Average price | ¥40.50 |",
		"| Price range | ¥19.90 – ¥59.00 |",
		"| Most borrowed | Go in Action (7) |",
		"![Book prices](prices.svg)",
		"pie title Books per publisher",
		"\"Manning\" : 2",
		"| B002 | Learning Go |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Pipes inside a cell would break the table layout.
	if !strings.Contains(out, "Go \\| in Action") {
		t.Error("pipe in a title was not escaped")
	}
}

func TestGenerateMarkdownEmptyCatalog(t *testing.T) {
	snap := &Snapshot{TakenAt: time.Now()}
	out, err := GenerateMarkdown(snap, "Empty")
	if err != nil {
		t.Fatalf("GenerateMarkdown: %v", err)
	}
	if !strings.Contains(out, "*The catalog is empty.*") {
		t.Error("empty catalog placeholder missing")
	}
	if strings.Contains(out, "| ID | Title |") {
		t.Error("catalog table rendered with no books")
	}
}

func TestWriteReportSortsBooksByID(t *testing.T) {
	snap := reportSnapshot()
	out, err := GenerateMarkdown(snap, "Report")
	if err != nil {
		t.Fatalf("GenerateMarkdown: %v", err)
	}
	// The raw snapshot is out of order; WriteReport sorts a copy first, so
	// model the same path here.
	if strings.Index(out, "| B002 |") > strings.Index(out, "| B001 |") {
		t.Skip("input already sorted")
	}

	dir := t.TempDir()
	if err := WriteReport(snap, dir); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := readFile(t, dir, "report.md")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Index(data, "| B001 |") > strings.Index(data, "| B002 |") {
		t.Error("report rows are not sorted by ID")
	}
	if snap.Books[0].ID != "B002" {
		t.Error("WriteReport mutated the caller's snapshot")
	}

	for _, name := range []string{"prices.png", "prices.svg", "publishers.png", "publishers.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("chart %s was not written: %v", name, err)
		}
	}
}

func readFile(t *testing.T, dir, name string) (string, error) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	return string(data), err
}
