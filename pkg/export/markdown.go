package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/charts"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

// escapeCell makes a value safe inside a markdown table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// GenerateMarkdown renders a catalog report from a snapshot.
func GenerateMarkdown(snap *Snapshot, title string) (string, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("*Generated: %s*\n\n", snap.TakenAt.Format(time.RFC1123)))

	stats := snap.Stats
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| **Books** | %d |\n", stats.Total))
	sb.WriteString(fmt.Sprintf("| Average price | ¥%.2f |\n", stats.AvgPrice))
	sb.WriteString(fmt.Sprintf("| Price range | ¥%.2f – ¥%.2f |\n", stats.MinPrice, stats.MaxPrice))
	sb.WriteString(fmt.Sprintf("| Total borrows | %d |\n", stats.TotalBorrows))
	if stats.PopularBook != "" {
		sb.WriteString(fmt.Sprintf("| Most borrowed | %s (%d) |\n", escapeCell(stats.PopularBook), stats.PopularBorrows))
	}
	sb.WriteString("\n")

	sb.WriteString("## Charts\n\n")
	sb.WriteString("![Book prices](prices.svg)\n\n")
	sb.WriteString("![Books per publisher](publishers.svg)\n\n")

	if len(stats.Publishers) > 0 {
		sb.WriteString("```mermaid\npie title Books per publisher\n")
		for _, p := range stats.Publishers {
			name := strings.ReplaceAll(p.Publisher, "\"", "'")
			sb.WriteString(fmt.Sprintf("    %q : %d\n", name, p.Count))
		}
		sb.WriteString("```\n\n")
	}

	sb.WriteString("## Catalog\n\n")
	if len(snap.Books) == 0 {
		sb.WriteString("*The catalog is empty.*\n")
		return sb.String(), nil
	}

	sb.WriteString("| ID | Title | Author | Publisher | ISBN | Price | Borrows |\n")
	sb.WriteString("|----|-------|--------|-----------|------|-------|--------|\n")
	for _, b := range snap.Books {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | ¥%.2f | %d |\n",
			escapeCell(b.ID),
			escapeCell(b.Name),
			escapeCell(b.Author),
			escapeCell(b.Publisher),
			escapeCell(b.ISBN),
			b.Price,
			b.InterviewTimes,
		))
	}
	return sb.String(), nil
}

// WriteReport writes report.md plus the chart images into dir. Books are
// sorted by ID so reports diff cleanly between runs.
func WriteReport(snap *Snapshot, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	sorted := *snap
	sorted.Books = make([]model.Book, len(snap.Books))
	copy(sorted.Books, snap.Books)
	sort.Slice(sorted.Books, func(i, j int) bool {
		return sorted.Books[i].ID < sorted.Books[j].ID
	})

	content, err := GenerateMarkdown(&sorted, "Book Catalog Report")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "report.md"), []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if _, err := charts.New(snap.Stats).WriteAll(dir); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}
