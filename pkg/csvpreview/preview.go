// Package csvpreview builds the pre-import preview of a CSV file. The parsing
// is deliberately naive: fields are split on bare commas and only a single
// wrapping quote pair is stripped, matching what the import endpoint accepts.
package csvpreview

import (
	"errors"
	"strings"
)

// MaxRows is the number of data rows shown in the preview.
const MaxRows = 5

// ErrTooFewLines is returned when the file has fewer than two non-blank
// lines, i.e. no header plus at least one data row.
var ErrTooFewLines = errors.New("csv file needs a header line and at least one data row")

// headerTokens are the column names (localized or canonical) whose presence
// tells us the file text decoded correctly.
var headerTokens = []string{
	"图书ID",
	"book_id",
	"图书名称",
	"book_name",
}

// LooksDecoded is the encoding-sanity policy: the preview is only rendered
// when a known header token survived decoding. It is a heuristic by intent;
// a file that fails it can still be imported, just without a preview.
func LooksDecoded(text string) bool {
	for _, tok := range headerTokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

// Preview is the parsed head of a CSV file.
type Preview struct {
	Headers []string
	Rows    [][]string
	// TotalDataLines counts all non-blank lines after the header, not just
	// the ones kept in Rows.
	TotalDataLines int
}

// Parse splits text into the preview table: the first non-blank line becomes
// the headers, the next MaxRows lines the data rows.
func Parse(text string) (*Preview, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrTooFewLines
	}

	p := &Preview{
		Headers:        splitLine(lines[0]),
		TotalDataLines: len(lines) - 1,
	}
	end := len(lines)
	if end > 1+MaxRows {
		end = 1 + MaxRows
	}
	for _, line := range lines[1:end] {
		p.Rows = append(p.Rows, splitLine(line))
	}
	return p, nil
}

// splitLine splits on commas and strips one wrapping quote pair per field.
// Embedded commas inside quotes are not handled.
func splitLine(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, len(parts))
	for i, part := range parts {
		cell := strings.TrimSpace(part)
		if len(cell) >= 2 && strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`) {
			cell = cell[1 : len(cell)-1]
		}
		out[i] = cell
	}
	return out
}
