package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// describeLinks flattens a pager into a compact string for comparison.
func describeLinks(links []PageLink) string {
	var parts []string
	for _, l := range links {
		switch l.Kind {
		case LinkPrev:
			if l.Disabled {
				parts = append(parts, "prev!")
			} else {
				parts = append(parts, "prev")
			}
		case LinkNext:
			if l.Disabled {
				parts = append(parts, "next!")
			} else {
				parts = append(parts, "next")
			}
		case LinkGap:
			parts = append(parts, "…")
		case LinkPage:
			if l.Active {
				parts = append(parts, fmt.Sprintf("[%d]", l.Page))
			} else {
				parts = append(parts, fmt.Sprintf("%d", l.Page))
			}
		}
	}
	return strings.Join(parts, " ")
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		pages int
		want  string
	}{
		{"middle of long run", 5, 10, "prev 1 … 3 4 [5] 6 7 … 10 next"},
		{"first page", 1, 10, "prev! [1] 2 3 … 10 next"},
		{"last page", 10, 10, "prev 1 … 8 9 [10] next!"},
		{"second page", 2, 10, "prev 1 [2] 3 4 … 10 next"},
		{"window touches start", 3, 10, "prev 1 2 [3] 4 5 … 10 next"},
		{"window one short of start gap", 4, 10, "prev 1 2 3 [4] 5 6 … 10 next"},
		{"window touches end", 8, 10, "prev 1 … 6 7 [8] 9 10 next"},
		{"few pages no gaps", 2, 3, "prev 1 [2] 3 next"},
		{"exactly five pages", 3, 5, "prev 1 2 [3] 4 5 next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeLinks(PageWindow(tt.page, tt.pages))
			if got != tt.want {
				t.Errorf("PageWindow(%d, %d)\n got: %s\nwant: %s", tt.page, tt.pages, got, tt.want)
			}
		})
	}
}

func TestPageWindowHiddenForSinglePage(t *testing.T) {
	if got := PageWindow(1, 1); got != nil {
		t.Errorf("PageWindow(1, 1) = %v, want nil", got)
	}
	if got := PageWindow(1, 0); got != nil {
		t.Errorf("PageWindow(1, 0) = %v, want nil", got)
	}
}

func TestPageWindowClampsOutOfRangePage(t *testing.T) {
	if got := describeLinks(PageWindow(99, 4)); !strings.Contains(got, "[4]") {
		t.Errorf("page beyond range should clamp to last page, got %s", got)
	}
	if got := describeLinks(PageWindow(-3, 4)); !strings.Contains(got, "[1]") {
		t.Errorf("negative page should clamp to first page, got %s", got)
	}
}

func TestRenderPagination(t *testing.T) {
	theme := NewTheme(lipgloss.NewRenderer(nil), ModeLight)

	out := renderPagination(5, 10, 117, theme)
	for _, want := range []string{"prev", "next", "5", "117 books", "…"} {
		if !strings.Contains(out, want) {
			t.Errorf("pager missing %q:\n%s", want, out)
		}
	}

	if out := renderPagination(1, 1, 3, theme); out != "" {
		t.Errorf("single-page pager should be empty, got %q", out)
	}
}
