package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/selection"
)

func testBooks() []model.Book {
	return []model.Book{
		{ID: "B001", Name: "Go in Action", Author: "Kennedy", Publisher: "Manning", ISBN: "978-1617291784", Price: 39.99, InterviewTimes: 7},
		{ID: "B002", Name: "图书馆学导论", Author: "王某", Publisher: "高等教育出版社", Price: 25.50},
	}
}

func TestRenderCardsShowsBooksAndSelection(t *testing.T) {
	theme := NewTheme(lipgloss.NewRenderer(nil), ModeLight)
	sel := selection.New()
	sel.Add("B002")

	out := renderCards(testBooks(), 0, sel, theme, 120)
	for _, want := range []string{"Go in Action", "图书馆学导论", "Manning", "¥39.99"} {
		if !strings.Contains(out, want) {
			t.Errorf("cards missing %q", want)
		}
	}
	if !strings.Contains(out, "[x]") {
		t.Error("selected book shows no checked mark")
	}
	if !strings.Contains(out, "[ ]") {
		t.Error("unselected book shows no empty mark")
	}
}

func TestRenderTableShowsBooksAndSelection(t *testing.T) {
	theme := NewTheme(lipgloss.NewRenderer(nil), ModeLight)
	sel := selection.New()
	sel.Add("B001")

	out := renderTable(testBooks(), 1, sel, theme)
	for _, want := range []string{"B001", "B002", "Go in Action", "图书馆学导论"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestRenderEmptyList(t *testing.T) {
	theme := NewTheme(lipgloss.NewRenderer(nil), ModeLight)
	out := renderEmptyList(theme)
	if !strings.Contains(out, "No books found") {
		t.Errorf("empty list placeholder missing, got %q", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten!", 12, "exactly ten!"},
		{"a much longer title than fits", 10, "a much lo…"},
		{"图书馆学导论概述", 8, "图书馆…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestToastStackPruneKeepsLiveToasts(t *testing.T) {
	s := NewToastStack()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.Push(ToastInfo, "first")
	s.now = func() time.Time { return base.Add(toastTTL / 2) }
	s.Push(ToastSuccess, "second")

	// First toast is past its deadline, second is not.
	s.now = func() time.Time { return base.Add(toastTTL + time.Millisecond) }
	s.Prune()

	if s.Len() != 1 {
		t.Fatalf("Len() = %d after prune, want 1", s.Len())
	}
	theme := NewTheme(lipgloss.NewRenderer(nil), ModeLight)
	if out := s.View(theme); !strings.Contains(out, "second") {
		t.Errorf("surviving toast missing from view: %q", out)
	}
}

func TestStatsPanelView(t *testing.T) {
	theme := NewTheme(lipgloss.NewRenderer(nil), ModeLight)

	var empty statsPanel
	if out := empty.View(theme); !strings.Contains(out, "loading statistics") {
		t.Errorf("unloaded panel = %q, want loading placeholder", out)
	}

	p := newStatsPanel(model.Statistics{
		Total:          3,
		AvgPrice:       40.5,
		MinPrice:       19.9,
		MaxPrice:       59.0,
		TotalBorrows:   12,
		PopularBook:    "Go in Action",
		PopularBorrows: 7,
		Publishers:     []model.PublisherCount{{Publisher: "Manning", Count: 2}},
	})
	out := p.View(theme)
	for _, want := range []string{"¥40.50", "Go in Action (7)", "Manning"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats panel missing %q", want)
		}
	}
}
