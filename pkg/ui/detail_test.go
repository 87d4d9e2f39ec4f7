package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

func TestDetailModalStates(t *testing.T) {
	theme := NewTheme(lipgloss.NewRenderer(nil), ModeLight)
	m := NewDetailModal("B001", "http://localhost:5000", theme)

	if m.Loaded() {
		t.Fatal("freshly opened modal reports loaded")
	}
	if out := m.View(); !strings.Contains(out, "loading…") {
		t.Errorf("missing loading placeholder, got:\n%s", out)
	}

	m.SetBook(model.Book{
		ID: "B001", Name: "Go in Action", Author: "Kennedy",
		Publisher: "Manning", ISBN: "978-1617291784", Price: 39.99, InterviewTimes: 7,
	})
	if !m.Loaded() {
		t.Fatal("Loaded() false after SetBook")
	}
	out := m.View()
	for _, want := range []string{
		"Go in Action", "Kennedy", "Manning", "¥39.99",
		"http://localhost:5000/book/detail/B001",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q", want)
		}
	}

	m.SetError("图书不存在")
	if m.Loaded() {
		t.Fatal("Loaded() true after SetError")
	}
	out = m.View()
	if !strings.Contains(out, "failed to load book: 图书不存在") {
		t.Errorf("missing inline error, got:\n%s", out)
	}
	if strings.Contains(out, "/book/detail/") {
		t.Error("full-page link rendered without a loaded book")
	}
}
