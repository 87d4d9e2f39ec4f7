package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/floats"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

// statsPanel is the rendered statistics block. It is rebuilt from scratch on
// every statistics reload rather than patched in place.
type statsPanel struct {
	stats model.Statistics
	ready bool
}

func newStatsPanel(stats model.Statistics) statsPanel {
	return statsPanel{stats: stats, ready: true}
}

const statsBarWidth = 24

// View renders the summary line plus the two charts.
func (p statsPanel) View(theme Theme) string {
	r := theme.Renderer
	if !p.ready {
		return r.NewStyle().Foreground(theme.Subtext).Render("loading statistics…")
	}

	s := p.stats
	label := r.NewStyle().Foreground(theme.Subtext)
	value := r.NewStyle().Foreground(theme.Primary).Bold(true)

	summary := strings.Join([]string{
		label.Render("books ") + value.Render(fmt.Sprintf("%d", s.Total)),
		label.Render("avg price ") + value.Render(fmt.Sprintf("¥%.2f", s.AvgPrice)),
		label.Render("borrows ") + value.Render(fmt.Sprintf("%d", s.TotalBorrows)),
		label.Render("most borrowed ") + value.Render(fmt.Sprintf("%s (%d)", s.PopularBook, s.PopularBorrows)),
	}, label.Render("  │  "))

	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	b.WriteString(p.priceChart(theme))
	b.WriteString("\n")
	b.WriteString(p.publisherChart(theme))
	return b.String()
}

// priceChart is the three-bar min/avg/max price distribution.
func (p statsPanel) priceChart(theme Theme) string {
	s := p.stats
	values := []float64{s.MinPrice, s.AvgPrice, s.MaxPrice}
	names := []string{"min price", "avg price", "max price"}
	max := floats.Max(values)
	if max <= 0 {
		max = 1
	}

	r := theme.Renderer
	label := r.NewStyle().Foreground(theme.Subtext)
	var b strings.Builder
	for i, v := range values {
		bar := r.NewStyle().Foreground(theme.Info).Render(RenderBar(v/max, statsBarWidth))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			label.Render(runewidth.FillRight(names[i], 10)), bar, label.Render(fmt.Sprintf("¥%.2f", v))))
	}
	return b.String()
}

// publisherChart is the per-publisher distribution, one colored bar per
// publisher, scaled to the largest count.
func (p statsPanel) publisherChart(theme Theme) string {
	pubs := p.stats.Publishers
	if len(pubs) == 0 {
		return ""
	}
	counts := make([]float64, len(pubs))
	for i, pc := range pubs {
		counts[i] = float64(pc.Count)
	}
	max := floats.Max(counts)
	if max <= 0 {
		max = 1
	}

	r := theme.Renderer
	label := r.NewStyle().Foreground(theme.Subtext)
	var b strings.Builder
	for _, pc := range pubs {
		bar := r.NewStyle().
			Foreground(GetPublisherColor(pc.Publisher)).
			Render(RenderBar(float64(pc.Count)/max, statsBarWidth))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			label.Render(runewidth.FillRight(truncate(pc.Publisher, 10), 10)), bar, label.Render(fmt.Sprintf("%d", pc.Count))))
	}
	return b.String()
}
