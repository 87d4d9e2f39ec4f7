package ui

import (
	"fmt"
	"strings"
)

// LinkKind discriminates the entries of a rendered pager.
type LinkKind int

const (
	LinkPrev LinkKind = iota
	LinkPage
	LinkGap
	LinkNext
)

// PageLink is one entry of the pagination control.
type PageLink struct {
	Kind     LinkKind
	Page     int  // target page for LinkPrev/LinkPage/LinkNext
	Active   bool // current page
	Disabled bool // inert prev/next at the edges, and gaps
}

// PageWindow computes the pager for (page, pages): a sliding window of page
// links [page-2, page+2] clipped to [1, pages], first/last links with a gap
// marker when the window does not touch the boundary, and prev/next entries
// that are inert at the edges. Returns nil when pages <= 1, which hides the
// whole control.
func PageWindow(page, pages int) []PageLink {
	if pages <= 1 {
		return nil
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	var links []PageLink
	links = append(links, PageLink{Kind: LinkPrev, Page: page - 1, Disabled: page == 1})

	start := page - 2
	if start < 1 {
		start = 1
	}
	end := page + 2
	if end > pages {
		end = pages
	}

	if start > 1 {
		links = append(links, PageLink{Kind: LinkPage, Page: 1})
		if start > 2 {
			links = append(links, PageLink{Kind: LinkGap, Disabled: true})
		}
	}
	for i := start; i <= end; i++ {
		links = append(links, PageLink{Kind: LinkPage, Page: i, Active: i == page})
	}
	if end < pages {
		if end < pages-1 {
			links = append(links, PageLink{Kind: LinkGap, Disabled: true})
		}
		links = append(links, PageLink{Kind: LinkPage, Page: pages})
	}

	links = append(links, PageLink{Kind: LinkNext, Page: page + 1, Disabled: page == pages})
	return links
}

// renderPagination renders the pager line, or "" when it is hidden.
func renderPagination(page, pages, total int, theme Theme) string {
	links := PageWindow(page, pages)
	if links == nil {
		return ""
	}

	r := theme.Renderer
	activeStyle := r.NewStyle().Background(theme.Primary).Foreground(theme.Highlight).Bold(true).Padding(0, 1)
	linkStyle := r.NewStyle().Foreground(theme.Primary).Padding(0, 1)
	mutedStyle := r.NewStyle().Foreground(theme.Subtext).Padding(0, 1)

	var parts []string
	for _, l := range links {
		switch l.Kind {
		case LinkPrev:
			if l.Disabled {
				parts = append(parts, mutedStyle.Render("‹ prev"))
			} else {
				parts = append(parts, linkStyle.Render("‹ prev"))
			}
		case LinkNext:
			if l.Disabled {
				parts = append(parts, mutedStyle.Render("next ›"))
			} else {
				parts = append(parts, linkStyle.Render("next ›"))
			}
		case LinkGap:
			parts = append(parts, mutedStyle.Render("…"))
		case LinkPage:
			label := fmt.Sprintf("%d", l.Page)
			if l.Active {
				parts = append(parts, activeStyle.Render(label))
			} else {
				parts = append(parts, linkStyle.Render(label))
			}
		}
	}

	line := strings.Join(parts, "")
	count := mutedStyle.Render(fmt.Sprintf("%d books", total))
	return line + count
}
