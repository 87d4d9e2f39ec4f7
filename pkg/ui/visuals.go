package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBar creates a textual bar of value (0.0 - 1.0) for the chart panels.
func RenderBar(val float64, width int) string {
	if width <= 0 {
		return ""
	}

	chars := []string{" ", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

	if math.IsNaN(val) {
		val = 0
	}
	if val < 0 {
		val = 0
	}
	if val > 1 {
		val = 1
	}

	fullChars := int(val * float64(width))
	remainder := (val * float64(width)) - float64(fullChars)

	var sb strings.Builder
	for i := 0; i < fullChars; i++ {
		sb.WriteString("█")
	}

	if fullChars < width {
		idx := int(remainder * float64(len(chars)))
		// Ensure non-zero values are visible
		if idx == 0 && remainder > 0 {
			idx = 1
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx > 0 {
			sb.WriteString(chars[idx])
		} else {
			sb.WriteString(" ")
		}
	}

	padding := width - fullChars - 1
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}

	return sb.String()
}

// PublisherColors maps publishers to distinctive colors so the distribution
// chart stays readable across reloads.
var PublisherColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"), // Coral red
	lipgloss.Color("#4ECDC4"), // Teal
	lipgloss.Color("#45B7D1"), // Sky blue
	lipgloss.Color("#96CEB4"), // Sage green
	lipgloss.Color("#DDA0DD"), // Plum
	lipgloss.Color("#F7DC6F"), // Gold
	lipgloss.Color("#BB8FCE"), // Lavender
	lipgloss.Color("#85C1E9"), // Light blue
}

// GetPublisherColor returns a consistent color for a publisher based on hash.
func GetPublisherColor(name string) lipgloss.Color {
	if name == "" {
		return PublisherColors[0]
	}
	hash := 0
	for _, c := range name {
		hash = (hash*31 + int(c)) % len(PublisherColors)
	}
	if hash < 0 {
		hash = -hash
	}
	return PublisherColors[hash%len(PublisherColors)]
}
