// Package charts renders the catalog statistics as image files: PNG via a
// 2D raster canvas and SVG for embedding in reports.
package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/gonum/floats"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

const (
	chartWidth  = 640
	chartHeight = 400
)

// palette cycles through the slice colors for publisher charts.
var palette = []color.RGBA{
	{R: 0xbd, G: 0x93, B: 0xf9, A: 0xff},
	{R: 0x8b, G: 0xe9, B: 0xfd, A: 0xff},
	{R: 0x50, G: 0xfa, B: 0x7b, A: 0xff},
	{R: 0xff, G: 0xb8, B: 0x6c, A: 0xff},
	{R: 0xff, G: 0x79, B: 0xc6, A: 0xff},
	{R: 0xf1, G: 0xfa, B: 0x8c, A: 0xff},
	{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	{R: 0x62, G: 0x72, B: 0xa4, A: 0xff},
}

// paletteHex mirrors palette for SVG fill attributes.
var paletteHex = []string{
	"#bd93f9", "#8be9fd", "#50fa7b", "#ffb86c",
	"#ff79c6", "#f1fa8c", "#ff5555", "#6272a4",
}

// Renderer draws charts for one statistics snapshot.
type Renderer struct {
	stats model.Statistics
}

// New returns a renderer for the given statistics.
func New(stats model.Statistics) *Renderer {
	return &Renderer{stats: stats}
}

func fontFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

// PricePNG draws the min / average / max price bars as a PNG.
func (r *Renderer) PricePNG(w io.Writer) error {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	face, err := fontFace(14)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	dc.SetRGB(0.15, 0.15, 0.2)
	dc.DrawStringAnchored("Book prices", chartWidth/2, 28, 0.5, 0.5)

	labels := []string{"min", "average", "max"}
	values := []float64{r.stats.MinPrice, r.stats.AvgPrice, r.stats.MaxPrice}
	max := floats.Max(values)
	if max <= 0 {
		max = 1
	}

	const (
		baseY     = chartHeight - 60.0
		barWidth  = 120.0
		gap       = 60.0
		maxHeight = chartHeight - 140.0
	)
	total := 3*barWidth + 2*gap
	x := (chartWidth - total) / 2

	for i, v := range values {
		h := (v / max) * maxHeight
		c := palette[i%len(palette)]
		dc.SetColor(c)
		dc.DrawRectangle(x, baseY-h, barWidth, h)
		dc.Fill()

		dc.SetRGB(0.15, 0.15, 0.2)
		dc.DrawStringAnchored(labels[i], x+barWidth/2, baseY+20, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("¥%.2f", v), x+barWidth/2, baseY-h-12, 0.5, 0.5)
		x += barWidth + gap
	}
	return dc.EncodePNG(w)
}

// PublishersPNG draws the publisher distribution as a pie chart PNG.
func (r *Renderer) PublishersPNG(w io.Writer) error {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	face, err := fontFace(13)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	dc.SetRGB(0.15, 0.15, 0.2)
	dc.DrawStringAnchored("Books per publisher", chartWidth/2, 28, 0.5, 0.5)

	total := 0
	for _, p := range r.stats.Publishers {
		total += p.Count
	}
	if total == 0 {
		dc.DrawStringAnchored("no data", chartWidth/2, chartHeight/2, 0.5, 0.5)
		return dc.EncodePNG(w)
	}

	const (
		cx = 220.0
		cy = chartHeight/2 + 20.0
		rr = 130.0
	)
	angle := -math.Pi / 2
	for i, p := range r.stats.Publishers {
		span := 2 * math.Pi * float64(p.Count) / float64(total)
		dc.SetColor(palette[i%len(palette)])
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, rr, angle, angle+span)
		dc.ClosePath()
		dc.Fill()
		angle += span
	}

	// legend
	ly := 70.0
	for i, p := range r.stats.Publishers {
		dc.SetColor(palette[i%len(palette)])
		dc.DrawRectangle(400, ly-7, 14, 14)
		dc.Fill()
		dc.SetRGB(0.15, 0.15, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%s (%d)", p.Publisher, p.Count), 422, ly, 0, 0.5)
		ly += 24
	}
	return dc.EncodePNG(w)
}

// PriceSVG writes the price bars as an SVG document.
func (r *Renderer) PriceSVG(w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(chartWidth, chartHeight)
	canvas.Rect(0, 0, chartWidth, chartHeight, "fill:white")
	canvas.Text(chartWidth/2, 30, "Book prices", "text-anchor:middle;font-size:16px;fill:#282a36")

	labels := []string{"min", "average", "max"}
	values := []float64{r.stats.MinPrice, r.stats.AvgPrice, r.stats.MaxPrice}
	max := floats.Max(values)
	if max <= 0 {
		max = 1
	}

	const (
		baseY     = chartHeight - 60
		barWidth  = 120
		gap       = 60
		maxHeight = chartHeight - 140
	)
	x := (chartWidth - (3*barWidth + 2*gap)) / 2
	for i, v := range values {
		h := int((v / max) * maxHeight)
		canvas.Rect(x, baseY-h, barWidth, h, "fill:"+paletteHex[i%len(paletteHex)])
		canvas.Text(x+barWidth/2, baseY+22, labels[i], "text-anchor:middle;font-size:13px;fill:#282a36")
		canvas.Text(x+barWidth/2, baseY-h-8, fmt.Sprintf("¥%.2f", v), "text-anchor:middle;font-size:13px;fill:#282a36")
		x += barWidth + gap
	}
	canvas.End()
	return nil
}

// PublishersSVG writes the publisher distribution as a horizontal bar SVG.
func (r *Renderer) PublishersSVG(w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(chartWidth, chartHeight)
	canvas.Rect(0, 0, chartWidth, chartHeight, "fill:white")
	canvas.Text(chartWidth/2, 30, "Books per publisher", "text-anchor:middle;font-size:16px;fill:#282a36")

	maxCount := 0
	for _, p := range r.stats.Publishers {
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}
	if maxCount == 0 {
		canvas.Text(chartWidth/2, chartHeight/2, "no data", "text-anchor:middle;font-size:14px;fill:#282a36")
		canvas.End()
		return nil
	}

	y := 70
	for i, p := range r.stats.Publishers {
		barLen := int(float64(p.Count) / float64(maxCount) * 380)
		canvas.Text(180, y+12, p.Publisher, "text-anchor:end;font-size:12px;fill:#282a36")
		canvas.Rect(190, y, barLen, 16, "fill:"+paletteHex[i%len(paletteHex)])
		canvas.Text(196+barLen, y+12, fmt.Sprintf("%d", p.Count), "font-size:12px;fill:#282a36")
		y += 28
		if y > chartHeight-40 {
			break
		}
	}
	canvas.End()
	return nil
}

// WriteAll renders every chart into dir and returns the file paths.
func (r *Renderer) WriteAll(dir string) ([]string, error) {
	type job struct {
		name   string
		render func(io.Writer) error
	}
	jobs := []job{
		{"prices.png", r.PricePNG},
		{"prices.svg", r.PriceSVG},
		{"publishers.png", r.PublishersPNG},
		{"publishers.svg", r.PublishersSVG},
	}

	var paths []string
	for _, j := range jobs {
		path := filepath.Join(dir, j.name)
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		if err := j.render(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("render %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
