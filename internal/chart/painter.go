package chart

import (
	"bytes"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color is the color type shared with go-chart.
type Color = drawing.Color

// PainterOption controls how a Layout is painted onto an image.
type PainterOption struct {
	// Size of the output in pixels
	Width, Height int
	// Position of the axis line; the same translate the markup uses
	OriginX, OriginY float64
	// The font of labels, the go-chart default font when nil
	Font *truetype.Font
	// The font size of labels
	FontSize float64
	// The color of labels
	FontColor Color
	// The color of the axis line and ticks
	StrokeColor Color
	// The width of the axis line and ticks
	StrokeWidth float64
	// Fill behind the axis, transparent when zero
	BackgroundColor Color
}

// Painter paints axis layouts with a go-chart renderer.
type Painter struct {
	r   gochart.Renderer
	opt *PainterOption
}

// Provider creates the go-chart renderer a Painter draws with.
type Provider = gochart.RendererProvider

// PNG and SVG select the output encoding.
var (
	PNG Provider = gochart.PNG
	SVG Provider = gochart.SVG
)

var (
	defaultFontColor   = Color{R: 51, G: 51, B: 51, A: 255}
	defaultStrokeColor = Color{R: 0, G: 0, B: 0, A: 255}
)

// NewPainter creates a painter backed by a renderer from provider.
func NewPainter(provider Provider, opt PainterOption) (*Painter, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, errors.Errorf("painter size must be positive, got %dx%d", opt.Width, opt.Height)
	}
	r, err := provider(opt.Width, opt.Height)
	if err != nil {
		return nil, errors.Wrap(err, "could not create renderer")
	}

	font := opt.Font
	if font == nil {
		font, err = gochart.GetDefaultFont()
		if err != nil {
			return nil, errors.Wrap(err, "could not load default font")
		}
	}
	opt.Font = font
	opt.FontSize = getDefaultFloat(opt.FontSize, 10)
	opt.StrokeWidth = getDefaultFloat(opt.StrokeWidth, 1)
	if opt.FontColor.IsZero() {
		opt.FontColor = defaultFontColor
	}
	if opt.StrokeColor.IsZero() {
		opt.StrokeColor = defaultStrokeColor
	}

	return &Painter{r: r, opt: &opt}, nil
}

// Axis paints l and returns the painter for chaining.
func (p *Painter) Axis(l Layout) *Painter {
	opt := p.opt
	r := p.r

	if !opt.BackgroundColor.IsZero() {
		r.SetFillColor(opt.BackgroundColor)
		r.MoveTo(0, 0)
		r.LineTo(opt.Width, 0)
		r.LineTo(opt.Width, opt.Height)
		r.LineTo(0, opt.Height)
		r.Close()
		r.Fill()
		r.ResetStyle()
	}

	sign := -1.0
	if l.Orient == OrientRight {
		sign = 1
	}
	x := func(v float64) int { return round(opt.OriginX + v) }
	y := func(v float64) int { return round(opt.OriginY + v) }

	r.SetStrokeColor(opt.StrokeColor)
	r.SetStrokeWidth(opt.StrokeWidth)

	// domain path
	r.MoveTo(x(sign*l.OuterTickSize), y(l.RangeStart))
	r.LineTo(x(0), y(l.RangeStart))
	r.LineTo(x(0), y(l.RangeEnd))
	r.LineTo(x(sign*l.OuterTickSize), y(l.RangeEnd))
	r.Stroke()

	for _, t := range l.Ticks {
		r.MoveTo(x(0), y(t.Position))
		r.LineTo(x(sign*l.InnerTickSize), y(t.Position))
		r.Stroke()
	}

	r.SetFont(opt.Font)
	r.SetFontSize(opt.FontSize)
	r.SetFontColor(opt.FontColor)
	offset := sign * (l.InnerTickSize + l.TickPadding)
	for _, t := range l.Ticks {
		box := r.MeasureText(t.Label)
		tx := x(offset)
		if sign < 0 {
			tx -= box.Width()
		}
		r.Text(t.Label, tx, y(t.Position)+box.Height()/2)
	}
	return p
}

// Bytes encodes everything painted so far.
func (p *Painter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.r.Save(&buf); err != nil {
		return nil, errors.Wrap(err, "could not encode axis image")
	}
	return buf.Bytes(), nil
}

func getDefaultFloat(v, defaultValue float64) float64 {
	if v == 0 {
		return defaultValue
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}
