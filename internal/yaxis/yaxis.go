package yaxis

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"vislib-axis/internal/chart"
	"vislib-axis/internal/dom"
	"vislib-axis/internal/format"
	"vislib-axis/internal/scale"
	"vislib-axis/internal/validate"
)

// ContainerClass marks the elements an axis is rendered into.
const ContainerClass = "y-axis-div"

// axisOffset keeps the axis line inside the svg's right edge.
const axisOffset = 2

// InvalidScaleError is returned when a scale maps its domain to NaN or
// infinite pixel positions. It points at non-finite input.
type InvalidScaleError struct {
	YMin, YMax float64
	Height     float64
}

func (e *InvalidScaleError) Error() string {
	return fmt.Sprintf("y scale is not a number for domain [%v, %v] and height %v", e.YMin, e.YMax, e.Height)
}

// YAxis renders a vertical value axis into every axis container under an
// element.
type YAxis struct {
	el         *dom.Element
	yMin, yMax float64
	attr       Attributes

	// domain after the last normalization
	domain [2]float64

	validator validate.SizeValidator
	measurer  dom.Measurer
	formatter *format.Formatter
}

// Option customizes the collaborators of a YAxis.
type Option func(*YAxis)

// WithValidator replaces the size check run before drawing.
func WithValidator(v validate.SizeValidator) Option {
	return func(y *YAxis) { y.validator = v }
}

// WithMeasurer replaces how container elements are measured.
func WithMeasurer(m dom.Measurer) Option {
	return func(y *YAxis) { y.measurer = m }
}

// WithFormatter sets the locale used for tick labels.
func WithFormatter(f *format.Formatter) Option {
	return func(y *YAxis) { y.formatter = f }
}

// New returns an axis for cfg.
func New(cfg Config, opts ...Option) *YAxis {
	y := &YAxis{
		el:        cfg.Element,
		yMin:      cfg.YMin,
		yMax:      cfg.YMax,
		attr:      cfg.Attributes,
		domain:    [2]float64{cfg.YMin, cfg.YMax},
		validator: validate.Dimensions{},
		measurer:  dom.ClientBox,
		formatter: format.English,
	}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// Normalize turns (yMin, yMax) into a domain an axis can be drawn for.
// Equal bounds are pulled apart towards zero, or to [-1, 1] at zero.
// Unless defaultYExtents is set, a domain entirely above or below zero
// is extended to include it.
func Normalize(yMin, yMax float64, defaultYExtents bool) (float64, float64) {
	switch {
	case yMin == yMax:
		switch {
		case yMin > 0:
			yMin = 0
		case yMin == 0:
			yMin, yMax = -1, 1
		default:
			yMax = 0
		}
	case !defaultYExtents:
		if yMin > 0 && yMax > 0 {
			yMin = 0
		}
		if yMin < 0 && yMax < 0 {
			yMax = 0
		}
	}
	return yMin, yMax
}

// Domain returns the normalized domain computed by the last YScale call,
// or the configured bounds before any call.
func (y *YAxis) Domain() (float64, float64) {
	return y.domain[0], y.domain[1]
}

// Mode returns the configured chart mode.
func (y *YAxis) Mode() Mode { return y.attr.Mode }

// YScale returns the value-to-pixel scale for an axis height pixels tall,
// with the domain niced to the tick count for that height. Other chart
// layers use it to line up with the axis.
func (y *YAxis) YScale(height float64) (*scale.Linear, error) {
	yMin, yMax := Normalize(y.yMin, y.yMax, y.attr.DefaultYExtents)
	y.domain = [2]float64{yMin, yMax}

	invalid := &InvalidScaleError{YMin: yMin, YMax: yMax, Height: height}
	if !finite(yMin) || !finite(yMax) || !finite(height) {
		return nil, invalid
	}

	s := scale.NewLinear(yMin, yMax, height, 0).Nice(scale.TickScale(height))
	if !s.Finite() {
		return nil, invalid
	}
	return s, nil
}

// TickFormat picks the label formatter: percentages in percentage mode,
// plain numbers up to 100, abbreviated magnitudes above.
func (y *YAxis) TickFormat() format.Func {
	_, yMax := Normalize(y.yMin, y.yMax, y.attr.DefaultYExtents)
	switch {
	case y.attr.Mode == ModePercentage:
		return y.formatter.Percent
	case yMax <= 100:
		return y.formatter.Plain
	default:
		return y.formatter.Abbreviated
	}
}

// YAxis builds the left-oriented axis for the given height.
func (y *YAxis) YAxis(height float64) (*chart.Axis, error) {
	s, err := y.YScale(height)
	if err != nil {
		return nil, err
	}
	return chart.NewAxis(s).
		TickFormat(y.TickFormat()).
		Ticks(scale.TickScale(height)).
		Orient(chart.OrientLeft), nil
}

// Render draws the axis into every container under the configured
// element. Containers are handled independently; the errors of the ones
// that could not be drawn are combined. Nothing is appended in wiggle or
// silhouette mode. Render does not remove axes from earlier calls.
func (y *YAxis) Render() error {
	if y.el == nil {
		return errors.New("y axis has no element to render into")
	}

	var errs error
	for _, el := range y.el.SelectAll(ContainerClass) {
		errs = multierr.Append(errs, y.draw(el))
	}
	return errs
}

func (y *YAxis) draw(el *dom.Element) error {
	width, fullHeight := y.measurer.Measure(el)
	return y.drawSized(el, width, fullHeight)
}

func (y *YAxis) drawSized(el *dom.Element, width, fullHeight float64) error {
	axis, height, err := y.prepare(el.Describe(), width, fullHeight)
	if err != nil || axis == nil {
		return err
	}

	margin := y.attr.Margin
	svg := el.Append("svg").
		Attr("width", width).
		Attr("height", height+margin.Top+margin.Bottom)
	g := svg.Append("g").
		Attr("class", "y axis").
		Attr("transform", "translate("+num(width-axisOffset)+","+num(margin.Top)+")")
	axis.Call(g)
	return nil
}

// SVG draws the axis into a detached container of the given size and
// returns the svg markup. It returns nil when the mode suppresses the axis.
func (y *YAxis) SVG(width, fullHeight float64) ([]byte, error) {
	container := dom.New("div").AddClass(ContainerClass)
	if err := y.drawSized(container, width, fullHeight); err != nil {
		return nil, err
	}
	svgs := container.Find("svg")
	if len(svgs) == 0 {
		return nil, nil
	}
	return []byte(svgs[0].String()), nil
}

// Image paints the axis for a container of the given size with a
// go-chart renderer. It returns nil bytes when the mode suppresses the axis.
func (y *YAxis) Image(provider chart.Provider, width, fullHeight float64, opt chart.PainterOption) ([]byte, error) {
	axis, _, err := y.prepare("image", width, fullHeight)
	if err != nil || axis == nil {
		return nil, err
	}

	opt.Width = int(math.Ceil(width))
	opt.Height = int(math.Ceil(fullHeight))
	opt.OriginX = width - axisOffset
	opt.OriginY = y.attr.Margin.Top
	p, err := chart.NewPainter(provider, opt)
	if err != nil {
		return nil, err
	}
	return p.Axis(axis.Layout()).Bytes()
}

// prepare validates the container size and builds the axis. It returns a
// nil axis without error when the mode suppresses drawing.
func (y *YAxis) prepare(name string, width, fullHeight float64) (*chart.Axis, float64, error) {
	height := fullHeight - y.attr.Margin.Top - y.attr.Margin.Bottom
	if err := y.validator.ValidateWidthAndHeight(name, width, height); err != nil {
		return nil, height, err
	}

	axis, err := y.YAxis(height)
	if err != nil {
		return nil, height, err
	}
	if y.attr.Mode.Suppressed() {
		return nil, height, nil
	}
	return axis, height, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
