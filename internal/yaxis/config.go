package yaxis

import (
	"strings"

	"github.com/pkg/errors"

	"vislib-axis/internal/dom"
)

// Mode is the chart's series layout. It decides label formatting and
// whether an axis is drawn at all.
type Mode string

const (
	ModeNormal     Mode = "normal"
	ModeStacked    Mode = "stacked"
	ModeGrouped    Mode = "grouped"
	ModePercentage Mode = "percentage"
	ModeWiggle     Mode = "wiggle"
	ModeSilhouette Mode = "silhouette"
)

var modes = []Mode{ModeNormal, ModeStacked, ModeGrouped, ModePercentage, ModeWiggle, ModeSilhouette}

// ParseMode parses a mode name. An empty name is ModeNormal.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeNormal, nil
	}
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.Errorf("unknown chart mode %q", s)
}

// Suppressed reports whether the axis is hidden in this mode. Streamgraph
// offsets have no meaningful baseline to label.
func (m Mode) Suppressed() bool {
	return m == ModeWiggle || m == ModeSilhouette
}

// Margin is the space reserved around the plot area, in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargin is the margin charts use unless configured otherwise.
var DefaultMargin = Margin{Top: 10, Right: 3, Bottom: 5, Left: 3}

// Attributes are the chart-level settings an axis reads.
type Attributes struct {
	Mode Mode
	// DefaultYExtents keeps the data extents as they are. When false an
	// all-positive or all-negative domain is extended to zero.
	DefaultYExtents bool
	Margin          Margin
}

// Config describes one axis.
type Config struct {
	// Element holds the containers (class y-axis-div) the axis renders into.
	Element    *dom.Element
	YMin, YMax float64
	Attributes Attributes
}
