package chart

import (
	"fmt"
	"strconv"

	"vislib-axis/internal/dom"
	"vislib-axis/internal/format"
	"vislib-axis/internal/scale"
)

const (
	OrientLeft  = "left"
	OrientRight = "right"
)

const (
	defaultTicks         = 10
	defaultInnerTickSize = 6
	defaultOuterTickSize = 6
	defaultTickPadding   = 3
)

// Axis draws a vertical axis for a linear scale. Configure it with the
// chained setters, then Call it on a group element.
type Axis struct {
	scale         *scale.Linear
	ticks         int
	format        format.Func
	orient        string
	innerTickSize float64
	outerTickSize float64
	tickPadding   float64
}

// NewAxis returns a left-oriented axis for s with ten ticks and plain labels.
func NewAxis(s *scale.Linear) *Axis {
	return &Axis{
		scale:         s,
		ticks:         defaultTicks,
		format:        format.English.Plain,
		orient:        OrientLeft,
		innerTickSize: defaultInnerTickSize,
		outerTickSize: defaultOuterTickSize,
		tickPadding:   defaultTickPadding,
	}
}

// Scale returns the scale the axis was built for.
func (a *Axis) Scale() *scale.Linear { return a.scale }

// Ticks sets the requested tick count. The scale may return fewer.
func (a *Axis) Ticks(n int) *Axis {
	a.ticks = n
	return a
}

// TickCount returns the requested tick count.
func (a *Axis) TickCount() int { return a.ticks }

// TickFormat sets the label formatter.
func (a *Axis) TickFormat(f format.Func) *Axis {
	if f != nil {
		a.format = f
	}
	return a
}

// Orient places labels to the left or right of the axis line.
func (a *Axis) Orient(o string) *Axis {
	if o == OrientLeft || o == OrientRight {
		a.orient = o
	}
	return a
}

// TickSize sets the length of the tick marks and of the domain path ends.
func (a *Axis) TickSize(inner, outer float64) *Axis {
	a.innerTickSize, a.outerTickSize = inner, outer
	return a
}

// TickPadding sets the gap between a tick mark and its label.
func (a *Axis) TickPadding(p float64) *Axis {
	a.tickPadding = p
	return a
}

// Tick is one labelled graduation.
type Tick struct {
	Value    float64
	Position float64
	Label    string
}

// Layout is the resolved geometry of an axis, independent of the
// surface it ends up on.
type Layout struct {
	Orient        string
	Ticks         []Tick
	RangeStart    float64
	RangeEnd      float64
	InnerTickSize float64
	OuterTickSize float64
	TickPadding   float64
}

// Layout computes tick positions and labels.
func (a *Axis) Layout() Layout {
	r0, r1 := a.scale.Range()
	l := Layout{
		Orient:        a.orient,
		RangeStart:    r0,
		RangeEnd:      r1,
		InnerTickSize: a.innerTickSize,
		OuterTickSize: a.outerTickSize,
		TickPadding:   a.tickPadding,
	}
	for _, v := range a.scale.Ticks(a.ticks) {
		l.Ticks = append(l.Ticks, Tick{
			Value:    v,
			Position: a.scale.Map(v),
			Label:    a.format(v),
		})
	}
	return l
}

// Labels returns the tick labels from bottom to top.
func (l Layout) Labels() []string {
	labels := make([]string, 0, len(l.Ticks))
	for _, t := range l.Ticks {
		labels = append(labels, t.Label)
	}
	return labels
}

// Call draws the axis into g: one "tick" group per tick and a "domain"
// path spanning the range.
func (a *Axis) Call(g *dom.Element) {
	l := a.Layout()

	sign, anchor := -1.0, "end"
	if l.Orient == OrientRight {
		sign, anchor = 1, "start"
	}

	for _, t := range l.Ticks {
		tick := g.Append("g").
			Attr("class", "tick").
			Attr("transform", fmt.Sprintf("translate(0,%s)", num(t.Position))).
			Attr("style", "opacity: 1;")
		tick.Append("line").
			Attr("x2", sign*l.InnerTickSize).
			Attr("y2", 0)
		tick.Append("text").
			Attr("dy", ".32em").
			Attr("x", sign*(l.InnerTickSize+l.TickPadding)).
			Attr("y", 0).
			Attr("style", "text-anchor: "+anchor+";").
			SetText(t.Label)
	}

	outer := num(sign * l.OuterTickSize)
	g.Append("path").
		Attr("class", "domain").
		Attr("d", "M"+outer+","+num(l.RangeStart)+"H0V"+num(l.RangeEnd)+"H"+outer)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
