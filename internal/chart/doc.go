// Package chart draws vertical value axes.
//
// An Axis resolves a scale, a tick count and a label formatter into a
// Layout. The layout can be emitted as markup into a dom element with
// Call, or painted into a PNG or SVG image with a Painter backed by
// go-chart.
package chart
