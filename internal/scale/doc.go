// Package scale provides the linear value-to-pixel mapping used by chart
// axes and the height-driven tick count heuristic.
//
// Nice rounding and tick placement are delegated to
// github.com/aclements/go-moremath/scale; this package adds pixel ranges
// (including inverted ones) and keeps the domain direction stable.
package scale
