// Package validate checks that a drawing surface is big enough to draw on.
package validate

import (
	"fmt"
	"math"
)

// DimensionError reports a surface with a zero, negative or non-finite size.
type DimensionError struct {
	Element string
	Width   float64
	Height  float64
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("element %s is too small to draw on: width=%v height=%v", e.Element, e.Width, e.Height)
}

// SizeValidator validates the usable size of a named element.
type SizeValidator interface {
	ValidateWidthAndHeight(element string, width, height float64) error
}

// Dimensions accepts any positive, finite width and height.
type Dimensions struct{}

// ValidateWidthAndHeight returns a *DimensionError when either side is unusable.
func (Dimensions) ValidateWidthAndHeight(element string, width, height float64) error {
	if !usable(width) || !usable(height) {
		return &DimensionError{Element: element, Width: width, Height: height}
	}
	return nil
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
