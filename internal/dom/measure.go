package dom

// Measurer reports the width and height of an element.
type Measurer interface {
	Measure(e *Element) (width, height float64)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(e *Element) (float64, float64)

// Measure calls f(e).
func (f MeasurerFunc) Measure(e *Element) (float64, float64) { return f(e) }

// ClientBox measures elements by their client box.
var ClientBox Measurer = MeasurerFunc(func(e *Element) (float64, float64) {
	return e.Width, e.Height
})
