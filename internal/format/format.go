// Package format renders axis tick values as labels.
package format

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Func renders a tick value as a label.
type Func func(v float64) string

// plainFractionDigits matches the six significant digits a generic
// number format keeps for values in the plain-label range.
const plainFractionDigits = 6

// suffixes maps SI prefixes onto the magnitude letters used on axes.
// Giga is written as B (billion).
var suffixes = map[string]string{
	"k": "k",
	"M": "M",
	"G": "B",
	"T": "T",
}

// Formatter builds label functions for one locale.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// English is the formatter used when no locale is configured.
var English = New(language.English)

// Percent multiplies v by 100 and appends a percent sign.
func (f *Formatter) Percent(v float64) string {
	return f.printer.Sprintf("%v", number.Percent(v))
}

// Plain formats v with locale grouping and no magnitude abbreviation.
func (f *Formatter) Plain(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(plainFractionDigits)))
}

// Abbreviated formats v rounded to one decimal with a magnitude suffix,
// e.g. 1500 -> 1.5k and 2e9 -> 2B. Values below one thousand keep
// their plain form. Rounding that reaches 1000 moves to the next suffix,
// so 999999 is 1M.
func (f *Formatter) Abbreviated(v float64) string {
	v = roundTenth(v)
	if math.Abs(v) < 1000 {
		return humanize.FtoaWithDigits(v, 1)
	}

	value, prefix := humanize.ComputeSI(v)
	if rounded := roundTenth(value); math.Abs(rounded) >= 1000 {
		magnitude := math.Pow(10, math.Round(math.Log10(v/value)))
		value, prefix = humanize.ComputeSI(rounded * magnitude)
	}
	digits := humanize.FtoaWithDigits(roundTenth(value), 1)
	if suffix, ok := suffixes[prefix]; ok {
		return digits + suffix
	}
	return digits + strings.TrimSpace(prefix)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
