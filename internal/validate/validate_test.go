package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions(t *testing.T) {
	table := []struct {
		name          string
		width, height float64
		ok            bool
	}{
		{"valid", 60, 200, true},
		{"zero width", 0, 200, false},
		{"zero height", 60, 0, false},
		{"negative height", 60, -5, false},
		{"nan width", math.NaN(), 200, false},
		{"inf height", 60, math.Inf(1), false},
	}

	for _, row := range table {
		t.Run(row.name, func(t *testing.T) {
			err := Dimensions{}.ValidateWidthAndHeight("div.y-axis-div", row.width, row.height)
			if row.ok {
				assert.NoError(t, err)
				return
			}

			var dimErr *DimensionError
			require.True(t, errors.As(err, &dimErr))
			assert.Equal(t, "div.y-axis-div", dimErr.Element)
			assert.Contains(t, err.Error(), "div.y-axis-div")
		})
	}
}
