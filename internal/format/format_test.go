package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPercent(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("50%", English.Percent(0.5))
	assert.Equal("0%", English.Percent(0))
	assert.Equal("100%", English.Percent(1))
	assert.Equal("-20%", English.Percent(-0.2))
}

func TestPlain(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		value float64
		label string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{0.5, "0.5"},
		{100, "100"},
		{0.30000000000000004, "0.3"},
		{-2500, "-2,500"},
	}

	for _, row := range table {
		assert.Equal(row.label, English.Plain(row.value), "value %v", row.value)
	}
}

func TestAbbreviated(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		value float64
		label string
	}{
		{0, "0"},
		{250, "250"},
		{1000, "1k"},
		{1500, "1.5k"},
		{2500000, "2.5M"},
		{1e9, "1B"},
		{2e9, "2B"},
		{5e9, "5B"},
		{-3e9, "-3B"},
		{1.2e12, "1.2T"},
		{1250, "1.3k"},
		{2.96e9, "3B"},
		{-2.96e9, "-3B"},
		{999.96, "1k"},
		{999999, "1M"},
		{9.9996e8, "1B"},
		{12.34, "12.3"},
		{12.36, "12.4"},
	}

	for _, row := range table {
		assert.Equal(row.label, English.Abbreviated(row.value), "value %v", row.value)
	}
}

func TestAbbreviatedNeverUsesGiga(t *testing.T) {
	for _, v := range []float64{1e9, 2e9, 7.5e9, 999e9} {
		assert.NotContains(t, English.Abbreviated(v), "G")
	}
}

func TestLocale(t *testing.T) {
	f := New(language.German)
	assert.Equal(t, "1.500", f.Plain(1500))
}
