package helpers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryFloat(t *testing.T) {
	values := url.Values{"ymax": {"5e9"}, "bad": {"abc"}}

	v, err := QueryFloat(values, "ymax", 0)
	assert.NoError(t, err)
	assert.Equal(t, 5e9, v)

	v, err = QueryFloat(values, "width", 60)
	assert.NoError(t, err)
	assert.Equal(t, 60.0, v)

	_, err = QueryFloat(values, "bad", 0)
	assert.EqualError(t, err, `invalid bad: strconv.ParseFloat: parsing "abc": invalid syntax`)
}

func TestRequireFloat(t *testing.T) {
	_, err := RequireFloat(url.Values{}, "ymin")
	assert.EqualError(t, err, "missing ymin")

	v, err := RequireFloat(url.Values{"ymin": {"-3.5"}}, "ymin")
	assert.NoError(t, err)
	assert.Equal(t, -3.5, v)
}

func TestQueryBool(t *testing.T) {
	table := []struct {
		query string
		want  bool
		fails bool
	}{
		{"", false, false},
		{"default_y_extents", true, false},
		{"default_y_extents=true", true, false},
		{"default_y_extents=0", false, false},
		{"default_y_extents=maybe", false, true},
	}

	for _, row := range table {
		values, _ := url.ParseQuery(row.query)
		v, err := QueryBool(values, "default_y_extents")
		if row.fails {
			assert.Error(t, err, row.query)
			continue
		}
		assert.NoError(t, err, row.query)
		assert.Equal(t, row.want, v, row.query)
	}
}

func TestQueryString(t *testing.T) {
	assert.Equal(t, "normal", QueryString(url.Values{}, "mode", "normal"))
	assert.Equal(t, "wiggle", QueryString(url.Values{"mode": {" wiggle "}}, "mode", "normal"))
}
