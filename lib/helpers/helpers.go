package helpers

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// QueryFloat parses a float query parameter, returning fallback when it is
// absent.
func QueryFloat(values url.Values, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return v, nil
}

// RequireFloat is QueryFloat for parameters without a default.
func RequireFloat(values url.Values, key string) (float64, error) {
	if strings.TrimSpace(values.Get(key)) == "" {
		return 0, errors.Errorf("missing %s", key)
	}
	return QueryFloat(values, key, math.NaN())
}

// QueryBool parses a boolean query parameter. A key given without a value
// counts as true.
func QueryBool(values url.Values, key string) (bool, error) {
	if !values.Has(key) {
		return false, nil
	}
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return true, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s", key)
	}
	return v, nil
}

// QueryString returns a query parameter or fallback when it is empty.
func QueryString(values url.Values, key, fallback string) string {
	if v := strings.TrimSpace(values.Get(key)); v != "" {
		return v
	}
	return fallback
}
