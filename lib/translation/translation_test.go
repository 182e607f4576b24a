package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateFallsBackToMessageID(t *testing.T) {
	Configure(t.TempDir(), "en")

	assert.Equal(t, "en", GetLanguage())
	assert.Equal(t, "Unknown preset: revenue", Translate("Unknown preset: %s", "revenue"))
}
