package metrics

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vislib-axis/internal/database"
)

func TestSaveAndLoad(t *testing.T) {
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "axis.db")))
	defer database.CloseDB()

	m := New(prometheus.NewRegistry())
	m.RendersTotal.WithLabelValues("normal").Add(3)
	m.RendersTotal.WithLabelValues("percentage").Inc()
	m.SuppressedTotal.WithLabelValues("wiggle").Inc()
	m.ErrorsTotal.WithLabelValues(KindDimension).Add(2)
	m.CacheHitsTotal.Add(5)
	require.NoError(t, m.Save())

	restored := New(prometheus.NewRegistry())
	require.NoError(t, restored.Load())

	assert.Equal(t, 3.0, GetMetricValue(restored.RendersTotal.WithLabelValues("normal")))
	assert.Equal(t, 1.0, GetMetricValue(restored.RendersTotal.WithLabelValues("percentage")))
	assert.Equal(t, 1.0, GetMetricValue(restored.SuppressedTotal.WithLabelValues("wiggle")))
	assert.Equal(t, 2.0, GetMetricValue(restored.ErrorsTotal.WithLabelValues(KindDimension)))
	assert.Equal(t, 5.0, GetMetricValue(restored.CacheHitsTotal))
}

func TestLoadEmptyDatabase(t *testing.T) {
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "axis.db")))
	defer database.CloseDB()

	m := New(prometheus.NewRegistry())
	require.NoError(t, m.Load())
	assert.Zero(t, GetMetricValue(m.CacheHitsTotal))
}

func TestNewRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.RendersTotal.WithLabelValues("normal").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "vislib_yaxis_renders_total")
	assert.Contains(t, names, "vislib_yaxis_cache_hits_total")
}
