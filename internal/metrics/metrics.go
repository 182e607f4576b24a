package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"vislib-axis/internal/database"
)

const (
	namespace = "vislib"
	subsystem = "yaxis"
)

// Error kinds counted by ErrorsTotal.
const (
	KindDimension = "dimension"
	KindScale     = "scale"
	KindRequest   = "request"
	KindInternal  = "internal"
)

// AxisMetrics counts what the axis renderer does. Counters survive restarts
// through Load and Save.
type AxisMetrics struct {
	RendersTotal    *prometheus.CounterVec
	SuppressedTotal *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
	CacheHitsTotal  prometheus.Counter
	Mutex           sync.Mutex
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *AxisMetrics {
	m := &AxisMetrics{
		RendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "renders_total",
				Help:      "The total number of rendered axes",
			},
			[]string{"mode"},
		),
		SuppressedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "suppressed_total",
				Help:      "The total number of axes skipped because the mode hides them",
			},
			[]string{"mode"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "errors_total",
				Help:      "The total number of failed renders by kind",
			},
			[]string{"kind"},
		),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_hits_total",
			Help:      "The total number of responses served from the render cache",
		}),
	}

	reg.MustRegister(m.RendersTotal, m.SuppressedTotal, m.ErrorsTotal, m.CacheHitsTotal)
	return m
}

// Load adds the counter values stored in the database.
func (m *AxisMetrics) Load() error {
	m.Mutex.Lock()
	defer m.Mutex.Unlock()

	cacheHits, err := database.GetMetric("cache_hits_total")
	if err != nil {
		return err
	}
	m.CacheHitsTotal.Add(cacheHits)

	errs := multierr.Combine(
		loadLabeledMetrics("renders_total", m.RendersTotal),
		loadLabeledMetrics("suppressed_total", m.SuppressedTotal),
		loadLabeledMetrics("errors_total", m.ErrorsTotal),
	)
	if errs == nil {
		log.Debug("Metrics loaded from database.")
	}
	return errs
}

func loadLabeledMetrics(metricName string, vec *prometheus.CounterVec) error {
	metricsWithLabels, err := database.GetMetricsWithLabels(metricName)
	if err != nil {
		return err
	}
	for labelKey, labelValues := range metricsWithLabels {
		for labelValue, value := range labelValues {
			vec.With(prometheus.Labels{labelKey: labelValue}).Add(value)
		}
	}
	return nil
}

// Save writes the current counter values to the database.
func (m *AxisMetrics) Save() error {
	m.Mutex.Lock()
	defer m.Mutex.Unlock()

	errs := multierr.Combine(
		database.SaveMetric("cache_hits_total", GetMetricValue(m.CacheHitsTotal)),
		saveLabeledMetrics("renders_total", m.RendersTotal),
		saveLabeledMetrics("suppressed_total", m.SuppressedTotal),
		saveLabeledMetrics("errors_total", m.ErrorsTotal),
	)
	if errs == nil {
		log.Debug("Metrics saved to database.")
	}
	return errs
}

func saveLabeledMetrics(metricName string, vec *prometheus.CounterVec) error {
	metricChan := make(chan prometheus.Metric, 1)
	go func() {
		vec.Collect(metricChan)
		close(metricChan)
	}()

	var errs error
	for metric := range metricChan {
		metricProto := &dto.Metric{}
		if err := metric.Write(metricProto); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, label := range metricProto.Label {
			errs = multierr.Append(errs, database.SaveMetricWithLabels(
				metricName, label.GetName(), label.GetValue(), metricProto.Counter.GetValue(),
			))
		}
	}
	return errs
}

// GetMetricValue reads the current value of a single counter or gauge.
func GetMetricValue(metric prometheus.Collector) float64 {
	var metricValue float64
	metricChan := make(chan prometheus.Metric, 1)
	metric.Collect(metricChan)
	close(metricChan)

	metricProto := &dto.Metric{}
	if err := (<-metricChan).Write(metricProto); err != nil {
		log.Errorf("Failed to read metric value: %v", err)
		return 0
	}

	if metricProto.Counter != nil {
		metricValue = metricProto.Counter.GetValue()
	} else if metricProto.Gauge != nil {
		metricValue = metricProto.Gauge.GetValue()
	}
	return metricValue
}
