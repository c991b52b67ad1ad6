// Package prometheus exposes ebrake metrics through the prometheus client.
package prometheus

import (
	"errors"
	"unicode/utf8"

	ebrake "github.com/TrippingKelsea/EmergencyBrake"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// MetricsNamespace is the common metric namespace (prefix).
	MetricsNamespace = "ebrake"

	// SamplesMetricName is the suffix of the samples metric.
	SamplesMetricName = "samples_total"
	samplesMetricHelp = "Number of outcome samples recorded by the brake."

	// WindowFailuresMetricName is the suffix of the window failures metric.
	WindowFailuresMetricName = "window_failures"
	windowFailuresMetricHelp = "Number of failures currently in the sliding window."

	// WindowFillMetricName is the suffix of the window fill metric.
	WindowFillMetricName = "window_fill"
	windowFillMetricHelp = "Number of samples currently in the sliding window."

	// TriggersMetricName is the suffix of the triggers metric.
	TriggersMetricName = "triggers_total"
	triggersMetricHelp = "Number of trigger events fired by the brake."

	// BrakeNameLabel is the label name for the brake name.
	BrakeNameLabel = "name"
	// SampleOutcomeLabel is the label name for the sample outcome.
	SampleOutcomeLabel = "outcome"
)

// ErrInvalidBrakeName is returned when the brake name is not valid utf-8.
var ErrInvalidBrakeName = errors.New("invalid brake name")

// Metrics holds the prometheus instruments for one brake. Values are
// pushed through the brake's hooks from the owning goroutine, so the
// unlocked core is never read concurrently by the scraper.
type Metrics struct {
	samples  *prom.CounterVec
	failures prom.Gauge
	fill     prom.Gauge
	triggers prom.Counter
}

// NewMetricsToDefaultRegisterer registers the brake metrics using the
// prometheus DefaultRegisterer, labeled with brakeName.
func NewMetricsToDefaultRegisterer(brakeName string) (*Metrics, error) {
	return NewMetrics(brakeName, prom.DefaultRegisterer)
}

// NewMetrics registers the brake metrics using the provided Registerer,
// labeled with brakeName. NewMetrics returns ErrInvalidBrakeName when
// brakeName is not a valid utf-8 string.
func NewMetrics(brakeName string, registerer prom.Registerer) (*Metrics, error) {
	return NewMetricsWithFactory(brakeName, promauto.With(registerer))
}

// NewMetricsWithFactory registers the brake metrics using the provided
// promauto Factory, labeled with brakeName.
func NewMetricsWithFactory(brakeName string, factory promauto.Factory) (*Metrics, error) {
	if !utf8.ValidString(brakeName) {
		return nil, ErrInvalidBrakeName
	}

	nameLabel := prom.Labels{BrakeNameLabel: brakeName}

	return &Metrics{
		samples: factory.NewCounterVec(
			prom.CounterOpts{
				Namespace:   MetricsNamespace,
				Name:        SamplesMetricName,
				Help:        samplesMetricHelp,
				ConstLabels: nameLabel,
			},
			[]string{SampleOutcomeLabel},
		),
		failures: factory.NewGauge(prom.GaugeOpts{
			Namespace:   MetricsNamespace,
			Name:        WindowFailuresMetricName,
			Help:        windowFailuresMetricHelp,
			ConstLabels: nameLabel,
		}),
		fill: factory.NewGauge(prom.GaugeOpts{
			Namespace:   MetricsNamespace,
			Name:        WindowFillMetricName,
			Help:        windowFillMetricHelp,
			ConstLabels: nameLabel,
		}),
		triggers: factory.NewCounter(prom.CounterOpts{
			Namespace:   MetricsNamespace,
			Name:        TriggersMetricName,
			Help:        triggersMetricHelp,
			ConstLabels: nameLabel,
		}),
	}, nil
}

// Options returns the brake options that wire these instruments to the
// brake's sample and trigger hooks. Pass them to ebrake.New alongside
// any other options.
func (m *Metrics) Options() []ebrake.Option {
	return []ebrake.Option{
		ebrake.OnSample(func(_ string, ok bool, failures, samples int) {
			outcome := "failure"
			if ok {
				outcome = "success"
			}
			m.samples.WithLabelValues(outcome).Inc()
			m.failures.Set(float64(failures))
			m.fill.Set(float64(samples))
		}),
		ebrake.OnTrigger(func(_ string, _, _ int) {
			m.triggers.Inc()
		}),
	}
}
