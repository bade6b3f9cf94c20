// Package metrics records extraction outcomes for batch runs.
package metrics

import (
	"errors"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "skills_extractor"

// Recorder holds extraction metrics on a private registry so that a batch
// run can be written out as a node-exporter textfile.
type Recorder struct {
	registry *prometheus.Registry

	documents   *prometheus.CounterVec
	fieldsFound *prometheus.CounterVec
	duration    prometheus.Histogram
	coverage    prometheus.Histogram
}

// NewRecorder creates a recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "documents_total",
				Help:      "Documents processed by result",
			},
			[]string{"result"},
		),
		fieldsFound: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "fields_found_total",
				Help:      "Documents in which each field was found",
			},
			[]string{"field"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "duration_seconds",
				Help:      "Time to load and extract one document",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		coverage: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "fields_per_document",
				Help:      "Number of the eleven fields found per document",
				Buckets:   prometheus.LinearBuckets(0, 1, 12),
			},
		),
	}
	r.registry.MustRegister(r.documents, r.fieldsFound, r.duration, r.coverage)
	return r
}

// ObserveRecord records a successful extraction.
func (r *Recorder) ObserveRecord(rec *models.ResumeRecord, elapsed time.Duration) {
	r.documents.WithLabelValues("ok").Inc()
	r.duration.Observe(elapsed.Seconds())
	r.coverage.Observe(float64(rec.FoundCount()))
	for _, f := range rec.Fields() {
		r.fieldsFound.WithLabelValues(f).Inc()
	}
}

// ObserveFailure records a failed extraction.
func (r *Recorder) ObserveFailure(err error, elapsed time.Duration) {
	r.documents.WithLabelValues(Result(err)).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// Result classifies an extraction error as a metric label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, skillsheet.ErrFileNotFound):
		return "not_found"
	case errors.Is(err, skillsheet.ErrUnsupportedFormat), errors.Is(err, skillsheet.ErrCodecUnavailable):
		return "unsupported"
	case errors.Is(err, skillsheet.ErrInvalidFormat):
		return "invalid"
	case errors.Is(err, skillsheet.ErrNoData):
		return "no_data"
	default:
		return "error"
	}
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current metrics in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
