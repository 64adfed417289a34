package observability

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	registerOnce sync.Once

	// Registry holds the decoder metrics. It is separate from the default
	// registry so dumps carry no process collectors.
	Registry = prometheus.NewRegistry()

	messagesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lsewire",
			Subsystem: "frame",
			Name:      "messages_decoded_total",
			Help:      "Messages decoded, by layout.",
		},
		[]string{"message"},
	)
	bytesDecoded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lsewire",
			Subsystem: "frame",
			Name:      "bytes_decoded_total",
			Help:      "Bytes consumed by decoded messages.",
		},
	)
	frameErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lsewire",
			Subsystem: "frame",
			Name:      "errors_total",
			Help:      "Frames rejected, by reason.",
		},
		[]string{"reason"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		Registry.MustRegister(messagesDecoded, bytesDecoded, frameErrors)
	})
}

func RecordDecoded(message string, size int) {
	RegisterMetrics()
	messagesDecoded.WithLabelValues(message).Inc()
	bytesDecoded.Add(float64(size))
}

func RecordFrameError(reason string) {
	RegisterMetrics()
	frameErrors.WithLabelValues(reason).Inc()
}

// WriteMetrics writes the registry in the Prometheus text format.
func WriteMetrics(w io.Writer) error {
	RegisterMetrics()
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
