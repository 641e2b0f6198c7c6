package media

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "files_media_operations_total",
			Help: "Media store operations by kind, operation and result.",
		},
		[]string{"kind", "operation", "result"},
	)

	bytesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "files_media_bytes_written_total",
			Help: "Bytes persisted to the storage root.",
		},
		[]string{"kind"},
	)
)

func observe(kind Kind, op string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	operationsTotal.WithLabelValues(kind.String(), op, result).Inc()
}
