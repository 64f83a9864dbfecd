package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FetchRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "xenmobile",
		Subsystem: "backup",
		Name:      "fetch_requests_total",
		Help:      "Total number of fetches issued against the XenMobile API",
	}, []string{"resource"})

	FetchFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "xenmobile",
		Subsystem: "backup",
		Name:      "fetch_failures_total",
		Help:      "Total number of failed fetches against the XenMobile API",
	}, []string{"resource"})

	LastBackup = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "xenmobile",
		Subsystem: "backup",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successfully assembled backup",
	})

	BackupDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "xenmobile",
		Subsystem: "backup",
		Name:      "duration_seconds",
		Help:      "Time taken to fetch and assemble one backup",
	})
)

// Metrics registers the backup metrics with the default registry. Only the
// interval-mode listener serves them; one-shot runs never call this.
func Metrics() {
	prometheus.MustRegister(FetchRequests, FetchFailures, LastBackup, BackupDuration)
}
