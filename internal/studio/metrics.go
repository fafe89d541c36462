package studio

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	scanDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "webdraw",
			Subsystem: "scan",
			Name:      "duration_seconds",
			Help:      "Duration of directory scans in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"catalog"},
	)

	scanResults = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "webdraw",
			Subsystem: "scan",
			Name:      "results",
			Help:      "Number of entries returned by the last successful scan",
		},
		[]string{"catalog"},
	)

	scanErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webdraw",
			Subsystem: "scan",
			Name:      "errors_total",
			Help:      "Total failed scans",
		},
		[]string{"catalog", "reason"},
	)

	presetFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webdraw",
			Subsystem: "presets",
			Name:      "failures_total",
			Help:      "Total preset files skipped because they could not be loaded",
		},
		[]string{"catalog"},
	)
)

func init() {
	prometheus.MustRegister(scanDuration, scanResults, scanErrorsTotal, presetFailuresTotal)
}
