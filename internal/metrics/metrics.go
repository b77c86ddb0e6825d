package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Discovery and planning metrics
var (
	FilesDiscovered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "h265_converter_files_discovered",
			Help: "Number of candidate video files found in the input directory",
		},
	)

	JobsSkipped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "h265_converter_jobs_skipped",
			Help: "Number of files skipped because their output already exists",
		},
	)
)

// Dispatcher metrics
var (
	JobsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "h265_converter_jobs_in_flight",
			Help: "Number of encode processes currently running",
		},
	)

	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "h265_converter_jobs_total",
			Help: "Total number of finished encode jobs by status",
		},
		[]string{"status"}, // "success", "error"
	)

	EncodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "h265_converter_encode_duration_seconds",
			Help:    "Wall-clock duration of individual encode jobs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600},
		},
	)

	BatchRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "h265_converter_batch_running",
			Help: "Whether a batch run is currently active (1 = running, 0 = done)",
		},
	)
)

// Application info
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "h265_converter_info",
			Help: "Build information for the converter",
		},
		[]string{"version", "go_version"},
	)
)

// Initialize pre-populates label combinations so every metric is exported
// from the first Prometheus scrape.
func Initialize(version, goVersion string) {
	for _, status := range []string{"success", "error"} {
		JobsTotal.WithLabelValues(status)
	}
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
