package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes scan counters and probe latency histograms for scraping.
type Recorder struct {
	scansTotal    *prometheus.CounterVec
	probeErrors   *prometheus.CounterVec
	probeDuration *prometheus.HistogramVec
	lastScore     *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	return &Recorder{
		scansTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rugcheck_scans_total",
				Help: "Completed token scans by chain and verdict",
			},
			[]string{"chain", "verdict"},
		),
		probeErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rugcheck_probe_errors_total",
				Help: "Signal probes that returned a failed result",
			},
			[]string{"probe"},
		),
		probeDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rugcheck_probe_duration_seconds",
				Help:    "Signal probe fetch duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"probe"},
		),
		lastScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rugcheck_last_score",
				Help: "Risk points of the most recent scan per chain",
			},
			[]string{"chain"},
		),
	}
}

func (r *Recorder) RecordScan(chain, verdict string) {
	r.scansTotal.WithLabelValues(chain, verdict).Inc()
}

func (r *Recorder) RecordProbeError(probe string) {
	r.probeErrors.WithLabelValues(probe).Inc()
}

func (r *Recorder) RecordProbeDuration(probe string, seconds float64) {
	r.probeDuration.WithLabelValues(probe).Observe(seconds)
}

func (r *Recorder) RecordScore(chain string, points int) {
	r.lastScore.WithLabelValues(chain).Set(float64(points))
}
