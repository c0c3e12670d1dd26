package isolate

import "github.com/prometheus/client_golang/prometheus"

var (
	activeIsolates = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nativeshim_isolates_active",
			Help: "Number of isolates created and not yet torn down.",
		},
	)

	attachedThreads = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nativeshim_threads_attached",
			Help: "Number of thread handles currently attached to an isolate.",
		},
	)
)

func init() {
	prometheus.MustRegister(activeIsolates)
	prometheus.MustRegister(attachedThreads)
}
