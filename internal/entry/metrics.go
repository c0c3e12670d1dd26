package entry

import "github.com/prometheus/client_golang/prometheus"

// Metric label values for lifecycle operations.
const (
	opCreate   = "create"
	opAttach   = "attach"
	opDetach   = "detach"
	opTearDown = "tear_down"
)

var lifecycleOps = []string{opCreate, opAttach, opDetach, opTearDown}

var (
	noopCallsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nativeshim_noop_calls_total",
			Help: "Total number of calls to the noop entry point.",
		},
	)

	lifecycleCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nativeshim_lifecycle_calls_total",
			Help: "Total number of isolate lifecycle calls by operation and result status.",
		},
		[]string{"op", "status"},
	)
)

func init() {
	prometheus.MustRegister(noopCallsTotal)
	prometheus.MustRegister(lifecycleCallsTotal)

	for _, op := range lifecycleOps {
		lifecycleCallsTotal.WithLabelValues(op, StatusOK.String())
	}
}
