// Package metrics holds the Prometheus collectors for the builder
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vtm_builder"

// Commit results
const (
	ResultCommitted = "committed"
	ResultRejected  = "rejected"
)

var (
	allocationRefusals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "allocation_refusals_total",
		Help:      "Point assignments refused, by reason",
	}, []string{"reason"})

	commits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predator_type_commits_total",
		Help:      "Predator type commits, by result",
	}, []string{"result"})

	cascades = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predator_type_cascades_total",
		Help:      "Commits that cleared disciplines and rituals",
	})
)

// RecordRefusal counts a refused SetPoints call
func RecordRefusal(reason string) {
	allocationRefusals.WithLabelValues(reason).Inc()
}

// RecordCommit counts a commit attempt
func RecordCommit(result string) {
	commits.WithLabelValues(result).Inc()
}

// RecordCascade counts a commit that changed the bonus discipline
func RecordCascade() {
	cascades.Inc()
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
