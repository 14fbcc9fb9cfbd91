package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric definitions with appropriate labels.
var (
	// attemptsTotal counts individual attempts by job and attempt outcome.
	attemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobs_retry_attempts_total",
		Help: "Total number of attempts by job and outcome (success, timeout or failure)",
	}, []string{"job", "outcome"})

	// terminalTotal counts driver invocations by job and terminal condition.
	terminalTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobs_retry_terminal_total",
		Help: "Total number of retry driver completions by job and terminal condition",
	}, []string{"job", "condition"})

	// jobDuration tracks end-to-end driver execution time.
	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobs_retry_duration_seconds",
		Help:    "Duration of retry driver execution by job and terminal condition",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	}, []string{"job", "condition"})
)

// attemptOutcomeLabel maps an Outcome to its metric label.
func attemptOutcomeLabel[T any](out Outcome[T]) string {
	switch {
	case out.IsSuccess():
		return "success"
	case out.IsTimeout():
		return "timeout"
	default:
		return "failure"
	}
}

const (
	conditionSuccess    = "success"
	conditionMaxRetries = "max_retries"
	conditionFatal      = "fatal"
	conditionCancelled  = "cancelled"
)
