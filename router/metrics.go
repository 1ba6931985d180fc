package router

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PlanQueries counts plan queries by strategy and outcome
	PlanQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_plan_queries_total",
			Help: "Total number of trip planning queries",
		},
		[]string{"strategy", "status"},
	)

	// PlanSeconds tracks the time spent answering a plan query
	PlanSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripplanner_plan_seconds",
			Help:    "Latency of trip planning queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	// PathsExplored counts candidate paths produced by enumeration
	PathsExplored = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tripplanner_paths_explored_total",
			Help: "Total number of enumerated candidate paths",
		},
	)

	// PathsRejected counts candidate paths dropped by the trip rules
	PathsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_paths_rejected_total",
			Help: "Total number of candidate paths violating mode rules",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(PlanQueries)
	prometheus.MustRegister(PlanSeconds)
	prometheus.MustRegister(PathsExplored)
	prometheus.MustRegister(PathsRejected)
}
