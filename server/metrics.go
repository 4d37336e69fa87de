package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	translationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casebridge",
		Name:      "translations_total",
		Help:      "Completed translations by target vocabulary and outcome.",
	}, []string{"target", "outcome"})

	translationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "casebridge",
		Name:      "translation_duration_seconds",
		Help:      "Time spent translating a document.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"target"})

	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casebridge",
		Name:      "uploads_total",
		Help:      "Uploaded files by input format and outcome.",
	}, []string{"format", "outcome"})

	graphNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "casebridge",
		Name:      "graph_nodes",
		Help:      "Node count of translated JSON-LD graphs.",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
	}, []string{"target"})
)
