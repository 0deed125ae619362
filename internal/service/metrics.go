package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK              = "ok"
	resultNoResponse      = "no_response"
	resultHistoryFailed   = "history_failed"
	resultQueryFailed     = "query_failed"
	resultSynthesisFailed = "synthesis_failed"
	resultSaved           = "saved"
	resultSaveFailed      = "failed"
)

var (
	feedbackAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_generation_attempts_total",
			Help: "Total number of text generation attempts, retries included.",
		},
	)
	feedbackResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_generation_results_total",
			Help: "Outcomes of feedback generation after retries.",
		},
		[]string{"result"},
	)
	speechResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_speech_results_total",
			Help: "Outcomes of two-stage speech synthesis.",
		},
		[]string{"result"},
	)
	pipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedback_pipeline_duration_seconds",
			Help:    "Duration of the whole message pipeline (feedback and speech).",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
	)
	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedback_sessions_active",
			Help: "Number of chat sessions held in memory.",
		},
	)
	savesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_session_saves_total",
			Help: "Saved transcripts, partitioned by result.",
		},
		[]string{"result"},
	)
)
