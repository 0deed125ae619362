package adapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
	statusEmpty   = "error_empty_response"
)

var (
	geminiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_gemini_requests_total",
			Help: "Total number of generateContent calls, partitioned by model and status.",
		},
		[]string{"model", "status"},
	)
	geminiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedback_gemini_request_duration_seconds",
			Help:    "Duration of generateContent calls.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
	geminiTotalTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedback_gemini_total_tokens",
			Help:    "Tokens used per generateContent call.",
			Buckets: prometheus.LinearBuckets(250, 250, 20),
		},
		[]string{"model"},
	)

	voiceVoxRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_voicevox_requests_total",
			Help: "Total number of VOICEVOX calls, partitioned by stage and status.",
		},
		[]string{"stage", "status"},
	)
	voiceVoxRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedback_voicevox_request_duration_seconds",
			Help:    "Duration of VOICEVOX calls per stage.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
)
