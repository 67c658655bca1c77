package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path", "method", "status"})

	SimilaritySearchResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "similarity_search_results",
		Help:    "Number of results returned per similarity search",
		Buckets: []float64{0, 1, 2, 5, 10, 20},
	}, []string{"endpoint"})

	RagAnswersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rag_answers_total",
		Help: "Total number of question-answering requests",
	}, []string{"status"})

	AuthorsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authors_created_total",
		Help: "Total number of authors created",
	})
)
