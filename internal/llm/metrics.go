package llm

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	llmRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "llm_request_duration_seconds",
		Help:    "LLM request duration in seconds",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "model", "status"})

	llmRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "llm_requests_total",
		Help: "Total number of LLM requests",
	}, []string{"method", "model"})

	llmErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "llm_errors_total",
		Help: "Total number of LLM errors",
	}, []string{"method", "model", "error_type"})
)

func recordRequest(method, model, status string, duration time.Duration) {
	llmRequestDuration.WithLabelValues(method, model, status).Observe(duration.Seconds())
	llmRequestsTotal.WithLabelValues(method, model).Inc()
}

func recordError(method, model, errorType string) {
	llmErrorsTotal.WithLabelValues(method, model, errorType).Inc()
}

// TracedClient wraps Client with Prometheus instrumentation. It satisfies the
// same Embed/Generate surface, so callers wire either interchangeably.
type TracedClient struct {
	client *Client
}

func NewTracedClient(client *Client) *TracedClient {
	return &TracedClient{client: client}
}

func (c *Client) WithMetrics() *TracedClient {
	return NewTracedClient(c)
}

func (t *TracedClient) Dimensions() int {
	return t.client.Dimensions()
}

func (t *TracedClient) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	status := "success"

	vec, err := t.client.Embed(ctx, text)
	if err != nil {
		status = "error"
		recordError("embed", t.client.embedModel, classifyError(err))
	}
	recordRequest("embed", t.client.embedModel, status, time.Since(start))

	return vec, err
}

func (t *TracedClient) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	start := time.Now()
	status := "success"

	text, err := t.client.Generate(ctx, prompt, maxTokens)
	if err != nil {
		status = "error"
		recordError("generate", t.client.textModel, classifyError(err))
	}
	recordRequest("generate", t.client.textModel, status, time.Since(start))

	return text, err
}
