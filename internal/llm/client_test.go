package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// mockRuntime records the last InvokeModel call and replays a canned body.
type mockRuntime struct {
	lastModelID string
	lastBody    []byte
	response    []byte
	err         error
}

func (m *mockRuntime) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	m.lastModelID = aws.ToString(params.ModelId)
	m.lastBody = params.Body
	if m.err != nil {
		return nil, m.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: m.response}, nil
}

func newTestClient(t *testing.T, runtime *mockRuntime, opts ...ClientOption) *Client {
	t.Helper()
	opts = append([]ClientOption{WithRuntimeClient(runtime)}, opts...)
	client, err := NewClient(context.Background(), opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestEmbed(t *testing.T) {
	ctx := context.Background()

	t.Run("SendsTitanRequest", func(t *testing.T) {
		runtime := &mockRuntime{response: []byte(`{"embedding":[0.1,0.2,0.3]}`)}
		client := newTestClient(t, runtime, WithDimensions(3))

		vec, err := client.Embed(ctx, "ficção científica")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(vec) != 3 {
			t.Errorf("expected 3 values, got %d", len(vec))
		}
		if runtime.lastModelID != DefaultEmbedModel {
			t.Errorf("expected model %s, got %s", DefaultEmbedModel, runtime.lastModelID)
		}

		var req titanEmbedRequest
		if err := json.Unmarshal(runtime.lastBody, &req); err != nil {
			t.Fatalf("failed to parse request body: %v", err)
		}
		if req.InputText != "ficção científica" {
			t.Errorf("unexpected inputText: %s", req.InputText)
		}
		if req.Dimensions != 3 {
			t.Errorf("expected dimensions 3, got %d", req.Dimensions)
		}
		if !req.Normalize {
			t.Error("expected normalize to be true")
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		client := newTestClient(t, &mockRuntime{})
		_, err := client.Embed(ctx, "")
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("EmptyEmbedding", func(t *testing.T) {
		client := newTestClient(t, &mockRuntime{response: []byte(`{"embedding":[]}`)})
		_, err := client.Embed(ctx, "texto")
		if !errors.Is(err, ErrBadResponse) {
			t.Fatalf("expected ErrBadResponse, got %v", err)
		}
	})

	t.Run("ProviderError", func(t *testing.T) {
		client := newTestClient(t, &mockRuntime{err: errors.New("throttled")})
		_, err := client.Embed(ctx, "texto")

		var invokeErr *InvokeError
		if !errors.As(err, &invokeErr) {
			t.Fatalf("expected InvokeError, got %v", err)
		}
		if invokeErr.Op != "embed" {
			t.Errorf("expected op embed, got %s", invokeErr.Op)
		}
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	okResponse := []byte(`{"output":{"message":{"content":[{"text":"resposta gerada"}]}}}`)

	t.Run("SendsNovaRequest", func(t *testing.T) {
		runtime := &mockRuntime{response: okResponse}
		client := newTestClient(t, runtime)

		text, err := client.Generate(ctx, "qual a pergunta?", 256)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if text != "resposta gerada" {
			t.Errorf("unexpected text: %s", text)
		}
		if runtime.lastModelID != DefaultTextModel {
			t.Errorf("expected model %s, got %s", DefaultTextModel, runtime.lastModelID)
		}

		var req novaRequest
		if err := json.Unmarshal(runtime.lastBody, &req); err != nil {
			t.Fatalf("failed to parse request body: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}
		if req.Messages[0].Content[0].Text != "qual a pergunta?" {
			t.Errorf("unexpected prompt: %s", req.Messages[0].Content[0].Text)
		}
		if req.InferenceConfig.MaxNewTokens != 256 {
			t.Errorf("expected max_new_tokens 256, got %d", req.InferenceConfig.MaxNewTokens)
		}
	})

	t.Run("DefaultsMaxTokens", func(t *testing.T) {
		runtime := &mockRuntime{response: okResponse}
		client := newTestClient(t, runtime)

		if _, err := client.Generate(ctx, "pergunta", 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var req novaRequest
		if err := json.Unmarshal(runtime.lastBody, &req); err != nil {
			t.Fatalf("failed to parse request body: %v", err)
		}
		if req.InferenceConfig.MaxNewTokens != 512 {
			t.Errorf("expected default 512, got %d", req.InferenceConfig.MaxNewTokens)
		}
	})

	t.Run("EmptyContentIsNotAnError", func(t *testing.T) {
		client := newTestClient(t, &mockRuntime{response: []byte(`{"output":{"message":{"content":[]}}}`)})

		text, err := client.Generate(ctx, "pergunta", 100)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if text != "" {
			t.Errorf("expected empty text, got %q", text)
		}
	})

	t.Run("EmptyPrompt", func(t *testing.T) {
		client := newTestClient(t, &mockRuntime{})
		_, err := client.Generate(ctx, "", 100)
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestNewClient(t *testing.T) {
	t.Run("RequiresRegionWithoutRuntime", func(t *testing.T) {
		_, err := NewClient(context.Background())
		if !errors.Is(err, ErrNoRegion) {
			t.Fatalf("expected ErrNoRegion, got %v", err)
		}
	})

	t.Run("CustomModels", func(t *testing.T) {
		runtime := &mockRuntime{response: []byte(`{"embedding":[0.5]}`)}
		client := newTestClient(t, runtime,
			WithEmbedModel("custom.embed:1"),
			WithDimensions(1),
		)

		if _, err := client.Embed(context.Background(), "x"); err != nil {
			t.Fatalf("embed: %v", err)
		}
		if runtime.lastModelID != "custom.embed:1" {
			t.Errorf("expected custom model, got %s", runtime.lastModelID)
		}
	})
}
