package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Generate produces text from a prompt, bounded by maxTokens. A provider
// response with no content is returned as an empty string, not an error.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if ctx == nil {
		return "", ErrNilContext
	}
	if prompt == "" {
		return "", ErrEmptyInput
	}
	if maxTokens <= 0 {
		maxTokens = 512
	}

	body, err := json.Marshal(novaRequest{
		Messages: []novaMessage{
			{Role: "user", Content: []novaContent{{Text: prompt}}},
		},
		InferenceConfig: novaInferenceConfig{
			MaxNewTokens: maxTokens,
			Temperature:  c.temperature,
			TopP:         c.topP,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	output, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.textModel),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", &InvokeError{Op: "generate", ModelID: c.textModel, Err: err}
	}

	var resp novaResponse
	if err := json.Unmarshal(output.Body, &resp); err != nil {
		return "", &InvokeError{Op: "generate", ModelID: c.textModel,
			Err: fmt.Errorf("%w: %v", ErrBadResponse, err)}
	}

	content := resp.Output.Message.Content
	if len(content) == 0 {
		return "", nil
	}

	return content[0].Text, nil
}
