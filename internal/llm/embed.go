package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Embed converts text into a fixed-length vector using the Titan embeddings
// model. The vector length always equals Dimensions(); normalize is requested
// so cosine distance behaves well downstream.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if text == "" {
		return nil, ErrEmptyInput
	}

	body, err := json.Marshal(titanEmbedRequest{
		InputText:  text,
		Dimensions: c.dimensions,
		Normalize:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	output, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.embedModel),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, &InvokeError{Op: "embed", ModelID: c.embedModel, Err: err}
	}

	var resp titanEmbedResponse
	if err := json.Unmarshal(output.Body, &resp); err != nil {
		return nil, &InvokeError{Op: "embed", ModelID: c.embedModel,
			Err: fmt.Errorf("%w: %v", ErrBadResponse, err)}
	}

	if len(resp.Embedding) == 0 {
		return nil, &InvokeError{Op: "embed", ModelID: c.embedModel,
			Err: fmt.Errorf("%w: empty embedding", ErrBadResponse)}
	}

	return resp.Embedding, nil
}
