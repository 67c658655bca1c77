// Package llm provides a client for AWS Bedrock models.
//
// Embeddings use Amazon Titan Embed Text v2 and text generation uses Amazon
// Nova Micro, the same models the data pipeline was built around. The runtime
// is an interface so tests can substitute a deterministic fake.
//
//	client, err := llm.NewClient(ctx,
//	    llm.WithRegion("us-east-2"),
//	    llm.WithDimensions(1024),
//	)
//	vec, err := client.Embed(ctx, "dystopian fiction")
//	txt, err := client.Generate(ctx, prompt, 512)
package llm

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const (
	DefaultEmbedModel = "amazon.titan-embed-text-v2:0"
	DefaultTextModel  = "amazon.nova-micro-v1:0"
	DefaultDimensions = 1024
)

// BedrockRuntimeClient is the slice of the Bedrock runtime API the client
// uses. It exists so tests can mock InvokeModel.
type BedrockRuntimeClient interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type Client struct {
	runtime     BedrockRuntimeClient
	region      string
	embedModel  string
	textModel   string
	dimensions  int
	temperature float64
	topP        float64
}

func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{
		embedModel:  DefaultEmbedModel,
		textModel:   DefaultTextModel,
		dimensions:  DefaultDimensions,
		temperature: 0.7,
		topP:        0.9,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.runtime == nil {
		if c.region == "" {
			return nil, ErrNoRegion
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		c.runtime = bedrockruntime.NewFromConfig(cfg)
	}

	return c, nil
}

// Dimensions returns the embedding output dimensionality the client requests.
func (c *Client) Dimensions() int {
	return c.dimensions
}
