package llm

type ClientOption func(*Client) error

func WithRegion(region string) ClientOption {
	return func(c *Client) error {
		if region == "" {
			return ErrNoRegion
		}
		c.region = region
		return nil
	}
}

func WithEmbedModel(modelID string) ClientOption {
	return func(c *Client) error {
		if modelID != "" {
			c.embedModel = modelID
		}
		return nil
	}
}

func WithTextModel(modelID string) ClientOption {
	return func(c *Client) error {
		if modelID != "" {
			c.textModel = modelID
		}
		return nil
	}
}

func WithDimensions(d int) ClientOption {
	return func(c *Client) error {
		if d > 0 {
			c.dimensions = d
		}
		return nil
	}
}

func WithTemperature(t float64) ClientOption {
	return func(c *Client) error {
		if t >= 0 {
			c.temperature = t
		}
		return nil
	}
}

func WithTopP(p float64) ClientOption {
	return func(c *Client) error {
		if p > 0 && p <= 1 {
			c.topP = p
		}
		return nil
	}
}

// WithRuntimeClient injects a custom Bedrock runtime, bypassing AWS config
// loading. Used in tests.
func WithRuntimeClient(runtime BedrockRuntimeClient) ClientOption {
	return func(c *Client) error {
		c.runtime = runtime
		return nil
	}
}
