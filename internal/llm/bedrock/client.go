// Package bedrock adapts Anthropic models hosted on AWS Bedrock to the
// uniform llm.LM calling convention.
package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/rs/zerolog"
)

// Client invokes one Bedrock model. The AWS SDK resolves credentials
// from its default chain; explicit keys override it.
type Client struct {
	Client  *bedrockruntime.Client
	ModelID string
	logger  *zerolog.Logger
}

// NewClient builds a Bedrock-backed adapter. Pass empty accessKey and
// secretKey to use the SDK's default credential chain.
func NewClient(ctx context.Context, region, modelID, accessKey, secretKey string, logger *zerolog.Logger) (*Client, error) {
	if modelID == "" {
		return nil, fmt.Errorf("bedrock: model ID is required")
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKey != "" && secretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Client{
		Client:  bedrockruntime.NewFromConfig(cfg),
		ModelID: modelID,
		logger:  logger,
	}, nil
}
