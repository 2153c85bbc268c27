package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/ipenchev/modelbridge/internal/cache"
	"github.com/ipenchev/modelbridge/internal/config"
	"github.com/ipenchev/modelbridge/internal/llm"
	"github.com/ipenchev/modelbridge/internal/llm/ark"
	"github.com/ipenchev/modelbridge/internal/llm/bedrock"
	"github.com/rs/zerolog"
)

// Dependencies is everything a serving binary needs wired together.
type Dependencies struct {
	LM       llm.LM
	Provider string
	Endpoint string
	Cache    *cache.Completions
	Logger   *zerolog.Logger
}

// Wire builds the configured provider adapter and, when enabled, the
// completion cache. Cache connection failure is fatal only when the
// config explicitly enables the cache.
func Wire(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	lm, endpoint, err := createLM(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s adapter: %w", cfg.Provider, err)
	}

	deps := &Dependencies{
		LM:       lm,
		Provider: cfg.Provider,
		Endpoint: endpoint,
		Logger:   logger,
	}

	if cfg.Cache.Enabled {
		client, err := cache.Connect(ctx, cfg.Cache.Addr, cfg.Cache.Password, 5)
		if err != nil {
			return nil, fmt.Errorf("failed to connect completion cache: %w", err)
		}
		deps.Cache = cache.NewCompletions(client, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	}

	return deps, nil
}

func createLM(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (llm.LM, string, error) {
	switch cfg.Provider {
	case "ark":
		opts := []ark.Option{
			ark.WithLogger(logger),
			ark.WithDefaults(llm.Params(cfg.Defaults)),
		}
		if cfg.Ark.AccessKey != "" || cfg.Ark.SecretKey != "" {
			opts = append(opts, ark.WithCredentials(cfg.Ark.AccessKey, cfg.Ark.SecretKey))
		}
		if cfg.Ark.Domain != "" {
			opts = append(opts, ark.WithDomain(cfg.Ark.Domain))
		}
		if cfg.Ark.Region != "" {
			opts = append(opts, ark.WithRegion(cfg.Ark.Region))
		}
		client, err := ark.NewClient(cfg.Ark.EndpointID, opts...)
		return client, cfg.Ark.EndpointID, err
	case "bedrock":
		client, err := bedrock.NewClient(ctx, cfg.Bedrock.Region, cfg.Bedrock.ModelID,
			cfg.Bedrock.AccessKey, cfg.Bedrock.SecretKey, logger)
		return client, cfg.Bedrock.ModelID, err
	default:
		return nil, "", fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
