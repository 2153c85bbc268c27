// Package ark adapts the hosted Ark (MaaS) chat endpoint API to the
// uniform llm.LM calling convention.
package ark

import (
	"fmt"
	"os"
	"time"

	"github.com/ipenchev/modelbridge/internal/arkapi"
	"github.com/ipenchev/modelbridge/internal/llm"
	"github.com/ipenchev/modelbridge/internal/retry"
	"github.com/rs/zerolog"
)

const (
	// Environment fallback for credentials, read once at construction
	// when no explicit keys are supplied.
	envAccessKey = "VOLC_ACCESSKEY"
	envSecretKey = "VOLC_SECRETKEY"

	defaultDomain = "maas-api.ml-platform-cn-beijing.volces.com"
	defaultRegion = "cn-beijing"

	// rateLimitIndicator is matched against failure message text to
	// decide whether a call is worth retrying. Message-text matching is
	// fragile but is the service's only retryability signal.
	rateLimitIndicator = "rate limits"
)

// Client is the Ark adapter. It owns the credentialed service session,
// the default generation parameters, the retry policy and the
// append-only call history. Not safe for concurrent use: callers that
// invoke from multiple goroutines must serialize, since history appends
// are unsynchronized.
type Client struct {
	endpointID string
	service    arkapi.Service
	defaults   llm.Params
	policy     retry.Policy
	logger     *zerolog.Logger
	history    []llm.HistoryRecord
}

// Option configures a Client at construction.
type Option func(*options)

type options struct {
	ak       string
	sk       string
	domain   string
	region   string
	defaults llm.Params
	service  arkapi.Service
	policy   *retry.Policy
	logger   *zerolog.Logger
}

// WithCredentials sets the access and secret key explicitly, taking
// precedence over the environment fallback.
func WithCredentials(ak, sk string) Option {
	return func(o *options) { o.ak, o.sk = ak, sk }
}

// WithDomain overrides the service domain.
func WithDomain(domain string) Option {
	return func(o *options) { o.domain = domain }
}

// WithRegion overrides the service region.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithDefaults overlays the built-in default generation parameters.
// Overlaid keys also widen the set of parameter names the adapter
// recognizes.
func WithDefaults(params llm.Params) Option {
	return func(o *options) { o.defaults = params }
}

// WithService substitutes the remote service client; used by tests and
// by callers that share a session.
func WithService(svc arkapi.Service) Option {
	return func(o *options) { o.service = svc }
}

// WithRetryPolicy replaces the default retry policy.
func WithRetryPolicy(policy retry.Policy) Option {
	return func(o *options) { o.policy = &policy }
}

// WithLogger sets the logger for backoff notices and request logging.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewClient constructs an adapter bound to one endpoint deployment.
// Credentials resolve explicit arguments first, then the environment;
// if both are absent the session is built with empty credentials and
// the first request fails remotely. Construction itself only fails on
// a missing endpoint ID or a nil substituted service.
func NewClient(endpointID string, opts ...Option) (*Client, error) {
	if endpointID == "" {
		return nil, fmt.Errorf("ark: endpoint ID is required")
	}

	o := options{
		domain: defaultDomain,
		region: defaultRegion,
	}
	for _, opt := range opts {
		opt(&o)
	}

	ak := o.ak
	if ak == "" {
		ak = os.Getenv(envAccessKey)
	}
	sk := o.sk
	if sk == "" {
		sk = os.Getenv(envSecretKey)
	}

	svc := o.service
	if svc == nil {
		svc = arkapi.NewClient(o.domain, o.region)
	}
	svc.SetAccessKey(ak)
	svc.SetSecretKey(sk)

	defaults := llm.Params{
		"max_new_tokens":    1000,
		"min_new_tokens":    1,
		"max_output_tokens": 1000,
		"temperature":       0.7,
		"top_p":             0.9,
		"top_k":             0,
		"max_prompt_tokens": 32768,
	}
	for k, v := range o.defaults {
		defaults[k] = v
	}

	logger := o.logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	c := &Client{
		endpointID: endpointID,
		service:    svc,
		defaults:   defaults,
		logger:     logger,
		history:    []llm.HistoryRecord{},
	}

	if o.policy != nil {
		c.policy = *o.policy
	} else {
		c.policy = retry.Policy{
			MaxElapsed:      1000 * time.Second,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     60 * time.Second,
		}
	}
	c.policy.GiveUp = giveUp
	c.policy.OnBackoff = c.logBackoff

	return c, nil
}

// giveUp stops retrying unless the failure message indicates a
// rate-limit condition. Every other failure surfaces immediately.
func giveUp(err error) bool {
	return !containsRateLimit(err)
}

func (c *Client) logBackoff(n retry.Notice) {
	c.logger.Info().
		Dur("wait", n.Wait).
		Int("tries", n.Tries).
		Str("target", n.Target).
		Interface("params", n.Params).
		Msg("Backing off before retry")
}

// History returns the append-only record of completed calls. The
// adapter never reads it; it exists for external inspection.
func (c *Client) History() []llm.HistoryRecord {
	return c.history
}
