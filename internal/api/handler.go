package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/ipenchev/modelbridge/internal/api/middleware"
	"github.com/ipenchev/modelbridge/internal/arkapi"
	"github.com/ipenchev/modelbridge/internal/cache"
	"github.com/ipenchev/modelbridge/internal/llm"
	"github.com/rs/zerolog"
)

type Handler struct {
	lm          llm.LM
	provider    string
	endpoint    string
	completions *cache.Completions
	logger      *zerolog.Logger
}

func NewHandler(lm llm.LM, provider, endpoint string, completions *cache.Completions, logger *zerolog.Logger) *Handler {
	return &Handler{
		lm:          lm,
		provider:    provider,
		endpoint:    endpoint,
		completions: completions,
		logger:      logger,
	}
}

// POST /api/v1/generate
// Body: GenerateRequest
// Returns: GenerateResponse
func (h *Handler) Generate(req *restful.Request, resp *restful.Response) {
	var genReq GenerateRequest
	if err := req.ReadEntity(&genReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if genReq.Prompt == "" {
		middleware.HandleError(resp, fmt.Errorf("prompt is required"), http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()

	key := cache.Key(h.provider, h.endpoint, genReq.Prompt, genReq.Params)
	if h.completions != nil {
		if completion, ok, err := h.completions.Get(ctx, key); err != nil {
			h.logger.Warn().Err(err).Msg("Completion cache lookup failed")
		} else if ok {
			h.logger.Info().Str("provider", h.provider).Msg("Completion served from cache")
			resp.WriteHeaderAndEntity(http.StatusOK, GenerateResponse{
				Provider:    h.provider,
				Endpoint:    h.endpoint,
				Completions: []string{completion},
				Cached:      true,
			})
			return
		}
	}

	h.logger.Info().
		Str("provider", h.provider).
		Str("endpoint", h.endpoint).
		Int("prompt_len", len(genReq.Prompt)).
		Msg("Start generation")

	completions, err := h.lm.Generate(ctx, llm.Request{
		Prompt:        genReq.Prompt,
		Params:        llm.Params(genReq.Params),
		OnlyCompleted: genReq.OnlyCompleted,
		ReturnSorted:  genReq.ReturnSorted,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("provider", h.provider).Msg("Generation failed")
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	if h.completions != nil && len(completions) > 0 {
		if err := h.completions.Put(ctx, key, completions[0]); err != nil {
			h.logger.Warn().Err(err).Msg("Completion cache store failed")
		}
	}

	h.logger.Info().
		Str("provider", h.provider).
		Int("completions", len(completions)).
		Msg("Generation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, GenerateResponse{
		Provider:    h.provider,
		Endpoint:    h.endpoint,
		Completions: completions,
	})
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

// statusFor maps a remote failure to an HTTP status. The service's own
// status is passed through when it is known; everything else is a 502
// so client errors on our side stay distinguishable.
func statusFor(err error) int {
	var apiErr *arkapi.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatus != 0 {
		return apiErr.HTTPStatus
	}
	return http.StatusBadGateway
}
