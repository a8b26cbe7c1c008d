package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"natid/internal/nationalid/models"
	"natid/internal/nationalid/service"
	"natid/pkg/domain"
	"natid/pkg/platform/httputil"
	"natid/pkg/requestcontext"
)

// Service defines the interface for national identifier operations.
type Service interface {
	Format(ctx context.Context, req service.Request) string
	GenerateBatch(ctx context.Context, req service.Request, count int, formatted bool) []string
	Validate(ctx context.Context, req service.Request) models.ValidationOutcome
	Regions(country domain.Country) []string
}

// Handler wires national identifier endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts national identifier endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1/national-ids", func(r chi.Router) {
		r.Post("/format", h.HandleFormat)
		r.Post("/generate", h.HandleGenerate)
		r.Post("/validate", h.HandleValidate)
		r.Get("/regions", h.HandleRegions)
	})
}

// HandleFormat handles POST /v1/national-ids/format requests.
func (h *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[Request](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	formatted := h.service.Format(ctx, req.ServiceRequest())
	httputil.WriteJSON(w, http.StatusOK, FormatResponse{Formatted: formatted})
}

// HandleGenerate handles POST /v1/national-ids/generate requests.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[GenerateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	numbers := h.service.GenerateBatch(ctx, req.ServiceRequest(), req.Count, req.Formatted)
	if numbers == nil {
		numbers = []string{}
	}

	h.logger.InfoContext(ctx, "national ids generated",
		"request_id", requestcontext.RequestID(ctx),
		"country", req.Country,
		"type", req.Type,
		"region", req.Region,
		"count", len(numbers),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	resp := GenerateResponse{Numbers: numbers}
	if len(numbers) > 0 {
		resp.Number = numbers[0]
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleValidate handles POST /v1/national-ids/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[Request](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	out := h.service.Validate(ctx, req.ServiceRequest())

	h.logger.InfoContext(ctx, "national id validated",
		"request_id", requestcontext.RequestID(ctx),
		"client_ip", requestcontext.ClientIP(ctx),
		"client", requestcontext.Client(ctx),
		"country", req.Country,
		"type", req.Type,
		"number", models.Mask(out.NormalizedNumber),
		"success", out.Valid,
		"error_kind", out.ErrorKind.String(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromOutcome(out))
}

// HandleRegions handles GET /v1/national-ids/regions?country=CA requests.
func (h *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	country := domain.ParseCountry(r.URL.Query().Get("country"))
	regions := h.service.Regions(country)
	if regions == nil {
		regions = []string{}
	}
	httputil.WriteJSON(w, http.StatusOK, RegionsResponse{
		Country: country.String(),
		Type:    domain.DefaultIDType(country).String(),
		Regions: regions,
	})
}
