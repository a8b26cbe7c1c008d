// Package service is the public entry point for formatting, generating and
// validating national identifiers. It routes a (country, type) pair to the
// jurisdiction package and returns empty results for unsupported pairs
// instead of errors.
package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"natid/internal/nationalid/metrics"
	"natid/internal/nationalid/models"
	"natid/internal/nationalid/region"
	"natid/internal/nationalid/sin"
	"natid/internal/nationalid/ssn"
	"natid/pkg/domain"
	"natid/pkg/platform/random"
)

const unsupportedType = "unsupported"

// MaxBatchSize bounds GenerateBatch.
const MaxBatchSize = 100

// Request addresses one identifier operation. Number is ignored by Generate;
// Region is ignored by Format and Validate.
type Request struct {
	Country domain.Country
	Type    domain.IDType
	Region  string
	Number  string
}

// ParseRequest builds a Request from untrusted strings. It never fails:
// unrecognized country or type codes parse to their Unknown variants and the
// request is later treated as unsupported.
func ParseRequest(country, idType, regionHint, number string) Request {
	return Request{
		Country: domain.ParseCountry(country),
		Type:    domain.ParseIDType(idType),
		Region:  regionHint,
		Number:  number,
	}
}

// jurisdiction bundles the operations of one identifier kind.
type jurisdiction struct {
	format   func(raw string) string
	generate func(src random.Source, hint string) string
	validate func(raw string) models.ValidationOutcome
	regions  func() []string
	// knownHint reports whether a hint steers generation.
	knownHint func(hint string) bool
}

var jurisdictions = map[domain.IDType]jurisdiction{
	domain.IDTypeSIN: {
		format:   sin.Format,
		generate: sin.Generate,
		validate: sin.Validate,
		regions: func() []string {
			return codes(region.Provinces())
		},
		knownHint: func(hint string) bool {
			return region.ParseProvince(hint) != region.ProvinceUnknown
		},
	},
	domain.IDTypeSSN: {
		format:   ssn.Format,
		generate: ssn.Generate,
		validate: ssn.Validate,
		regions: func() []string {
			return codes(region.States())
		},
		knownHint: func(hint string) bool {
			return region.ParseState(hint) != region.StateUnknown
		},
	},
}

// Service dispatches identifier operations. It holds no mutable state and is
// safe for concurrent use when its random source is.
type Service struct {
	random  random.Source
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithRandom sets the source used by Generate.
func WithRandom(src random.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.random = src
		}
	}
}

// WithLogger sets the logger. Identifiers are only ever logged masked.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates a Service. Without options it uses the process-wide random
// source, discards logs and records no metrics.
func New(opts ...Option) *Service {
	s := &Service{
		random: random.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer("natid/internal/nationalid/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lookup resolves the jurisdiction for req, or false when the pair is
// unsupported.
func lookup(req Request) (jurisdiction, bool) {
	if !req.Type.IssuedBy(req.Country) {
		return jurisdiction{}, false
	}
	j, ok := jurisdictions[req.Type]
	return j, ok
}

// Format renders req.Number in the display format of its jurisdiction.
// Unsupported pairs yield "".
func (s *Service) Format(ctx context.Context, req Request) string {
	ctx, done := s.start(ctx, "format", req)
	defer done()

	j, ok := lookup(req)
	if !ok {
		return ""
	}
	return j.format(req.Number)
}

// Generate synthesizes one unformatted 9-digit identifier steered by
// req.Region. Unsupported pairs yield "".
func (s *Service) Generate(ctx context.Context, req Request) string {
	numbers := s.GenerateBatch(ctx, req, 1, false)
	if len(numbers) == 0 {
		return ""
	}
	return numbers[0]
}

// GenerateBatch synthesizes count identifiers, in display format when
// formatted is set. count is clamped to [1, MaxBatchSize]. Unsupported pairs
// yield nil.
func (s *Service) GenerateBatch(ctx context.Context, req Request, count int, formatted bool) []string {
	ctx, done := s.start(ctx, "generate", req)
	defer done()

	j, ok := lookup(req)
	if !ok {
		return nil
	}
	count = max(1, min(count, MaxBatchSize))
	numbers := make([]string, count)
	for i := range numbers {
		numbers[i] = j.generate(s.random, req.Region)
		if formatted {
			numbers[i] = j.format(numbers[i])
		}
	}

	hinted := j.knownHint(req.Region)
	s.metrics.AddGenerated(req.Type.String(), hinted, count)
	s.logger.DebugContext(ctx, "national ids generated",
		"type", req.Type,
		"region_hint", req.Region,
		"hinted", hinted,
		"count", count,
		"formatted", formatted,
	)
	return numbers
}

// Validate checks req.Number against its jurisdiction's structural rules.
// Unsupported pairs yield the zero outcome.
func (s *Service) Validate(ctx context.Context, req Request) models.ValidationOutcome {
	ctx, done := s.start(ctx, "validate", req)
	defer done()

	j, ok := lookup(req)
	if !ok {
		return models.ValidationOutcome{}
	}
	out := j.validate(req.Number)

	s.metrics.IncrementValidation(req.Type.String(), out.Valid, out.ErrorKind.String())
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Bool("natid.valid", out.Valid),
		attribute.String("natid.error_kind", out.ErrorKind.String()),
	)
	s.logger.DebugContext(ctx, "national id validated",
		"type", req.Type,
		"number", models.Mask(out.NormalizedNumber),
		"valid", out.Valid,
		"error_kind", out.ErrorKind.String(),
		"region", out.Region,
	)
	return out
}

// Regions lists the region hints accepted for the identifier kind issued by
// country, or nil for unsupported countries.
func (s *Service) Regions(country domain.Country) []string {
	j, ok := lookup(Request{Country: country, Type: domain.DefaultIDType(country)})
	if !ok {
		return nil
	}
	return j.regions()
}

// start opens a span and returns a func that ends it and records metrics.
func (s *Service) start(ctx context.Context, operation string, req Request) (context.Context, func()) {
	begin := time.Now()
	typ := unsupportedType
	if _, ok := lookup(req); ok {
		typ = req.Type.String()
	}
	ctx, span := s.tracer.Start(ctx, "nationalid."+operation, trace.WithAttributes(
		attribute.String("natid.country", req.Country.String()),
		attribute.String("natid.type", typ),
	))
	return ctx, func() {
		s.metrics.IncrementOperation(operation, typ)
		s.metrics.ObserveLatency(operation, time.Since(begin))
		span.End()
	}
}

func codes[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
