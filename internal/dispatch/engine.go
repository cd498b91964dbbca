// Package dispatch orchestrates one provider invocation: parameter
// validation, domain policy enforcement, handler resolution, and the
// flattening of all upstream and policy failures into a single generic,
// non-leaking error result.
package dispatch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/apilooter/gateway/internal/catalog"
	"github.com/apilooter/gateway/internal/handler"
	"github.com/apilooter/gateway/internal/observability"
	"github.com/apilooter/gateway/internal/policy"
	"github.com/apilooter/gateway/model"
)

// DefaultMaxParamLength is the hard ceiling on any caller-supplied parameter
// value. It is not provider-specific.
const DefaultMaxParamLength = 500

// GenericErrorMessage is the only failure text shown to callers for upstream
// or policy faults. Detail never leaves the engine.
const GenericErrorMessage = "An error occurred while calling the API. Please try again."

// paramTooLongMessage is returned before any handler runs when a parameter
// exceeds the length cap.
const paramTooLongMessage = "Parameter value exceeds the maximum allowed length."

// Resolver resolves a provider to the handler that will serve it.
type Resolver interface {
	Resolve(p model.Provider) handler.Handler
}

// Engine is the dispatch orchestrator. It owns no mutable state; the catalog
// and allow-list it reads are immutable snapshots, so concurrent dispatches
// need no synchronization.
type Engine struct {
	catalog        *catalog.Registry
	handlers       Resolver
	domains        *policy.Domain
	logger         *zap.Logger
	metrics        *observability.Metrics
	maxParamLength int
}

// Option configures the Engine.
type Option func(*Engine)

// WithMetrics enables dispatch metrics recording.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithMaxParamLength overrides the parameter length cap.
func WithMaxParamLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxParamLength = n
		}
	}
}

// NewEngine creates a dispatch Engine.
func NewEngine(reg *catalog.Registry, handlers Resolver, domains *policy.Domain, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog:        reg,
		handlers:       handlers,
		domains:        domains,
		logger:         logger,
		maxParamLength: DefaultMaxParamLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dispatch runs the invocation pipeline for one provider. Only an unknown
// provider id is a caller-distinguishable error; every other failure is
// returned in-band as an error-kind result carrying the generic message.
func (e *Engine) Dispatch(ctx context.Context, providerID int, form map[string]string) (model.Result, error) {
	ctx, span := observability.StartSpan(ctx, "dispatch",
		observability.AttrProviderID.Int(providerID))
	defer span.End()

	start := time.Now()

	p, ok := e.catalog.ByID(providerID)
	if !ok {
		return model.Result{}, model.NewNotFoundError("provider not found")
	}
	span.SetAttributes(observability.AttrProviderName.String(p.Name))

	// Intersect the caller's raw form input with the provider's parameter
	// specs; anything not declared in the catalog is dropped.
	params := make(map[string]string, len(p.Parameters))
	for _, spec := range p.Parameters {
		value, ok := form[spec.Name]
		if !ok {
			continue
		}
		if len(value) > e.maxParamLength {
			e.logger.Warn("parameter too long",
				zap.String("provider", p.Name),
				zap.String("parameter", spec.Name),
				zap.Int("length", len(value)),
			)
			return e.finish(p, model.ErrorResult(paramTooLongMessage), start), nil
		}
		params[spec.Name] = value
	}

	// Defense in depth: entries were validated before deployment, but the
	// endpoint must still be inside the catalog-derived allow-list.
	if !e.domains.IsAllowed(p.Endpoint) {
		e.logger.Error("endpoint outside domain allow-list",
			zap.String("provider", p.Name),
			zap.String("endpoint", p.Endpoint),
		)
		return e.finish(p, model.ErrorResult(GenericErrorMessage), start), nil
	}

	h := e.handlers.Resolve(p)
	result := e.invoke(ctx, h, p, params)
	return e.finish(p, result, start), nil
}

// invoke runs the handler with a panic backstop. Handlers return explicit
// results and errors; the recover is defensive only.
func (e *Engine) invoke(ctx context.Context, h handler.Handler, p model.Provider, params map[string]string) (result model.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("handler panic",
				zap.String("provider", p.Name),
				zap.Any("panic", rec),
			)
			result = model.ErrorResult(GenericErrorMessage)
		}
	}()

	result, err := h.Handle(ctx, p, params)
	if err != nil {
		e.logger.Warn("upstream call failed",
			zap.String("provider", p.Name),
			zap.Error(err),
		)
		return model.ErrorResult(GenericErrorMessage)
	}
	return result
}

func (e *Engine) finish(p model.Provider, result model.Result, start time.Time) model.Result {
	if e.metrics != nil {
		e.metrics.RecordDispatch(p.Name, string(result.Kind), time.Since(start))
	}
	return result
}
