package convention

import (
	"context"
	"go/types"

	"go.uber.org/zap"

	"github.com/mpyw/apiconv/internal/symbols"
)

// Engine checks actions against their documented responses.
type Engine struct {
	host    Host
	symbols *symbols.Symbols
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for skip reasons and per-action summaries.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over a host and the symbols of the same pass.
func New(host Host, syms *symbols.Symbols, opts ...Option) *Engine {
	e := &Engine{
		host:    host,
		symbols: syms,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) wrapper() *types.TypeName {
	if e.symbols == nil {
		return nil
	}

	return e.symbols.Of
}

// Analyze runs the full check for one method and returns its diagnostics:
// per-statement diagnostics in source order, then the documented codes
// that are never returned.
//
// Ineligible methods yield no diagnostics. If ctx is cancelled before the
// method completes, Analyze returns ctx.Err() and no diagnostics.
// Analyze may be called concurrently for different methods.
func (e *Engine) Analyze(ctx context.Context, m Method) ([]Diagnostic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	app, reason, err := e.checkApplicable(ctx, m)
	if err != nil {
		return nil, err
	}
	if app == nil {
		e.logger.Debug("skipping method",
			zap.String("method", m.name()),
			zap.String("reason", reason),
		)
		return nil, nil
	}

	expected, err := e.resolveExpected(ctx, m.Func, app)
	if err != nil {
		return nil, err
	}

	mc := &methodContext{
		host:     e.host,
		shape:    app.shape,
		payload:  unwrapPayload(e.host, app.shape.value, e.wrapper()),
		expected: expected,
		actual:   make(actualCodes),
	}

	for _, ret := range returnStatements(m.Decl.Body) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mc.classify(ret)
	}

	for _, d := range expected.descriptors {
		if !mc.returned(d.StatusCode) {
			mc.report(DoesNotReturnDocumentedStatusCode, d.StatusCode, m.Decl.Name)
		}
	}

	if ce := e.logger.Check(zap.DebugLevel, "analyzed action"); ce != nil {
		ce.Write(
			zap.String("receiver", app.receiver.Name()),
			zap.String("method", m.name()),
			zap.Ints("expected", expected.Codes()),
			zap.Ints("actual", mc.actual.sorted()),
			zap.Int("diagnostics", len(mc.diags)),
		)
	}

	return mc.diags, nil
}
