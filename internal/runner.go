package internal

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/apiconv/internal/config"
	"github.com/mpyw/apiconv/internal/convention"
	"github.com/mpyw/apiconv/internal/directive/ignore"
	"github.com/mpyw/apiconv/internal/host"
	"github.com/mpyw/apiconv/internal/symbols"
)

// Category is the analysis category of every reported diagnostic.
const Category = "apiconv"

// Runner checks every method declaration of a pass.
type Runner struct {
	cfg        *config.Config
	enabled    ignore.Enabled
	ignoreMaps map[string]ignore.Map
	skipFiles  map[string]bool
	logger     *zap.Logger
}

// NewRunner creates a runner.
func NewRunner(
	cfg *config.Config,
	ignoreMaps map[string]ignore.Map,
	skipFiles map[string]bool,
	logger *zap.Logger,
) *Runner {
	return &Runner{
		cfg:        cfg,
		enabled:    cfg.Enabled(),
		ignoreMaps: ignoreMaps,
		skipFiles:  skipFiles,
		logger:     logger,
	}
}

// Run analyzes the pass. A package that does not import the framework is
// left alone. Cancellation of ctx stops the walk; diagnostics already
// reported stay.
func (r *Runner) Run(ctx context.Context, pass *analysis.Pass, insp *inspector.Inspector) {
	syms, err := symbols.Load(pass.Pkg, r.cfg.Framework)
	if err != nil {
		r.logger.Debug("analyzer disabled for package", zap.Error(err))
		return
	}

	engine := convention.New(
		host.New(pass, syms, r.cfg.LifecycleMethods),
		syms,
		convention.WithLogger(r.logger),
	)

	var analyzed, reported int

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		if ctx.Err() != nil {
			return
		}

		decl := n.(*ast.FuncDecl)
		if decl.Recv == nil || decl.Body == nil {
			return
		}

		if r.skipFiles[pass.Fset.Position(decl.Pos()).Filename] {
			return
		}

		fn, _ := pass.TypesInfo.Defs[decl.Name].(*types.Func)

		diags, err := engine.Analyze(ctx, convention.Method{Decl: decl, Func: fn})
		if err != nil {
			r.logger.Debug("analysis aborted",
				zap.String("method", decl.Name.Name),
				zap.Error(err),
			)
			return
		}

		analyzed++
		for _, d := range diags {
			if r.report(pass, d) {
				reported++
			}
		}
	})

	fields := []zap.Field{
		zap.Int("methods", analyzed),
		zap.Int("reported", reported),
	}
	if err := ctx.Err(); err != nil {
		fields = append(fields, zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			r.logger.Warn("package analysis timed out", fields...)
			return
		}
	}

	r.logger.Debug("package analyzed", fields...)
}

// report turns an engine diagnostic into an analysis diagnostic unless it
// is disabled or ignored.
func (r *Runner) report(pass *analysis.Pass, d convention.Diagnostic) bool {
	name, msg := describe(d)

	if !r.enabled[name] {
		return false
	}

	if r.shouldIgnore(pass, d.Pos, name) {
		return false
	}

	pass.Report(analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End,
		Category: Category,
		Message:  msg,
	})

	return true
}

// describe returns the ignore name and message of a diagnostic.
func describe(d convention.Diagnostic) (ignore.DiagnosticName, string) {
	switch d.Kind {
	case convention.UndocumentedStatusCode:
		return ignore.Undocumented, fmt.Sprintf("action returns undocumented status code %d", d.StatusCode)
	case convention.UndocumentedSuccessResult:
		return ignore.Success, "action returns a success result without documenting status code 200 or 201"
	case convention.DoesNotReturnDocumentedStatusCode:
		return ignore.Unreturned, fmt.Sprintf("action documents status code %d but never returns it", d.StatusCode)
	}

	return "", string(d.Kind)
}

// shouldIgnore checks if the position should be ignored for the given diagnostic.
func (r *Runner) shouldIgnore(pass *analysis.Pass, pos token.Pos, name ignore.DiagnosticName) bool {
	position := pass.Fset.Position(pos)

	ignoreMap, ok := r.ignoreMaps[position.Filename]
	if !ok {
		return false
	}

	e := ignoreMap.Match(position.Line, name)
	if e == nil {
		return false
	}

	r.logger.Debug("diagnostic suppressed",
		zap.String("diagnostic", string(name)),
		zap.Stringer("position", position),
		zap.String("reason", e.Reason),
	)

	return true
}
