// Package apiconv provides a go/analysis based analyzer that checks API
// controller actions against the HTTP status codes they document.
package apiconv

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/apiconv/internal"
	"github.com/mpyw/apiconv/internal/config"
	"github.com/mpyw/apiconv/internal/directive/attribute"
	"github.com/mpyw/apiconv/internal/directive/ignore"
)

// Flags for the analyzer.
var (
	configPath string
	framework  string
	debug      bool
	timeout    time.Duration
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to a YAML configuration file")
	Analyzer.Flags.StringVar(&framework, "framework", "",
		"import path of the framework package (default github.com/mpyw/apiconv/mvc)")
	Analyzer.Flags.BoolVar(&debug, "debug", false,
		"log analysis decisions to stderr")
	Analyzer.Flags.DurationVar(&timeout, "timeout", 0,
		"time budget per package, 0 for none")
}

// Analyzer is the main analyzer for apiconv.
var Analyzer = &analysis.Analyzer{
	Name:      "apiconv",
	Doc:       "checks that API actions return the status codes they document and document the ones they return",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	Flags:     flag.FlagSet{},
	FactTypes: []analysis.Fact{(*attribute.ObjectFact)(nil), (*attribute.PackageFact)(nil)},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("apiconv: %w", err)
	}
	cfg = cfg.WithOverrides(framework, timeout)

	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("apiconv: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Directives flow to importing packages even when this one has no actions.
	attribute.Export(pass)

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	runner := internal.NewRunner(cfg, ignoreMaps, skipFiles, logger.With(zap.String("package", pass.Pkg.Path())))
	runner.Run(ctx, pass, insp)

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignoreMaps, cfg.Enabled())

	return nil, nil
}

func newLogger() (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			skipFiles[pass.Fset.Position(file.Pos()).Filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map, enabled ignore.Enabled) {
	for _, file := range pass.Files {
		ignoreMap, ok := ignoreMaps[pass.Fset.Position(file.Pos()).Filename]
		if !ok {
			continue
		}

		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Names) == 0 {
				pass.Reportf(unused.Pos, "unused apiconv:ignore directive")
				continue
			}

			names := make([]string, len(unused.Names))
			for i, n := range unused.Names {
				names[i] = string(n)
			}
			pass.Reportf(unused.Pos, "unused apiconv:ignore directive for diagnostic(s): %s", strings.Join(names, ", "))
		}
	}
}
