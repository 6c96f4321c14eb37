// Package symbols resolves the well-known framework types once per pass.
package symbols

import (
	"errors"
	"fmt"
	"go/types"

	"github.com/mpyw/apiconv/internal/typeutil"
)

// DefaultFramework is the import path of the bundled framework package.
const DefaultFramework = "github.com/mpyw/apiconv/mvc"

// Well-known type names in the framework package.
const (
	ControllerName = "Controller"
	OfName         = "Of"
)

var (
	ErrFrameworkNotImported = errors.New("framework package not imported")
	ErrMissingType          = errors.New("well-known type not found")
)

// Symbols holds the framework types. It is built once before any method
// is analyzed and never mutated afterwards.
type Symbols struct {
	Framework  *types.Package
	Controller *types.TypeName // embeddable controller base
	Of         *types.TypeName // typed result wrapper, one type parameter
}

// Load finds the framework package among the transitive imports of pkg
// and resolves its well-known types.
func Load(pkg *types.Package, frameworkPath string) (*Symbols, error) {
	fw := typeutil.FindPackage(pkg, frameworkPath)
	if fw == nil {
		return nil, fmt.Errorf("%w: %s", ErrFrameworkNotImported, frameworkPath)
	}

	controller, err := lookup(fw, ControllerName, 0)
	if err != nil {
		return nil, err
	}

	of, err := lookup(fw, OfName, 1)
	if err != nil {
		return nil, err
	}

	return &Symbols{
		Framework:  fw,
		Controller: controller,
		Of:         of,
	}, nil
}

// lookup resolves a named type with the given number of type parameters.
func lookup(pkg *types.Package, name string, typeParams int) (*types.TypeName, error) {
	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingType, pkg.Path(), name)
	}

	named, ok := tn.Type().(*types.Named)
	if !ok || named.TypeParams().Len() != typeParams {
		return nil, fmt.Errorf("%w: %s.%s has unexpected shape", ErrMissingType, pkg.Path(), name)
	}

	return tn, nil
}
