package convention

import (
	"go/ast"
	"go/types"

	"github.com/mpyw/apiconv/internal/directive/attribute"
)

// Host answers the symbol questions the engine asks about the program
// under analysis. Implementations must be safe for concurrent use once
// constructed.
type Host interface {
	// Attributes returns the directives named name declared on obj.
	// With inherited set, a type name without such directives reports
	// those of its nearest embedded type that has them.
	Attributes(obj types.Object, name attribute.Name, inherited bool) []attribute.Attribute

	// PackageAttributes returns the directives named name declared on the
	// package clauses of pkg.
	PackageAttributes(pkg *types.Package, name attribute.Name) []attribute.Attribute

	// TypeOf returns the static type of expr, or nil if unknown.
	TypeOf(expr ast.Expr) types.Type

	// IsAssignable reports whether a value of type t is assignable to base.
	// A generic, uninstantiated base matches any instantiation of it.
	IsAssignable(t, base types.Type) bool

	// IsController reports whether tn is an API controller.
	IsController(tn *types.TypeName) bool

	// IsAction reports whether fn is a controller action.
	IsAction(fn *types.Func) bool

	// LookupType resolves a "pkg/path.Type" reference as seen from pkg.
	LookupType(from *types.Package, ref string) *types.TypeName

	// LookupMethod resolves a "pkg/path.Type.Method" reference as seen from pkg.
	LookupMethod(from *types.Package, ref string) *types.Func

	// EvalType evaluates a type expression in the scope where obj is
	// declared. Returns nil if expr does not denote a type.
	EvalType(obj types.Object, expr string) types.Type
}

// Method is one method declaration handed to the engine.
type Method struct {
	Decl *ast.FuncDecl
	Func *types.Func // nil when the declaration did not resolve
}

func (m Method) name() string {
	if m.Decl == nil || m.Decl.Name == nil {
		return ""
	}

	return m.Decl.Name.Name
}
