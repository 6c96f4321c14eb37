// Package host implements the convention engine's symbol queries on top of
// an analysis pass.
package host

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/apiconv/internal/directive/attribute"
	"github.com/mpyw/apiconv/internal/symbols"
	"github.com/mpyw/apiconv/internal/symspec"
	"github.com/mpyw/apiconv/internal/typeutil"
)

// Host answers symbol queries for one pass.
type Host struct {
	pass      *analysis.Pass
	symbols   *symbols.Symbols
	lifecycle map[string]bool
}

// New creates a host. Methods named in lifecycle are never actions.
func New(pass *analysis.Pass, syms *symbols.Symbols, lifecycle []string) *Host {
	h := &Host{
		pass:      pass,
		symbols:   syms,
		lifecycle: make(map[string]bool, len(lifecycle)),
	}

	for _, name := range lifecycle {
		h.lifecycle[name] = true
	}

	return h
}

// Attributes returns the directives named name on obj, searching embedded
// types breadth first when inherited is set and obj has none of its own.
func (h *Host) Attributes(obj types.Object, name attribute.Name, inherited bool) []attribute.Attribute {
	attrs := attribute.Of(h.pass, obj, name)
	if len(attrs) > 0 || !inherited {
		return attrs
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil
	}

	for _, emb := range typeutil.Embedded(tn) {
		if attrs := attribute.Of(h.pass, emb, name); len(attrs) > 0 {
			return attrs
		}
	}

	return nil
}

// PackageAttributes returns the directives named name on pkg's package clauses.
func (h *Host) PackageAttributes(pkg *types.Package, name attribute.Name) []attribute.Attribute {
	return attribute.OfPackage(h.pass, pkg, name)
}

// TypeOf returns the static type of expr.
func (h *Host) TypeOf(expr ast.Expr) types.Type {
	return h.pass.TypesInfo.TypeOf(expr)
}

// IsAssignable reports whether t is assignable to base. An uninstantiated
// generic base matches every instantiation of it.
func (h *Host) IsAssignable(t, base types.Type) bool {
	return IsAssignable(t, base)
}

// IsAssignable is the assignability rule shared by every host.
func IsAssignable(t, base types.Type) bool {
	if t == nil || base == nil {
		return false
	}

	if named, ok := types.Unalias(base).(*types.Named); ok && named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0 {
		return types.Identical(typeutil.Origin(t), named)
	}

	return types.AssignableTo(t, base)
}

// IsController reports whether tn is an API controller: an exported,
// non-generic struct that embeds the framework controller or is named
// *Controller, carries the controller directive on itself, an embedded
// type or its package, and is not marked noncontroller.
func (h *Host) IsController(tn *types.TypeName) bool {
	if tn == nil || !tn.Exported() {
		return false
	}

	named, ok := tn.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return false
	}

	if _, ok := named.Underlying().(*types.Struct); !ok {
		return false
	}

	if len(h.Attributes(tn, attribute.NonController, false)) > 0 {
		return false
	}

	embeds := h.symbols != nil && slices.Contains(typeutil.Embedded(tn), h.symbols.Controller)
	if !embeds && !strings.HasSuffix(tn.Name(), "Controller") {
		return false
	}

	return len(h.Attributes(tn, attribute.Controller, true)) > 0 ||
		len(h.PackageAttributes(tn.Pkg(), attribute.Controller)) > 0
}

// IsAction reports whether fn is an action: exported, not a lifecycle
// method and not marked nonaction.
func (h *Host) IsAction(fn *types.Func) bool {
	if fn == nil || !fn.Exported() {
		return false
	}

	if h.lifecycle[fn.Name()] {
		return false
	}

	return len(h.Attributes(fn, attribute.NonAction, false)) == 0
}

// LookupType resolves a type reference as seen from pkg.
func (h *Host) LookupType(from *types.Package, ref string) *types.TypeName {
	spec, ok := symspec.ParseType(ref)
	if !ok {
		return nil
	}

	return spec.LookupType(from)
}

// LookupMethod resolves a method reference as seen from pkg.
func (h *Host) LookupMethod(from *types.Package, ref string) *types.Func {
	spec, ok := symspec.ParseMethod(ref)
	if !ok {
		return nil
	}

	return spec.LookupMethod(from)
}

// EvalType evaluates a type expression where obj is declared. Objects of
// the current package see their file's imports; imported objects see
// their package scope only.
func (h *Host) EvalType(obj types.Object, expr string) types.Type {
	if obj == nil || obj.Pkg() == nil {
		return nil
	}

	pos := token.NoPos
	if obj.Pkg() == h.pass.Pkg {
		pos = obj.Pos()
	}

	tv, err := types.Eval(h.pass.Fset, obj.Pkg(), pos, expr)
	if err != nil || !tv.IsType() {
		return nil
	}

	return tv.Type
}
