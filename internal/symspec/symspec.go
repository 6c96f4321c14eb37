// Package symspec provides parsing and resolution of symbol references
// written in directives.
package symspec

import (
	"go/types"
	"strings"

	"github.com/mpyw/apiconv/internal/typeutil"
)

// Spec holds parsed components of a symbol reference.
// Format: "pkg/path.Type" or "pkg/path.Type.Method".
type Spec struct {
	PkgPath    string // empty for the referencing package
	TypeName   string
	MethodName string // empty for type references
}

// ParseType parses a type reference.
func ParseType(s string) (Spec, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Spec{}, false
	}

	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 {
		return Spec{TypeName: s}, true
	}

	spec := Spec{
		PkgPath:  s[:lastDot],
		TypeName: s[lastDot+1:],
	}
	if spec.PkgPath == "" || spec.TypeName == "" {
		return Spec{}, false
	}

	return spec, true
}

// ParseMethod parses a method reference.
func ParseMethod(s string) (Spec, bool) {
	s = strings.TrimSpace(s)

	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 {
		return Spec{}, false
	}

	spec, ok := ParseType(s[:lastDot])
	if !ok {
		return Spec{}, false
	}

	spec.MethodName = s[lastDot+1:]
	if spec.MethodName == "" {
		return Spec{}, false
	}

	return spec, true
}

// String returns the reference in its written form.
func (s Spec) String() string {
	var b strings.Builder

	if s.PkgPath != "" {
		b.WriteString(s.PkgPath)
		b.WriteByte('.')
	}
	b.WriteString(s.TypeName)

	if s.MethodName != "" {
		b.WriteByte('.')
		b.WriteString(s.MethodName)
	}

	return b.String()
}

// LookupType resolves the referenced type as seen from pkg.
// Returns nil if the type cannot be found.
func (s Spec) LookupType(from *types.Package) *types.TypeName {
	pkg := s.resolvePackage(from)
	if pkg == nil {
		return nil
	}

	tn, _ := pkg.Scope().Lookup(s.TypeName).(*types.TypeName)

	return tn
}

// LookupMethod resolves the referenced method as seen from pkg.
// Returns nil if the method cannot be found.
func (s Spec) LookupMethod(from *types.Package) *types.Func {
	tn := s.LookupType(from)
	if tn == nil || s.MethodName == "" {
		return nil
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}

	for i := range named.NumMethods() {
		if m := named.Method(i); m.Name() == s.MethodName {
			return m
		}
	}

	return nil
}

// resolvePackage finds the referenced package by import path among the
// transitive imports of from, falling back to a direct import by name.
func (s Spec) resolvePackage(from *types.Package) *types.Package {
	if from == nil {
		return nil
	}

	if s.PkgPath == "" {
		return from
	}

	if pkg := typeutil.FindPackage(from, s.PkgPath); pkg != nil {
		return pkg
	}

	for _, imp := range from.Imports() {
		if imp.Name() == s.PkgPath {
			return imp
		}
	}

	return nil
}
