package typeutil

import (
	"go/types"
)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
func UnwrapPointer(t types.Type) types.Type {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// Named returns the named type behind t, looking through one pointer level
// and aliases. Returns nil for unnamed types.
func Named(t types.Type) *types.Named {
	if t == nil {
		return nil
	}

	named, _ := types.Unalias(UnwrapPointer(types.Unalias(t))).(*types.Named)

	return named
}

// TypeName returns the declared type name behind t, or nil.
func TypeName(t types.Type) *types.TypeName {
	named := Named(t)
	if named == nil {
		return nil
	}

	return named.Obj()
}

// IsInvalid reports whether t could not be resolved by the type checker.
func IsInvalid(t types.Type) bool {
	if t == nil {
		return true
	}

	basic, ok := t.(*types.Basic)

	return ok && basic.Kind() == types.Invalid
}

// IsErrorType reports whether t is the predeclared error interface.
func IsErrorType(t types.Type) bool {
	if t == nil {
		return false
	}

	return types.Identical(t, types.Universe.Lookup("error").Type())
}

// IsNamedType checks if t is the named type pkgPath.typeName.
// It handles pointer types automatically.
func IsNamedType(t types.Type, pkgPath, typeName string) bool {
	obj := TypeName(t)
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == pkgPath && obj.Name() == typeName
}

// Origin returns the generic origin of a named type, or t itself.
func Origin(t types.Type) types.Type {
	if named, ok := types.Unalias(t).(*types.Named); ok {
		return named.Origin()
	}

	return t
}

// FindPackage searches pkg and its transitive imports for path.
func FindPackage(pkg *types.Package, path string) *types.Package {
	if pkg == nil {
		return nil
	}

	seen := make(map[*types.Package]bool)
	queue := []*types.Package{pkg}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if seen[p] {
			continue
		}
		seen[p] = true

		if p.Path() == path {
			return p
		}

		queue = append(queue, p.Imports()...)
	}

	return nil
}

// Embedded returns the type names embedded in the struct behind tn,
// breadth first, each at most once. tn itself is not included.
func Embedded(tn *types.TypeName) []*types.TypeName {
	if tn == nil {
		return nil
	}

	var out []*types.TypeName

	seen := map[*types.TypeName]bool{tn: true}
	queue := []*types.TypeName{tn}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		st, ok := cur.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		for i := range st.NumFields() {
			field := st.Field(i)
			if !field.Embedded() {
				continue
			}

			emb := TypeName(field.Type())
			if emb == nil || seen[emb] {
				continue
			}
			seen[emb] = true

			out = append(out, emb)
			queue = append(queue, emb)
		}
	}

	return out
}
