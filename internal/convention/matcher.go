package convention

import (
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mpyw/apiconv/internal/directive/attribute"
)

// NameMatch is how a template name is compared with an action or
// parameter name.
type NameMatch string

// Name match behaviors.
const (
	NameExact  NameMatch = "exact"
	NamePrefix NameMatch = "prefix"
	NameSuffix NameMatch = "suffix"
	NameAny    NameMatch = "any"
)

// TypeMatch is how a template parameter type is compared with an action
// parameter type.
type TypeMatch string

// Type match behaviors.
const (
	TypeExact      TypeMatch = "exact"
	TypeAssignable TypeMatch = "assignable"
	TypeAny        TypeMatch = "any"
)

// paramMatch holds the behaviors for one template parameter.
type paramMatch struct {
	name NameMatch
	typ  TypeMatch
}

var defaultParamMatch = paramMatch{name: NameExact, typ: TypeAssignable}

// template is a convention method with its match behaviors.
type template struct {
	fn     *types.Func
	name   NameMatch
	params map[string]paramMatch
}

// readTemplate collects the match directives of a convention method.
// Unknown behaviors fall back to the defaults.
func (e *Engine) readTemplate(fn *types.Func) template {
	t := template{
		fn:     fn,
		name:   NameExact,
		params: make(map[string]paramMatch),
	}

	if attrs := e.host.Attributes(fn, attribute.Match, false); len(attrs) > 0 && len(attrs[0].Args) == 1 {
		if b := NameMatch(attrs[0].Args[0]); validNameMatch(b) {
			t.name = b
		}
	}

	for _, attr := range e.host.Attributes(fn, attribute.Param, false) {
		if len(attr.Args) == 0 {
			continue
		}

		pm := defaultParamMatch
		for _, arg := range attr.Args[1:] {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				continue
			}

			switch key {
			case "name":
				if b := NameMatch(value); validNameMatch(b) {
					pm.name = b
				}
			case "type":
				if b := TypeMatch(value); validTypeMatch(b) {
					pm.typ = b
				}
			}
		}

		t.params[attr.Args[0]] = pm
	}

	return t
}

func validNameMatch(b NameMatch) bool {
	switch b {
	case NameExact, NamePrefix, NameSuffix, NameAny:
		return true
	}

	return false
}

func validTypeMatch(b TypeMatch) bool {
	switch b {
	case TypeExact, TypeAssignable, TypeAny:
		return true
	}

	return false
}

// matches reports whether action has the name and parameter shape the
// template asks for.
func (e *Engine) matches(action *types.Func, t template) bool {
	if !nameMatches(action.Name(), t.fn.Name(), t.name) {
		return false
	}

	actionSig, ok := action.Type().(*types.Signature)
	if !ok {
		return false
	}

	templateSig, ok := t.fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	ap, tp := actionSig.Params(), templateSig.Params()

	for i := range tp.Len() {
		param := tp.At(i)

		pm, ok := t.params[param.Name()]
		if !ok {
			pm = defaultParamMatch
		}
		if param.Name() == "" || param.Name() == "_" {
			pm.name = NameAny
		}

		// a trailing variadic parameter matching any type takes the rest
		if i == tp.Len()-1 && templateSig.Variadic() && pm.typ == TypeAny {
			return true
		}

		if i >= ap.Len() {
			return false
		}

		arg := ap.At(i)
		if !nameMatches(arg.Name(), param.Name(), pm.name) {
			return false
		}
		if !e.typeMatches(arg.Type(), param.Type(), pm.typ) {
			return false
		}
	}

	return ap.Len() == tp.Len()
}

func (e *Engine) typeMatches(actual, template types.Type, b TypeMatch) bool {
	switch b {
	case TypeAny:
		return true
	case TypeExact:
		return types.Identical(actual, template)
	default:
		return e.host.IsAssignable(actual, template)
	}
}

// nameMatches compares name against pattern.
//
//	prefix: "Get" matches "Get" and "GetUser", not "Getaway"
//	suffix: "id" matches "id", "ID", "Id" and "userId", not "paid"
func nameMatches(name, pattern string, b NameMatch) bool {
	switch b {
	case NameAny:
		return true
	case NamePrefix:
		rest, ok := strings.CutPrefix(name, pattern)
		return ok && startsUpper(rest)
	case NameSuffix:
		if name == pattern {
			return true
		}
		if len(name) < len(pattern) {
			return false
		}
		tail := name[len(name)-len(pattern):]
		return strings.EqualFold(tail, pattern) && startsUpper(tail)
	default:
		return name == pattern
	}
}

// startsUpper reports whether s is empty or begins with an upper-case letter.
func startsUpper(s string) bool {
	if s == "" {
		return true
	}

	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsUpper(r)
}
