package convention

import (
	"cmp"
	"context"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/mpyw/apiconv/internal/directive/attribute"
)

// resolveExpected builds the expected response set of an eligible action:
// its own produces directives in declaration order, then the codes of the
// matching convention templates that are not declared explicitly.
func (e *Engine) resolveExpected(ctx context.Context, action *types.Func, app *applicable) (ExpectedResponses, error) {
	var expected ExpectedResponses

	for _, attr := range e.host.Attributes(action, attribute.Produces, false) {
		if d, ok := e.descriptor(action, attr); ok {
			expected.add(d)
		}
	}

	templates, err := e.templatesFor(ctx, action, app.conventions)
	if err != nil {
		return ExpectedResponses{}, err
	}

	for _, t := range templates {
		if err := ctx.Err(); err != nil {
			return ExpectedResponses{}, err
		}

		for _, attr := range e.host.Attributes(t, attribute.Produces, false) {
			if d, ok := e.descriptor(t, attr); ok {
				expected.add(d)
			}
		}
	}

	return expected, nil
}

// descriptor converts a produces directive declared on owner.
// The first argument is the status code, the rest is an optional payload
// type expression.
func (e *Engine) descriptor(owner *types.Func, attr attribute.Attribute) (ResponseDescriptor, bool) {
	if len(attr.Args) == 0 {
		return ResponseDescriptor{}, false
	}

	code, err := strconv.Atoi(attr.Args[0])
	if err != nil || !validStatusCode(code) {
		return ResponseDescriptor{}, false
	}

	d := ResponseDescriptor{StatusCode: code}
	if len(attr.Args) > 1 {
		d.PayloadType = e.host.EvalType(owner, strings.Join(attr.Args[1:], " "))
	}

	return d, true
}

// templatesFor returns the convention methods whose responses action
// borrows. An explicit conventionmethod directive replaces matching.
func (e *Engine) templatesFor(ctx context.Context, action *types.Func, conventions []attribute.Attribute) ([]*types.Func, error) {
	if refs := e.host.Attributes(action, attribute.ConventionMethod, false); len(refs) > 0 {
		var out []*types.Func

		for _, ref := range refs {
			if len(ref.Args) != 1 {
				continue
			}
			if fn := e.host.LookupMethod(action.Pkg(), ref.Args[0]); fn != nil {
				out = append(out, fn)
			}
		}

		return out, nil
	}

	var out []*types.Func

	for _, conv := range conventions {
		for _, ref := range conv.Args {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			container := e.host.LookupType(action.Pkg(), ref)
			if container == nil {
				continue
			}

			for _, fn := range containerMethods(container) {
				if fn == action {
					continue
				}
				if e.matches(action, e.readTemplate(fn)) {
					out = append(out, fn)
				}
			}
		}
	}

	return out, nil
}

// containerMethods returns the methods declared on a convention container
// in source order.
func containerMethods(tn *types.TypeName) []*types.Func {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}

	methods := make([]*types.Func, 0, named.NumMethods())
	for i := range named.NumMethods() {
		methods = append(methods, named.Method(i))
	}

	slices.SortStableFunc(methods, func(a, b *types.Func) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	return methods
}
