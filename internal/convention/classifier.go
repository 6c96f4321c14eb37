package convention

import (
	"go/ast"
	"go/types"

	"github.com/mpyw/apiconv/internal/directive/attribute"
	"github.com/mpyw/apiconv/internal/typeutil"
)

// methodContext is the state of one action's analysis. It is created per
// method and never shared.
type methodContext struct {
	host     Host
	shape    resultShape
	payload  types.Type
	expected ExpectedResponses
	actual   actualCodes
	diags    []Diagnostic

	// bareSuccess is set once a return hands back the payload itself. It
	// satisfies a documented 200 or 201 without proving either code.
	bareSuccess bool
}

// classify determines the status code a return statement produces and
// records the per-statement diagnostics.
func (mc *methodContext) classify(ret *ast.ReturnStmt) {
	t, ok := mc.valueType(ret)
	if !ok || typeutil.IsInvalid(t) {
		return
	}

	if code, ok := mc.defaultStatus(t); ok {
		mc.actual.add(code)
		if !mc.expected.Documented(code) {
			mc.report(UndocumentedStatusCode, code, ret)
		}
		return
	}

	if mc.payload != nil && types.Identical(t, mc.payload) {
		mc.bareSuccess = true
		if !mc.expected.Declares(200) && !mc.expected.Declares(201) {
			mc.report(UndocumentedSuccessResult, 0, ret)
		}
		return
	}

	// Nothing proves the code; a helper or untyped builder is assumed to succeed.
	mc.actual.add(200)
}

// valueType returns the static type of the value a return statement
// hands back. It reports false for statements without a value: bare
// returns, error-only actions, and failure completions whose error result
// is not the literal nil.
func (mc *methodContext) valueType(ret *ast.ReturnStmt) (types.Type, bool) {
	if mc.shape.value == nil {
		return nil, false
	}

	switch len(ret.Results) {
	case 1:
		t := mc.host.TypeOf(ret.Results[0])
		if tuple, ok := t.(*types.Tuple); ok {
			if tuple.Len() == 0 {
				return nil, false
			}
			return tuple.At(0).Type(), true
		}
		return t, true
	case 2:
		if !mc.shape.completion || !isNilLiteral(ret.Results[1]) {
			return nil, false
		}
		return mc.host.TypeOf(ret.Results[0]), true
	}

	return nil, false
}

// defaultStatus reads the status directive of t or of the nearest
// embedded type. Directives without exactly one integer argument in
// 100..599 are treated as absent, like produces codes.
func (mc *methodContext) defaultStatus(t types.Type) (int, bool) {
	tn := typeutil.TypeName(t)
	if tn == nil {
		return 0, false
	}

	attrs := mc.host.Attributes(tn, attribute.Status, true)
	if len(attrs) == 0 {
		return 0, false
	}

	code, ok := attrs[0].Int()
	if !ok || !validStatusCode(code) {
		return 0, false
	}

	return code, true
}

// returned reports whether code was produced by some return statement.
func (mc *methodContext) returned(code int) bool {
	if mc.actual.has(code) {
		return true
	}

	return mc.bareSuccess && (code == 200 || code == 201)
}

func (mc *methodContext) report(kind Kind, code int, node ast.Node) {
	mc.diags = append(mc.diags, Diagnostic{
		Kind:       kind,
		StatusCode: code,
		Pos:        node.Pos(),
		End:        node.End(),
	})
}

func isNilLiteral(expr ast.Expr) bool {
	ident, ok := ast.Unparen(expr).(*ast.Ident)
	return ok && ident.Name == "nil"
}

// returnStatements lists the return statements of body in source order.
// Returns inside function literals belong to the literal and are skipped.
func returnStatements(body *ast.BlockStmt) []*ast.ReturnStmt {
	var rets []*ast.ReturnStmt

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.ReturnStmt:
			rets = append(rets, n)
		}
		return true
	})

	return rets
}
