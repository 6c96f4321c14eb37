package convention

import (
	"context"
	"go/types"

	"github.com/mpyw/apiconv/internal/directive/attribute"
	"github.com/mpyw/apiconv/internal/typeutil"
)

// Skip reasons, logged for methods that are not analyzed.
const (
	reasonUnresolved         = "method did not resolve"
	reasonNotMethod          = "not a method of a named type"
	reasonNoConventions      = "no conventions directive on receiver or package"
	reasonNoValue            = "method returns no value"
	reasonInvalidResult      = "result type did not resolve"
	reasonUnsupportedResults = "unsupported result list"
	reasonNotController      = "receiver is not an API controller"
	reasonNotAction          = "method is not an action"
)

// applicable is what the applicability filter learned about an eligible method.
type applicable struct {
	receiver    *types.TypeName
	conventions []attribute.Attribute
	shape       resultShape
}

// checkApplicable decides whether m is eligible for analysis. For an
// ineligible method it returns a nil result and the reason.
func (e *Engine) checkApplicable(ctx context.Context, m Method) (*applicable, string, error) {
	if m.Func == nil || m.Decl == nil || m.Decl.Body == nil {
		return nil, reasonUnresolved, nil
	}

	sig, ok := m.Func.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil, reasonNotMethod, nil
	}

	receiver := typeutil.TypeName(sig.Recv().Type())
	if receiver == nil {
		return nil, reasonNotMethod, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	conventions := e.conventionsFor(receiver)
	if len(conventions) == 0 {
		return nil, reasonNoConventions, nil
	}

	shape, reason := readShape(sig)
	if reason != "" {
		return nil, reason, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	if !e.host.IsController(receiver) {
		return nil, reasonNotController, nil
	}

	if !e.host.IsAction(m.Func) {
		return nil, reasonNotAction, nil
	}

	return &applicable{
		receiver:    receiver,
		conventions: conventions,
		shape:       shape,
	}, "", nil
}

// conventionsFor returns the conventions directives that apply to actions
// of receiver. Type level directives shadow package level ones entirely.
func (e *Engine) conventionsFor(receiver *types.TypeName) []attribute.Attribute {
	if attrs := e.host.Attributes(receiver, attribute.Conventions, true); len(attrs) > 0 {
		return attrs
	}

	return e.host.PackageAttributes(receiver.Pkg(), attribute.Conventions)
}
