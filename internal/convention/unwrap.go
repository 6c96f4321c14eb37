package convention

import (
	"go/types"

	"github.com/mpyw/apiconv/internal/typeutil"
)

// resultShape describes how an action's result list maps onto a response.
//
//	func() T            // value
//	func() (T, error)   // value, completion
//	func() error        // completion only, no value
type resultShape struct {
	value      types.Type // declared value result, nil when there is none
	completion bool       // trailing error result
}

// readShape strips the completion wrapper from a signature's results.
// It returns a non-empty skip reason for result lists the engine does not
// analyze.
func readShape(sig *types.Signature) (resultShape, string) {
	results := sig.Results()
	if results.Len() == 0 {
		return resultShape{}, reasonNoValue
	}

	for i := range results.Len() {
		if typeutil.IsInvalid(results.At(i).Type()) {
			return resultShape{}, reasonInvalidResult
		}
	}

	first := results.At(0).Type()

	switch {
	case results.Len() == 1 && typeutil.IsErrorType(first):
		return resultShape{completion: true}, ""
	case results.Len() == 1:
		return resultShape{value: first}, ""
	case results.Len() == 2 && typeutil.IsErrorType(results.At(1).Type()):
		return resultShape{value: first, completion: true}, ""
	}

	return resultShape{}, reasonUnsupportedResults
}

// unwrapPayload reduces a declared value type to the payload type by
// stripping the typed result wrapper: Of[User] becomes User.
// Types that are not a one-argument instantiation of wrapper are
// returned unchanged.
func unwrapPayload(host Host, value types.Type, wrapper *types.TypeName) types.Type {
	if value == nil || wrapper == nil {
		return value
	}

	named, ok := types.Unalias(value).(*types.Named)
	if !ok || named.TypeArgs().Len() != 1 {
		return value
	}

	if !host.IsAssignable(named, wrapper.Type()) {
		return value
	}

	return named.TypeArgs().At(0)
}
