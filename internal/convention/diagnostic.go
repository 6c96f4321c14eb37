package convention

import "go/token"

// Kind identifies a diagnostic category.
type Kind string

// Diagnostic kinds.
const (
	// UndocumentedStatusCode: a return produces a code the action does not document.
	UndocumentedStatusCode Kind = "UndocumentedStatusCode"
	// UndocumentedSuccessResult: a bare payload return while neither 200 nor 201 is documented.
	UndocumentedSuccessResult Kind = "UndocumentedSuccessResult"
	// DoesNotReturnDocumentedStatusCode: a documented code no return produces.
	DoesNotReturnDocumentedStatusCode Kind = "DoesNotReturnDocumentedStatusCode"
)

// Diagnostic is one finding for an action.
type Diagnostic struct {
	Kind       Kind
	StatusCode int // zero for UndocumentedSuccessResult
	Pos        token.Pos
	End        token.Pos
}
