package convention

import (
	"go/types"
	"slices"
)

// ResponseDescriptor is one expected response of an action.
type ResponseDescriptor struct {
	StatusCode  int
	PayloadType types.Type // nil when the declaration names no payload
}

// ExpectedResponses is the ordered, code-deduplicated set of responses an
// action documents. It is complete before the first return statement is
// classified and read-only afterwards.
type ExpectedResponses struct {
	descriptors []ResponseDescriptor
	codes       map[int]bool
}

// add appends d unless its status code is already present.
func (e *ExpectedResponses) add(d ResponseDescriptor) bool {
	if e.codes == nil {
		e.codes = make(map[int]bool)
	}

	if e.codes[d.StatusCode] {
		return false
	}

	e.codes[d.StatusCode] = true
	e.descriptors = append(e.descriptors, d)

	return true
}

// Descriptors returns a copy of the descriptors in resolution order.
func (e ExpectedResponses) Descriptors() []ResponseDescriptor {
	return slices.Clone(e.descriptors)
}

// Codes returns the status codes in resolution order.
func (e ExpectedResponses) Codes() []int {
	codes := make([]int, len(e.descriptors))
	for i, d := range e.descriptors {
		codes[i] = d.StatusCode
	}

	return codes
}

// Len returns the number of expected responses.
func (e ExpectedResponses) Len() int {
	return len(e.descriptors)
}

// Declares reports whether code is in the set. Unlike Documented, an
// empty set declares nothing.
func (e ExpectedResponses) Declares(code int) bool {
	return e.codes[code]
}

// Documented reports whether code is documented. With no expected
// responses, only 200 is.
func (e ExpectedResponses) Documented(code int) bool {
	if len(e.descriptors) == 0 {
		return code == 200
	}

	return e.codes[code]
}

// validStatusCode reports whether code is an HTTP status code.
func validStatusCode(code int) bool {
	return code >= 100 && code <= 599
}

// actualCodes is the set of status codes an action was seen to produce.
type actualCodes map[int]struct{}

func (a actualCodes) add(code int) {
	a[code] = struct{}{}
}

func (a actualCodes) has(code int) bool {
	_, ok := a[code]
	return ok
}

func (a actualCodes) sorted() []int {
	codes := make([]int, 0, len(a))
	for c := range a {
		codes = append(codes, c)
	}
	slices.Sort(codes)

	return codes
}
