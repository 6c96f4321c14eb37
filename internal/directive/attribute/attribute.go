// Package attribute handles the //apiconv: declaration directives.
package attribute

import (
	"go/ast"
	"strconv"
	"strings"
)

const directivePrefix = "apiconv:"

// Name identifies a declaration directive.
type Name string

// Known directive names.
const (
	Controller       Name = "controller"
	NonController    Name = "noncontroller"
	NonAction        Name = "nonaction"
	Conventions      Name = "conventions"
	ConventionMethod Name = "conventionmethod"
	Produces         Name = "produces"
	Status           Name = "status"
	Match            Name = "match"
	Param            Name = "param"
)

var knownNames = map[Name]bool{
	Controller:       true,
	NonController:    true,
	NonAction:        true,
	Conventions:      true,
	ConventionMethod: true,
	Produces:         true,
	Status:           true,
	Match:            true,
	Param:            true,
}

// Attribute is one parsed directive line.
type Attribute struct {
	Name Name
	Args []string
}

// Parse parses a single comment into an attribute.
// Returns false if the comment is not a known apiconv directive.
//
// Supported formats:
//   - //apiconv:controller
//   - //apiconv:produces 404 ProblemDetails
//   - //apiconv:status 404 // trailing comment
func Parse(text string) (Attribute, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, directivePrefix) {
		return Attribute{}, false
	}

	rest := strings.TrimPrefix(text, directivePrefix)
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Attribute{}, false
	}

	name := Name(fields[0])
	if !knownNames[name] {
		return Attribute{}, false
	}

	return Attribute{Name: name, Args: fields[1:]}, true
}

// FromDoc parses every directive in a doc comment, in source order.
func FromDoc(doc *ast.CommentGroup) []Attribute {
	if doc == nil {
		return nil
	}

	var attrs []Attribute

	for _, c := range doc.List {
		if attr, ok := Parse(c.Text); ok {
			attrs = append(attrs, attr)
		}
	}

	return attrs
}

// Int returns the single integer argument of the attribute.
// Attributes with any other argument shape report false.
func (a Attribute) Int() (int, bool) {
	if len(a.Args) != 1 {
		return 0, false
	}

	n, err := strconv.Atoi(a.Args[0])
	if err != nil {
		return 0, false
	}

	return n, true
}

// String formats the attribute as it would be written.
func (a Attribute) String() string {
	if len(a.Args) == 0 {
		return directivePrefix + string(a.Name)
	}

	return directivePrefix + string(a.Name) + " " + strings.Join(a.Args, " ")
}

// Filter returns the attributes named name, preserving order.
func Filter(attrs []Attribute, name Name) []Attribute {
	var out []Attribute

	for _, a := range attrs {
		if a.Name == name {
			out = append(out, a)
		}
	}

	return out
}
