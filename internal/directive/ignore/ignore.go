// Package ignore handles //apiconv:ignore directives.
package ignore

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

const directive = "apiconv:ignore"

// DiagnosticName is the short name a diagnostic is ignored or disabled by.
type DiagnosticName string

// Valid diagnostic names.
const (
	Undocumented DiagnosticName = "undocumented"
	Success      DiagnosticName = "success"
	Unreturned   DiagnosticName = "unreturned"
)

// AllDiagnosticNames returns all valid diagnostic names.
func AllDiagnosticNames() []DiagnosticName {
	return []DiagnosticName{
		Undocumented,
		Success,
		Unreturned,
	}
}

// ParseName returns the diagnostic called s.
func ParseName(s string) (DiagnosticName, bool) {
	name := DiagnosticName(strings.TrimSpace(s))
	if !slices.Contains(AllDiagnosticNames(), name) {
		return "", false
	}

	return name, true
}

// Directive is a parsed ignore comment.
type Directive struct {
	// Names lists the suppressed diagnostics. Empty suppresses all of them.
	Names []DiagnosticName

	// Reason is the free text after " - ", if any.
	Reason string
}

// covers reports whether d suppresses name.
func (d Directive) covers(name DiagnosticName) bool {
	return len(d.Names) == 0 || slices.Contains(d.Names, name)
}

// ParseDirective parses the text of one comment. It reports false when
// the comment is not an ignore directive.
//
//	//apiconv:ignore                           all diagnostics
//	//apiconv:ignore unreturned                one diagnostic
//	//apiconv:ignore undocumented,unreturned   several
//	//apiconv:ignore - legacy endpoint         all, with a reason
//	//apiconv:ignore success - wrapped later   one, with a reason
func ParseDirective(text string) (Directive, bool) {
	text = strings.TrimSpace(strings.TrimPrefix(text, "//"))

	body, ok := strings.CutPrefix(text, directive)
	if !ok {
		return Directive{}, false
	}

	// apiconv:ignored and the like are other words
	if body != "" && body[0] != ' ' && body[0] != '\t' {
		return Directive{}, false
	}

	// a trailing comment ends the directive
	if i := strings.Index(body, "//"); i >= 0 {
		body = body[:i]
	}

	body = strings.TrimSpace(body)

	var d Directive

	list := body
	if reason, ok := strings.CutPrefix(body, "-"); ok && (reason == "" || reason[0] == ' ') {
		list, d.Reason = "", strings.TrimSpace(reason)
	} else if before, after, ok := strings.Cut(body, " - "); ok {
		list, d.Reason = before, strings.TrimSpace(after)
	}

	for part := range strings.SplitSeq(list, ",") {
		if name := strings.TrimSpace(part); name != "" {
			d.Names = append(d.Names, DiagnosticName(name))
		}
	}

	return d, true
}

// Entry is an ignore directive found in a file, with its usage.
type Entry struct {
	Directive

	pos  token.Pos
	used map[DiagnosticName]bool
}

// Pos returns the position of the directive comment.
func (e *Entry) Pos() token.Pos {
	return e.pos
}

// Map holds the ignore directives of one file by line.
type Map map[int]*Entry

// Enabled is the set of diagnostics that are reported.
type Enabled map[DiagnosticName]bool

// Build scans a file for ignore directives.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			d, ok := ParseDirective(c.Text)
			if !ok {
				continue
			}

			m[fset.Position(c.Pos()).Line] = &Entry{
				Directive: d,
				pos:       c.Pos(),
				used:      make(map[DiagnosticName]bool),
			}
		}
	}

	return m
}

// Match returns the directive that suppresses name on line, or nil.
// A directive applies to its own line and to the line after it.
// The returned directive is marked as used for name.
func (m Map) Match(line int, name DiagnosticName) *Entry {
	for _, l := range [...]int{line, line - 1} {
		if e := m[l]; e != nil && e.covers(name) {
			e.used[name] = true
			return e
		}
	}

	return nil
}

// ShouldIgnore reports whether name is suppressed on line.
func (m Map) ShouldIgnore(line int, name DiagnosticName) bool {
	return m.Match(line, name) != nil
}

// UnusedIgnore is a directive, or some of its names, that suppressed nothing.
type UnusedIgnore struct {
	Pos   token.Pos
	Names []DiagnosticName // empty if the whole directive is unused
}

// GetUnusedIgnores returns the directives that suppressed nothing, ordered
// by position. A name that is not enabled, or not a diagnostic at all,
// counts as unused.
func (m Map) GetUnusedIgnores(enabled Enabled) []UnusedIgnore {
	entries := make([]*Entry, 0, len(m))
	for _, e := range m {
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b *Entry) int {
		return cmp.Compare(a.pos, b.pos)
	})

	var unused []UnusedIgnore

	for _, e := range entries {
		if len(e.Names) == 0 {
			if !e.usedAny(enabled) {
				unused = append(unused, UnusedIgnore{Pos: e.pos})
			}
			continue
		}

		var names []DiagnosticName
		for _, name := range e.Names {
			if !enabled[name] || !e.used[name] {
				names = append(names, name)
			}
		}

		if len(names) > 0 {
			unused = append(unused, UnusedIgnore{Pos: e.pos, Names: names})
		}
	}

	return unused
}

func (e *Entry) usedAny(enabled Enabled) bool {
	for name := range e.used {
		if enabled[name] {
			return true
		}
	}

	return false
}
