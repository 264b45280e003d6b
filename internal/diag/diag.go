// Package diag implements source-position diagnostics for the assembler
// pipeline: positions, errors, and the farthest-failure tracker the packrat
// parser uses to report the most useful "expected ..." message.
package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Position identifies a location in an input file.
type Position struct {
	Filename string
	Line     int
	Column   int
	LineText string // the full source line, for caret-underlined context
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Kind categorizes a diagnostic.
type Kind int

const (
	KindSyntax Kind = iota
	KindUndefinedLabel
	KindUndefinedConst
	KindDuplicateConst
	KindOutOfRange
	KindInternal
)

// Error is a single diagnostic with position and optional caret context.
type Error struct {
	Pos     Position
	Kind    Kind
	Message string
}

func NewError(pos Position, kind Kind, message string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message}
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: error: %s\n", e.Pos, e.Message)
	if e.Pos.LineText != "" {
		sb.WriteString("    " + e.Pos.LineText + "\n")
		sb.WriteString("    " + strings.Repeat(" ", max(0, e.Pos.Column-1)) + "^\n")
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// List accumulates diagnostics across a parse/layout/compile pass, per
// spec.md §4.6/§7: a pass collects everything it can and raises a single
// composite error at the end rather than stopping at the first mistake.
type List struct {
	Errors []*Error
}

func (l *List) Add(err *Error) {
	l.Errors = append(l.Errors, err)
}

func (l *List) HasErrors() bool {
	return len(l.Errors) > 0
}

func (l *List) Error() string {
	var sb strings.Builder
	for _, e := range l.Errors {
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// AsError returns l as an error, or nil if there were no errors. Pipeline
// stages use this to raise "a composite error only at the end" (§4.3, §4.6).
func (l *List) AsError() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}

// Expects is the "farthest failure" tracker required by spec.md §4.6: a
// map from column to the ordered list of human-readable expectations that
// failed there. It is scoped to a single source line; the parser clears it
// at every line boundary so it never grows unbounded across a file.
type Expects struct {
	byColumn map[int][]string
	farthest int
}

func NewExpects() *Expects {
	return &Expects{byColumn: make(map[int][]string)}
}

// Record notes that a parselet expected something at the given column but
// failed. Only the farthest column's expectations are retained for the
// final message, but all are stored so duplicates can be suppressed.
func (ex *Expects) Record(column int, what string) {
	if column > ex.farthest {
		ex.farthest = column
	}
	list := ex.byColumn[column]
	for _, existing := range list {
		if existing == what {
			return
		}
	}
	ex.byColumn[column] = append(list, what)
}

// Reset clears the tracker for the next line.
func (ex *Expects) Reset() {
	ex.byColumn = make(map[int][]string)
	ex.farthest = 0
}

// Farthest returns the column of the rightmost recorded failure and the
// (deterministically ordered) expectations recorded there. ok is false if
// nothing was ever recorded.
func (ex *Expects) Farthest() (column int, expectations []string, ok bool) {
	if len(ex.byColumn) == 0 {
		return 0, nil, false
	}
	list := ex.byColumn[ex.farthest]
	sorted := append([]string(nil), list...)
	sort.Strings(sorted)
	return ex.farthest, sorted, true
}

// Message renders the standard "expected <last expectation>" diagnostic
// text for the farthest failure, per spec.md §4.6.
func (ex *Expects) Message() string {
	if len(ex.byColumn) == 0 {
		return "unexpected input"
	}
	list := ex.byColumn[ex.farthest]
	if len(list) == 0 {
		return "unexpected input"
	}
	return "expected " + list[len(list)-1]
}
