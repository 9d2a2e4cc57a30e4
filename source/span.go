// Package source locates IR nodes in the original source text.
//
// A Span is the unit the IR carries: a contiguous region of one file.
// Nodes hold spans as weak references for diagnostics and tooling; the
// IR never reads the text back through them.
package source

import "fmt"

// Pos is a line and column in a source file, both 1-indexed.
// The zero Pos means the location is unknown.
type Pos struct {
	Line   int
	Column int
}

// IsValid reports whether the position names a real location.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes before q in the same file.
func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// String formats the position as "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a contiguous region of a single source file, from Start to
// End inclusive.
type Span struct {
	File  string // empty when the file is unknown
	Start Pos
	End   Pos
}

// NewSpan returns a span covering start through end in file.
func NewSpan(file string, start, end Pos) *Span {
	return &Span{File: file, Start: start, End: end}
}

// Point returns a zero-width span at a single position in file.
func Point(file string, line, column int) *Span {
	p := Pos{Line: line, Column: column}
	return &Span{File: file, Start: p, End: p}
}

// IsValid reports whether the span has a usable start position.
func (s *Span) IsValid() bool {
	return s != nil && s.Start.IsValid()
}

// Contains reports whether p falls inside the span.
func (s *Span) Contains(p Pos) bool {
	return s.IsValid() && !p.Before(s.Start) && !s.End.Before(p)
}

// String formats the span as "file:start-end". The end collapses to a
// bare column number when the span fits on one line.
func (s *Span) String() string {
	prefix := ""
	if s.File != "" {
		prefix = s.File + ":"
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s%s-%d", prefix, s.Start, s.End.Column)
	}
	return fmt.Sprintf("%s%s-%s", prefix, s.Start, s.End)
}
