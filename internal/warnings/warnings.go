// Package warnings collects the non-fatal diagnostics of one WSDL generation.
package warnings

import (
	"fmt"

	"github.com/beevik/etree"
)

// Prefix is prepended to every collected warning.
const Prefix = "Warning: "

// Sink is an ordered, duplicate-free list of warnings. A Sink belongs to a
// single generation request and is not safe for concurrent use.
type Sink struct {
	list []string
	seen map[string]struct{}
}

// New returns an empty Sink.
func New() *Sink {
	return &Sink{seen: make(map[string]struct{})}
}

// Add records msg with the warning prefix. A message equal to one already
// recorded is dropped.
func (s *Sink) Add(msg string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	msg = Prefix + msg
	if _, ok := s.seen[msg]; ok {
		return
	}
	s.seen[msg] = struct{}{}
	s.list = append(s.list, msg)
}

// Addf formats and records a warning.
func (s *Sink) Addf(format string, args ...any) {
	s.Add(fmt.Sprintf(format, args...))
}

// Len returns the number of distinct warnings.
func (s *Sink) Len() int {
	return len(s.list)
}

// List returns a copy of the warnings in insertion order.
func (s *Sink) List() []string {
	out := make([]string, len(s.list))
	copy(out, s.list)
	return out
}

// WriteComments appends every warning as a comment at document level, after
// the root element.
func (s *Sink) WriteComments(doc *etree.Document) {
	for _, w := range s.list {
		doc.CreateComment(w)
	}
}
