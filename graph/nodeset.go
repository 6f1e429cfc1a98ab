package graph

import "github.com/c360studio/semshacl/term"

// NodeSet is a deduplicating collection of terms preserving first-insertion
// order.
type NodeSet struct {
	seen  map[term.Term]struct{}
	items []term.Term
}

// NewNodeSet creates an empty NodeSet.
func NewNodeSet(terms ...term.Term) *NodeSet {
	s := &NodeSet{seen: make(map[term.Term]struct{})}
	s.AddAll(terms)
	return s
}

// Add inserts t and reports whether it was not already present.
func (s *NodeSet) Add(t term.Term) bool {
	if _, ok := s.seen[t]; ok {
		return false
	}
	s.seen[t] = struct{}{}
	s.items = append(s.items, t)
	return true
}

// AddAll inserts every term of terms.
func (s *NodeSet) AddAll(terms []term.Term) {
	for _, t := range terms {
		s.Add(t)
	}
}

// AddSet inserts every member of other (set union).
func (s *NodeSet) AddSet(other *NodeSet) {
	if other == nil {
		return
	}
	s.AddAll(other.items)
}

// Contains reports membership.
func (s *NodeSet) Contains(t term.Term) bool {
	_, ok := s.seen[t]
	return ok
}

// Len returns the number of distinct members.
func (s *NodeSet) Len() int {
	return len(s.items)
}

// Terms returns the members in first-insertion order. The returned slice
// must not be mutated.
func (s *NodeSet) Terms() []term.Term {
	return s.items
}
