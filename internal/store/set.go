package store

import "slices"

// orderedSet is a set of identities that remembers insertion order
type orderedSet struct {
	index map[string]int
	items []string
}

func newOrderedSet(items ...string) *orderedSet {
	s := &orderedSet{index: make(map[string]int, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *orderedSet) Has(v string) bool {
	_, ok := s.index[v]
	return ok
}

func (s *orderedSet) Add(v string) bool {
	if s.Has(v) {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet) Remove(v string) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.items = slices.Delete(s.items, i, i+1)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
	return true
}

func (s *orderedSet) Len() int {
	return len(s.items)
}

func (s *orderedSet) Items() []string {
	return slices.Clone(s.items)
}
