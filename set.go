package listingmatch

import "math"

// Unbounded is the size reported by sets without a finite enumeration.
// It sorts after every concrete size.
const Unbounded = math.MaxInt

// Membership is a set that can only answer whether it holds an item.
type Membership[T comparable] interface {
	Has(item T) bool
	Size() int
}

// Enumerable is a finite set whose items can be listed.
type Enumerable[T comparable] interface {
	Membership[T]
	Items() []T
}

// Set is a finite set that remembers insertion order.
type Set[T comparable] struct {
	items []T
	index map[T]struct{}
}

func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]struct{}, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *Set[T]) Add(item T) {
	if _, ok := s.index[item]; ok {
		return
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *Set[T]) Has(item T) bool {
	_, ok := s.index[item]
	return ok
}

func (s *Set[T]) Size() int {
	return len(s.items)
}

// Items returns the items in insertion order. The slice must not be modified.
func (s *Set[T]) Items() []T {
	return s.items
}

// ComplementSet holds every item except the ones deleted from it.
// It has no enumeration; use it only as a membership test next to a finite set.
type ComplementSet[T comparable] struct {
	excluded map[T]struct{}
}

func NewComplementSet[T comparable](excluded ...T) *ComplementSet[T] {
	c := &ComplementSet[T]{excluded: make(map[T]struct{}, len(excluded))}
	for _, item := range excluded {
		c.Delete(item)
	}
	return c
}

func (c *ComplementSet[T]) Has(item T) bool {
	_, ok := c.excluded[item]
	return !ok
}

func (c *ComplementSet[T]) Size() int {
	return Unbounded
}

// Delete removes item for good. There is no way to add it back.
func (c *ComplementSet[T]) Delete(item T) {
	c.excluded[item] = struct{}{}
}
