package listingmatch

import (
	"errors"
	"sort"
)

// ErrUnboundedIntersection is returned when none of the sets to intersect can
// be enumerated.
var ErrUnboundedIntersection = errors.New("listingmatch: cannot enumerate an intersection of unbounded sets")

type bySize[T comparable] []Membership[T]

func (s bySize[T]) Len() int           { return len(s) }
func (s bySize[T]) Less(i, j int) bool { return s[i].Size() < s[j].Size() }
func (s bySize[T]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// intersection returns the items present in every set, in the order of the
// smallest set.
// 1. 要素数の少ない順にソートする
// 2. 最小の集合を一度だけ走査し、残りの集合すべてに含まれる要素だけを残す
func intersection[T comparable](sets []Membership[T]) ([]T, error) {
	if len(sets) == 0 {
		return []T{}, nil
	}
	sort.Stable(bySize[T](sets))

	smallest, ok := sets[0].(Enumerable[T])
	if !ok {
		return nil, ErrUnboundedIntersection
	}

	r := make([]T, 0, smallest.Size())
	for _, item := range smallest.Items() {
		if containedInAll(item, sets[1:]) {
			r = append(r, item)
		}
	}
	return r, nil
}

func containedInAll[T comparable](item T, sets []Membership[T]) bool {
	for _, s := range sets {
		if !s.Has(item) {
			return false
		}
	}
	return true
}
