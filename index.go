package listingmatch

// InvertedIndex maps a keyword to the set of items having it.
type InvertedIndex[T comparable] struct {
	postings map[string]*Set[T]
}

func NewInvertedIndex[T comparable]() *InvertedIndex[T] {
	return &InvertedIndex[T]{
		postings: make(map[string]*Set[T]),
	}
}

// Add adds item to the posting set of every keyword.
func (idx *InvertedIndex[T]) Add(item T, keywords Keywords) {
	for _, keyword := range keywords {
		postings, ok := idx.postings[keyword]
		if !ok {
			postings = NewSet[T]()
			idx.postings[keyword] = postings
		}
		postings.Add(item)
	}
}

// Postings returns the posting set of keyword. Unknown keywords get an empty set.
func (idx *InvertedIndex[T]) Postings(keyword string) *Set[T] {
	if postings, ok := idx.postings[keyword]; ok {
		return postings
	}
	return NewSet[T]()
}

// Len returns the number of distinct keywords.
func (idx *InvertedIndex[T]) Len() int {
	return len(idx.postings)
}

// FindAll returns the items of domain that are in the posting set of every
// keyword. An unknown keyword matches nothing; no keywords match the whole domain.
func (idx *InvertedIndex[T]) FindAll(keywords Keywords, domain Membership[T]) ([]T, error) {
	sets := make([]Membership[T], 0, len(keywords)+1)
	sets = append(sets, domain)
	for _, keyword := range keywords {
		sets = append(sets, idx.Postings(keyword))
	}
	return intersection(sets)
}
