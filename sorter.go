package listingmatch

import "sort"

type productQueries []productQuery

func (qs productQueries) Len() int           { return len(qs) }
func (qs productQueries) Less(i, j int) bool { return qs[i].specificity() > qs[j].specificity() }
func (qs productQueries) Swap(i, j int)      { qs[i], qs[j] = qs[j], qs[i] }

// sortBySpecificity orders queries from the most to the least specific.
// Ties keep their input order.
func sortBySpecificity(qs productQueries) {
	sort.Stable(qs)
}
