package listingmatch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortBySpecificity(t *testing.T) {
	extractor := NewKeywordExtractor(NewDefaultAnalyzer([]string{}))
	products := []*Product{
		{ProductName: "sony", Manufacturer: "Sony"},
		{ProductName: "sony_cybershot_w310", Manufacturer: "Sony", Family: "Cyber-shot", Model: "DSC-W310"},
		{ProductName: "canon", Manufacturer: "Canon"},
		{ProductName: "sony_w310", Manufacturer: "Sony", Model: "DSC-W310"},
		{ProductName: "empty"},
	}
	queries := make(productQueries, len(products))
	for i, p := range products {
		queries[i] = newProductQuery(p, extractor)
	}

	sortBySpecificity(queries)

	actual := make([]string, len(queries))
	for i, q := range queries {
		actual[i] = q.product.ProductName
	}
	expected := []string{"sony_cybershot_w310", "sony_w310", "sony", "canon", "empty"}
	if diff := cmp.Diff(actual, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
