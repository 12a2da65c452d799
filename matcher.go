package listingmatch

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Matcher assigns listings to products. A listing is given to at most one
// product; more specific products claim first.
type Matcher struct {
	extractor                KeywordExtractor
	logger                   zerolog.Logger
	matchKeywordlessProducts bool
}

type MatcherOption func(*Matcher)

func WithLogger(logger zerolog.Logger) MatcherOption {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// WithKeywordlessProducts lets a product without any keyword claim every
// listing still available. By default such products match nothing.
func WithKeywordlessProducts(enabled bool) MatcherOption {
	return func(m *Matcher) {
		m.matchKeywordlessProducts = enabled
	}
}

func NewMatcher(extractor KeywordExtractor, options ...MatcherOption) *Matcher {
	m := &Matcher{
		extractor: extractor,
		logger:    zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// MatchListingsWithProducts matches with the default analyzer and options.
func MatchListingsWithProducts(listings []*Listing, products []*Product, stopWords []string) ([]Result, error) {
	extractor := NewKeywordExtractor(NewDefaultAnalyzer(stopWords))
	return NewMatcher(extractor).Match(listings, products)
}

// 1. リスティングをメーカー名とタイトルで索引付けする
// 2. 商品をキーワード数の多い順に並べる
// 3. 商品ごとにメーカー索引、タイトル索引の順で絞り込み、見つかったリスティングを確保する
func (m *Matcher) Match(listings []*Listing, products []*Product) ([]Result, error) {
	indexer := NewIndexer(m.extractor)
	indexer.AddListings(listings)
	m.logger.Debug().
		Int("listings", len(listings)).
		Int("manufacturer_keywords", indexer.ManufacturerIndex.Len()).
		Int("title_keywords", indexer.TitleIndex.Len()).
		Msg("indexed listings")

	queries := make(productQueries, len(products))
	for i, p := range products {
		queries[i] = newProductQuery(p, m.extractor)
	}
	sortBySpecificity(queries)

	// A listing can only match one product, so keep track of available ones.
	available := NewComplementSet[*Listing]()

	results := make([]Result, len(queries))
	claimed := 0
	for i, q := range queries {
		matches, err := m.find(indexer, q, available, listings)
		if err != nil {
			return nil, fmt.Errorf("match product %q: %w", q.product.ProductName, err)
		}
		for _, l := range matches {
			available.Delete(l)
		}
		claimed += len(matches)

		m.logger.Debug().
			Str("product", q.product.ProductName).
			Int("specificity", q.specificity()).
			Strs("manufacturer_keywords", q.mfgKeywords).
			Strs("title_keywords", q.titleKeywords).
			Int("matches", len(matches)).
			Msg("matched product")

		results[i] = Result{
			ProductName: q.product.ProductName,
			Product:     q.product,
			Listings:    matches,
		}
	}

	m.logger.Info().
		Int("products", len(products)).
		Int("listings", len(listings)).
		Int("claimed", claimed).
		Msg("matching finished")
	return results, nil
}

func (m *Matcher) find(indexer *Indexer, q productQuery, available *ComplementSet[*Listing], listings []*Listing) ([]*Listing, error) {
	if q.titleKeywords.Len() == 0 {
		if !m.matchKeywordlessProducts {
			return []*Listing{}, nil
		}
		return remaining(listings, available), nil
	}

	// メーカー名のキーワードがなければメーカーでは絞り込まない
	var domain Membership[*Listing] = available
	if q.mfgKeywords.Len() > 0 {
		mfgMatches, err := indexer.ManufacturerIndex.FindAll(q.mfgKeywords, available)
		if err != nil {
			return nil, err
		}
		domain = NewSet(mfgMatches...)
	}
	return indexer.TitleIndex.FindAll(q.titleKeywords, domain)
}

func remaining(listings []*Listing, available Membership[*Listing]) []*Listing {
	r := make([]*Listing, 0)
	seen := make(map[*Listing]struct{}, len(listings))
	for _, l := range listings {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		if available.Has(l) {
			r = append(r, l)
		}
	}
	return r
}
