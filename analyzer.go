package listingmatch

import "github.com/kotaroooo0/listingmatch/morphology"

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// NewDefaultAnalyzer trims and lowercases text, splits it into keyword runs
// and removes stop words.
func NewDefaultAnalyzer(stopWords []string) Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewTrimCharFilter(), NewLowercaseCharFilter()},
		NewPatternTokenizer(),
		[]TokenFilter{NewStopWordFilter(stopWords)},
	)
}

// NewMorphologicalAnalyzer reads Japanese text as romaji so that the
// resulting tokens stay inside the keyword character class.
func NewMorphologicalAnalyzer(m morphology.Morphology, stopWords []string) Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewTrimCharFilter()},
		NewMorphologicalTokenizer(m),
		[]TokenFilter{
			NewRomajiReadingformFilter(),
			NewLowercaseFilter(),
			NewPatternFilter(),
			NewStopWordFilter(stopWords),
		},
	)
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}

// With returns a copy of the analyzer with extra char filters prepended and
// extra token filters appended.
func (a Analyzer) With(charFilters []CharFilter, tokenFilters []TokenFilter) Analyzer {
	cf := make([]CharFilter, 0, len(charFilters)+len(a.charFilters))
	cf = append(cf, charFilters...)
	cf = append(cf, a.charFilters...)
	tf := make([]TokenFilter, 0, len(a.tokenFilters)+len(tokenFilters))
	tf = append(tf, a.tokenFilters...)
	tf = append(tf, tokenFilters...)
	return NewAnalyzer(cf, a.tokenizer, tf)
}
