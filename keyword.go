package listingmatch

// Keywords is a de-duplicated list of keywords in first-seen order.
type Keywords []string

func (ks Keywords) Len() int {
	return len(ks)
}

func (ks Keywords) Contains(keyword string) bool {
	for _, k := range ks {
		if k == keyword {
			return true
		}
	}
	return false
}

type KeywordExtractor struct {
	analyzer Analyzer
}

func NewKeywordExtractor(analyzer Analyzer) KeywordExtractor {
	return KeywordExtractor{analyzer: analyzer}
}

// Extract returns the union of the keywords of every non-empty text.
func (e KeywordExtractor) Extract(texts ...string) Keywords {
	seen := make(map[string]struct{})
	keywords := make(Keywords, 0)
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, term := range e.analyzer.Analyze(text).Terms() {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			keywords = append(keywords, term)
		}
	}
	return keywords
}
