package listingmatch

import (
	"regexp"

	"github.com/kotaroooo0/listingmatch/morphology"
)

// KeywordPattern is the character class a keyword is made of.
var KeywordPattern = regexp.MustCompile(`[a-z0-9.,-]+`)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// PatternTokenizer emits every maximal run of its pattern as a token.
// Input is expected to be lowercased already.
type PatternTokenizer struct {
	pattern *regexp.Regexp
}

func NewPatternTokenizer() PatternTokenizer {
	return PatternTokenizer{pattern: KeywordPattern}
}

func (t PatternTokenizer) Tokenize(s string) TokenStream {
	terms := t.pattern.FindAllString(s, -1)
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}

type MorphologicalTokenizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalTokenizer(morphology morphology.Morphology) MorphologicalTokenizer {
	return MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t MorphologicalTokenizer) Tokenize(s string) TokenStream {
	mTokens := t.morphology.Analyze(s)
	tokens := make([]Token, len(mTokens))
	for i, t := range mTokens {
		tokens[i] = NewToken(t.Term, SetKana(t.Kana))
	}
	return NewTokenStream(tokens)
}
