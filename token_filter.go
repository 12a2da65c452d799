package listingmatch

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(strings.ToLower(token.Term), SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

// StopWordFilter drops tokens equal to one of its stop words.
type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	m := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		m[strings.ToLower(w)] = struct{}{}
	}
	return StopWordFilter{
		stopWords: m,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(english.Stem(token.Term, false), SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

type RomajiReadingformFilter struct{}

func NewRomajiReadingformFilter() RomajiReadingformFilter {
	return RomajiReadingformFilter{}
}

func (f RomajiReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		// 読みがないトークン(英数字など)はそのまま残す
		if token.Kana == "" {
			r[i] = token
			continue
		}
		r[i] = NewToken(jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Kana)), SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

// PatternFilter splits every token into the runs of its pattern and drops
// what is left over.
type PatternFilter struct {
	pattern *regexp.Regexp
}

func NewPatternFilter() PatternFilter {
	return PatternFilter{pattern: KeywordPattern}
}

func (f PatternFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		for _, term := range f.pattern.FindAllString(token.Term, -1) {
			r = append(r, NewToken(term, SetKana(token.Kana)))
		}
	}
	return NewTokenStream(r)
}
