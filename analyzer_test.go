package listingmatch

import (
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/kotaroooo0/listingmatch/morphology"
	"github.com/kotaroooo0/listingmatch/morphology/mock_morphology"
)

func TestAnalyze(t *testing.T) {
	cases := []struct {
		analyzer Analyzer
		text     string
		tokens   TokenStream
	}{
		{
			analyzer: NewDefaultAnalyzer([]string{}),
			text:     "",
			tokens:   NewTokenStream([]Token{}),
		},
		{
			analyzer: NewDefaultAnalyzer([]string{"and"}),
			text:     "Sony and Co.",
			tokens: NewTokenStream([]Token{
				NewToken("sony"),
				NewToken("co."),
			}),
		},
		{
			analyzer: NewDefaultAnalyzer([]string{}),
			text:     "  Canon PowerShot SX130-IS  ",
			tokens: NewTokenStream([]Token{
				NewToken("canon"),
				NewToken("powershot"),
				NewToken("sx130-is"),
			}),
		},
		{
			analyzer: NewDefaultAnalyzer([]string{"with"}),
			text:     "Fujifilm/FinePix WITH Case!",
			tokens: NewTokenStream([]Token{
				NewToken("fujifilm"),
				NewToken("finepix"),
				NewToken("case"),
			}),
		},
		{
			analyzer: NewDefaultAnalyzer([]string{}),
			text:     "!!! ***",
			tokens:   NewTokenStream([]Token{}),
		},
		{
			analyzer: NewDefaultAnalyzer([]string{}).With(nil, []TokenFilter{NewStemmerFilter()}),
			text:     "Long pens",
			tokens: NewTokenStream([]Token{
				NewToken("long"),
				NewToken("pen"),
			}),
		},
		{
			analyzer: NewDefaultAnalyzer([]string{"and"}).With([]CharFilter{NewMappingCharFilter(map[string]string{"&": " and "})}, nil),
			text:     "Black&Decker",
			tokens: NewTokenStream([]Token{
				NewToken("black"),
				NewToken("decker"),
			}),
		},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v", tt.text), func(t *testing.T) {
			if diff := cmp.Diff(tt.analyzer.Analyze(tt.text), tt.tokens); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestMorphologicalAnalyze(t *testing.T) {
	// Mock
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMorphology := mock_morphology.NewMockMorphology(mockCtrl)

	// Given
	text := "今日は天気が良い"
	mockMorphology.EXPECT().Analyze(text).Return([]morphology.MorphologyToken{
		morphology.NewMorphologyToken("今日", "キョウ"),
		morphology.NewMorphologyToken("は", "ハ"),
		morphology.NewMorphologyToken("天気", "テンキ"),
		morphology.NewMorphologyToken("が", "ガ"),
		morphology.NewMorphologyToken("良い", "ヨイ"),
	})
	analyzer := NewMorphologicalAnalyzer(mockMorphology, []string{"ha", "ga"})

	// When
	actual := analyzer.Analyze(text)

	// Then
	expected := NewTokenStream([]Token{
		NewToken("kyo", SetKana("キョウ")),
		NewToken("tenki", SetKana("テンキ")),
		NewToken("yoi", SetKana("ヨイ")),
	})
	if diff := cmp.Diff(actual, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
