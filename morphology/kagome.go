package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

const (
	posIndex     = 1 // 品詞細分類1
	readingIndex = 7 // 読み
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: t,
	}, nil
}

// Analyze returns surface forms with katakana readings. Tokens without a
// reading in the dictionary (latin words, model numbers) use the surface form.
func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, tokenizer.Search)
	morphemes := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		if len(features) > posIndex && features[posIndex] == "空白" {
			continue
		}
		kana := token.Surface
		if len(features) > readingIndex {
			kana = features[readingIndex]
		}
		morphemes = append(morphemes, NewMorphologyToken(token.Surface, kana))
	}
	return morphemes
}
