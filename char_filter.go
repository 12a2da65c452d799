package listingmatch

import (
	"sort"
	"strings"
)

type CharFilter interface {
	Filter(string) string
}

type TrimCharFilter struct{}

func NewTrimCharFilter() TrimCharFilter {
	return TrimCharFilter{}
}

func (c TrimCharFilter) Filter(s string) string {
	return strings.TrimSpace(s)
}

type LowercaseCharFilter struct{}

func NewLowercaseCharFilter() LowercaseCharFilter {
	return LowercaseCharFilter{}
}

func (c LowercaseCharFilter) Filter(s string) string {
	return strings.ToLower(s)
}

type MappingCharFilter struct {
	mapper map[string]string // key->valueに置換する
	keys   []string
}

func NewMappingCharFilter(mapper map[string]string) MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		keys = append(keys, k)
	}
	// 置換順を固定する。長いキーを先に置換する
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return MappingCharFilter{mapper: mapper, keys: keys}
}

func (c MappingCharFilter) Filter(s string) string {
	for _, k := range c.keys {
		s = strings.ReplaceAll(s, k, c.mapper[k])
	}
	return s
}
