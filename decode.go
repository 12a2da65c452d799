package listingmatch

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseListings decodes one JSON object per line. Lines that are not valid
// JSON objects are skipped.
func ParseListings(data []byte) []*Listing {
	listings := make([]*Listing, 0)
	eachObject(data, func(raw string, obj gjson.Result) {
		listings = append(listings, &Listing{
			Title:        stringField(obj, "title"),
			Manufacturer: stringField(obj, "manufacturer"),
			Currency:     stringField(obj, "currency"),
			Price:        stringField(obj, "price"),
			Raw:          json.RawMessage(raw),
		})
	})
	return listings
}

// ParseProducts decodes one JSON object per line. Lines that are not valid
// JSON objects are skipped.
func ParseProducts(data []byte) []*Product {
	products := make([]*Product, 0)
	eachObject(data, func(raw string, obj gjson.Result) {
		products = append(products, &Product{
			ProductName:   stringField(obj, "product_name"),
			Manufacturer:  stringField(obj, "manufacturer"),
			Family:        stringField(obj, "family"),
			Model:         stringField(obj, "model"),
			AnnouncedDate: stringField(obj, "announced-date"),
			Raw:           json.RawMessage(raw),
		})
	})
	return products
}

// ParseWordList returns the non-blank lines not starting with '#'.
func ParseWordList(data []byte) []string {
	words := make([]string, 0)
	for _, line := range lines(data) {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

func eachObject(data []byte, fn func(raw string, obj gjson.Result)) {
	for _, line := range lines(data) {
		if !gjson.Valid(line) {
			continue
		}
		obj := gjson.Parse(line)
		if !obj.IsObject() {
			continue
		}
		fn(line, obj)
	}
}

// stringField returns the value of key, or "" when it is missing or not a string.
func stringField(obj gjson.Result, key string) string {
	v := obj.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

func lines(data []byte) []string {
	r := strings.Split(string(data), "\n")
	for i, line := range r {
		r[i] = strings.TrimSpace(line)
	}
	return r
}
