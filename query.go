package listingmatch

// productQuery is what a product is searched with: the keywords of its
// manufacturer for the manufacturer index, and the keywords of its
// manufacturer, family and model for the title index.
type productQuery struct {
	product       *Product
	mfgKeywords   Keywords
	titleKeywords Keywords
}

func newProductQuery(product *Product, extractor KeywordExtractor) productQuery {
	return productQuery{
		product:       product,
		mfgKeywords:   extractor.Extract(product.Manufacturer),
		titleKeywords: extractor.Extract(product.Manufacturer, product.Family, product.Model),
	}
}

// specificity is the number of distinct keywords describing the product.
func (q productQuery) specificity() int {
	return q.titleKeywords.Len()
}
