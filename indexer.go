package listingmatch

// Indexer builds the inverted indexes over listings.
type Indexer struct {
	Extractor         KeywordExtractor
	ManufacturerIndex *InvertedIndex[*Listing] // メーカー名のキーワード
	TitleIndex        *InvertedIndex[*Listing] // タイトルとメーカー名のキーワード
}

func NewIndexer(extractor KeywordExtractor) *Indexer {
	return &Indexer{
		Extractor:         extractor,
		ManufacturerIndex: NewInvertedIndex[*Listing](),
		TitleIndex:        NewInvertedIndex[*Listing](),
	}
}

// AddListing indexes one listing. Titles are indexed together with the
// manufacturer, since feeds often put the brand only in one of the two.
func (i *Indexer) AddListing(listing *Listing) {
	i.ManufacturerIndex.Add(listing, i.Extractor.Extract(listing.Manufacturer))
	i.TitleIndex.Add(listing, i.Extractor.Extract(listing.Title, listing.Manufacturer))
}

func (i *Indexer) AddListings(listings []*Listing) {
	for _, l := range listings {
		i.AddListing(l)
	}
}
