package listingmatch

import "context"

// Storage provides the inputs of a matching run.
type Storage interface {
	GetAllListings(context.Context) ([]*Listing, error) // 全てのリスティングを返す
	GetAllProducts(context.Context) ([]*Product, error) // 全ての商品を返す
	GetStopWords(context.Context) ([]string, error)     // ストップワードを返す
}

// Inputs is everything a matching run reads from a Storage.
type Inputs struct {
	Listings  []*Listing
	Products  []*Product
	StopWords []string
}

type bulkLoader interface {
	LoadAll(context.Context) (Inputs, error)
}

// LoadInputs reads listings, products and stop words from storage, in one
// call when the storage supports it.
func LoadInputs(ctx context.Context, storage Storage) (Inputs, error) {
	if l, ok := storage.(bulkLoader); ok {
		return l.LoadAll(ctx)
	}
	var in Inputs
	var err error
	if in.Listings, err = storage.GetAllListings(ctx); err != nil {
		return Inputs{}, err
	}
	if in.Products, err = storage.GetAllProducts(ctx); err != nil {
		return Inputs{}, err
	}
	if in.StopWords, err = storage.GetStopWords(ctx); err != nil {
		return Inputs{}, err
	}
	return in, nil
}
