package listingmatch

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// StorageFileImpl reads line-delimited JSON listings and products and a
// stop-word list from files.
type StorageFileImpl struct {
	ListingsPath  string
	ProductsPath  string
	StopWordsPath string
}

func NewStorageFileImpl(listingsPath, productsPath, stopWordsPath string) *StorageFileImpl {
	return &StorageFileImpl{
		ListingsPath:  listingsPath,
		ProductsPath:  productsPath,
		StopWordsPath: stopWordsPath,
	}
}

func (s *StorageFileImpl) GetAllListings(ctx context.Context) ([]*Listing, error) {
	data, err := readFile(ctx, s.ListingsPath)
	if err != nil {
		return nil, err
	}
	return ParseListings(data), nil
}

func (s *StorageFileImpl) GetAllProducts(ctx context.Context) ([]*Product, error) {
	data, err := readFile(ctx, s.ProductsPath)
	if err != nil {
		return nil, err
	}
	return ParseProducts(data), nil
}

// GetStopWords returns no stop words when no stop-word file is configured.
func (s *StorageFileImpl) GetStopWords(ctx context.Context) ([]string, error) {
	if s.StopWordsPath == "" {
		return []string{}, nil
	}
	data, err := readFile(ctx, s.StopWordsPath)
	if err != nil {
		return nil, err
	}
	return ParseWordList(data), nil
}

// LoadAll reads the three files concurrently.
func (s *StorageFileImpl) LoadAll(ctx context.Context) (Inputs, error) {
	var in Inputs
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in.Listings, err = s.GetAllListings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		in.Products, err = s.GetAllProducts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		in.StopWords, err = s.GetStopWords(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
