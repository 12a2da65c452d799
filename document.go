package listingmatch

import "encoding/json"

// Listing is an offer for sale as it appears in a feed.
type Listing struct {
	Title        string `db:"title" json:"title"`
	Manufacturer string `db:"manufacturer" json:"manufacturer"`
	Currency     string `db:"currency" json:"currency"`
	Price        string `db:"price" json:"price"`

	// Raw is the record the listing was decoded from.
	Raw json.RawMessage `db:"-" json:"-"`
}

// Product is a canonical catalog entry.
type Product struct {
	ProductName   string `db:"product_name" json:"product_name"`
	Manufacturer  string `db:"manufacturer" json:"manufacturer"`
	Family        string `db:"family" json:"family,omitempty"`
	Model         string `db:"model" json:"model"`
	AnnouncedDate string `db:"announced_date" json:"announced-date,omitempty"`

	Raw json.RawMessage `db:"-" json:"-"`
}

// Result holds the listings claimed by one product.
type Result struct {
	ProductName string
	Product     *Product
	Listings    []*Listing
}

// MarshalJSON writes the listings as the records they were decoded from.
func (r Result) MarshalJSON() ([]byte, error) {
	listings := make([]json.RawMessage, len(r.Listings))
	for i, l := range r.Listings {
		raw, err := l.raw()
		if err != nil {
			return nil, err
		}
		listings[i] = raw
	}
	return json.Marshal(struct {
		ProductName string            `json:"product_name"`
		Listings    []json.RawMessage `json:"listings"`
	}{
		ProductName: r.ProductName,
		Listings:    listings,
	})
}

func (l *Listing) raw() (json.RawMessage, error) {
	if len(l.Raw) > 0 {
		return l.Raw, nil
	}
	return json.Marshal(l)
}
