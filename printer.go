package listingmatch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pp"
)

type Printer interface {
	Print(io.Writer, []Result) error
}

// NewPrinter returns the printer for format.
func NewPrinter(format string) (Printer, error) {
	switch format {
	case FormatText, "":
		return TextPrinter{}, nil
	case FormatJSON:
		return JSONLinesPrinter{}, nil
	case FormatPretty:
		return PrettyPrinter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextPrinter writes each product name followed by the titles of its listings.
type TextPrinter struct{}

func (p TextPrinter) Print(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintln(bw, r.ProductName)
		for _, l := range r.Listings {
			fmt.Fprintln(bw, " => "+l.Title)
		}
	}
	return bw.Flush()
}

// JSONLinesPrinter writes one {"product_name", "listings"} object per line.
type JSONLinesPrinter struct{}

func (p JSONLinesPrinter) Print(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// PrettyPrinter dumps the results for debugging.
type PrettyPrinter struct {
	Color bool
}

func (p PrettyPrinter) Print(w io.Writer, results []Result) error {
	pp.ColoringEnabled = p.Color
	for _, r := range results {
		titles := make([]string, len(r.Listings))
		for i, l := range r.Listings {
			titles[i] = l.Title
		}
		if _, err := pp.Fprintln(w, map[string]interface{}{
			"product_name": r.ProductName,
			"listings":     titles,
		}); err != nil {
			return err
		}
	}
	return nil
}
