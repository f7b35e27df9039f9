package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"eventshop/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter reads a catalog export (an array of products with colors,
// sizes, variants and pricing tiers) and upserts each entry.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

// Run decodes the export and upserts products one by one. It stops at the
// first invalid entry so a broken export never half-applies silently.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var products []domain.Product
	dec := json.NewDecoder(i.reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&products); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	imported := 0
	for _, p := range products {
		if err := validate(p); err != nil {
			return imported, err
		}
		if _, err := i.productRepo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.Key, err)
		}
		imported++
	}
	return imported, nil
}

func validate(p domain.Product) error {
	if p.Key == "" || p.Name == "" || p.Currency == "" || p.PriceCents <= 0 {
		return fmt.Errorf("invalid product entry (missing required fields) for key %q", p.Key)
	}
	// Each variant must reference declared axes when axes are present.
	for _, v := range p.Variants {
		if len(p.Colors) > 0 && !hasColor(p.Colors, v.Color) {
			return fmt.Errorf("product %q: variant color %q not in color axis", p.Key, v.Color)
		}
		if len(p.Sizes) > 0 && !hasSize(p.Sizes, v.Size) {
			return fmt.Errorf("product %q: variant size %q not in size axis", p.Key, v.Size)
		}
	}
	return nil
}

func hasColor(colors []domain.ColorOption, name string) bool {
	for _, c := range colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

func hasSize(sizes []string, name string) bool {
	for _, s := range sizes {
		if s == name {
			return true
		}
	}
	return false
}
