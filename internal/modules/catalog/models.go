package catalog

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Variant is a purchasable tier of a product (format/resolution/price).
type Variant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	DownloadURL string `json:"download_url"`
	FileName    string `json:"file_name,omitempty"`
}

type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Variants    []Variant `json:"variants"`
}

// Clone returns a deep copy. Orders hold snapshots, so later catalog
// edits must never reach through a shared slice.
func (p Product) Clone() Product {
	out := p
	out.Variants = make([]Variant, len(p.Variants))
	copy(out.Variants, p.Variants)
	return out
}

// PriceRange reports the cheapest and most expensive variant.
// A single-variant product reports that exact price twice.
func (p Product) PriceRange() (min, max int64) {
	if len(p.Variants) == 0 {
		return 0, 0
	}
	min, max = p.Variants[0].PriceCents, p.Variants[0].PriceCents
	for _, v := range p.Variants[1:] {
		if v.PriceCents < min {
			min = v.PriceCents
		}
		if v.PriceCents > max {
			max = v.PriceCents
		}
	}
	return min, max
}
