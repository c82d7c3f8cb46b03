package view

import "github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"

type VariantVM struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	FileName string `json:"file_name,omitempty"`
}

type ProductCardVM struct {
	ID           string `json:"id"`
	CategoryID   string `json:"category_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	PriceDisplay string `json:"price_display"`
}

type ProductDetailVM struct {
	ProductCardVM
	Variants []VariantVM `json:"variants"`
}

// PriceDisplay renders "from $X" ranges the listing shows: the exact
// price for one variant, "min – max" otherwise.
func PriceDisplay(p catalog.Product) string {
	min, max := p.PriceRange()
	if min == max {
		return MoneyFromCents(min, "USD")
	}
	return MoneyFromCents(min, "USD") + " – " + MoneyFromCents(max, "USD")
}

func ProductCard(p catalog.Product) ProductCardVM {
	return ProductCardVM{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		PriceDisplay: PriceDisplay(p),
	}
}

func ProductDetail(p catalog.Product) ProductDetailVM {
	vms := make([]VariantVM, 0, len(p.Variants))
	for _, v := range p.Variants {
		vms = append(vms, VariantVM{
			ID:       v.ID,
			Name:     v.Name,
			Price:    MoneyFromCents(v.PriceCents, "USD"),
			FileName: v.FileName,
		})
	}
	return ProductDetailVM{ProductCardVM: ProductCard(p), Variants: vms}
}

func ProductCards(prods []catalog.Product) []ProductCardVM {
	out := make([]ProductCardVM, 0, len(prods))
	for _, p := range prods {
		out = append(out, ProductCard(p))
	}
	return out
}
