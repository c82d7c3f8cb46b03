package catalog

// Placeholder download target for demo variants; real files are only
// attached when an admin uploads one.
const placeholderDownloadURL = "data:text/plain;base64,SGVsbG8sIFdvcmxkIQ=="

// SeedCategories returns the demo category list.
func SeedCategories() []Category {
	return []Category{
		{ID: "cat_1", Name: "Logo & Branding"},
		{ID: "cat_2", Name: "Social Media Graphics"},
	}
}

// SeedProducts returns the demo catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "prod_1",
			CategoryID:  "cat_1",
			Name:        "Modern Logo Design",
			Description: "A unique and modern logo for your brand. Includes 3 concepts and unlimited revisions. Delivered in all standard formats.",
			ImageURL:    "https://images.unsplash.com/photo-1558655146-364adaf1fcc9?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Variants: []Variant{
				{ID: "v1_1", Name: "Web Resolution (PNG)", PriceCents: 15000, DownloadURL: placeholderDownloadURL, FileName: "logo_web.png"},
				{ID: "v1_2", Name: "Print Resolution (PDF)", PriceCents: 20000, DownloadURL: placeholderDownloadURL, FileName: "logo_print.pdf"},
				{ID: "v1_3", Name: "Source File (AI)", PriceCents: 25000, DownloadURL: placeholderDownloadURL, FileName: "logo_source.ai"},
			},
		},
		{
			ID:          "prod_2",
			CategoryID:  "cat_2",
			Name:        "Social Media Kit",
			Description: "Eye-catching graphics for all your social media profiles. Includes profile pictures and cover photos for 3 platforms.",
			ImageURL:    "https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Variants: []Variant{
				{ID: "v2_1", Name: "Basic Package (JPG)", PriceCents: 9900, DownloadURL: placeholderDownloadURL, FileName: "social_kit.jpg"},
				{ID: "v2_2", Name: "Pro Package (PNG & Source)", PriceCents: 14900, DownloadURL: placeholderDownloadURL, FileName: "social_kit_pro.zip"},
			},
		},
		{
			ID:          "prod_3",
			CategoryID:  "cat_1",
			Name:        "Full Branding Package",
			Description: "A complete branding solution. Includes logo, business cards, letterhead, and a comprehensive brand style guide.",
			ImageURL:    "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Variants: []Variant{
				{ID: "v3_1", Name: "Digital Files Only", PriceCents: 45000, DownloadURL: placeholderDownloadURL, FileName: "branding_digital.zip"},
				{ID: "v3_2", Name: "Digital + Print Ready", PriceCents: 60000, DownloadURL: placeholderDownloadURL, FileName: "branding_full.zip"},
			},
		},
	}
}
