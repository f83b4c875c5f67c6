package blobrepo

import "github.com/chronoslabs/chronos/internal/domain"

// Built-in catalog the store boots from. The first Products or Categories call
// writes these into an empty store; after that the blobs are authoritative.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "1", Name: "Chronos Ultra Series 9", Price: 799, Discount: 10,
			Category:    "Apple Compatible",
			Image:       "https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&w=800&q=80",
			Description: "The ultimate rugged watch for adventure with titanium case.",
			Features:    []string{"49mm Titanium Case", "100m Water Resistance", "36h Battery"},
			IsTrending:  true,
		},
		{
			ID: "2", Name: "Pixel Pulse 2", Price: 349,
			Category:    "Android Compatible",
			Image:       "https://images.unsplash.com/photo-1508685096489-7aacd43bd3b1?auto=format&fit=crop&w=800&q=80",
			Description: "Beautifully designed with the best of Google built-in.",
			Features:    []string{"Always-on Display", "ECG App", "24h Battery"},
		},
		{
			ID: "3", Name: "Galaxy Orbit 6", Price: 449, Discount: 15,
			Category:    "Android Compatible",
			Image:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?auto=format&fit=crop&w=800&q=80",
			Description: "Your wellness partner with advanced sleep coaching.",
			Features:    []string{"Sapphire Crystal", "Body Composition", "Fast Charging"},
			IsTrending:  true,
		},
		{
			ID: "4", Name: "Horizon Hybrid X", Price: 299,
			Category:    "Hybrid Analog",
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=800&q=80",
			Description: "Classic style meets modern smarts. Real hands, hidden display.",
			Features:    []string{"30-day Battery", "Real Mechanical Hands", "E-Ink Display"},
		},
		{
			ID: "5", Name: "Chronos Air SE", Price: 249, Discount: 5,
			Category:    "Apple Compatible",
			Image:       "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?auto=format&fit=crop&w=800&q=80",
			Description: "Heavy on features. Light on price. Essential tracking.",
			Features:    []string{"Retina Display", "Fall Detection", "Swimproof"},
			IsTrending:  true,
		},
		{
			ID: "6", Name: "Leather Link Strap", Price: 89,
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1559563362-c667ba5f5480?auto=format&fit=crop&w=800&q=80",
			Description: "Handcrafted leather strap compatible with all Chronos watches.",
			Features:    []string{"Genuine Leather", "Magnetic Clasp", "Sweat Resistant"},
		},
		{
			ID: "7", Name: "Alpine Loop", Price: 99, Discount: 20,
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1622434641406-a158123450f9?auto=format&fit=crop&w=800&q=80",
			Description: "Rugged and capable, perfect for the outdoors.",
			Features:    []string{"Woven Textile", "G-Hook", "Orange Accent"},
			IsTrending:  true,
		},
		{
			ID: "8", Name: "Pro Diver 300", Price: 599,
			Category:    "Android Compatible",
			Image:       "https://images.unsplash.com/photo-1539874754764-5a96559165b0?auto=format&fit=crop&w=800&q=80",
			Description: "Professional grade diving smartwatch.",
			Features:    []string{"300m Depth Rating", "Dive Computer", "Sapphire Lens"},
		},
	}
}

// seedCategories is the distinct category set of the seed catalog, in first-seen order.
func seedCategories() []string {
	seen := map[string]struct{}{}
	cats := []string{}
	for _, p := range seedProducts() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	return cats
}
