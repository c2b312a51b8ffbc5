package catalog

// seedProducts is the demo inventory.
var seedProducts = []Product{
	{
		ID:          1,
		Name:        "MacBook Pro 16” M3 Pro",
		Brand:       "Apple",
		Category:    "Laptops",
		Price:       2499,
		Stock:       12,
		Featured:    true,
		Description: "Professional-grade performance for creators and developers.",
		Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=900&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=900&q=80",
			"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=900&q=80",
		},
		Specs: map[string]string{
			"cpu":     "Apple M3 Pro",
			"ram":     "18GB",
			"storage": "512GB SSD",
			"display": "16.2” Liquid Retina XDR",
		},
	},
	{
		ID:          2,
		Name:        "ASUS ROG Zephyrus G14",
		Brand:       "ASUS",
		Category:    "Laptops",
		Price:       1649,
		Stock:       10,
		Description: "Compact gaming power with creator-level performance.",
		Image:       "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=900&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=900&q=80",
			"https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=900&q=80",
		},
	},
	{
		ID:          3,
		Name:        "iPhone 15 Pro",
		Brand:       "Apple",
		Category:    "Smartphones",
		Price:       999,
		Stock:       25,
		Featured:    true,
		Description: "Titanium design with A17 Pro performance.",
		Image:       "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=900&q=80",
	},
	{
		ID:          4,
		Name:        "Samsung Galaxy S24 Ultra",
		Brand:       "Samsung",
		Category:    "Smartphones",
		Price:       1199,
		Stock:       18,
		Description: "AI-powered flagship with a 200MP camera.",
		Image:       "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=900&q=80",
	},
	{
		ID:          5,
		Name:        "Sony WH-1000XM5",
		Brand:       "Sony",
		Category:    "Audio",
		Price:       399,
		Stock:       30,
		Featured:    true,
		Description: "Industry-leading noise cancellation.",
		Image:       "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=900&q=80",
		Specs: map[string]string{
			"battery": "30h",
			"weight":  "250g",
		},
	},
	{
		ID:          6,
		Name:        "Apple Watch Series 9",
		Brand:       "Apple",
		Category:    "Wearables",
		Price:       429,
		Stock:       22,
		Description: "Brighter display, faster chip, carbon neutral.",
		Image:       "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?w=900&q=80",
	},
	{
		ID:          7,
		Name:        "iPad Air M2",
		Brand:       "Apple",
		Category:    "Tablets",
		Price:       599,
		Stock:       15,
		Description: "Serious performance in a remarkably thin design.",
		Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=900&q=80",
	},
	{
		ID:          8,
		Name:        "Dell XPS 13",
		Brand:       "Dell",
		Category:    "Laptops",
		Price:       1299,
		Stock:       8,
		Description: "Ultra-portable with InfinityEdge display.",
		Image:       "https://images.unsplash.com/photo-1593642632559-0c6d3fc62b89?w=900&q=80",
	},
}
