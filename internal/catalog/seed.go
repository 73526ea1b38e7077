package catalog

import (
	"github.com/shopspring/decimal"
)

// Order summarizes a past purchase shown in the account area. Orders are a
// static per-session seed; there is no server-side order history.
type Order struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
	Items  []OrderItem     `json:"items"`
}

// OrderItem is a line summary within an Order.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

func seedProducts() []Product {
	return []Product{
		{
			ID:               "1",
			Name:             "Midnight Recovery Serum",
			Category:         CategorySkincare,
			Price:            decimal.NewFromInt(85),
			Image:            "https://picsum.photos/id/250/800/1067",
			ShortDescription: "A restorative night oil for luminous skin.",
			Ingredients:      []string{"Blue Tansy", "Squalane", "Evening Primrose"},
			Rating:           4.8,
			Reviews: []Review{
				{ID: "r1", Author: "Elena S.", Rating: 5, Comment: "Changed my skin texture overnight. The scent is divine.", Date: "2 weeks ago"},
				{ID: "r2", Author: "Sarah J.", Rating: 4, Comment: "Luxurious feel, though a bit pricey.", Date: "1 month ago"},
			},
		},
		{
			ID:               "2",
			Name:             "Silk Heritage Scarf",
			Category:         CategoryAccessories,
			Price:            decimal.NewFromInt(120),
			Image:            "https://picsum.photos/id/325/800/1067",
			ShortDescription: "Hand-rolled silk twill with botanical print.",
			Ingredients:      []string{"100% Mulberry Silk", "Hand-rolled edges"},
			Rating:           5.0,
			Reviews: []Review{
				{ID: "r3", Author: "Margot R.", Rating: 5, Comment: "The print detail is exquisite. Feels like wearing art.", Date: "3 days ago"},
			},
		},
		{
			ID:               "3",
			Name:             "Oud & Amber Candle",
			Category:         CategoryFragrance,
			Price:            decimal.NewFromInt(65),
			Image:            "https://picsum.photos/id/364/800/1067",
			ShortDescription: "Warm, resinous notes for a serene atmosphere.",
			Ingredients:      []string{"Soy Wax", "Agarwood Oil", "Amber Resin"},
			Rating:           4.5,
			Reviews: []Review{
				{ID: "r4", Author: "David K.", Rating: 5, Comment: "Burns evenly and fills the room without being overpowering.", Date: "1 week ago"},
				{ID: "r5", Author: "Priya L.", Rating: 4, Comment: "Lovely scent, wish it came in a larger size.", Date: "3 weeks ago"},
			},
		},
		{
			ID:               "4",
			Name:             "Hydrating Essence Mist",
			Category:         CategorySkincare,
			Price:            decimal.NewFromInt(45),
			Image:            "https://picsum.photos/id/106/800/1067",
			ShortDescription: "A fine mist to awaken and plump the skin.",
			Ingredients:      []string{"Rose Water", "Hyaluronic Acid", "Aloe Vera"},
			Rating:           4.2,
			Reviews: []Review{
				{ID: "r6", Author: "Chloe M.", Rating: 4, Comment: "Very refreshing for travel.", Date: "2 months ago"},
			},
		},
		{
			ID:               "5",
			Name:             "Gold Vermeil Hoop Earrings",
			Category:         CategoryAccessories,
			Price:            decimal.NewFromInt(150),
			Image:            "https://picsum.photos/id/64/800/1067",
			ShortDescription: "Minimalist luxury for everyday elegance.",
			Ingredients:      []string{"18k Gold Vermeil", "Sterling Silver Core"},
			Rating:           4.9,
			Reviews: []Review{
				{ID: "r7", Author: "Julia W.", Rating: 5, Comment: "They have not tarnished at all after months of wear. Stunning.", Date: "1 month ago"},
			},
		},
		{
			ID:               "6",
			Name:             "Botanical Clay Mask",
			Category:         CategorySkincare,
			Price:            decimal.NewFromInt(55),
			Image:            "https://picsum.photos/id/65/800/1067",
			ShortDescription: "Purifying treatment for congested pores.",
			Ingredients:      []string{"French Green Clay", "Matcha", "White Willow Bark"},
			Rating:           4.7,
			Reviews: []Review{
				{ID: "r8", Author: "Tom H.", Rating: 5, Comment: "Clears pores instantly without drying out my skin.", Date: "3 weeks ago"},
				{ID: "r9", Author: "Alice B.", Rating: 4, Comment: "Great product, but the jar is a bit heavy.", Date: "1 month ago"},
			},
		},
	}
}

// JournalPosts returns the editorial entries for the journal view.
func JournalPosts() []JournalPost {
	return []JournalPost{
		{
			ID:       "j1",
			Title:    "The Art of Slow Living",
			Excerpt:  "In a world that demands speed, we explore the rituals that help us slow down and reconnect with ourselves.",
			Date:     "October 12, 2024",
			Category: "Lifestyle",
			Image:    "https://picsum.photos/id/447/800/600",
			ReadTime: "5 min read",
		},
		{
			ID:       "j2",
			Title:    "Ingredient Spotlight: Blue Tansy",
			Excerpt:  "Why this azure botanical is the calming force your skincare routine has been missing.",
			Date:     "October 05, 2024",
			Category: "Wellness",
			Image:    "https://picsum.photos/id/360/800/600",
			ReadTime: "3 min read",
		},
		{
			ID:       "j3",
			Title:    "Autumn Equinox Rituals",
			Excerpt:  "Preparing your home and spirit for the turning of the seasons with warmth and intention.",
			Date:     "September 22, 2024",
			Category: "Rituals",
			Image:    "https://picsum.photos/id/292/800/600",
			ReadTime: "4 min read",
		},
	}
}

// SeedOrders returns the order history shown for the demo account.
func SeedOrders() []Order {
	products := seedProducts()
	return []Order{
		{
			ID:     "#YL-8402",
			Date:   "Oct 15, 2024",
			Status: "Processing",
			Total:  decimal.NewFromInt(205),
			Items: []OrderItem{
				{Name: "Midnight Recovery Serum", Quantity: 1, Image: products[0].Image},
				{Name: "Silk Heritage Scarf", Quantity: 1, Image: products[1].Image},
			},
		},
		{
			ID:     "#YL-7933",
			Date:   "Sep 28, 2024",
			Status: "Delivered",
			Total:  decimal.NewFromInt(65),
			Items: []OrderItem{
				{Name: "Oud & Amber Candle", Quantity: 1, Image: products[2].Image},
			},
		},
		{
			ID:     "#YL-7105",
			Date:   "Sep 10, 2024",
			Status: "Delivered",
			Total:  decimal.NewFromInt(150),
			Items: []OrderItem{
				{Name: "Gold Vermeil Hoop Earrings", Quantity: 1, Image: products[4].Image},
			},
		},
	}
}
