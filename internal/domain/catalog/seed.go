package catalog

import "github.com/shopspring/decimal"

// SeedProducts returns the default catalog used when no catalog has been
// persisted yet. The inventory ids of seeded products are fixed so that
// repeated seeding is stable.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "T-shirt",
			Price:       decimal.NewFromInt(20),
			Category:    "Men",
			SubCategory: "T-shirt",
			Size:        "M",
			Stock:       10,
			InventoryID: "101",
			Image:       "",
		},
		{
			ID:          2,
			Name:        "Jeans",
			Price:       decimal.NewFromInt(40),
			Category:    "Women",
			SubCategory: "Pants",
			Size:        "L",
			Stock:       15,
			InventoryID: "102",
			Image:       "/public/A60810002-detail1-pdp.webp",
		},
	}
}
