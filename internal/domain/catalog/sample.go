// internal/domain/catalog/sample.go
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func compareAt(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// SampleProducts returns the built-in VERVE catalog in display order
func SampleProducts() []Product {
	products := []Product{
		{
			ID:             "1",
			Name:           "Organic Vitamin C Serum",
			Description:    "Brightening serum with 20% vitamin C and hyaluronic acid for a radiant, even complexion.",
			Price:          price("34.99"),
			CompareAtPrice: compareAt("44.99"),
			Category:       "Skincare",
			Rating:         4.8,
			ReviewCount:    234,
			Images:         []string{"/images/products/vitamin-c-serum-1.jpg", "/images/products/vitamin-c-serum-2.jpg"},
			Stock:          45,
			Tags:           []string{"New", "Bestseller"},
			SKU:            "VRV-SK-001",
		},
		{
			ID:          "2",
			Name:        "Plant Protein Powder",
			Description: "Smooth pea and brown rice protein with 22g of protein per serving.",
			Price:       price("49.99"),
			Category:    "Supplements",
			Rating:      4.6,
			ReviewCount: 512,
			Images:      []string{"/images/products/plant-protein-1.jpg"},
			Sizes:       []string{"500g", "1kg"},
			Stock:       120,
			Tags:        []string{"Bestseller", "Eco"},
			SKU:         "VRV-SU-002",
		},
		{
			ID:             "3",
			Name:           "Daily Vitamin D3 + K2",
			Description:    "High-potency drops to support bone and immune health.",
			Price:          price("19.99"),
			CompareAtPrice: compareAt("24.99"),
			Category:       "Supplements",
			Rating:         4.7,
			ReviewCount:    389,
			Images:         []string{"/images/products/d3-k2-drops-1.jpg"},
			Stock:          8,
			Tags:           []string{"Sale"},
			SKU:            "VRV-SU-003",
		},
		{
			ID:          "4",
			Name:        "Bamboo Yoga Mat",
			Description: "Non-slip natural rubber mat with a bamboo fiber top layer.",
			Price:       price("68.00"),
			Category:    "Fitness",
			Rating:      4.5,
			ReviewCount: 156,
			Images:      []string{"/images/products/yoga-mat-1.jpg", "/images/products/yoga-mat-2.jpg", "/images/products/yoga-mat-3.jpg"},
			Colors: []Color{
				{Name: "Sage", Hex: "#9CAF88"},
				{Name: "Sand", Hex: "#D8C3A5"},
				{Name: "Charcoal", Hex: "#36454F"},
			},
			Stock: 30,
			Tags:  []string{"Eco", "New"},
			SKU:   "VRV-FI-004",
		},
		{
			ID:          "5",
			Name:        "Resistance Band Set",
			Description: "Five latex-free bands for strength training anywhere.",
			Price:       price("29.99"),
			Category:    "Fitness",
			Rating:      4.4,
			ReviewCount: 98,
			Images:      []string{"/images/products/resistance-bands-1.jpg"},
			Sizes:       []string{"Light", "Medium", "Heavy"},
			Stock:       0,
			Tags:        []string{"Sale"},
			SKU:         "VRV-FI-005",
		},
		{
			ID:          "6",
			Name:        "Lavender Sleep Mist",
			Description: "Calming pillow spray with pure lavender and chamomile oils.",
			Price:       price("18.00"),
			Category:    "Wellness",
			Rating:      4.9,
			ReviewCount: 421,
			Images:      []string{"/images/products/sleep-mist-1.jpg"},
			Stock:       60,
			Tags:        []string{"Bestseller"},
			SKU:         "VRV-WE-006",
		},
		{
			ID:          "7",
			Name:        "Hydrating Rose Face Cream",
			Description: "Rich moisturizer with rosehip oil and squalane.",
			Price:       price("42.00"),
			Category:    "Skincare",
			Rating:      4.6,
			ReviewCount: 187,
			Images:      []string{"/images/products/rose-cream-1.jpg"},
			Stock:       25,
			Tags:        []string{"New"},
			SKU:         "VRV-SK-007",
		},
		{
			ID:             "8",
			Name:           "Ashwagandha Calm Capsules",
			Description:    "Adaptogenic root extract to ease everyday stress.",
			Price:          price("27.50"),
			CompareAtPrice: compareAt("32.00"),
			Category:       "Supplements",
			Rating:         4.5,
			ReviewCount:    264,
			Images:         []string{"/images/products/ashwagandha-1.jpg"},
			Stock:          5,
			Tags:           []string{"New", "Sale"},
			SKU:            "VRV-SU-008",
		},
		{
			ID:          "9",
			Name:        "Cork Massage Ball",
			Description: "Firm cork ball for deep-tissue release.",
			Price:       price("12.99"),
			Category:    "Fitness",
			Rating:      4.3,
			ReviewCount: 77,
			Images:      []string{"/images/products/cork-ball-1.jpg"},
			Stock:       150,
			Tags:        []string{"Eco"},
			SKU:         "VRV-FI-009",
		},
		{
			ID:             "10",
			Name:           "Aromatherapy Diffuser",
			Description:    "Ultrasonic diffuser with ambient light and auto shut-off.",
			Price:          price("54.99"),
			CompareAtPrice: compareAt("64.99"),
			Category:       "Wellness",
			Rating:         4.7,
			ReviewCount:    203,
			Images:         []string{"/images/products/diffuser-1.jpg", "/images/products/diffuser-2.jpg"},
			Colors: []Color{
				{Name: "White", Hex: "#F5F5F5"},
				{Name: "Walnut", Hex: "#5C4033"},
			},
			Stock: 18,
			Tags:  []string{"Bestseller", "Sale"},
			SKU:   "VRV-WE-010",
		},
		{
			ID:          "11",
			Name:        "Bakuchiol Night Oil",
			Description: "Gentle plant-based retinol alternative for overnight renewal.",
			Price:       price("38.00"),
			Category:    "Skincare",
			Rating:      4.4,
			ReviewCount: 91,
			Images:      []string{"/images/products/night-oil-1.jpg"},
			Stock:       0,
			Tags:        []string{"Eco"},
			SKU:         "VRV-SK-011",
		},
		{
			ID:          "12",
			Name:        "Herbal Detox Tea",
			Description: "Caffeine-free blend of dandelion, ginger and lemongrass.",
			Price:       price("15.99"),
			Category:    "Wellness",
			Rating:      4.2,
			ReviewCount: 134,
			Images:      []string{"/images/products/detox-tea-1.jpg"},
			Sizes:       []string{"20 bags", "40 bags"},
			Stock:       75,
			Tags:        []string{"New", "Eco"},
			SKU:         "VRV-WE-012",
		},
	}

	for i := range products {
		products[i].Position = i
	}
	return products
}

// SampleReviews returns the built-in product reviews
func SampleReviews() []Review {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	return []Review{
		{ID: "r1", ProductID: "1", Author: "Sarah M.", Rating: 5, Date: day("2024-01-15"), Verified: true,
			Comment: "My skin has never looked better. Noticeably brighter after two weeks."},
		{ID: "r2", ProductID: "1", Author: "Jessica L.", Rating: 4, Date: day("2024-01-10"), Verified: true,
			Comment: "Lovely texture and absorbs quickly. Slight tingle at first."},
		{ID: "r3", ProductID: "1", Author: "Emily R.", Rating: 5, Date: day("2024-01-05"), Verified: false,
			Comment: "Third bottle already. Would recommend to anyone."},
		{ID: "r4", ProductID: "2", Author: "Mike T.", Rating: 5, Date: day("2024-01-12"), Verified: true,
			Comment: "Mixes smoothly with no chalky aftertaste."},
		{ID: "r5", ProductID: "4", Author: "Priya K.", Rating: 4, Date: day("2024-01-08"), Verified: true,
			Comment: "Great grip even in hot yoga. A little heavy to carry."},
	}
}
