package catalog

import (
	"caviste/internal/domain"

	"github.com/google/uuid"
)

// SeedCategories returns the fixed category taxonomy. The five names are
// a closed set; filter toggles and the category query parameter match
// against them.
func SeedCategories() []*domain.Category {
	return []*domain.Category{
		{ID: uuid.New(), Name: "Vins", ImageURL: "https://cdn.caviste.example/categories/vins.jpg"},
		{ID: uuid.New(), Name: "Liqueurs", ImageURL: "https://cdn.caviste.example/categories/liqueurs.jpg"},
		{ID: uuid.New(), Name: "Boissons", ImageURL: "https://cdn.caviste.example/categories/boissons.jpg"},
		{ID: uuid.New(), Name: "Bières", ImageURL: "https://cdn.caviste.example/categories/bieres.jpg"},
		{ID: uuid.New(), Name: "Sucreries", ImageURL: "https://cdn.caviste.example/categories/sucreries.jpg"},
	}
}

// SeedProducts returns the starter catalog used by the in-memory
// backend.
func SeedProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:                 uuid.New(),
			Name:               "Coca-Cola Pack 12x33cl",
			Category:           "Boissons",
			Price:              5000,
			OriginalPrice:      6000,
			DiscountPercentage: 17,
			Description:        "Pack de 12 canettes de Coca-Cola, format 33cl. Idéal pour vos fêtes et événements.",
			Images:             []string{"https://cdn.caviste.example/products/coca-cola-pack.jpg"},
			Stock:              50,
			IsPromo:            true,
		},
		{
			ID:          uuid.New(),
			Name:        "Château Margaux 2018",
			Category:    "Vins",
			Price:       185000,
			Description: "Grand cru classé de Bordeaux, arômes de fruits noirs et tanins soyeux.",
			Images:      []string{"https://cdn.caviste.example/products/chateau-margaux.jpg"},
			Stock:       6,
			IsLimited:   true,
			IsFeatured:  true,
		},
		{
			ID:          uuid.New(),
			Name:        "Baileys Irish Cream 70cl",
			Category:    "Liqueurs",
			Price:       15000,
			Description: "Liqueur de whisky et de crème irlandaise, parfaite pour les desserts.",
			Images:      []string{"https://cdn.caviste.example/products/baileys.jpg"},
			Stock:       24,
			IsNew:       true,
		},
		{
			ID:          uuid.New(),
			Name:        "Heineken Pack 6x33cl",
			Category:    "Bières",
			Price:       4500,
			Description: "Pack de 6 bouteilles de bière blonde premium.",
			Images:      []string{"https://cdn.caviste.example/products/heineken-pack.jpg"},
			Stock:       40,
		},
		{
			ID:                 uuid.New(),
			Name:               "Assortiment de chocolats fins 250g",
			Category:           "Sucreries",
			Price:              8000,
			OriginalPrice:      10000,
			DiscountPercentage: 20,
			Description:        "Sélection de chocolats belges au lait et noirs.",
			Images:             []string{"https://cdn.caviste.example/products/chocolats.jpg"},
			Stock:              15,
			IsPromo:            true,
			IsNew:              true,
		},
		{
			ID:          uuid.New(),
			Name:        "Champagne Moët & Chandon Brut",
			Category:    "Vins",
			Price:       65000,
			Description: "Champagne brut impérial, bulles fines et fraîcheur élégante.",
			Images:      []string{"https://cdn.caviste.example/products/moet-chandon.jpg"},
			Stock:       0,
			IsFeatured:  true,
		},
	}
}

// NewSeededMemoryStore is the standard constructor for the default
// backend.
func NewSeededMemoryStore() *MemoryStore {
	return NewMemoryStore(SeedCategories(), SeedProducts())
}
