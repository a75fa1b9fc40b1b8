package catalog

import (
	"testing"

	"caviste/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_PriceRangeAndPromoToggle(t *testing.T) {
	products := []*domain.Product{
		{ID: uuid.New(), Name: "Coca-Cola", Price: 5000, Category: "Boissons", IsPromo: true},
		{ID: uuid.New(), Name: "Romanée-Conti", Price: 600000, Category: "Vins", IsPromo: false},
	}

	filter := NewFilter(SeedCategories(), 500000)
	filter.PromoOnly = true

	results := filter.Apply(products)
	require.Len(t, results, 1)
	assert.Equal(t, "Coca-Cola", results[0].Name)
}

func TestFilter_SearchIsCaseInsensitiveOnName(t *testing.T) {
	products := []*domain.Product{
		{ID: uuid.New(), Name: "Château Margaux", Price: 185000, Category: "Vins"},
		{ID: uuid.New(), Name: "Heineken", Price: 4500, Category: "Bières"},
	}

	filter := NewFilter(SeedCategories(), 500000)
	filter.Search = "MARGAUX"

	results := filter.Apply(products)
	require.Len(t, results, 1)
	assert.Equal(t, "Château Margaux", results[0].Name)
}

func TestFilter_PriceBoundsAreInclusive(t *testing.T) {
	products := []*domain.Product{
		{ID: uuid.New(), Name: "A", Price: 1000, Category: "Boissons"},
		{ID: uuid.New(), Name: "B", Price: 5000, Category: "Boissons"},
		{ID: uuid.New(), Name: "C", Price: 5001, Category: "Boissons"},
	}

	filter := NewFilter(SeedCategories(), 5000)
	filter.MinPrice = 1000

	results := filter.Apply(products)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Name)
	assert.Equal(t, "B", results[1].Name)
}

func TestFilter_OffTogglesImposeNoConstraint(t *testing.T) {
	products := []*domain.Product{
		{ID: uuid.New(), Name: "A", Price: 100, Category: "Boissons", IsNew: true},
		{ID: uuid.New(), Name: "B", Price: 100, Category: "Boissons"},
	}

	filter := NewFilter(SeedCategories(), 500000)

	// Flag toggles are inclusive filters: off means "don't care".
	assert.Len(t, filter.Apply(products), 2)

	filter.NewOnly = true
	results := filter.Apply(products)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Name)
}

func TestFilter_UncheckedCategoryExcludes(t *testing.T) {
	products := []*domain.Product{
		{ID: uuid.New(), Name: "Vin", Price: 100, Category: "Vins"},
		{ID: uuid.New(), Name: "Bière", Price: 100, Category: "Bières"},
	}

	filter := NewFilter(SeedCategories(), 500000)
	filter.Categories["Vins"] = false

	results := filter.Apply(products)
	require.Len(t, results, 1)
	assert.Equal(t, "Bière", results[0].Name)
}

func TestNarrowToCategory(t *testing.T) {
	filter := NewFilter(SeedCategories(), 500000)

	// Matching is case-insensitive against the closed category set.
	filter.NarrowToCategory("boissons")

	assert.True(t, filter.Categories["Boissons"])
	for _, name := range []string{"Vins", "Liqueurs", "Bières", "Sucreries"} {
		assert.False(t, filter.Categories[name], name)
	}
}

func TestNarrowToCategory_UnknownNameUnchecksEverything(t *testing.T) {
	filter := NewFilter(SeedCategories(), 500000)

	filter.NarrowToCategory("Fromages")

	for name, checked := range filter.Categories {
		assert.False(t, checked, name)
	}

	products := []*domain.Product{
		{ID: uuid.New(), Name: "Vin", Price: 100, Category: "Vins"},
		{ID: uuid.New(), Name: "Bière", Price: 100, Category: "Bières"},
	}
	assert.Empty(t, filter.Apply(products))
}

func TestProperty_FilterIsIdempotentAndOrderStable(t *testing.T) {
	properties := gopter.NewProperties(nil)

	categoryNames := []string{"Vins", "Liqueurs", "Boissons", "Bières", "Sucreries"}

	genProduct := gopter.CombineGens(
		gen.RegexMatch(`[A-Za-z ]{3,20}`),
		gen.IntRange(0, 600000),
		gen.IntRange(0, len(categoryNames)-1),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	).Map(func(values []interface{}) *domain.Product {
		return &domain.Product{
			ID:        uuid.New(),
			Name:      values[0].(string),
			Price:     values[1].(int),
			Category:  categoryNames[values[2].(int)],
			IsNew:     values[3].(bool),
			IsPromo:   values[4].(bool),
			IsLimited: values[5].(bool),
		}
	})

	properties.Property("filtering twice equals filtering once, in the same order", prop.ForAll(
		func(products []*domain.Product, search string, promoOnly bool) bool {
			filter := NewFilter(SeedCategories(), 500000)
			filter.Search = search
			filter.PromoOnly = promoOnly

			once := filter.Apply(products)
			twice := filter.Apply(once)

			if len(once) != len(twice) {
				return false
			}
			for i := range once {
				if once[i].ID != twice[i].ID {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genProduct),
		gen.RegexMatch(`[a-z]{0,5}`),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_FilteredResultsSatisfyEveryCriterion(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every kept product passes all enabled criteria", prop.ForAll(
		func(prices []int, minPrice int, maxPrice int) bool {
			if minPrice > maxPrice {
				minPrice, maxPrice = maxPrice, minPrice
			}

			products := make([]*domain.Product, len(prices))
			for i, price := range prices {
				products[i] = &domain.Product{
					ID:       uuid.New(),
					Name:     "Produit",
					Price:    price,
					Category: "Boissons",
				}
			}

			filter := NewFilter(SeedCategories(), maxPrice)
			filter.MinPrice = minPrice

			for _, p := range filter.Apply(products) {
				if p.Price < minPrice || p.Price > maxPrice {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 600000)),
		gen.IntRange(0, 600000),
		gen.IntRange(0, 600000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
