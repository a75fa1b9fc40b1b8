package catalog

import (
	"strings"

	"caviste/internal/domain"
)

// Filter is the conjunctive browse predicate. A product is kept iff all
// of the enabled criteria hold:
//
//   - its name contains Search, case-insensitively (vacuous when empty);
//   - its price lies within [MinPrice, MaxPrice], both inclusive;
//   - its category is among the checked Categories toggles;
//   - every flag toggle that is on (NewOnly, PromoOnly, LimitedOnly) is
//     matched by the product flag. Toggles that are off constrain
//     nothing.
//
// Apply preserves input order, so filtering is idempotent and
// order-stable.
type Filter struct {
	Search      string
	MinPrice    int
	MaxPrice    int
	Categories  map[string]bool
	NewOnly     bool
	PromoOnly   bool
	LimitedOnly bool
}

// NewFilter returns a filter with every category toggle checked and the
// price range wide open up to maxPrice.
func NewFilter(categories []*domain.Category, maxPrice int) Filter {
	toggles := make(map[string]bool, len(categories))
	for _, c := range categories {
		toggles[c.Name] = true
	}
	return Filter{
		MaxPrice:   maxPrice,
		Categories: toggles,
	}
}

// NarrowToCategory unchecks every category toggle, then re-checks the
// one whose name matches, case-insensitively. A name outside the closed
// category set leaves all toggles unchecked, so nothing passes.
func (f *Filter) NarrowToCategory(name string) {
	for cat := range f.Categories {
		f.Categories[cat] = strings.EqualFold(cat, name)
	}
}

// Matches reports whether a single product passes the filter.
func (f Filter) Matches(p *domain.Product) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if p.Price < f.MinPrice || p.Price > f.MaxPrice {
		return false
	}
	if !f.Categories[p.Category] {
		return false
	}
	if f.NewOnly && !p.IsNew {
		return false
	}
	if f.PromoOnly && !p.IsPromo {
		return false
	}
	if f.LimitedOnly && !p.IsLimited {
		return false
	}
	return true
}

// Apply filters a product sequence, keeping input order.
func (f Filter) Apply(products []*domain.Product) []*domain.Product {
	results := []*domain.Product{}
	for _, p := range products {
		if f.Matches(p) {
			results = append(results, p)
		}
	}
	return results
}
