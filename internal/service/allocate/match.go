package allocate

import (
	"strings"

	"muebles-backend/internal/storage"
)

// ProductMatcher decides whether a pending order satisfies an
// instruction's product name.
type ProductMatcher interface {
	Match(order storage.PendingOrder, productName string) bool
}

// CatalogMatcher matches on the catalog SKU when both the order and
// the instruction's product name resolve to one, and falls back to
// substring matching for legacy orders that were never linked to the
// catalog.
type CatalogMatcher struct {
	skuByName map[string]string
}

func NewCatalogMatcher(catalog []storage.CatalogProduct) *CatalogMatcher {
	skuByName := make(map[string]string, len(catalog))
	for _, p := range catalog {
		skuByName[normalizeName(p.Name)] = p.SKU
	}
	return &CatalogMatcher{skuByName: skuByName}
}

func (m *CatalogMatcher) Match(order storage.PendingOrder, productName string) bool {
	if order.SKU != nil {
		if sku, ok := m.skuByName[normalizeName(productName)]; ok {
			return strings.EqualFold(*order.SKU, sku)
		}
	}
	return containsFold(order.Product, productName)
}

// SubstringMatcher is the legacy rule on its own: case-insensitive
// containment in either direction. Intentionally permissive — "SOFA"
// matches "SOFA CAMA".
type SubstringMatcher struct{}

func (SubstringMatcher) Match(order storage.PendingOrder, productName string) bool {
	return containsFold(order.Product, productName)
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func containsFold(a, b string) bool {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
