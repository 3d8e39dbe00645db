package services

import (
	"strings"

	"brandsgate/catalog"
	"brandsgate/entities"
	"brandsgate/models"
)

type ProductService struct {
	products []entities.Product
}

func NewProductService() ProductService {
	return ProductService{
		products: catalog.Products(),
	}
}

func (ps *ProductService) Products() []entities.Product {
	out := make([]entities.Product, len(ps.products))
	copy(out, ps.products)
	return out
}

func (ps *ProductService) ProductById(id string) (p entities.Product, err error) {
	p, found := catalog.ProductById(id)
	if !found {
		err = models.ErrNotFound
	}
	return
}

// Search runs the filter engine over the catalog. Callers debounce rapid
// query input themselves; the function is cheap enough to run per keystroke.
func (ps *ProductService) Search(activeCategory string, query string, filters entities.SearchFilters) []entities.Product {
	return FilterProducts(ps.products, activeCategory, query, filters)
}

// FilterProducts applies every gate below as a logical AND, preserving the
// input order. It is pure: no input is mutated and the same arguments always
// give the same result. An inverted price range matches nothing.
func FilterProducts(products []entities.Product, activeCategory string, query string, filters entities.SearchFilters) []entities.Product {
	result := []entities.Product{}
	if filters.PriceRange.Min > filters.PriceRange.Max {
		return result
	}
	query = strings.ToLower(strings.TrimSpace(query))
	for _, p := range products {
		if activeCategory != "all" && !strings.EqualFold(p.Category, activeCategory) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Brand), query) {
			continue
		}
		if len(filters.Brands) > 0 && !containsString(filters.Brands, p.Brand) {
			continue
		}
		if len(filters.Categories) > 0 && !containsString(filters.Categories, p.Category) {
			continue
		}
		if len(filters.Colors) > 0 && !intersects(p.Colors, filters.Colors) {
			continue
		}
		if len(filters.Sizes) > 0 && !intersects(p.Sizes, filters.Sizes) {
			continue
		}
		charged := p.TotalPrice()
		if charged < filters.PriceRange.Min || charged > filters.PriceRange.Max {
			continue
		}
		result = append(result, p)
	}
	return result
}

func containsString(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func intersects(values []string, set []string) bool {
	for _, v := range values {
		if containsString(set, v) {
			return true
		}
	}
	return false
}
