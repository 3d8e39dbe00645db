package services_test

import (
	"testing"

	"brandsgate/catalog"
	"brandsgate/entities"
	"brandsgate/models"
	"brandsgate/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIds(products []entities.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.Id
	}
	return ids
}

func TestSearchDefaultsReturnFullCatalogInOrder(t *testing.T) {
	t.Parallel()

	ps := services.NewProductService()
	result := ps.Search("all", "", entities.DefaultFilters())
	assert.Equal(t, productIds(catalog.Products()), productIds(result))
}

func TestSearchCategoryGate(t *testing.T) {
	t.Parallel()

	ps := services.NewProductService()
	assert.Equal(t, []string{"3"}, productIds(ps.Search("men", "", entities.DefaultFilters())))

	// case-insensitive on both sides
	assert.Equal(t, []string{"3"}, productIds(ps.Search("MEN", "", entities.DefaultFilters())))
}

func TestSearchQueryMatchesNameOrBrand(t *testing.T) {
	t.Parallel()

	ps := services.NewProductService()

	assert.Equal(t, []string{"1", "5"}, productIds(ps.Search("all", "zara", entities.DefaultFilters())))
	assert.Equal(t, []string{"3"}, productIds(ps.Search("all", "leather", entities.DefaultFilters())))
	assert.Empty(t, ps.Search("all", "no such thing", entities.DefaultFilters()))
}

func TestSearchStructuredFilters(t *testing.T) {
	t.Parallel()

	ps := services.NewProductService()

	t.Run("brands", func(t *testing.T) {
		t.Parallel()

		filters := entities.DefaultFilters()
		filters.Brands = []string{"Zara"}
		assert.Equal(t, []string{"1", "5"}, productIds(ps.Search("all", "", filters)))
	})

	t.Run("category set is additive to the active tab", func(t *testing.T) {
		t.Parallel()

		filters := entities.DefaultFilters()
		filters.Categories = []string{"kids"}
		assert.Equal(t, []string{"5"}, productIds(ps.Search("all", "", filters)))

		// tab and set both apply; a disjoint pair matches nothing
		assert.Empty(t, ps.Search("women", "", filters))
	})

	t.Run("colors intersect", func(t *testing.T) {
		t.Parallel()

		filters := entities.DefaultFilters()
		filters.Colors = []string{"Black"}
		assert.Equal(t, []string{"1", "2", "3"}, productIds(ps.Search("all", "", filters)))
	})

	t.Run("sizes intersect", func(t *testing.T) {
		t.Parallel()

		filters := entities.DefaultFilters()
		filters.Sizes = []string{"One Size"}
		assert.Equal(t, []string{"6"}, productIds(ps.Search("all", "", filters)))
	})

	t.Run("price range is inclusive over price plus fee", func(t *testing.T) {
		t.Parallel()

		filters := entities.DefaultFilters()
		filters.PriceRange = entities.PriceRange{Min: 30, Max: 60}
		assert.Equal(t, []string{"1", "4", "6"}, productIds(ps.Search("all", "", filters)))

		filters.PriceRange = entities.PriceRange{Min: 34.99, Max: 34.99}
		assert.Equal(t, []string{"1"}, productIds(ps.Search("all", "", filters)))
	})
}

func TestSearchInvertedPriceRangeMatchesNothing(t *testing.T) {
	t.Parallel()

	ps := services.NewProductService()
	filters := entities.DefaultFilters()
	filters.PriceRange = entities.PriceRange{Min: 100, Max: 10}

	result := ps.Search("all", "", filters)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilterProductsEmptyCatalog(t *testing.T) {
	t.Parallel()

	assert.Empty(t, services.FilterProducts(nil, "all", "", entities.DefaultFilters()))
}

func TestSearchIdempotentAndMonotone(t *testing.T) {
	t.Parallel()

	ps := services.NewProductService()
	filters := entities.DefaultFilters()
	filters.Colors = []string{"Black"}

	first := ps.Search("all", "", filters)
	second := ps.Search("all", "", filters)
	assert.Equal(t, first, second)

	// every added restriction can only shrink the result
	narrowed := filters
	narrowed.Brands = []string{"Zara"}
	assert.LessOrEqual(t, len(ps.Search("all", "", narrowed)), len(first))

	narrowed.Sizes = []string{"XL"}
	assert.LessOrEqual(t, len(ps.Search("all", "", narrowed)), len(first))
}

func TestSearchDoesNotMutateCatalogOrder(t *testing.T) {
	t.Parallel()

	ps := services.NewProductService()
	before := productIds(ps.Products())
	_ = ps.Search("women", "dress", entities.DefaultFilters())
	assert.Equal(t, before, productIds(ps.Products()))
}

func TestProductById(t *testing.T) {
	t.Parallel()

	ps := services.NewProductService()

	p, err := ps.ProductById("6")
	require.NoError(t, err)
	assert.Equal(t, "Lebanese Designer Scarf", p.Name)
	assert.True(t, p.IsExclusive)

	_, err = ps.ProductById("404")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
