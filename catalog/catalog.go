package catalog

import "brandsgate/entities"

// products is the mock catalog. There is no inventory backend; the set is
// fixed at process start and never mutated.
var products = []entities.Product{
	{
		Id:         "1",
		Name:       "Premium Cotton T-Shirt",
		Brand:      "Zara",
		Price:      29.99,
		ServiceFee: 5.00,
		Image:      "assets/products-showcase.jpg",
		Category:   "women",
		Colors:     []string{"Black", "White", "Navy"},
		Sizes:      []string{"S", "M", "L", "XL"},
	},
	{
		Id:         "2",
		Name:       "Designer Jeans",
		Brand:      "Mango",
		Price:      79.99,
		ServiceFee: 10.00,
		Image:      "assets/products-showcase.jpg",
		Category:   "women",
		Colors:     []string{"Blue", "Black"},
		Sizes:      []string{"28", "30", "32", "34"},
	},
	{
		Id:         "3",
		Name:       "Leather Jacket",
		Brand:      "Stradivarius",
		Price:      149.99,
		ServiceFee: 20.00,
		Image:      "assets/products-showcase.jpg",
		Category:   "men",
		Colors:     []string{"Black", "Brown"},
		Sizes:      []string{"S", "M", "L", "XL"},
	},
	{
		Id:         "4",
		Name:       "Summer Dress",
		Brand:      "Bershka",
		Price:      49.99,
		ServiceFee: 8.00,
		Image:      "assets/products-showcase.jpg",
		Category:   "women",
		Colors:     []string{"Floral", "Solid"},
		Sizes:      []string{"XS", "S", "M", "L"},
	},
	{
		Id:         "5",
		Name:       "Kids Hoodie",
		Brand:      "Zara",
		Price:      24.99,
		ServiceFee: 4.00,
		Image:      "assets/products-showcase.jpg",
		Category:   "kids",
		Colors:     []string{"Red", "Blue", "Green"},
		Sizes:      []string{"4Y", "6Y", "8Y", "10Y"},
	},
	{
		Id:          "6",
		Name:        "Lebanese Designer Scarf",
		Brand:       "Local Exclusive",
		Price:       39.99,
		ServiceFee:  6.00,
		Image:       "assets/products-showcase.jpg",
		Category:    "accessories",
		Colors:      []string{"Cedar Green", "Gold"},
		Sizes:       []string{"One Size"},
		IsExclusive: true,
	},
}

// Products returns the full catalog in display order. Callers get a fresh
// slice and may reorder it freely.
func Products() []entities.Product {
	out := make([]entities.Product, len(products))
	copy(out, products)
	return out
}

func ProductById(id string) (entities.Product, bool) {
	for _, p := range products {
		if p.Id == id {
			return p, true
		}
	}
	return entities.Product{}, false
}
