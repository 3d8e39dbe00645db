package repository_test

import (
	"testing"
	"time"

	"brandsgate/entities"
	"brandsgate/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryRepository()
	cr, err := repository.NewCartRepository(store, "test-cart")
	require.NoError(t, err)

	items := []entities.CartItem{
		{
			Product: entities.Product{
				Id: "1", Name: "Premium Cotton T-Shirt", Brand: "Zara",
				Price: 29.99, ServiceFee: 5.00, Category: "women",
				Colors: []string{"Black", "White"}, Sizes: []string{"S", "M"},
			},
			Quantity:      3,
			SelectedColor: "Black",
			SelectedSize:  "M",
		},
	}
	require.NoError(t, cr.Save(items))

	loaded, err := cr.Load()
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestCartRepositoryEmptyWhenAbsent(t *testing.T) {
	t.Parallel()

	cr, err := repository.NewCartRepository(repository.NewMemoryRepository(), "test-cart")
	require.NoError(t, err)

	items, err := cr.Load()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartRepositoryMalformedPayloadSelfHeals(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryRepository()
	require.NoError(t, store.Write("test-cart", []byte("{definitely not json")))

	cr, err := repository.NewCartRepository(store, "test-cart")
	require.NoError(t, err)

	items, err := cr.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryRepository()
	or, err := repository.NewOrderRepository(store, "test-orders")
	require.NoError(t, err)

	orders := []entities.Order{
		{
			Id:    "A1B2C3D4E",
			Total: 34.99,
			Items: []entities.CartItem{
				{
					Product: entities.Product{
						Id: "1", Name: "Premium Cotton T-Shirt", Brand: "Zara",
						Price: 29.99, ServiceFee: 5.00, Category: "women",
						Colors: []string{"Black"}, Sizes: []string{"M"},
					},
					Quantity: 1, SelectedColor: "Black", SelectedSize: "M",
				},
			},
			CustomerInfo: entities.CustomerInfo{
				FirstName: "Aya", LastName: "Khalil", Phone: "+96170000000",
				City: "Beirut", Address: "Hamra Street 12",
			},
			Status:    entities.StatusReceived,
			CreatedAt: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, or.Save(orders))

	loaded, err := or.Load()
	require.NoError(t, err)
	assert.Equal(t, orders, loaded)
}

func TestOrderRepositoryMalformedPayloadSelfHeals(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryRepository()
	require.NoError(t, store.Write("test-orders", []byte("[{broken")))

	or, err := repository.NewOrderRepository(store, "test-orders")
	require.NoError(t, err)

	orders, err := or.Load()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCartAndOrderRecordsAreIndependent(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryRepository()
	cr, err := repository.NewCartRepository(store, "test-cart")
	require.NoError(t, err)
	or, err := repository.NewOrderRepository(store, "test-orders")
	require.NoError(t, err)

	require.NoError(t, cr.Save([]entities.CartItem{}))
	require.NoError(t, or.Save([]entities.Order{{Id: "X", Status: entities.StatusReceived}}))

	items, err := cr.Load()
	require.NoError(t, err)
	assert.Empty(t, items)

	orders, err := or.Load()
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
