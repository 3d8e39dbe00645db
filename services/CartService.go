package services

import (
	"log"

	"brandsgate/entities"
	"brandsgate/models"
	"brandsgate/repository"
)

// CartService owns the cart item sequence. Every mutation validates, updates
// the in-memory state, and writes the full sequence through to storage before
// returning; totals are always derived from the live items, never cached.
type CartService struct {
	cr    repository.CartRepository
	items []entities.CartItem
}

// NewCartService rehydrates the cart from storage. A missing or malformed
// record yields an empty cart rather than a construction failure.
func NewCartService(cartRepo repository.CartRepository) (*CartService, error) {
	items, err := cartRepo.Load()
	if err != nil {
		return nil, err
	}
	return &CartService{
		cr:    cartRepo,
		items: items,
	}, nil
}

// Items returns an independent copy of the cart contents, in insertion order.
func (cs *CartService) Items() []entities.CartItem {
	return entities.CloneCartItems(cs.items)
}

// AddToCart merges by the (productId, color, size) triple: an existing entry
// for the same variant gets its quantity incremented, anything else appends.
func (cs *CartService) AddToCart(product entities.Product, color string, size string, quantity int) (err error) {
	if quantity < 1 || !product.HasColor(color) || !product.HasSize(size) {
		log.Printf("AddToCart: rejected product %s color=%q size=%q quantity=%d", product.Id, color, size, quantity)
		err = models.ErrValidation
		return
	}
	for i := range cs.items {
		item := &cs.items[i]
		if item.Id == product.Id && item.SelectedColor == color && item.SelectedSize == size {
			item.Quantity += quantity
			err = cs.persist()
			return
		}
	}
	cs.items = append(cs.items, entities.CartItem{
		Product:       product,
		Quantity:      quantity,
		SelectedColor: color,
		SelectedSize:  size,
	})
	err = cs.persist()
	return
}

// RemoveFromCart is keyed by product id alone: all color/size variants of the
// product leave the cart together. Unknown ids are a persisted no-op.
func (cs *CartService) RemoveFromCart(productId string) (err error) {
	kept := cs.items[:0]
	for _, item := range cs.items {
		if item.Id != productId {
			kept = append(kept, item)
		}
	}
	cs.items = kept
	err = cs.persist()
	return
}

// UpdateQuantity sets the quantity on every entry matching the product id.
// A quantity of zero or less removes the product entirely.
func (cs *CartService) UpdateQuantity(productId string, quantity int) (err error) {
	if quantity <= 0 {
		err = cs.RemoveFromCart(productId)
		return
	}
	for i := range cs.items {
		if cs.items[i].Id == productId {
			cs.items[i].Quantity = quantity
		}
	}
	err = cs.persist()
	return
}

func (cs *CartService) ClearCart() (err error) {
	cs.items = []entities.CartItem{}
	err = cs.persist()
	return
}

func (cs *CartService) GetCartSubtotal() float64 {
	var total float64
	for _, item := range cs.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (cs *CartService) GetTotalServiceFee() float64 {
	var total float64
	for _, item := range cs.items {
		total += item.ServiceFee * float64(item.Quantity)
	}
	return total
}

func (cs *CartService) GetCartTotal() float64 {
	return cs.GetCartSubtotal() + cs.GetTotalServiceFee()
}

// CartCount is the summed quantity over all entries, for badge display.
func (cs *CartService) CartCount() int {
	var count int
	for _, item := range cs.items {
		count += item.Quantity
	}
	return count
}

func (cs *CartService) persist() error {
	return cs.cr.Save(cs.items)
}
