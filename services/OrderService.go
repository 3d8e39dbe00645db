package services

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"brandsgate/entities"
	"brandsgate/models"
	"brandsgate/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const orderIdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const orderIdLength = 9
const orderIdAttempts = 5

// OrderService owns the order sequence, most-recent-first. Orders are created
// once at checkout and only their status changes afterwards, driven by an
// external fulfillment process.
type OrderService struct {
	or       repository.OrderRepository
	cs       *CartService
	orders   []entities.Order
	validate *validator.Validate
}

func NewOrderService(orderRepo repository.OrderRepository, cartService *CartService) (*OrderService, error) {
	orders, err := orderRepo.Load()
	if err != nil {
		return nil, err
	}
	return &OrderService{
		or:       orderRepo,
		cs:       cartService,
		orders:   orders,
		validate: validator.New(),
	}, nil
}

// PlaceOrder snapshots the live cart together with the delivery form into a
// new order, persists it at the front of the order list, and clears the cart.
// The snapshot is independent: later cart or catalog changes never touch it.
func (ors *OrderService) PlaceOrder(info entities.CustomerInfo) (order entities.Order, err error) {
	items := ors.cs.Items()
	if len(items) == 0 {
		err = models.ErrEmptyCart
		return
	}
	info = trimCustomerInfo(info)
	if e := ors.validate.Struct(info); e != nil {
		log.Printf("PlaceOrder: %v", e)
		err = models.ErrValidation
		return
	}

	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}

	order = entities.Order{
		Id:           ors.newOrderId(),
		Items:        items,
		Total:        total,
		CustomerInfo: info,
		Status:       entities.StatusReceived,
		CreatedAt:    time.Now().UTC(),
	}

	ors.orders = append([]entities.Order{order}, ors.orders...)
	if e := ors.or.Save(ors.orders); e != nil {
		ors.orders = ors.orders[1:]
		order = entities.Order{}
		err = e
		return
	}
	err = ors.cs.ClearCart()
	return
}

// FindOrder scans the order list by id.
func (ors *OrderService) FindOrder(orderId string) (order entities.Order, err error) {
	for _, o := range ors.orders {
		if o.Id == orderId {
			order = o.Clone()
			return
		}
	}
	err = models.ErrNotFound
	return
}

// Orders returns the full order list, most-recent-first.
func (ors *OrderService) Orders() []entities.Order {
	out := make([]entities.Order, len(ors.orders))
	for i, o := range ors.orders {
		out[i] = o.Clone()
	}
	return out
}

// SetOrderStatus applies a fulfillment transition: forward-only along the
// linear sequence, or to cancelled from any non-terminal state.
func (ors *OrderService) SetOrderStatus(orderId string, status entities.OrderStatus) (err error) {
	for i := range ors.orders {
		if ors.orders[i].Id != orderId {
			continue
		}
		if !entities.CanTransition(ors.orders[i].Status, status) {
			log.Printf("SetOrderStatus: %s -> %s rejected for order %s", ors.orders[i].Status, status, orderId)
			err = models.ErrBadTransition
			return
		}
		previous := ors.orders[i].Status
		ors.orders[i].Status = status
		if e := ors.or.Save(ors.orders); e != nil {
			ors.orders[i].Status = previous
			err = e
		}
		return
	}
	err = models.ErrNotFound
	return
}

func (ors *OrderService) CancelOrder(orderId string) error {
	return ors.SetOrderStatus(orderId, entities.StatusCancelled)
}

// newOrderId generates a short upper-case base36 token, regenerating on the
// unlikely collision with a stored order. If collisions persist past the
// attempt budget it falls back to a uuid, which cannot collide in practice.
func (ors *OrderService) newOrderId() string {
	for attempt := 0; attempt < orderIdAttempts; attempt++ {
		id := randomToken(orderIdLength)
		if !ors.hasOrder(id) {
			return id
		}
	}
	return uuid.NewString()
}

func (ors *OrderService) hasOrder(orderId string) bool {
	for _, o := range ors.orders {
		if o.Id == orderId {
			return true
		}
	}
	return false
}

func randomToken(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(orderIdAlphabet[rand.Intn(len(orderIdAlphabet))])
	}
	return b.String()
}

func trimCustomerInfo(info entities.CustomerInfo) entities.CustomerInfo {
	info.FirstName = strings.TrimSpace(info.FirstName)
	info.LastName = strings.TrimSpace(info.LastName)
	info.Phone = strings.TrimSpace(info.Phone)
	info.City = strings.TrimSpace(info.City)
	info.Address = strings.TrimSpace(info.Address)
	info.Notes = strings.TrimSpace(info.Notes)
	return info
}
