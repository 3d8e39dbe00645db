package repository

import (
	"encoding/json"
	"errors"
	"log"

	"brandsgate/entities"
)

type OrderRepository interface {
	Load() (orders []entities.Order, err error)
	Save(orders []entities.Order) (err error)
}

type OrderRepo struct {
	store     StateRepository
	namespace string
}

func NewOrderRepository(store StateRepository, namespace string) (OrderRepository, error) {
	if store == nil {
		return nil, errors.New("store must be non-nil")
	}
	return &OrderRepo{
		store:     store,
		namespace: namespace,
	}, nil
}

// Load reads the persisted order list, most-recent-first as written. The
// same self-healing rule as the cart applies to malformed payloads.
func (o *OrderRepo) Load() (orders []entities.Order, err error) {
	orders = []entities.Order{}
	payload, found, e := o.store.Read(o.namespace)
	if e != nil {
		err = e
		return
	}
	if !found {
		return
	}
	if e := json.Unmarshal(payload, &orders); e != nil {
		log.Printf("Load: discarding malformed orders record: %v", e)
		orders = []entities.Order{}
	}
	return
}

func (o *OrderRepo) Save(orders []entities.Order) (err error) {
	payload, e := json.Marshal(orders)
	if e != nil {
		log.Printf("Save: %v", e)
		err = e
		return
	}
	err = o.store.Write(o.namespace, payload)
	return
}
