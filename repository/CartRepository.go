package repository

import (
	"encoding/json"
	"errors"
	"log"

	"brandsgate/entities"
)

type CartRepository interface {
	Load() (items []entities.CartItem, err error)
	Save(items []entities.CartItem) (err error)
}

type CartRepo struct {
	store     StateRepository
	namespace string
}

func NewCartRepository(store StateRepository, namespace string) (CartRepository, error) {
	if store == nil {
		return nil, errors.New("store must be non-nil")
	}
	return &CartRepo{
		store:     store,
		namespace: namespace,
	}, nil
}

// Load reads the persisted cart. A missing record is an empty cart; a record
// that no longer parses is discarded and also treated as empty, so a corrupt
// payload can never keep the store from starting.
func (c *CartRepo) Load() (items []entities.CartItem, err error) {
	items = []entities.CartItem{}
	payload, found, e := c.store.Read(c.namespace)
	if e != nil {
		err = e
		return
	}
	if !found {
		return
	}
	if e := json.Unmarshal(payload, &items); e != nil {
		log.Printf("Load: discarding malformed cart record: %v", e)
		items = []entities.CartItem{}
	}
	return
}

func (c *CartRepo) Save(items []entities.CartItem) (err error) {
	payload, e := json.Marshal(items)
	if e != nil {
		log.Printf("Save: %v", e)
		err = e
		return
	}
	err = c.store.Write(c.namespace, payload)
	return
}
