package repository

import (
	"context"
	"errors"
	"log"

	"brandsgate/models"

	"github.com/redis/go-redis/v9"
)

type RedisRepo struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedisRepository keeps one redis key per namespace. Unlike session-scoped
// carts, storefront state must survive indefinitely, so keys carry no TTL.
func NewRedisRepository(conn *redis.Client, ctx context.Context) (StateRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisRepo{
		rdb: conn,
		ctx: ctx,
	}, nil
}

func (r *RedisRepo) Read(namespace string) (payload []byte, found bool, err error) {
	val, e := r.rdb.Get(r.ctx, namespace).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("Read: %v", e)
		err = models.ErrStorageError
		return
	}
	payload = []byte(val)
	found = true
	return
}

func (r *RedisRepo) Write(namespace string, payload []byte) (err error) {
	e := r.rdb.Set(r.ctx, namespace, payload, 0).Err()
	if e != nil {
		log.Printf("Write: %v", e)
		err = models.ErrStorageError
	}
	return
}
