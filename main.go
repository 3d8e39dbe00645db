package main

import (
	"context"
	"database/sql"
	"log"

	"brandsgate/config"
	"brandsgate/repository"
	"brandsgate/services"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

var db *sql.DB
var rdb *redis.Client

func main() {
	config.Load()

	store, err := initStorage()
	if err != nil {
		panic(err)
	}
	if db != nil {
		defer db.Close()
	}
	if rdb != nil {
		defer rdb.Close()
	}
	log.Printf("storage connected (%s)", config.AppEnv.StorageBackend)

	cartR, err := repository.NewCartRepository(store, config.AppEnv.CartNamespace())
	if err != nil {
		panic(err)
	}
	orderR, err2 := repository.NewOrderRepository(store, config.AppEnv.OrdersNamespace())
	if err2 != nil {
		panic(err2)
	}

	crtService, err := services.NewCartService(cartR)
	if err != nil {
		panic(err)
	}
	prdService := services.NewProductService()
	ordService, err := services.NewOrderService(orderR, crtService)
	if err != nil {
		panic(err)
	}

	log.Printf("catalog ready: %d products", len(prdService.Products()))
	log.Printf("cart restored: %d items (total %.2f)", crtService.CartCount(), crtService.GetCartTotal())
	log.Printf("orders restored: %d", len(ordService.Orders()))
}

func initStorage() (repository.StateRepository, error) {
	if config.AppEnv.StorageBackend == "redis" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     config.AppEnv.RedisHost + ":" + config.AppEnv.RedisPort,
			Password: "",
			DB:       0,
		})
		return repository.NewRedisRepository(rdb, context.Background())
	}

	var err error
	db, err = sql.Open("sqlite3", config.AppEnv.SQLitePath)
	if err != nil {
		return nil, err
	}
	return repository.NewSQLiteRepository(db)
}
