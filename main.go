package main

import (
	"log"
	"net/http"
	"time"

	"food-console/config"
	httpapi "food-console/internal/api/http"
	"food-console/internal/backend"
	"food-console/internal/service"
	"food-console/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	client := backend.NewClient(config.BackendBaseURL(), &http.Client{Timeout: 15 * time.Second})

	var auditStore service.AuditStore
	if config.AuditEnabled() {
		db := config.MustInitPostgres()
		defer db.Close()

		store := storage.NewPostgresAuditStore(db)
		if err := store.EnsureSchema(); err != nil {
			log.Fatal("Failed to prepare audit schema:", err)
		}
		auditStore = store
	}

	var auditPublisher service.AuditPublisher
	if config.KafkaEnabled() {
		writer := config.NewKafkaWriter("console-audit")
		defer writer.Close()
		auditPublisher = storage.NewKafkaAuditPublisher(writer)
	}

	var ratingCache service.RatingCache
	if config.RedisEnabled() {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		ratingCache = storage.NewRedisRatingCache(rdb, 10*time.Minute)
	}

	audit := service.NewAuditor(auditStore, auditPublisher)

	handler := &httpapi.Handler{
		Search:      service.NewSearchService(client),
		Hierarchy:   service.NewHierarchyService(client, audit),
		Workflow:    service.NewWorkflowService(client, audit),
		Restaurants: service.NewRestaurantService(client, audit),
		Orders:      service.NewOrderService(client, audit),
		Deliveries:  service.NewDeliveryService(client, audit),
		Ratings:     service.NewRatingService(client, ratingCache, audit),
		QR:          service.DefaultQRGenerator{},
	}

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	addr := config.ListenAddr()
	log.Println("Food Console starting on", addr)
	log.Fatal(http.ListenAndServe(addr, cors.Default().Handler(r)))
}
