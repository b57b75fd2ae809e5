package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"paircode/internal/api"
	"paircode/internal/events"
	"paircode/internal/metrics"
	"paircode/internal/repositories"
	"paircode/internal/routers"
	"paircode/internal/session"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "paircode.db"
	}

	db, err := repositories.Open(os.Getenv("POSTGRES_DSN"), sqlitePath, logger)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	roomRepo := repositories.NewRoomRepository(db)

	// Room events are optional; without REDIS_ADDR they are dropped.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	}
	publisher := events.NewPublisher(rdb, logger)

	engine := session.NewEngine(roomRepo, publisher, logger)
	handlers := api.NewHandlers(logger, roomRepo, engine)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
	)
	// No request timeout middleware: /ws connections are long-lived.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Mount("/", routers.New(handlers))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	log.Printf("paircode listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
