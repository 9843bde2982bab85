package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/shopchat-labs/shopchat-backend/internal/config"
	"github.com/shopchat-labs/shopchat-backend/internal/modules/assistant"
	"github.com/shopchat-labs/shopchat-backend/internal/modules/cart"
	"github.com/shopchat-labs/shopchat-backend/internal/modules/catalog"
	"github.com/shopchat-labs/shopchat-backend/internal/session"
	"github.com/shopchat-labs/shopchat-backend/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log := logrus.New()
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	log.Info("connected to the database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(session.Middleware)

	// ── Stores ──────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo)
	cart.NewHandler(cartService, catalogService).RegisterRoutes(router)

	// ── Assistant ───────────────────────────────────────────
	chatClient := assistant.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel, cfg.OllamaTimeout)
	assistantService := assistant.NewService(catalogService, cartService, chatClient, log)
	assistant.NewHandler(assistantService).RegisterRoutes(router)

	// ── Storefront ──────────────────────────────────────────
	server, err := web.NewServer(assistantService, catalogService, cartService, log)
	if err != nil {
		log.Fatal(err)
	}
	server.RegisterRoutes(router)

	log.Infof("storefront server starting on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
