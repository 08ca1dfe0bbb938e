package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/adprintpro/storefront/internal/advice"
	"github.com/adprintpro/storefront/internal/cart"
	"github.com/adprintpro/storefront/internal/checkout"
	h "github.com/adprintpro/storefront/internal/http"
	"github.com/adprintpro/storefront/internal/uploads"
)

type Config struct {
	HTTPPort        string
	GeminiAPIKey    string
	GeminiBaseURL   string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:   getEnv("GEMINI_BASE_URL", advice.DefaultBaseURL),
		RequestTimeout:  60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()

	cfg := loadConfig()

	carts := cart.NewMemoryStore()
	defer carts.Close()

	uploadStore := uploads.NewMemoryStore()
	defer uploadStore.Close()

	checkoutSvc := checkout.NewService(carts, log)
	adviceClient := advice.New(cfg.GeminiAPIKey, cfg.GeminiBaseURL, log)

	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, advice assistant runs in offline mode")
	}

	productHandler := h.NewProductHandler()
	cartHandler := h.NewCartHandler(carts, uploadStore)
	checkoutHandler := h.NewCheckoutHandler(checkoutSvc)
	adviceHandler := h.NewAdviceHandler(adviceClient)
	uploadHandler := h.NewUploadHandler(uploadStore)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{product_id}", productHandler.Get)
			r.Get("/{product_id}/options", productHandler.Options)
			r.Post("/{product_id}/quote", productHandler.Quote)
		})

		r.Post("/uploads", uploadHandler.Create)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items/{item_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", checkoutHandler.Summary)
			r.Post("/", checkoutHandler.PlaceOrder)
		})

		r.Post("/advice", adviceHandler.Ask)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 65 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
