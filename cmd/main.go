package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/itemkit/itemsapi/internal/app/item"
	itemrepo "github.com/itemkit/itemsapi/internal/app/item/repo/memory"
	itemhttp "github.com/itemkit/itemsapi/internal/app/item/transport/http"
	"github.com/itemkit/itemsapi/internal/infrastructure/httpx"
	"github.com/itemkit/itemsapi/internal/infrastructure/logger"
	"github.com/itemkit/itemsapi/internal/infrastructure/system"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := loadConfig()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(cfg.LogLevel.zeroLog())
	out, closeLog := logger.Output(cfg.Log)
	defer func() {
		if err := closeLog(); err != nil {
			log.Error().Err(err).Msg("failed to close log output")
		}
	}()
	log.Logger = log.Output(out)

	if err := godotenv.Overload(".env"); err != nil {
		log.Debug().Err(err).Msg("failed to load .env file, using environment variables")
	}

	idGen := &system.UUIDv7Generator{}
	timeGen := &system.TimeGenerator{}

	itemValidator, err := item.NewValidator(cfg.Item)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create item validator")
	}
	itemRepo := itemrepo.NewRepository()
	itemCore, err := item.NewCore(itemRepo, item.Generators{
		ID:   idGen,
		Time: timeGen,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create item core")
	}
	itemHandler := itemhttp.NewHandler(itemCore, itemValidator)

	// --- set up chi router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logger.Middleware)
	r.Use(httpx.MaxBodyBytes(cfg.MaxBodySize))
	r.Use(httpx.RateLimit(cfg.RateLimit))

	r.Get("/health", itemhttp.Health) // GET /health

	r.Route("/items", func(r chi.Router) {
		r.Options("/", itemhttp.Preflight) // OPTIONS /items
		r.Post("/", itemHandler.Create)    // POST   /items
		r.Get("/", itemHandler.List)       // GET    /items?limit=&offset=&status=

		r.Route(fmt.Sprintf("/{%s}", itemhttp.URLParamItemID), func(r chi.Router) {
			r.Options("/", itemhttp.Preflight) // OPTIONS /items/{item_id}
			r.Get("/", itemHandler.Get)        // GET    /items/{item_id}
			r.Put("/", itemHandler.Update)     // PUT    /items/{item_id}
			r.Delete("/", itemHandler.Delete)  // DELETE /items/{item_id}
		})
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Msg(fmt.Sprintf("starting server on :%s", cfg.Port))
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
}
