// main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go-storefront/catalog"
	"go-storefront/config"
	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/routes"
	"go-storefront/session"
	"go-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := utils.NewLogger(os.Stdout, utils.LoggerOptions{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Error("load catalog", slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info("catalog loaded", slog.Int("products", products.Len()))

	signer, err := newSigner(cfg, logger)
	if err != nil {
		logger.Error("session signer", slog.Any("err", err))
		os.Exit(1)
	}
	sessions := session.NewStore(session.Options{
		IdleTTL:   cfg.SessionIdleTTL,
		NoticeTTL: cfg.NoticeTTL,
	})

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, routes.Controllers{
		Storefront: controllers.NewStorefrontController(products),
		Product:    controllers.NewProductController(products),
		Cart:       controllers.NewCartController(products),
		Contact:    controllers.NewContactController(logger),
	}, middleware.SessionMiddleware(sessions, signer))
	router.Use(middleware.RequestID, middleware.Recover(logger), middleware.Logging(logger))

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sessions.Run(ctx, cfg.SessionSweep)
	}()
	go func() {
		defer wg.Done()
		logger.Info("http server starting", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	logger.Info("bye")
}

// loadCatalog reads the catalog from MongoDB when configured, otherwise from
// the fixture embedded in the binary.
func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	if cfg.MongoURI == "" {
		return catalog.Default()
	}

	// Connect to MongoDB
	client, err := utils.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Warn("mongo disconnect", slog.Any("err", err))
		}
	}()

	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return catalog.FromMongo(loadCtx, client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
}

func newSigner(cfg config.Config, logger *slog.Logger) (*utils.TokenSigner, error) {
	key := []byte(cfg.SessionSecret)
	if len(key) == 0 {
		logger.Warn("STOREFRONT_SESSION_SECRET not set, signing sessions with a random key")
		random, err := utils.RandomKey()
		if err != nil {
			return nil, err
		}
		key = random
	}
	return utils.NewTokenSigner(key, cfg.SessionMaxAge), nil
}
