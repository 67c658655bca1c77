package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PauloHFS/biblio/internal/authors"
	"github.com/PauloHFS/biblio/internal/books"
	"github.com/PauloHFS/biblio/internal/config"
	"github.com/PauloHFS/biblio/internal/db"
	"github.com/PauloHFS/biblio/internal/httpclient"
	"github.com/PauloHFS/biblio/internal/llm"
	"github.com/PauloHFS/biblio/internal/logging"
	"github.com/PauloHFS/biblio/internal/middleware"
	"github.com/PauloHFS/biblio/internal/rag"
	"github.com/PauloHFS/biblio/internal/search"
	"github.com/PauloHFS/biblio/internal/secrets"
	"github.com/PauloHFS/biblio/internal/vector"
	"github.com/PauloHFS/biblio/internal/web"
)

func RunAuthorsServer() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logging.Init("authors-api")
	logger := logging.Get()

	ctx := context.Background()

	// 1. DB (credenciais via Secrets Manager quando DB_SECRET_ARN está setado)
	dsn, err := secrets.ResolveDatabaseURL(ctx, cfg.AWSRegion, cfg.DBSecretARN, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to resolve database credentials", "error", err)
		panic(err)
	}

	dbConn, err := db.NewPool(dsn)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		panic(err)
	}
	defer dbConn.Close()

	if err := db.RunMigrations(ctx, dbConn); err != nil {
		logger.Error("failed to run migrations", "error", err)
		panic(err)
	}

	// 2. Bedrock
	client, err := llm.NewClient(ctx,
		llm.WithRegion(cfg.AWSRegion),
		llm.WithEmbedModel(cfg.EmbedModelID),
		llm.WithTextModel(cfg.TextModelID),
		llm.WithDimensions(cfg.EmbeddingDimension),
	)
	if err != nil {
		logger.Error("failed to create bedrock client", "error", err)
		panic(err)
	}
	traced := client.WithMetrics()

	// 3. Núcleo de busca e RAG
	store := vector.NewPgStore(dbConn, vector.Config{Dimension: cfg.EmbeddingDimension})
	engine := search.NewEngine(traced, store)
	orchestrator := rag.NewOrchestrator(engine, traced,
		rag.WithGroundingThreshold(cfg.GroundingThreshold),
		rag.WithAnswerMaxTokens(cfg.AnswerMaxTokens),
	)
	registry := authors.NewRegistry(traced, store, traced)

	mux := http.NewServeMux()
	mux.Handle("GET "+web.Metrics, promhttp.Handler())

	mux.HandleFunc("GET "+web.Health, func(w http.ResponseWriter, r *http.Request) {
		if err := dbConn.PingContext(r.Context()); err != nil {
			logger.Error("health check failed: db unreachable", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Registrar handlers de negócio
	web.RegisterAuthorRoutes(mux, web.AuthorsDeps{
		Registry:     registry,
		Engine:       engine,
		Orchestrator: orchestrator,
	})

	serve("authors-api", cfg.AuthorsPort, cfg.Env == "prod", mux)
}

func RunBooksServer() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logging.Init("books-api")
	logger := logging.Get()

	store := books.NewSeededStore()
	authorsClient := books.NewAuthorsClient(cfg.AuthorsAPIURL, httpclient.Default())

	mux := http.NewServeMux()
	mux.Handle("GET "+web.Metrics, promhttp.Handler())

	mux.HandleFunc("GET "+web.Health, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	web.RegisterBookRoutes(mux, web.BooksDeps{
		Store:   store,
		Authors: authorsClient,
	})

	logger.Info("books catalog loaded", "books", len(store.List()))

	serve("books-api", cfg.BooksPort, cfg.Env == "prod", mux)
}

func serve(service, port string, isProd bool, mux *http.ServeMux) {
	logger := logging.Get()

	handler := middleware.Recovery(
		middleware.RateLimitDefault(
			middleware.SecurityHeaders(isProd)(
				middleware.CORS(middleware.DefaultCORSConfig())(
					middleware.Logger(mux),
				),
			),
		),
	)

	compressedHandler := gzhttp.GzipHandler(handler)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: compressedHandler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server started", "service", service, "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("server stopping")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited properly")
}
