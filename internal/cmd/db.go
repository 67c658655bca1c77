package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PauloHFS/biblio/internal/authors"
	"github.com/PauloHFS/biblio/internal/config"
	"github.com/PauloHFS/biblio/internal/db"
	"github.com/PauloHFS/biblio/internal/llm"
	"github.com/PauloHFS/biblio/internal/logging"
	"github.com/PauloHFS/biblio/internal/secrets"
	"github.com/PauloHFS/biblio/internal/vector"
)

func initDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	dsn, err := secrets.ResolveDatabaseURL(ctx, cfg.AWSRegion, cfg.DBSecretARN, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database credentials: %w", err)
	}
	return db.NewPool(dsn)
}

func RunMigrate() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logging.Init("biblio-migrate")
	logger := logging.Get()

	ctx := context.Background()

	dbConn, err := initDB(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer dbConn.Close()

	if err := db.RunMigrations(ctx, dbConn); err != nil {
		logger.Error("failed to run migrations", "error", err)
		return
	}
	logger.Info("migrations executed successfully")
}

// RunSeed roda as migrations e carrega os autores de exemplo. Gera embeddings
// de verdade via Bedrock, então precisa de credenciais AWS válidas.
func RunSeed() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logging.Init("biblio-seed")
	logger := logging.Get()

	ctx := context.Background()

	dbConn, err := initDB(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer dbConn.Close()

	if err := db.RunMigrations(ctx, dbConn); err != nil {
		logger.Error("failed to run migrations during seed", "error", err)
		return
	}

	client, err := llm.NewClient(ctx,
		llm.WithRegion(cfg.AWSRegion),
		llm.WithEmbedModel(cfg.EmbedModelID),
		llm.WithTextModel(cfg.TextModelID),
		llm.WithDimensions(cfg.EmbeddingDimension),
	)
	if err != nil {
		logger.Error("failed to create bedrock client", "error", err)
		return
	}
	traced := client.WithMetrics()

	store := vector.NewPgStore(dbConn, vector.Config{Dimension: cfg.EmbeddingDimension})
	registry := authors.NewRegistry(traced, store, traced)

	if err := db.Seed(ctx, dbConn, registry, cfg.SeedForce); err != nil {
		logger.Error("failed to seed database", "error", err)
		return
	}
	logger.Info("database seeded successfully")
}
