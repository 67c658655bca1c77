package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.AuthorsPort != "9001" {
			t.Errorf("expected authors port 9001, got %s", cfg.AuthorsPort)
		}
		if cfg.BooksPort != "9002" {
			t.Errorf("expected books port 9002, got %s", cfg.BooksPort)
		}
		if cfg.EmbeddingDimension != 1024 {
			t.Errorf("expected dimension 1024, got %d", cfg.EmbeddingDimension)
		}
		if cfg.GroundingThreshold != 0.3 {
			t.Errorf("expected threshold 0.3, got %f", cfg.GroundingThreshold)
		}
	})

	t.Run("ProductionValidation", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("APP_ENV", "prod")
		_, err := Load()
		if err == nil {
			t.Error("expected error when DATABASE_URL and DB_SECRET_ARN are missing in production")
		}
	})

	t.Run("ProductionWithSecretARN", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("APP_ENV", "prod")
		os.Setenv("DB_SECRET_ARN", "arn:aws:secretsmanager:us-east-2:123:secret:db")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.DBSecretARN == "" {
			t.Error("expected secret ARN to be set")
		}
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("AUTHORS_PORT", "8081")
		os.Setenv("EMBEDDING_DIMENSION", "512")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.AuthorsPort != "8081" {
			t.Errorf("expected port 8081, got %s", cfg.AuthorsPort)
		}
		if cfg.EmbeddingDimension != 512 {
			t.Errorf("expected dimension 512, got %d", cfg.EmbeddingDimension)
		}
	})

	t.Run("InvalidThreshold", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("GROUNDING_THRESHOLD", "1.5")
		_, err := Load()
		if err == nil {
			t.Error("expected error for threshold above 1")
		}
	})

	t.Run("InvalidDimension", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("EMBEDDING_DIMENSION", "-1")
		_, err := Load()
		if err == nil {
			t.Error("expected error for negative dimension")
		}
	})
}
