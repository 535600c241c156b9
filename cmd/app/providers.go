package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"faqpilot/internal/domain/qa"
	"faqpilot/internal/infra/answercache"
	"faqpilot/internal/infra/config"
	"faqpilot/internal/infra/embedder"
	"faqpilot/internal/infra/embedstore"
	"faqpilot/internal/infra/llm/openai"
	"faqpilot/internal/infra/responder"
	"faqpilot/internal/infra/seedfile"
	apperrors "faqpilot/pkg/errors"
)

func provideQAConfig(cfg *config.Config) qa.Config {
	return qa.Config{
		SimilarityThreshold: cfg.QA.SimilarityThreshold,
		CacheTTL:            cfg.QA.CacheTTL,
	}
}

// provideOpenAIClient fails fast when the API key is missing so the process
// never starts half-configured.
func provideOpenAIClient(cfg *config.Config) (*openai.Client, error) {
	client, err := openai.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfig, "openai client configuration", err)
	}
	return client, nil
}

func provideEmbedder(client *openai.Client, cfg *config.Config, logger *slog.Logger) qa.EmbeddingProvider {
	return embedder.NewOpenAIEmbedder(client, cfg.LLM.EmbeddingModel, logger)
}

func provideResponder(client *openai.Client, cfg *config.Config, logger *slog.Logger) qa.CompletionProvider {
	return responder.NewOpenAIResponder(client, cfg.LLM.Model, cfg.LLM.Temperature, logger)
}

func provideStore(cfg *config.Config, logger *slog.Logger) qa.Store {
	fallback := embedstore.NewMemoryStore()
	dsn := strings.TrimSpace(cfg.QA.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory embedding store")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory embedding store", "error", err)
		return fallback
	}
	if cfg.QA.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.QA.Postgres.MaxConns
	}
	if cfg.QA.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.QA.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory embedding store", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory embedding store", "error", err)
		pool.Close()
		return fallback
	}
	store := embedstore.NewPostgresStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Error("embeddings schema setup failed, using memory embedding store", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("postgres embedding store enabled")
	return store
}

func provideAnswerCache(cfg *config.Config, logger *slog.Logger) qa.AnswerCache {
	if cfg.QA.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return answercache.NewMemoryCache()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return answercache.NewMemoryCache()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("valkey answer cache enabled", "addr", cfg.QA.Valkey.Addr)
			return answercache.NewValkeyCache(client, "qa")
		}
	}
	return answercache.NewMemoryCache()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.QA.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.QA.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.QA.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideSeed(cfg *config.Config, logger *slog.Logger) []qa.FAQEntry {
	path := strings.TrimSpace(cfg.QA.SeedPath)
	if path == "" {
		return qa.DefaultSeed()
	}
	entries, err := seedfile.Load(path)
	if err != nil {
		logger.Error("seed file unreadable, using built-in seed", "path", path, "error", err)
		return qa.DefaultSeed()
	}
	logger.Info("seed file loaded", "path", path, "entries", len(entries))
	return entries
}
