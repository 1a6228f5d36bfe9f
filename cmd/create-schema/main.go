package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"contractdraft-backend/config"
	"contractdraft-backend/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	drop := flag.Bool("drop", false, "drop the contracts table before creating it")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if cfg.Database.URL == "" {
		logger.Fatal("database.url (DATABASE_URL) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if *drop {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS contracts CASCADE"); err != nil {
			logger.Fatal("Failed to drop table", zap.Error(err))
		}
		logger.Info("Dropped existing contracts table (if any)")
	}

	if _, err := pool.Exec(ctx, repository.PostgresSchema); err != nil {
		logger.Fatal("Failed to create contracts table", zap.Error(err))
	}
	logger.Info("Created contracts table")

	indexes := []struct {
		name string
		sql  string
	}{
		{
			name: "Owner listing",
			sql:  "CREATE INDEX IF NOT EXISTS idx_contracts_user_created ON contracts(user_id, created_at DESC);",
		},
		{
			name: "Status filtering",
			sql:  "CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts(status);",
		},
		{
			name: "Variable filtering",
			sql:  "CREATE INDEX IF NOT EXISTS idx_contracts_variables_gin ON contracts USING gin (variables);",
		},
	}

	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx.sql); err != nil {
			logger.Warn("Failed to create index", zap.String("index", idx.name), zap.Error(err))
			continue
		}
		logger.Info("Created index", zap.String("index", idx.name))
	}

	fmt.Println("Database schema ready: contracts")
}
