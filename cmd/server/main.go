package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/raayanhq/raayan/internal/cache"
	"github.com/raayanhq/raayan/internal/config"
	"github.com/raayanhq/raayan/internal/handler"
	"github.com/raayanhq/raayan/internal/repository"
	"github.com/raayanhq/raayan/internal/router"
	"github.com/raayanhq/raayan/internal/search"
	"github.com/raayanhq/raayan/internal/service"
	"github.com/raayanhq/raayan/seeds"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to parse database config %v", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("failed to connect to database %v", err)
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		log.Fatalf("database not ready: %v", err)
	}
	log.Println("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			log.Fatalf("failed to migrate down %v", err)
		}
		log.Println("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		log.Fatalf("failed to migrate up %v", err)
	}

	// ------------ Setup Seed Data ---------------
	repo := repository.New(pool)
	if err := checkSeed(ctx, pool, repo); err != nil {
		log.Fatalf("failed to check seed %v", err)
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to parse redis url %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	searchCache := cache.NewCache(redisClient, cfg.SearchCacheTTL)
	if err := searchCache.Ping(ctx); err != nil {
		log.Fatalf("redis not ready: %v", err)
	}
	log.Println("connected to Redis")

	// ------------ Search provider ---------------
	var searcher search.Searcher
	if cfg.UseMockSearch {
		log.Println("using mock search catalog")
		searcher = search.NewMock()
	} else {
		searcher = search.NewPerplexityClient(cfg.PerplexityAPIKey, cfg.SearchTimeout)
	}

	// ---------------- Server --------------------
	svc := service.New(repo, searchCache, searcher)
	h := handler.NewHandler(svc)

	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router.Setup(h)))
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations dropped successfully")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations applied successfully")
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool, repo *repository.Repository) error {
	count, err := repo.CountRestaurants(ctx)
	if err != nil {
		return fmt.Errorf("check restaurants count: %w", err)
	}
	if count > 0 {
		log.Printf("catalog already seeded (%d restaurants), skipping", count)
		return nil
	}
	return seeds.Setup(ctx, pool)
}
