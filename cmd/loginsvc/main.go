package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	goredis "github.com/redis/go-redis/v9"

	adapthttp "loginsvc/internal/adapter/http"
	"loginsvc/internal/adapter/file"
	"loginsvc/internal/adapter/memory"
	"loginsvc/internal/adapter/postgres"
	"loginsvc/internal/adapter/redis"
	"loginsvc/internal/app"
	"loginsvc/internal/domain"
)

func main() {
	addr := env("ADDR", ":5002")

	accounts, sessions, cleanup := openStores()
	defer cleanup()

	accountSvc := app.NewAccountService(accounts)
	authSvc := app.NewAuthService(accountSvc, sessions)

	srv := adapthttp.New(accountSvc, authSvc)
	if issuer := os.Getenv("OIDC_ISSUER"); issuer != "" {
		cfg, err := adapthttp.NewOIDCConfig(context.Background(),
			issuer,
			os.Getenv("OIDC_CLIENT_ID"),
			os.Getenv("OIDC_CLIENT_SECRET"),
			os.Getenv("OIDC_REDIRECT_URL"),
		)
		if err != nil {
			log.Fatalf("oidc setup: %v", err)
		}
		srv = srv.WithSSO(cfg)
	}

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// openStores picks the account and session repositories from the
// environment: postgres when DATABASE_URL is set, else a JSON file when
// ACCOUNTS_FILE is set, else in-memory. Sessions move to Redis when
// REDIS_ADDR is set; otherwise they live next to the accounts.
func openStores() (domain.AccountRepository, domain.SessionRepository, func()) {
	var accounts domain.AccountRepository
	var sessions domain.SessionRepository
	cleanup := func() {}

	switch {
	case os.Getenv("DATABASE_URL") != "":
		db, err := postgres.Open(os.Getenv("DATABASE_URL"))
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		accounts = db
		sessions = postgres.NewSessionRepo(db)
		cleanup = func() { _ = db.Close() }

	case os.Getenv("ACCOUNTS_FILE") != "":
		store, err := file.Open(os.Getenv("ACCOUNTS_FILE"))
		if err != nil {
			log.Fatalf("accounts file: %v", err)
		}
		accounts = store
		sessions = memory.New().NewSessionRepo()

	default:
		db := memory.New()
		accounts = db
		sessions = db.NewSessionRepo()
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{Addr: redisAddr})
		sessions = redis.NewSessionStore(rdb, env("REDIS_PREFIX", "loginsvc"))
		prev := cleanup
		cleanup = func() {
			_ = rdb.Close()
			prev()
		}
	}

	return accounts, sessions, cleanup
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
