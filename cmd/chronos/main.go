package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chronoslabs/chronos/internal/adapters/store/filestore"
	"github.com/chronoslabs/chronos/internal/adapters/store/memstore"
	"github.com/chronoslabs/chronos/internal/adapters/store/pgstore"
	"github.com/chronoslabs/chronos/internal/adapters/store/redisstore"
	"github.com/chronoslabs/chronos/internal/app"
	"github.com/chronoslabs/chronos/internal/domain"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	store, err := openStore()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to open blob store")
	}

	application := app.New(store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{Addr: ":" + port, Handler: application.HTTPHandler()}

	go func() {
		zlog.Info().Str("port", port).Msg("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}

// openStore picks the storage engine from STORE_DRIVER. The persisted layout is
// identical across engines: three JSON array blobs.
func openStore() (domain.BlobStore, error) {
	driver := strings.ToLower(os.Getenv("STORE_DRIVER"))
	switch driver {
	case "memory":
		return memstore.New(), nil
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		return redisstore.New(addr)
	case "postgres":
		db, err := gorm.Open(postgres.Open(postgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return pgstore.New(db)
	case "", "file":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		return filestore.New(dir)
	}
	zlog.Warn().Str("driver", driver).Msg("unknown STORE_DRIVER, using file")
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return filestore.New(dir)
}

func postgresDSN() string {
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		return dsn
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}
	pass := os.Getenv("DB_PASSWORD")
	if pass == "" {
		pass = "postgres"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "chronos"
	}
	ssl := os.Getenv("DB_SSLMODE")
	if ssl == "" {
		ssl = "disable"
	}
	return "host=" + host + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + port + " sslmode=" + ssl
}
