package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/Werneck0live/gestao-terceirizados/internal/admin"
	"github.com/Werneck0live/gestao-terceirizados/internal/broker"
	"github.com/Werneck0live/gestao-terceirizados/internal/config"
	"github.com/Werneck0live/gestao-terceirizados/internal/db"
	"github.com/Werneck0live/gestao-terceirizados/internal/handlers"
	"github.com/Werneck0live/gestao-terceirizados/internal/repository"
	"github.com/Werneck0live/gestao-terceirizados/internal/utils"
)

// cmd/api/main.go
func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	// Logger JSON "global" - permite usar slog.Info/slog.Error/Warn em qualquer lugar
	_ = config.InitLogger(cfg.LogLevel)

	// HOOK: admin job (one-off)
	task := flag.String("task", "", "admin task: seed")
	flag.Parse()

	backend, closeDB, err := openBackend(cfg)
	if err != nil {
		slog.Error("db_connect_error", "driver", cfg.DBDriver, "err", err)
		os.Exit(1)
	}
	defer closeDB()

	if *task != "" {
		switch *task {
		case "seed":
			if _, err := admin.SeedFuncoes(context.Background(), backend.Funcoes, slog.Default()); err != nil {
				slog.Error("seed_failed", "err", err)
				os.Exit(1)
			}
			slog.Info("seed_done")
			return // encerra o processo sem subir HTTP
		default:
			slog.Error("unknown_admin_task", "task", *task)
			os.Exit(2)
		}
	}

	// publisher (Rabbit) é opcional: sem RABBITMQ_URL os cadastros não geram evento
	var pub handlers.Publisher
	if cfg.RabbitURI != "" {
		p, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
		if err != nil {
			slog.Error("rabbitmq_connect_error", "err", err)
			os.Exit(1)
		}
		defer p.Close()
		pub = p
	} else {
		slog.Warn("rabbitmq_disabled")
	}

	router := handlers.NewRouter(backend, pub, cfg.RequestTimeout)
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(utils.LogRequests(slog.Default(), router)),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// start server
	go func() {
		slog.Info("starting", "port", cfg.Port, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server_error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful_shutdown_error", "err", err)
	}
}

// openBackend escolhe o armazenamento por DB_DRIVER.
func openBackend(cfg *config.Config) (*repository.Backend, func(), error) {
	switch cfg.DBDriver {
	case "mongo", "":
		client, err := db.NewMongoClient(cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }

		backend, ensureIndexes := repository.NewMongoBackend(client.Database(cfg.MongoDB))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := ensureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		return backend, closeFn, nil

	case "postgres":
		gdb, err := db.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		backend, err := repository.NewGormBackend(gdb)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		return backend, closeFn, nil

	case "memory":
		return repository.NewMemoryBackend(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}
