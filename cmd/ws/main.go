package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Werneck0live/gestao-terceirizados/internal/broker"
	"github.com/Werneck0live/gestao-terceirizados/internal/config"
	"github.com/Werneck0live/gestao-terceirizados/internal/utils"
	"github.com/Werneck0live/gestao-terceirizados/internal/ws"
)

// relay: fila de cadastros -> clientes websocket filtrados por kind
func main() {
	config.LoadDotEnv()
	cfg := config.LoadWSConfig()
	log := config.InitLogger(cfg.LogLevel).With("svc", "ws")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub(log)
	go hub.Run()

	cons, err := broker.NewConsumer(cfg.RabbitURI, cfg.RabbitQueue, cfg.ConsumerTag, cfg.ConsumerPrefetch, log)
	if err != nil {
		log.Error("rabbit_consumer_start_error", "err", err)
		os.Exit(1)
	}
	defer cons.Close()

	go func() {
		err := cons.Run(ctx, func(ev broker.Event, body []byte) {
			hub.Broadcast(ev.Kind, body)
		})
		if errors.Is(err, broker.ErrDeliveriesClosed) {
			// sem fila não há o que repassar
			log.Error("rabbit_consumer_stopped", "err", err)
			stop()
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ws.Handler(hub, log))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok", "clients": hub.Len()})
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           utils.LogRequests(log, mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	go func() {
		log.Info("ws_listen", "addr", cfg.Addr, "queue", cfg.RabbitQueue)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http_server_error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http_shutdown_error", "err", err)
	}
	hub.Stop()
	log.Info("stopped")
}
