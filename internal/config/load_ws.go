package config

import (
	"log/slog"
	"time"
)

// WSConfig configura o relay cmd/ws.
type WSConfig struct {
	Addr              string
	RabbitURI         string
	RabbitQueue       string
	ConsumerTag       string
	ConsumerPrefetch  int
	LogLevel          slog.Level
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func LoadWSConfig() *WSConfig {
	c := &WSConfig{
		Addr:              getenv("WS_ADDR", ":8090"),
		RabbitURI:         getenvAny(defaultRabbitURI, "RABBITMQ_URL", "RABBIT_URI"),
		RabbitQueue:       getenvAny(DefaultQueue, "RABBITMQ_QUEUE", "RABBIT_QUEUE"),
		ConsumerTag:       getenv("WS_CONSUMER_TAG", "ws-relay"),
		ConsumerPrefetch:  parseInt("WS_PREFETCH", 50),
		LogLevel:          ParseLevel(getenv("LOG_LEVEL", "info")),
		ReadHeaderTimeout: parseDuration("WS_READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   parseDuration("WS_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if c.ConsumerPrefetch < 1 {
		c.ConsumerPrefetch = 1
	}
	return c
}
