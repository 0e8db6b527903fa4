package config

import (
	"log/slog"
	"time"
)

type Config struct {
	Port              string
	DBDriver          string // mongo | postgres | memory
	MongoURI          string
	MongoDB           string
	PostgresDSN       string
	RabbitURI         string // vazio desliga a publicação de eventos
	RabbitQueue       string
	CORSOrigins       []string
	LogLevel          slog.Level
	ReadHeaderTimeout time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

func Load() *Config {
	return &Config{
		Port:              getenvAny("8001", "PORT", "API_PORT"),
		DBDriver:          getenv("DB_DRIVER", "mongo"),
		MongoURI:          getenvAny("mongodb://localhost:27017", "MONGO_URI", "MONGO_URL"),
		MongoDB:           getenvAny("terceirizacao", "MONGO_DB", "DB_NAME"),
		PostgresDSN:       getenv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=terceirizacao port=5432 sslmode=disable"),
		RabbitURI:         getenvAny("", "RABBITMQ_URL", "RABBIT_URI"),
		RabbitQueue:       getenvAny(DefaultQueue, "RABBITMQ_QUEUE", "RABBIT_QUEUE"),
		CORSOrigins:       splitList(getenv("CORS_ORIGINS", "*")),
		LogLevel:          ParseLevel(getenv("LOG_LEVEL", "info")),
		ReadHeaderTimeout: parseDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		RequestTimeout:    parseDuration("REQUEST_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
