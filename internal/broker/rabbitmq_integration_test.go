//go:build integration
// +build integration

package broker

// go test -tags=integration -v ./internal/broker -count=1

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

func startRabbit(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "rabbitmq:3.13",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start rabbit: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5672/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

// publica pelo Publisher, injeta um corpo inválido e lê pelo Consumer
func TestPublisherConsumer_RoundTrip(t *testing.T) {
	uri := startRabbit(t)
	const queue = "cadastros_test"

	pub, err := NewPublisher(uri, queue)
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	t.Cleanup(func() { _ = pub.Close() })

	cons, err := NewConsumer(uri, queue, "test", 10, nil)
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}
	t.Cleanup(func() { _ = cons.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := pub.Publish(ctx, NewCadastro(models.KindCliente, "c-1", "Prefeitura de Niterói")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	// evento sem kind é descartado pelo Consumer
	bad := Event{Kind: "", Message: "Cadastro de EMPRESA x"}
	if err := pub.Publish(ctx, bad); err != nil {
		t.Fatalf("publish bad: %v", err)
	}
	if err := pub.Publish(ctx, NewCadastro(models.KindPresenca, "p-1", "Maria Souza")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	var got []Event
	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	err = cons.Run(runCtx, func(ev Event, body []byte) {
		if len(body) == 0 {
			t.Error("empty body")
		}
		got = append(got, ev)
		if len(got) == 2 {
			stop()
		}
	})
	if err != context.Canceled {
		t.Fatalf("run: %v (got %d events)", err, len(got))
	}
	if got[0].Message != "Cadastro de CLIENTE Prefeitura de Niterói" || got[0].ID != "c-1" {
		t.Fatalf("first event: %#v", got[0])
	}
	if got[1].Kind != models.KindPresenca {
		t.Fatalf("second event: %#v", got[1])
	}
}
