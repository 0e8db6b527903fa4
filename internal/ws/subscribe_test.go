package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Werneck0live/gestao-terceirizados/internal/broker"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

func TestSubscribe_ReceivesFilteredEvents(t *testing.T) {
	hub := NewHub(slog.Default())
	go hub.Run()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub, slog.Default()))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan broker.Event, 4)
	errc := make(chan error, 1)
	go func() {
		errc <- Subscribe(ctx, wsURL, []models.Kind{models.KindAtestado}, func(ev broker.Event) { got <- ev })
	}()

	// espera o cliente registrar no hub
	for hub.Len() == 0 {
		select {
		case <-ctx.Done():
			t.Fatal("client never registered")
		case <-time.After(10 * time.Millisecond):
		}
	}

	for _, ev := range []broker.Event{
		broker.NewCadastro(models.KindEmpresa, "e1", "Acme"),
		broker.NewCadastro(models.KindAtestado, "a1", "J11"),
	} {
		body, _ := json.Marshal(ev)
		hub.Broadcast(ev.Kind, body)
	}

	select {
	case ev := <-got:
		if ev.Kind != models.KindAtestado || ev.ID != "a1" {
			t.Fatalf("got %#v; want atestado a1", ev)
		}
	case <-ctx.Done():
		t.Fatal("timeout waiting event")
	}

	cancel()
	select {
	case <-errc:
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe did not return after cancel")
	}
	if len(got) != 0 {
		t.Fatalf("unexpected extra events: %d", len(got))
	}
}
