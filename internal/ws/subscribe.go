package ws

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/Werneck0live/gestao-terceirizados/internal/broker"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// Subscribe conecta no relay e chama fn para cada evento recebido até ctx
// ser cancelado ou a conexão cair. kinds vazio assina todos.
func Subscribe(ctx context.Context, wsURL string, kinds []models.Kind, fn func(broker.Event)) error {
	u, err := url.Parse(wsURL)
	if err != nil {
		return err
	}
	if len(kinds) > 0 {
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		q := u.Query()
		q.Set("kinds", strings.Join(names, ","))
		u.RawQuery = q.Encode()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// fecha a conexão quando o contexto acabar, destravando o ReadMessage
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			_ = conn.Close()
		case <-done:
		}
	}()

	log := slog.Default().With("cmp", "ws.subscribe")
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		ev, err := broker.DecodeEvent(msg)
		if err != nil {
			log.Warn("event_decode_failed", "err", err)
			continue
		}
		if ev.Kind == "" {
			log.Warn("event_without_kind", "message", ev.Message)
			continue
		}
		fn(ev)
	}
}
