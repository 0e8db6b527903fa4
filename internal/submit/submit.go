package submit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
)

var ErrNoDraft = errors.New("no draft for kind")

// Coordinator envia o rascunho de um kind e, no sucesso, limpa o
// formulário e recarrega a coleção e o dashboard.
type Coordinator struct {
	Loader *store.Loader
	Log    *slog.Logger
}

func New(l *store.Loader, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{Loader: l, Log: log.With("cmp", "submit")}
}

// Submit não impede envio duplo: duas chamadas geram dois cadastros.
// O registro criado vai para dst quando dst != nil.
func (c *Coordinator) Submit(ctx context.Context, kind models.Kind, dst any) error {
	st := c.Loader.Store
	draft := st.Draft(kind)
	if draft == nil {
		return fmt.Errorf("%w: %q", ErrNoDraft, kind)
	}
	if err := draft.Validate(); err != nil {
		c.Log.Warn("submit_invalid", "kind", kind, "err", err)
		return err
	}

	_ = st.Dispatch(store.BeginSubmit{Kind: kind})
	err := c.Loader.API.Create(ctx, kind, draft.Payload(), dst)
	_ = st.Dispatch(store.EndSubmit{Kind: kind})
	if err != nil {
		c.Log.Error("submit_failed", "kind", kind, "err", err)
		return fmt.Errorf("create %s: %w", kind, err)
	}
	c.Log.Info("submit_ok", "kind", kind)

	_ = st.Dispatch(store.ResetDraft{Kind: kind})

	// a coleção e o dashboard já foram gravados; falha aqui só deixa a tela defasada
	if err := c.Loader.Refetch(ctx, true, kind); err != nil {
		c.Log.Warn("refetch_after_submit_failed", "kind", kind, "err", err)
	}
	return nil
}
