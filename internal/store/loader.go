package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// API é a parte do cliente REST que o Loader usa.
type API interface {
	List(ctx context.Context, kind models.Kind, dst any) error
	Create(ctx context.Context, kind models.Kind, payload any, dst any) error
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}

// Loader busca coleções no backend e despacha o replace no Store.
// Em falha a coleção atual fica como está.
type Loader struct {
	API   API
	Store *Store
	Log   *slog.Logger
}

func NewLoader(api API, st *Store, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{API: api, Store: st, Log: log.With("cmp", "store.loader")}
}

func fetch[T any](ctx context.Context, api API, kind models.Kind) ([]T, error) {
	var out []T
	if err := api.List(ctx, kind, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) FetchAll(ctx context.Context, kind models.Kind) error {
	var (
		act Action
		n   int
		err error
	)
	switch kind {
	case models.KindEmpresa:
		var v []models.Empresa
		v, err = fetch[models.Empresa](ctx, l.API, kind)
		act, n = ReplaceEmpresas(v), len(v)
	case models.KindCliente:
		var v []models.Cliente
		v, err = fetch[models.Cliente](ctx, l.API, kind)
		act, n = ReplaceClientes(v), len(v)
	case models.KindFuncao:
		var v []models.Funcao
		v, err = fetch[models.Funcao](ctx, l.API, kind)
		act, n = ReplaceFuncoes(v), len(v)
	case models.KindFuncionario:
		var v []models.Funcionario
		v, err = fetch[models.Funcionario](ctx, l.API, kind)
		act, n = ReplaceFuncionarios(v), len(v)
	case models.KindPresenca:
		var v []models.RegistroPresenca
		v, err = fetch[models.RegistroPresenca](ctx, l.API, kind)
		act, n = ReplacePresencas(v), len(v)
	case models.KindAtestado:
		var v []models.Atestado
		v, err = fetch[models.Atestado](ctx, l.API, kind)
		act, n = ReplaceAtestados(v), len(v)
	case models.KindLicenca:
		var v []models.Licenca
		v, err = fetch[models.Licenca](ctx, l.API, kind)
		act, n = ReplaceLicencas(v), len(v)
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
	if err != nil {
		l.Log.Error("fetch_failed", "kind", kind, "err", err)
		return fmt.Errorf("fetch %s: %w", kind, err)
	}
	l.Log.Debug("fetch_ok", "kind", kind, "count", n)
	return l.Store.Dispatch(act)
}

func (l *Loader) FetchDashboard(ctx context.Context) error {
	stats, err := l.API.Dashboard(ctx)
	if err != nil {
		l.Log.Error("fetch_failed", "kind", "dashboard", "err", err)
		return fmt.Errorf("fetch dashboard: %w", err)
	}
	return l.Store.Dispatch(ReplaceDashboard(stats))
}

// LoadAll dispara as oito buscas iniciais em paralelo.
func (l *Loader) LoadAll(ctx context.Context) error {
	return l.Refetch(ctx, true, models.Kinds...)
}

// Refetch busca kinds (e o dashboard, se pedido) em paralelo e junta os erros.
func (l *Loader) Refetch(ctx context.Context, dashboard bool, kinds ...models.Kind) error {
	var (
		wg   conc.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	collect := func(err error) {
		if err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	}
	for _, k := range kinds {
		wg.Go(func() { collect(l.FetchAll(ctx, k)) })
	}
	if dashboard {
		wg.Go(func() { collect(l.FetchDashboard(ctx)) })
	}
	wg.Wait()
	return errors.Join(errs...)
}
