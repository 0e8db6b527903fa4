package repository

import (
	"context"
	"sync"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// Keyed é satisfeito por toda entidade via models.Meta.
type Keyed interface {
	Key() string
}

// MemCollection guarda os registros em memória, na ordem de inserção.
// Usado com DB_DRIVER=memory e nos testes.
type MemCollection[T Keyed] struct {
	mu    sync.RWMutex
	items []T
	byID  map[string]int
}

func NewMemCollection[T Keyed]() *MemCollection[T] {
	return &MemCollection[T]{byID: make(map[string]int)}
}

func (r *MemCollection[T]) Create(_ context.Context, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := (*doc).Key()
	if _, ok := r.byID[id]; ok {
		return ErrDuplicateID
	}
	r.byID[id] = len(r.items)
	r.items = append(r.items, *doc)
	return nil
}

func (r *MemCollection[T]) GetAll(_ context.Context, limit int64) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := int64(len(r.items))
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, n)
	copy(out, r.items[:n])
	return out, nil
}

func (r *MemCollection[T]) GetByID(_ context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	doc := r.items[i]
	return &doc, nil
}

func (r *MemCollection[T]) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *MemCollection[T]) countWhere(match func(T) bool) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, it := range r.items {
		if match(it) {
			n++
		}
	}
	return n
}

type memStats struct {
	b         *Backend
	presencas *MemCollection[models.RegistroPresenca]
	atestados *MemCollection[models.Atestado]
}

func (s *memStats) Stats(ctx context.Context, today string) (models.DashboardStats, error) {
	var out models.DashboardStats
	if err := s.b.totals(ctx, &out); err != nil {
		return out, err
	}
	out.FuncionariosPresentesHoje = s.presencas.countWhere(func(p models.RegistroPresenca) bool {
		return p.Data == today && p.Presente
	})
	out.FuncionariosAusentesHoje = s.presencas.countWhere(func(p models.RegistroPresenca) bool {
		return p.Data == today && !p.Presente
	})
	out.AtestadosAtivos = s.atestados.countWhere(func(a models.Atestado) bool {
		return a.Ativo(today)
	})
	return out, nil
}

func NewMemoryBackend() *Backend {
	presencas := NewMemCollection[models.RegistroPresenca]()
	atestados := NewMemCollection[models.Atestado]()
	b := &Backend{
		Empresas:     NewMemCollection[models.Empresa](),
		Clientes:     NewMemCollection[models.Cliente](),
		Funcoes:      NewMemCollection[models.Funcao](),
		Funcionarios: NewMemCollection[models.Funcionario](),
		Presencas:    presencas,
		Atestados:    atestados,
		Licencas:     NewMemCollection[models.Licenca](),
	}
	b.Stats = &memStats{b: b, presencas: presencas, atestados: atestados}
	return b
}
