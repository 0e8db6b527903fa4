package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/Werneck0live/gestao-terceirizados/internal/broker"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

type repoMock[T any] struct {
	CreateFn  func(ctx context.Context, doc *T) error
	GetAllFn  func(ctx context.Context, limit int64) ([]T, error)
	GetByIDFn func(ctx context.Context, id string) (*T, error)
	CountFn   func(ctx context.Context) (int64, error)
}

func (m *repoMock[T]) Create(ctx context.Context, doc *T) error {
	if m.CreateFn == nil {
		return errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, doc)
}
func (m *repoMock[T]) GetAll(ctx context.Context, limit int64) ([]T, error) {
	if m.GetAllFn == nil {
		return nil, errors.New("GetAllFn not set")
	}
	return m.GetAllFn(ctx, limit)
}
func (m *repoMock[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *repoMock[T]) Count(ctx context.Context) (int64, error) {
	if m.CountFn == nil {
		return 0, errors.New("CountFn not set")
	}
	return m.CountFn(ctx)
}

type statsMock struct {
	StatsFn func(ctx context.Context, today string) (models.DashboardStats, error)
}

func (m *statsMock) Stats(ctx context.Context, today string) (models.DashboardStats, error) {
	if m.StatsFn == nil {
		return models.DashboardStats{}, errors.New("StatsFn not set")
	}
	return m.StatsFn(ctx, today)
}

// pubMock guarda os eventos publicados
type pubMock struct {
	mu        sync.Mutex
	events    []broker.Event
	PublishFn func(ctx context.Context, ev broker.Event) error
}

func (p *pubMock) Publish(ctx context.Context, ev broker.Event) error {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
	if p.PublishFn == nil {
		return nil
	}
	return p.PublishFn(ctx, ev)
}

func (p *pubMock) Events() []broker.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]broker.Event(nil), p.events...)
}
