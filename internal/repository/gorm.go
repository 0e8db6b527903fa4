package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

type GormCollection[T any] struct {
	db *gorm.DB
}

func NewGormCollection[T any](db *gorm.DB) *GormCollection[T] {
	return &GormCollection[T]{db: db}
}

func (r *GormCollection[T]) Create(ctx context.Context, doc *T) error {
	err := r.db.WithContext(ctx).Create(doc).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

func (r *GormCollection[T]) GetAll(ctx context.Context, limit int64) ([]T, error) {
	list := []T{}
	err := r.db.WithContext(ctx).Order("created_at asc").Limit(int(limit)).Find(&list).Error
	return list, err
}

func (r *GormCollection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var doc T
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *GormCollection[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

func (r *GormCollection[T]) countWhere(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&n).Error
	return n, err
}

type gormStats struct {
	b         *Backend
	presencas *GormCollection[models.RegistroPresenca]
	atestados *GormCollection[models.Atestado]
}

func (s *gormStats) Stats(ctx context.Context, today string) (models.DashboardStats, error) {
	var out models.DashboardStats
	var err error
	if err = s.b.totals(ctx, &out); err != nil {
		return out, err
	}
	if out.FuncionariosPresentesHoje, err = s.presencas.countWhere(ctx, "data = ? AND presente = ?", today, true); err != nil {
		return out, err
	}
	if out.FuncionariosAusentesHoje, err = s.presencas.countWhere(ctx, "data = ? AND presente = ?", today, false); err != nil {
		return out, err
	}
	out.AtestadosAtivos, err = s.atestados.countWhere(ctx, "data_retorno_prevista >= ?", today)
	return out, err
}

// NewGormBackend migra as sete tabelas e monta o backend Postgres.
func NewGormBackend(db *gorm.DB) (*Backend, error) {
	if err := db.AutoMigrate(
		&models.Empresa{},
		&models.Cliente{},
		&models.Funcao{},
		&models.Funcionario{},
		&models.RegistroPresenca{},
		&models.Atestado{},
		&models.Licenca{},
	); err != nil {
		return nil, err
	}

	presencas := NewGormCollection[models.RegistroPresenca](db)
	atestados := NewGormCollection[models.Atestado](db)
	b := &Backend{
		Empresas:     NewGormCollection[models.Empresa](db),
		Clientes:     NewGormCollection[models.Cliente](db),
		Funcoes:      NewGormCollection[models.Funcao](db),
		Funcionarios: NewGormCollection[models.Funcionario](db),
		Presencas:    presencas,
		Atestados:    atestados,
		Licencas:     NewGormCollection[models.Licenca](db),
	}
	b.Stats = &gormStats{b: b, presencas: presencas, atestados: atestados}
	return b, nil
}
