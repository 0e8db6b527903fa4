package repository

import (
	"context"
	"errors"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("id already exists")
)

// MaxList limita cada listagem (o cliente não pagina).
const MaxList int64 = 1000

// Repo é o contrato comum aos três backends (mongo, postgres, memória).
type Repo[T any] interface {
	Create(ctx context.Context, doc *T) error
	GetAll(ctx context.Context, limit int64) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Count(ctx context.Context) (int64, error)
}

// StatsSource calcula o resumo do dashboard para a data today (YYYY-MM-DD).
type StatsSource interface {
	Stats(ctx context.Context, today string) (models.DashboardStats, error)
}

type Backend struct {
	Empresas     Repo[models.Empresa]
	Clientes     Repo[models.Cliente]
	Funcoes      Repo[models.Funcao]
	Funcionarios Repo[models.Funcionario]
	Presencas    Repo[models.RegistroPresenca]
	Atestados    Repo[models.Atestado]
	Licencas     Repo[models.Licenca]
	Stats        StatsSource
}

// totals preenche as três contagens simples, iguais em todos os backends.
func (b *Backend) totals(ctx context.Context, s *models.DashboardStats) error {
	var err error
	if s.TotalFuncionarios, err = b.Funcionarios.Count(ctx); err != nil {
		return err
	}
	if s.TotalClientes, err = b.Clientes.Count(ctx); err != nil {
		return err
	}
	s.TotalEmpresas, err = b.Empresas.Count(ctx)
	return err
}
