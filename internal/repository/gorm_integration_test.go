//go:build integration
// +build integration

package repository

/*
	Para Rodar: go test -tags=integration -v ./internal/repository -run TestGormBackend_Integration -count=1
*/

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/Werneck0live/gestao-terceirizados/internal/db"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// Exercita: AutoMigrate -> Create (dup) -> GetByID -> GetAll -> Stats no Postgres
func TestGormBackend_Integration_CreateGetStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pgC, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("terceirizacao"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("conn string: %v", err)
	}

	gdb, err := db.OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	b, err := NewGormBackend(gdb)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// AutoMigrate de novo não quebra
	if _, err := NewGormBackend(gdb); err != nil {
		t.Fatalf("migrate (2nd): %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	today := now.Format(models.DateLayout)

	// 1) Create + chave duplicada (TranslateError)
	emp := models.Empresa{
		Meta: models.Meta{ID: "e-1", CreatedAt: now},
		EmpresaInput: models.EmpresaInput{
			RazaoSocial: "Acme Ltda",
			CNPJ:        "12.345.678/0001-99",
			Logradouro:  "Rua X, 123",
			CEP:         "01000-000",
			Cidade:      "São Paulo",
			Estado:      "SP",
		},
	}
	if err := b.Empresas.Create(ctx, &emp); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := b.Empresas.Create(ctx, &emp); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("want ErrDuplicateID, got %v", err)
	}

	// 2) GetByID: colunas das structs embutidas voltam preenchidas
	got, err := b.Empresas.GetByID(ctx, "e-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RazaoSocial != "Acme Ltda" || got.Cidade != "São Paulo" || !got.CreatedAt.Equal(now) {
		t.Fatalf("get mismatch: %#v", got)
	}
	if _, err := b.Empresas.GetByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	// 3) Presença (ausente e presente) + atestados ativo e vencido
	for _, p := range []models.RegistroPresenca{
		{Meta: models.Meta{ID: "p-1", CreatedAt: now}, RegistroPresencaInput: models.RegistroPresencaInput{FuncionarioID: "f-1", Data: today, Presente: false, TipoFalta: models.FaltaJustificada}},
		{Meta: models.Meta{ID: "p-2", CreatedAt: now.Add(time.Second)}, RegistroPresencaInput: models.RegistroPresencaInput{FuncionarioID: "f-2", Data: today, Presente: true}},
		{Meta: models.Meta{ID: "p-3", CreatedAt: now.Add(2 * time.Second)}, RegistroPresencaInput: models.RegistroPresencaInput{FuncionarioID: "f-2", Data: "2000-01-01", Presente: true}},
	} {
		if err := b.Presencas.Create(ctx, &p); err != nil {
			t.Fatalf("presenca %s: %v", p.ID, err)
		}
	}
	for _, a := range []models.Atestado{
		{Meta: models.Meta{ID: "a-1", CreatedAt: now}, AtestadoInput: models.AtestadoInput{FuncionarioID: "f-1", DataRetornoPrevista: today, DiasAfastamento: 2}},
		{Meta: models.Meta{ID: "a-2", CreatedAt: now}, AtestadoInput: models.AtestadoInput{FuncionarioID: "f-1", DataRetornoPrevista: "2000-01-01", DiasAfastamento: 1}},
	} {
		if err := b.Atestados.Create(ctx, &a); err != nil {
			t.Fatalf("atestado %s: %v", a.ID, err)
		}
	}

	list, err := b.Presencas.GetAll(ctx, MaxList)
	if err != nil || len(list) != 3 {
		t.Fatalf("list presenca: %d err=%v", len(list), err)
	}
	if list[0].ID != "p-1" || list[0].TipoFalta != models.FaltaJustificada {
		t.Fatalf("ordem/colunas: %#v", list[0])
	}

	// 4) Stats
	s, err := b.Stats.Stats(ctx, today)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := models.DashboardStats{
		TotalEmpresas:             1,
		FuncionariosPresentesHoje: 1,
		FuncionariosAusentesHoje:  1,
		AtestadosAtivos:           1,
	}
	if s != want {
		t.Fatalf("stats = %+v; want %+v", s, want)
	}
}
