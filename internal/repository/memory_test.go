package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

func empresa(id, nome string) *models.Empresa {
	return &models.Empresa{
		Meta:         models.Meta{ID: id, CreatedAt: time.Now()},
		EmpresaInput: models.EmpresaInput{RazaoSocial: nome},
	}
}

func TestMemCollection_CreateGetAll(t *testing.T) {
	ctx := context.Background()
	r := NewMemCollection[models.Empresa]()

	if err := r.Create(ctx, empresa("a", "Acme Ltda")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, empresa("b", "Beta SA")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, empresa("a", "dup")); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("want ErrDuplicateID, got %v", err)
	}

	list, _ := r.GetAll(ctx, MaxList)
	if len(list) != 2 || list[0].RazaoSocial != "Acme Ltda" || list[1].ID != "b" {
		t.Fatalf("insertion order not kept: %#v", list)
	}
	if list, _ := r.GetAll(ctx, 1); len(list) != 1 {
		t.Fatalf("limit ignored: %d", len(list))
	}

	got, err := r.GetByID(ctx, "b")
	if err != nil || got.RazaoSocial != "Beta SA" {
		t.Fatalf("get: %#v %v", got, err)
	}
	if _, err := r.GetByID(ctx, "zzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMemoryBackend_Stats(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	today := "2026-10-19"

	_ = b.Empresas.Create(ctx, empresa("e1", "Acme Ltda"))
	_ = b.Funcionarios.Create(ctx, &models.Funcionario{Meta: models.Meta{ID: "f1"}})
	_ = b.Funcionarios.Create(ctx, &models.Funcionario{Meta: models.Meta{ID: "f2"}})

	presencas := []models.RegistroPresencaInput{
		{FuncionarioID: "f1", Data: today, Presente: true},
		{FuncionarioID: "f2", Data: today, Presente: false, TipoFalta: models.FaltaJustificada},
		{FuncionarioID: "f1", Data: "2026-10-18", Presente: true},
	}
	for i, in := range presencas {
		p := models.RegistroPresenca{Meta: models.Meta{ID: string(rune('p' + i))}, RegistroPresencaInput: in}
		if err := b.Presencas.Create(ctx, &p); err != nil {
			t.Fatalf("presenca: %v", err)
		}
	}
	_ = b.Atestados.Create(ctx, &models.Atestado{Meta: models.Meta{ID: "a1"}, AtestadoInput: models.AtestadoInput{DataRetornoPrevista: "2026-10-25"}})
	_ = b.Atestados.Create(ctx, &models.Atestado{Meta: models.Meta{ID: "a2"}, AtestadoInput: models.AtestadoInput{DataRetornoPrevista: "2026-10-01"}})

	got, err := b.Stats.Stats(ctx, today)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := models.DashboardStats{
		TotalFuncionarios:         2,
		TotalClientes:             0,
		TotalEmpresas:             1,
		FuncionariosPresentesHoje: 1,
		FuncionariosAusentesHoje:  1,
		AtestadosAtivos:           1,
	}
	if got != want {
		t.Fatalf("stats = %+v; want %+v", got, want)
	}
}
