package submit

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Werneck0live/gestao-terceirizados/internal/apiclient"
	"github.com/Werneck0live/gestao-terceirizados/internal/handlers"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/repository"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
)

// ponta a ponta: backend em memória + handlers reais + cliente HTTP
func newStack(t *testing.T) (*store.Store, *Coordinator) {
	t.Helper()
	srv := httptest.NewServer(handlers.NewRouter(repository.NewMemoryBackend(), nil, 0))
	t.Cleanup(srv.Close)

	api, err := apiclient.New(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	st := store.New()
	loader := store.NewLoader(api, st, nil)
	if err := loader.LoadAll(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return st, New(loader, nil)
}

func set(t *testing.T, st *store.Store, kind models.Kind, kv ...string) {
	t.Helper()
	for i := 0; i+1 < len(kv); i += 2 {
		if err := st.Dispatch(store.SetField{Kind: kind, Field: kv[i], Value: kv[i+1]}); err != nil {
			t.Fatalf("set %s: %v", kv[i], err)
		}
	}
}

func TestSubmit_EmpresaUpdatesListAndDashboard(t *testing.T) {
	st, c := newStack(t)
	ctx := context.Background()

	set(t, st, models.KindEmpresa,
		"razao_social", "Acme Serviços Ltda", "cnpj", "11222333000181",
		"logradouro", "Rua A, 10", "cep", "24000-000", "cidade", "Niterói", "estado", "RJ")

	var created models.Empresa
	if err := c.Submit(ctx, models.KindEmpresa, &created); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created record has no id")
	}

	snap := st.Snapshot()
	if snap.Dashboard.TotalEmpresas != 1 {
		t.Fatalf("total_empresas = %d; want 1", snap.Dashboard.TotalEmpresas)
	}
	if snap.EmpresaNome(created.ID) != "Acme Serviços Ltda" {
		t.Fatalf("empresa not in list after refetch")
	}
	if snap.Drafts[models.KindEmpresa].Get("razao_social") != "" {
		t.Fatal("draft must be reset after success")
	}
	if snap.Submits[models.KindEmpresa] != store.Editing {
		t.Fatalf("state = %s; want editing", snap.Submits[models.KindEmpresa])
	}
}

func TestSubmit_FuncionarioWithUnknownFuncao(t *testing.T) {
	st, c := newStack(t)

	set(t, st, models.KindFuncionario,
		"nome", "Maria Souza", "cpf", "12345678909", "rg", "1234567", "telefone", "21999990000",
		"endereco", "Rua B, 20", "cidade", "Niterói", "estado", "RJ", "cep", "24000-000",
		"empresa_id", "emp-x", "cliente_id", "cli-x", "funcao_id", "funcao-inexistente",
		"posto_alocacao", "Portaria", "salario", "1850.75", "data_admissao", "2024-02-01",
		"estado_civil", "Solteiro", "escolaridade", "Médio Completo",
		"local_nascimento", "Niterói", "nacionalidade", "Brasileira", "nome_pai", "José", "nome_mae", "Ana",
		"data_emissao_rg", "2010-01-01", "orgao_emissor_rg", "DETRAN", "ctps", "998877",
		"data_emissao_ctps", "2012-05-05", "orgao_emissor_ctps", "MTE", "titulo_eleitor", "111",
		"zona_eleitoral", "22", "secao_eleitoral", "333", "matricula_esocial", "123", "cbo", "5174-10",
		"numero_pis", "444", "horario_trabalho", "07:00-19:00",
		"tem_dependentes", "true", "quantidade_dependentes", "2")

	var created models.Funcionario
	if err := c.Submit(context.Background(), models.KindFuncionario, &created); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Salario != 1850.75 || created.QuantidadeDependentes != 2 {
		t.Fatalf("coercion: %#v", created.FuncionarioInput)
	}

	snap := st.Snapshot()
	if snap.Funcionarios.Len() != 1 || snap.Dashboard.TotalFuncionarios != 1 {
		t.Fatalf("len=%d total=%d", snap.Funcionarios.Len(), snap.Dashboard.TotalFuncionarios)
	}
	f := snap.Funcionarios.Items()[0]
	if got := snap.FuncaoNome(f.FuncaoID); got != store.NotFound {
		t.Fatalf("funcao = %q; want %q", got, store.NotFound)
	}
}

func TestSubmit_PresencaAusente(t *testing.T) {
	st, c := newStack(t)
	today := time.Now().Format(models.DateLayout)

	set(t, st, models.KindPresenca, "funcionario_id", "f1", "data", today, "presente", "false")
	if err := c.Submit(context.Background(), models.KindPresenca, nil); err == nil {
		t.Fatal("ausência sem tipo deve falhar antes do envio")
	}

	set(t, st, models.KindPresenca, "tipo_falta", "Justificada")
	if err := c.Submit(context.Background(), models.KindPresenca, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := st.Snapshot().Dashboard.FuncionariosAusentesHoje; got != 1 {
		t.Fatalf("ausentes_hoje = %d; want 1", got)
	}
}

// rejeição do backend mantém o rascunho
func TestSubmit_BackendRejectsKeepsDraft(t *testing.T) {
	st, c := newStack(t)

	// nome fora da lista passa no formulário (select) mas o backend recusa
	set(t, st, models.KindFuncao, "descricao", "x", "cbo", "1")
	err := c.Submit(context.Background(), models.KindFuncao, nil)

	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 422 {
		t.Fatalf("err = %v; want 422 APIError", err)
	}
	if st.Draft(models.KindFuncao).Get("cbo") != "1" {
		t.Fatal("draft must be kept after failure")
	}
	if st.Snapshot().Submits[models.KindFuncao] != store.Editing {
		t.Fatal("must return to editing")
	}
}

// observa o estado do envio enquanto o refetch acontece
type stateSpyAPI struct {
	store.API
	st   *store.Store
	seen []store.SubmitState
}

func (s *stateSpyAPI) List(ctx context.Context, kind models.Kind, dst any) error {
	s.seen = append(s.seen, s.st.Snapshot().Submits[kind])
	return s.API.List(ctx, kind, dst)
}

func TestSubmit_EditingDuringRefetch(t *testing.T) {
	srv := httptest.NewServer(handlers.NewRouter(repository.NewMemoryBackend(), nil, 0))
	t.Cleanup(srv.Close)
	api, err := apiclient.New(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatal(err)
	}

	st := store.New()
	spy := &stateSpyAPI{API: api, st: st}
	c := New(store.NewLoader(spy, st, nil), nil)

	set(t, st, models.KindFuncao, "nome", "Porteiro", "descricao", "Portaria", "cbo", "5174-10")
	if err := c.Submit(context.Background(), models.KindFuncao, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(spy.seen) != 1 || spy.seen[0] != store.Editing {
		t.Fatalf("submit state during refetch = %v; want [editing]", spy.seen)
	}
}
