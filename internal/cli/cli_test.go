package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Werneck0live/gestao-terceirizados/internal/config"
	"github.com/Werneck0live/gestao-terceirizados/internal/handlers"
	"github.com/Werneck0live/gestao-terceirizados/internal/repository"
)

func newBackend(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(handlers.NewRouter(repository.NewMemoryBackend(), nil, 0))
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func createEmpresa(t *testing.T, url string) {
	t.Helper()
	out, err := run(t, "create", "empresas", "--backend-url", url,
		"--set", "razao_social=Acme Serviços Ltda", "--set", "cnpj=11222333000181",
		"--set", "logradouro=Rua A, 10", "--set", "cep=24000-000",
		"--set", "cidade=Niterói", "--set", "estado=RJ")
	if err != nil {
		t.Fatalf("create: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"razao_social": "Acme Serviços Ltda"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestCreateThenList(t *testing.T) {
	url := newBackend(t)
	createEmpresa(t, url)

	out, err := run(t, "list", "empresas", "--backend-url", url)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Acme Serviços Ltda") || !strings.Contains(out, "Niterói/RJ") {
		t.Fatalf("list output missing empresa:\n%s", out)
	}
}

func TestDashboard(t *testing.T) {
	url := newBackend(t)
	createEmpresa(t, url)

	out, err := run(t, "dashboard", "--backend-url", url)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !strings.Contains(out, "Empresas") {
		t.Fatalf("dashboard output:\n%s", out)
	}
}

func TestCreate_Errors(t *testing.T) {
	url := newBackend(t)

	_, err := run(t, "create", "empresas", "--backend-url", url, "--set", "razao_social")
	if !errors.Is(err, ErrBadAssignment) {
		t.Fatalf("want ErrBadAssignment, got %v", err)
	}

	_, err = run(t, "create", "naves", "--backend-url", url)
	if err == nil {
		t.Fatal("unknown kind should fail")
	}

	// obrigatórios vazios não chegam ao backend
	_, err = run(t, "create", "empresas", "--backend-url", url, "--set", "razao_social=Só Nome")
	if err == nil {
		t.Fatal("incomplete draft should fail validation")
	}
	out, err := run(t, "list", "empresas", "--backend-url", url)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Nenhum registro.") {
		t.Fatalf("nothing should have been created:\n%s", out)
	}
}

func TestMissingBackendURL(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("PAINEL_BACKEND_URL", "")

	_, err := run(t, "dashboard")
	if !errors.Is(err, config.ErrMissingBackendURL) {
		t.Fatalf("want ErrMissingBackendURL, got %v", err)
	}
}

func TestFields_Offline(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("PAINEL_BACKEND_URL", "")

	out, err := run(t, "fields", "funcionarios")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	for _, want := range []string{"nome_mae", "tem_dependentes", "funcao_id"} {
		if !strings.Contains(out, want) {
			t.Errorf("fields output missing %q:\n%s", want, out)
		}
	}
}

func TestExport(t *testing.T) {
	url := newBackend(t)
	createEmpresa(t, url)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if _, err := run(t, "export", "--backend-url", url, "-o", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	v, err := f.GetCellValue("Empresas", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if v != "Acme Serviços Ltda" {
		t.Fatalf("Empresas!A2 = %q", v)
	}
}

func TestWatch_RequiresWSURL(t *testing.T) {
	url := newBackend(t)
	t.Setenv("PAINEL_WS_URL", "")
	_, err := run(t, "watch", "--backend-url", url)
	if !errors.Is(err, ErrMissingWSURL) {
		t.Fatalf("want ErrMissingWSURL, got %v", err)
	}
}
