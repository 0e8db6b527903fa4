package forms

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

func mustSet(t *testing.T, d Draft, kv ...string) Draft {
	t.Helper()
	for i := 0; i+1 < len(kv); i += 2 {
		var err error
		if d, err = d.Set(kv[i], kv[i+1]); err != nil {
			t.Fatalf("Set(%s): %v", kv[i], err)
		}
	}
	return d
}

func TestSet_DoesNotMutateOriginal(t *testing.T) {
	orig := Empresa{}
	next, err := orig.Set("razao_social", "Acme")
	if err != nil {
		t.Fatal(err)
	}
	if orig.RazaoSocial != "" {
		t.Fatal("original draft changed")
	}
	if next.Get("razao_social") != "Acme" {
		t.Fatalf("next = %#v", next)
	}
}

func TestSet_UnknownField(t *testing.T) {
	_, err := Funcao{}.Set("salario", "1")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		dec  float64
		intg int
	}{
		{"1500.50", 1500.5, 1500},
		{"1.500,50", 1500.5, 0},
		{"1,500.50", 1500.5, 0},
		{"1500,50", 1500.5, 0},
		{"1.234.567,89", 1234567.89, 0},
		{"abc", 0, 0},
		{"", 0, 0},
		{"NaN", 0, 0},
		{"3", 3, 3},
		{" 7 ", 7, 7},
	}
	for _, tt := range tests {
		if got := ParseDecimal(tt.in); got != tt.dec {
			t.Errorf("ParseDecimal(%q) = %v; want %v", tt.in, got, tt.dec)
		}
		if got := ParseInt(tt.in); got != tt.intg {
			t.Errorf("ParseInt(%q) = %v; want %v", tt.in, got, tt.intg)
		}
	}
}

func TestCliente_PayloadCoercesValor(t *testing.T) {
	d := mustSet(t, Cliente{}, "valor_contrato", "1500.50", "area_atuacao", "hospital")
	in := d.Payload().(models.ClienteInput)
	if in.ValorContrato != 1500.5 || in.AreaAtuacao != models.AreaHospital {
		t.Fatalf("payload = %#v", in)
	}
}

func TestAtestado_GarbageDaysBecomeZero(t *testing.T) {
	d := mustSet(t, Atestado{}, "dias_afastamento", "três")
	in := d.Payload().(models.AtestadoInput)
	if in.DiasAfastamento != 0 {
		t.Fatalf("dias = %d; want 0", in.DiasAfastamento)
	}
	if err := d.Validate(); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("validate = %v; want ErrInvalidNumber", err)
	}
}

func TestPresenca_PresenteOmitsTipoFalta(t *testing.T) {
	d := mustSet(t, NewPresenca(), "funcionario_id", "f1", "data", "2025-03-10")
	if _, err := d.Set("tipo_falta", "Justificada"); !errors.Is(err, ErrHiddenField) {
		t.Fatalf("tipo_falta while presente: err = %v", err)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	body, _ := json.Marshal(d.Payload())
	var m map[string]any
	_ = json.Unmarshal(body, &m)
	if _, ok := m["tipo_falta"]; ok {
		t.Fatalf("tipo_falta must be omitted: %s", body)
	}
	if m["presente"] != true {
		t.Fatalf("presente = %v", m["presente"])
	}
}

func TestPresenca_AusenteRequiresTipo(t *testing.T) {
	d := mustSet(t, NewPresenca(), "funcionario_id", "f1", "data", "2025-03-10", "presente", "false")
	if err := d.Validate(); !errors.Is(err, ErrInvalidAbsence) {
		t.Fatalf("err = %v; want ErrInvalidAbsence", err)
	}

	d = mustSet(t, d, "tipo_falta", "Atraso")
	if err := d.Validate(); !errors.Is(err, ErrInvalidAbsence) {
		t.Fatalf("err = %v; want ErrInvalidAbsence", err)
	}

	d = mustSet(t, d, "tipo_falta", "Não Justificada")
	if err := d.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	in := d.Payload().(models.RegistroPresencaInput)
	if in.Presente || in.TipoFalta != models.FaltaNaoJustificada {
		t.Fatalf("payload = %#v", in)
	}

	// voltar para presente descarta o tipo
	d = mustSet(t, d, "presente", "true")
	if d.Get("tipo_falta") != "" {
		t.Fatalf("tipo_falta = %q after presente", d.Get("tipo_falta"))
	}
}

func TestFuncionario_Dependentes(t *testing.T) {
	d := NewFuncionario()
	if _, err := d.Set("quantidade_dependentes", "2"); !errors.Is(err, ErrHiddenField) {
		t.Fatalf("err = %v", err)
	}
	in := d.Payload().(models.FuncionarioInput)
	if in.TemDependentes || in.QuantidadeDependentes != 0 {
		t.Fatalf("payload = %#v", in)
	}

	dd := mustSet(t, d, "tem_dependentes", "true", "quantidade_dependentes", "2", "salario", "1850.75")
	in = dd.Payload().(models.FuncionarioInput)
	if !in.TemDependentes || in.QuantidadeDependentes != 2 || in.Salario != 1850.75 {
		t.Fatalf("payload = %#v", in)
	}

	var hasQtd bool
	for _, f := range dd.Fields() {
		hasQtd = hasQtd || f.Name == "quantidade_dependentes"
	}
	if !hasQtd {
		t.Fatal("quantidade_dependentes must be visible with dependentes")
	}

	dd = mustSet(t, dd, "tem_dependentes", "false")
	if dd.Get("quantidade_dependentes") != "0" {
		t.Fatalf("quantidade = %q", dd.Get("quantidade_dependentes"))
	}
}

func TestValidate_RequiredAndDate(t *testing.T) {
	d := mustSet(t, Licenca{}, "data_inicio", "10/03/2025")
	err := d.Validate()
	if !errors.Is(err, ErrRequired) || !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("err must carry *FieldError: %v", err)
	}
}

func TestNew_AllKinds(t *testing.T) {
	for _, k := range models.Kinds {
		d, err := New(k)
		if err != nil {
			t.Fatalf("New(%s): %v", k, err)
		}
		if d.Kind() != k {
			t.Fatalf("kind = %s; want %s", d.Kind(), k)
		}
		if len(d.Fields()) == 0 {
			t.Fatalf("%s has no fields", k)
		}
	}
	if _, err := New("foguetes"); !errors.Is(err, models.ErrUnknownKind) {
		t.Fatalf("err = %v", err)
	}
}
