// Package forms guarda o rascunho de cada formulário de cadastro.
//
// Rascunhos são valores: Set devolve uma cópia com um campo alterado e
// nunca muda o original.
package forms

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrHiddenField    = errors.New("field not available in current state")
	ErrInvalidAbsence = errors.New("ausência exige tipo_falta Justificada ou Não Justificada")
	ErrRequired       = errors.New("required")
	ErrInvalidDate    = errors.New("invalid date (YYYY-MM-DD)")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrInvalidOption  = errors.New("invalid option")
)

type Draft interface {
	Kind() models.Kind
	// Set devolve um novo rascunho com field = value.
	Set(field, value string) (Draft, error)
	Get(field string) string
	// Fields lista os campos visíveis no estado atual, na ordem do formulário.
	Fields() []Field
	Validate() error
	// Payload monta o corpo do POST já com os números convertidos.
	Payload() any
}

type FieldType int

const (
	Text FieldType = iota
	Date
	Decimal
	Integer
	Bool
	Choice
)

// Field descreve um campo para o formulário e para a validação.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Required bool
	Options  []string
}

// FieldError identifica o campo que falhou na validação.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *FieldError) Unwrap() error { return e.Err }

// New devolve o rascunho vazio do kind.
func New(kind models.Kind) (Draft, error) {
	switch kind {
	case models.KindEmpresa:
		return Empresa{}, nil
	case models.KindCliente:
		return Cliente{}, nil
	case models.KindFuncao:
		return Funcao{}, nil
	case models.KindFuncionario:
		return NewFuncionario(), nil
	case models.KindPresenca:
		return NewPresenca(), nil
	case models.KindAtestado:
		return Atestado{}, nil
	case models.KindLicenca:
		return Licenca{}, nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
}

// binding liga um Field ao ponteiro do valor dentro do rascunho D.
type binding[D any] struct {
	Field
	ptr func(*D) *string
}

func set[D any](d D, bs []binding[D], name, value string) (D, error) {
	for _, b := range bs {
		if b.Name == name {
			*b.ptr(&d) = value
			return d, nil
		}
	}
	return d, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func get[D any](d D, bs []binding[D], name string) string {
	for _, b := range bs {
		if b.Name == name {
			return *b.ptr(&d)
		}
	}
	return ""
}

func fields[D any](bs []binding[D]) []Field {
	out := make([]Field, len(bs))
	for i, b := range bs {
		out[i] = b.Field
	}
	return out
}

func validate[D any](d D, bs []binding[D]) error {
	var errs []error
	for _, b := range bs {
		if err := checkField(b.Field, *b.ptr(&d)); err != nil {
			errs = append(errs, &FieldError{Field: b.Name, Err: err})
		}
	}
	return errors.Join(errs...)
}

// checkField reproduz required + type=date/number do formulário.
func checkField(f Field, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		if f.Required {
			return ErrRequired
		}
		return nil
	}
	switch f.Type {
	case Date:
		if _, err := time.Parse(models.DateLayout, v); err != nil {
			return ErrInvalidDate
		}
	case Decimal:
		f, err := strconv.ParseFloat(normalizeDecimal(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrInvalidNumber
		}
	case Integer:
		if _, err := strconv.Atoi(v); err != nil {
			return ErrInvalidNumber
		}
	case Choice:
		if !slices.Contains(f.Options, v) {
			return ErrInvalidOption
		}
	}
	return nil
}

// normalizeDecimal trata o último separador ('.' ou ',') como a vírgula
// decimal e descarta os demais: "1.500,50" e "1,500.50" viram "1500.50".
func normalizeDecimal(s string) string {
	s = strings.TrimSpace(s)
	i := strings.LastIndexAny(s, ".,")
	if i < 0 {
		return s
	}
	drop := strings.NewReplacer(".", "", ",", "")
	return drop.Replace(s[:i]) + "." + s[i+1:]
}

// ParseDecimal converte o texto do formulário; entrada inválida vira 0.
func ParseDecimal(s string) float64 {
	f, err := strconv.ParseFloat(normalizeDecimal(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseInt converte o texto do formulário; entrada inválida vira 0.
// Aceita "3.0" truncando, como parseInt faria.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && math.Abs(f) < math.MaxInt32 {
		return int(f)
	}
	return 0
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "sim", "s", "1", "yes":
		return true, nil
	case "false", "não", "nao", "n", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool %q", s)
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func options[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
