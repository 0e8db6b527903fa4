package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown entity kind")

// Kind identifies one of the seven collections; its value is the REST path segment.
type Kind string

const (
	KindEmpresa     Kind = "empresas"
	KindCliente     Kind = "clientes"
	KindFuncao      Kind = "funcoes"
	KindFuncionario Kind = "funcionarios"
	KindPresenca    Kind = "presenca"
	KindAtestado    Kind = "atestados"
	KindLicenca     Kind = "licencas"
)

// Kinds lista as coleções na ordem das abas do painel.
var Kinds = []Kind{
	KindEmpresa,
	KindCliente,
	KindFuncao,
	KindFuncionario,
	KindPresenca,
	KindAtestado,
	KindLicenca,
}

var kindAliases = map[string]Kind{
	"empresa":     KindEmpresa,
	"cliente":     KindCliente,
	"funcao":      KindFuncao,
	"função":      KindFuncao,
	"funções":     KindFuncao,
	"funcionario": KindFuncionario,
	"funcionário": KindFuncionario,
	"presença":    KindPresenca,
	"atestado":    KindAtestado,
	"licenca":     KindLicenca,
	"licença":     KindLicenca,
	"licenças":    KindLicenca,
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) Path() string { return "/" + string(k) }

// Label é o nome usado nas mensagens de evento ("Cadastro de EMPRESA ...").
func (k Kind) Label() string {
	switch k {
	case KindEmpresa:
		return "EMPRESA"
	case KindCliente:
		return "CLIENTE"
	case KindFuncao:
		return "FUNÇÃO"
	case KindFuncionario:
		return "FUNCIONÁRIO"
	case KindPresenca:
		return "PRESENÇA"
	case KindAtestado:
		return "ATESTADO"
	case KindLicenca:
		return "LICENÇA"
	}
	return strings.ToUpper(string(k))
}

func (k Kind) Title() string {
	switch k {
	case KindEmpresa:
		return "Empresas"
	case KindCliente:
		return "Clientes"
	case KindFuncao:
		return "Funções"
	case KindFuncionario:
		return "Funcionários"
	case KindPresenca:
		return "Presença"
	case KindAtestado:
		return "Atestados"
	case KindLicenca:
		return "Licenças"
	}
	return string(k)
}
