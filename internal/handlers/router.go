package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/repository"
)

type collection interface {
	List(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	setTimeout(time.Duration)
}

// NewRouter monta /api sobre o backend escolhido. pub pode ser nil
// (publicação de eventos desligada).
func NewRouter(b *repository.Backend, pub Publisher, timeout time.Duration) *mux.Router {
	funcionarios := NewResource(models.KindFuncionario, b.Funcionarios, pub, validateFuncionario,
		func(m models.Meta, in models.FuncionarioInput) models.Funcionario {
			return models.Funcionario{Meta: m, FuncionarioInput: in}
		},
		func(in models.FuncionarioInput) string { return in.Nome })
	funcionarios.NotFound = "Funcionário não encontrado"

	resources := map[models.Kind]collection{
		models.KindEmpresa: NewResource(models.KindEmpresa, b.Empresas, pub, validateEmpresa,
			func(m models.Meta, in models.EmpresaInput) models.Empresa {
				return models.Empresa{Meta: m, EmpresaInput: in}
			},
			func(in models.EmpresaInput) string { return in.RazaoSocial }),
		models.KindCliente: NewResource(models.KindCliente, b.Clientes, pub, validateCliente,
			func(m models.Meta, in models.ClienteInput) models.Cliente {
				return models.Cliente{Meta: m, ClienteInput: in}
			},
			func(in models.ClienteInput) string { return in.RazaoSocial }),
		models.KindFuncao: NewResource(models.KindFuncao, b.Funcoes, pub, validateFuncao,
			func(m models.Meta, in models.FuncaoInput) models.Funcao {
				return models.Funcao{Meta: m, FuncaoInput: in}
			},
			func(in models.FuncaoInput) string { return in.Nome }),
		models.KindFuncionario: funcionarios,
		models.KindPresenca: NewResource(models.KindPresenca, b.Presencas, pub, validatePresenca,
			func(m models.Meta, in models.RegistroPresencaInput) models.RegistroPresenca {
				return models.RegistroPresenca{Meta: m, RegistroPresencaInput: in}
			},
			func(in models.RegistroPresencaInput) string { return in.Data }),
		models.KindAtestado: NewResource(models.KindAtestado, b.Atestados, pub, validateAtestado,
			func(m models.Meta, in models.AtestadoInput) models.Atestado {
				return models.Atestado{Meta: m, AtestadoInput: in}
			},
			func(in models.AtestadoInput) string { return in.CID }),
		models.KindLicenca: NewResource(models.KindLicenca, b.Licencas, pub, validateLicenca,
			func(m models.Meta, in models.LicencaInput) models.Licenca {
				return models.Licenca{Meta: m, LicencaInput: in}
			},
			func(in models.LicencaInput) string { return string(in.Tipo) }),
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", Root).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", (&DashboardHandler{Stats: b.Stats}).Get).Methods(http.MethodGet)
	for _, kind := range models.Kinds {
		h := resources[kind]
		h.setTimeout(timeout)
		api.HandleFunc(kind.Path(), h.List).Methods(http.MethodGet)
		api.HandleFunc(kind.Path(), h.Create).Methods(http.MethodPost)
	}
	api.HandleFunc(models.KindFuncionario.Path()+"/{id}", funcionarios.Get).Methods(http.MethodGet)

	return r
}
