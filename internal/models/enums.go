package models

type AreaAtuacao string

const (
	AreaCondominio AreaAtuacao = "condominio"
	AreaEscritorio AreaAtuacao = "escritorio"
	AreaAcademia   AreaAtuacao = "academia"
	AreaHospital   AreaAtuacao = "hospital"
	AreaShopping   AreaAtuacao = "shopping"
	AreaEscola     AreaAtuacao = "escola"
)

var AreasAtuacao = []AreaAtuacao{AreaCondominio, AreaEscritorio, AreaAcademia, AreaHospital, AreaShopping, AreaEscola}

// NomesFuncao são as funções oferecidas no cadastro.
var NomesFuncao = []string{
	"Porteiro",
	"Controle de Acesso",
	"Ronda",
	"Recepcionista",
	"Auxiliar Multifuncional",
	"Servente de Limpeza",
}

type Escolaridade string

const (
	FundamentalIncompleto Escolaridade = "Fundamental Incompleto"
	FundamentalCompleto   Escolaridade = "Fundamental Completo"
	MedioIncompleto       Escolaridade = "Médio Incompleto"
	MedioCompleto         Escolaridade = "Médio Completo"
	SuperiorIncompleto    Escolaridade = "Superior Incompleto"
	SuperiorCompleto      Escolaridade = "Superior Completo"
)

var Escolaridades = []Escolaridade{
	FundamentalIncompleto, FundamentalCompleto,
	MedioIncompleto, MedioCompleto,
	SuperiorIncompleto, SuperiorCompleto,
}

type EstadoCivil string

const (
	Solteiro   EstadoCivil = "Solteiro"
	Casado     EstadoCivil = "Casado"
	Divorciado EstadoCivil = "Divorciado"
	Viuvo      EstadoCivil = "Viúvo"
)

var EstadosCivis = []EstadoCivil{Solteiro, Casado, Divorciado, Viuvo}

type TipoFalta string

const (
	FaltaJustificada    TipoFalta = "Justificada"
	FaltaNaoJustificada TipoFalta = "Não Justificada"
)

var TiposFalta = []TipoFalta{FaltaJustificada, FaltaNaoJustificada}

type TipoLicenca string

const (
	LicencaMaternidade TipoLicenca = "Maternidade"
	LicencaPaternidade TipoLicenca = "Paternidade"
	LicencaNojo        TipoLicenca = "Nojo"
	LicencaCasamento   TipoLicenca = "Casamento"
	LicencaMedica      TipoLicenca = "Médica"
)

var TiposLicenca = []TipoLicenca{LicencaMaternidade, LicencaPaternidade, LicencaNojo, LicencaCasamento, LicencaMedica}

func (a AreaAtuacao) Valid() bool  { return contains(AreasAtuacao, a) }
func (e Escolaridade) Valid() bool { return contains(Escolaridades, e) }
func (e EstadoCivil) Valid() bool  { return contains(EstadosCivis, e) }
func (t TipoFalta) Valid() bool    { return contains(TiposFalta, t) }
func (t TipoLicenca) Valid() bool  { return contains(TiposLicenca, t) }

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
