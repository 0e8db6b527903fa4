package render

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// BRL formata valores em reais: R$ 1.500,50.
func BRL(v float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}

// Int agrupa milhares no padrão brasileiro.
func Int(v int64) string {
	return ptBR.Sprintf("%v", number.Decimal(v))
}

// Date converte YYYY-MM-DD para DD/MM/AAAA; outro formato volta como veio.
func Date(s string) string {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
