package utils

import "strings"

// OnlyDigits mantém só 0-9 ASCII; dígitos de outros alfabetos são descartados.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatCNPJ devolve 00.000.000/0000-00 quando houver exatamente 14 dígitos;
// caso contrário devolve a entrada como veio (o cadastro não valida o documento).
func FormatCNPJ(s string) string {
	d := OnlyDigits(s)
	if len(d) != 14 {
		return s
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// FormatCPF segue a mesma regra: 000.000.000-00 com 11 dígitos.
func FormatCPF(s string) string {
	d := OnlyDigits(s)
	if len(d) != 11 {
		return s
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}
