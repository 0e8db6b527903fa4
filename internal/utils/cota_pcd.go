package utils

// CotaPCD é a reserva de vagas para PcD (Lei 8.213/91, art. 93) de um quadro.
type CotaPCD struct {
	Quadro     int
	Percentual float64
	Minimo     int
}

// CalcCotaPCD: <100 -> 0; 100–200 -> 2%; 201–500 -> 3%; 501–1000 -> 4%; 1001+ -> 5%.
// Fração arredonda para cima.
func CalcCotaPCD(quadro int) CotaPCD {
	c := CotaPCD{Quadro: quadro}
	var pct int
	switch {
	case quadro < 100:
		return c
	case quadro <= 200:
		pct = 2
	case quadro <= 500:
		pct = 3
	case quadro <= 1000:
		pct = 4
	default:
		pct = 5
	}
	c.Percentual = float64(pct) / 100
	// teto em aritmética inteira
	c.Minimo = (quadro*pct + 99) / 100
	return c
}
