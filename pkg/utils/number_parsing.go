package utils

import "strconv"

// ParseFloatOrZero converte uma string numérica para float64; valores vazios
// ou inválidos viram 0 em vez de propagar erro
func ParseFloatOrZero(s string) float64 {
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseIntOrZero converte uma string numérica para int; valores vazios ou
// inválidos viram 0 em vez de propagar erro
func ParseIntOrZero(s string) int {
	if s == "" {
		return 0
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		// Algumas plataformas devolvem contadores como decimais ("12.0")
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return v
}
