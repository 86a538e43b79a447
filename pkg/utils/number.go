package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentChange retorna a variação relativa arredondada (em %) de actual sobre expected.
// O sinal segue a direção da variação mesmo com base negativa (ex: prejuízo).
// Retorna ok=false quando expected é zero.
func PercentChange(actual, expected float64) (float64, bool) {
	if expected == 0 {
		return 0, false
	}

	return math.Round((actual - expected) / math.Abs(expected) * 100), true
}
