package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// GrowthPercent calcula a variação percentual de previous para current.
// Sem base de comparação (previous == 0) a variação é zero.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace((current - previous) / math.Abs(previous) * 100)
}

// Percent retorna part/total em porcentagem com duas casas
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / total * 100)
}
