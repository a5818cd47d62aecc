package utils

import (
	"fmt"
	"time"
)

// ParseDate converte uma data no formato YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, formato esperado YYYY-MM-DD: %w", dateStr, err)
	}

	return &date, nil
}

// PeriodRange retorna o intervalo [início, fim] de um período nomeado
// (7d, 30d, 90d, 12m) terminando em now.
func PeriodRange(period string, now time.Time) (time.Time, time.Time, error) {
	end := now
	switch period {
	case "", "30d":
		return end.AddDate(0, 0, -30), end, nil
	case "7d":
		return end.AddDate(0, 0, -7), end, nil
	case "90d":
		return end.AddDate(0, 0, -90), end, nil
	case "12m":
		return end.AddDate(-1, 0, 0), end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("período desconhecido: %s", period)
	}
}
