package stockcalc

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"partstock/internal/domain"
)

// Record é um registro datado com um valor numérico a ser somado no relatório.
type Record struct {
	Date  time.Time
	Value decimal.Decimal
}

// WeekNumber devolve o ano e a semana ISO-8601 da data.
// A data é deslocada para a quinta-feira da mesma semana; a semana é o
// teto de (dia do ano / 7) dessa quinta-feira.
func WeekNumber(t time.Time) (year, week int) {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // domingo é o último dia da semana ISO
	}
	thursday := d.AddDate(0, 0, 4-weekday)

	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	dayOfYear := int(thursday.Sub(yearStart).Hours()/24) + 1

	return thursday.Year(), (dayOfYear + 6) / 7
}

// PeriodKey devolve a chave do período da data para a granularidade informada.
// As chaves têm largura fixa para que a ordenação lexicográfica seja cronológica.
func PeriodKey(t time.Time, granularity domain.Granularity) string {
	switch granularity {
	case domain.GranularityWeek:
		year, week := WeekNumber(t)
		return fmt.Sprintf("%04d-W%02d", year, week)
	case domain.GranularityYear:
		return fmt.Sprintf("%04d", t.Year())
	default:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	}
}

// Group agrupa os registros por período, contando e somando Value.
// Os grupos saem do período mais recente para o mais antigo.
func Group(records []Record, granularity domain.Granularity) []domain.PeriodGroup {
	index := make(map[string]int)
	groups := make([]domain.PeriodGroup, 0)

	for _, rec := range records {
		key := PeriodKey(rec.Date, granularity)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.PeriodGroup{Key: key, Sum: decimal.Zero})
		}
		groups[i].Count++
		groups[i].Sum = groups[i].Sum.Add(rec.Value)
	}

	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Key > groups[b].Key
	})
	return groups
}
