package calculator

import (
	"ads-daily-report/pkg/models"

	"github.com/samber/lo"
)

// TotalRows keeps the rows of the aggregate media line. Without a media
// column every row is kept.
func TotalRows(t models.LongTable, totalLabel string) []models.LongRow {
	if !t.HasMedia {
		return t.Rows
	}
	return lo.Filter(t.Rows, func(r models.LongRow, _ int) bool {
		return r.Media == totalLabel
	})
}

// Aggregate sums rows per metric label over the window columns. Labels are
// listed in the order they first appear.
func Aggregate(rows []models.LongRow, columns []string) models.WindowSeries {
	inWindow := lo.SliceToMap(columns, func(c string) (string, struct{}) {
		return c, struct{}{}
	})
	out := models.WindowSeries{Values: map[string]float64{}}
	for _, r := range rows {
		if _, ok := inWindow[r.Date]; !ok {
			continue
		}
		if _, seen := out.Values[r.Metric]; !seen {
			out.Labels = append(out.Labels, r.Metric)
		}
		out.Values[r.Metric] += ToNumber(r.Value)
	}
	return out
}

// AggregateWindow is TotalRows followed by Aggregate.
func AggregateWindow(t models.LongTable, totalLabel string, columns []string) models.WindowSeries {
	return Aggregate(TotalRows(t, totalLabel), columns)
}
