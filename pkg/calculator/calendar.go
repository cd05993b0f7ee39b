package calculator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/samber/lo"
)

var weekdayJA = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// dayPattern matches headers like "10/18", "10/18(日)"; no zero padding.
func dayPattern(d time.Time) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%d/%d(?:\(|$)`, int(d.Month()), d.Day()))
}

// DateColumn returns the first header for day d.
func DateColumn(headers []string, d time.Time) (string, bool) {
	re := dayPattern(d)
	return lo.Find(headers, func(h string) bool { return re.MatchString(h) })
}

// DateColumns returns one header per calendar day in [from, to], skipping
// days without a column. from after to yields nothing.
func DateColumns(headers []string, from, to time.Time) []string {
	var cols []string
	for _, d := range daysBetweenInclusive(from, to) {
		if c, ok := DateColumn(headers, d); ok {
			cols = append(cols, c)
		}
	}
	return cols
}

func daysBetweenInclusive(start, end time.Time) []time.Time {
	cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	var out []time.Time
	for !cur.After(last) {
		out = append(out, cur)
		cur = cur.AddDate(0, 0, 1)
	}
	return out
}

// ReportDates returns today's date in loc, the 1st of the month and yesterday.
func ReportDates(now time.Time, loc *time.Location) (today, firstDay, yesterday time.Time) {
	n := now.In(loc)
	today = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	firstDay = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	yesterday = today.AddDate(0, 0, -1)
	return today, firstDay, yesterday
}

// SheetName is the default worksheet for a day: "YYYYMM".
func SheetName(t time.Time) string {
	return fmt.Sprintf("%04d%02d", t.Year(), int(t.Month()))
}

// DayLabel renders "M/D(曜)".
func DayLabel(d time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(d.Month()), d.Day(), weekdayJA[d.Weekday()])
}
