package calculator

import (
	"log"
	"os"
	"time"

	"ads-daily-report/pkg/models"

	"github.com/rotisserie/eris"
	"github.com/schollz/progressbar/v3"
)

// Run turns the sheet into the two window reports (month-to-date and
// yesterday). now is converted to loc before any calendar arithmetic.
func Run(table models.RawTable, cfg models.Config, now time.Time, loc *time.Location) (models.Report, error) {
	long, err := Reshape(table)
	if err != nil {
		return models.Report{}, eris.Wrap(err, "reshape")
	}

	today, firstDay, yesterday := ReportDates(now, loc)
	rep := models.Report{Today: today, FirstDay: firstDay, Yesterday: yesterday}

	rep.MTD.Columns = DateColumns(table.Header, firstDay, yesterday)
	if c, ok := DateColumn(table.Header, yesterday); ok {
		rep.Day.Columns = []string{c}
	}
	log.Printf("[INFO] MTD列: %v", rep.MTD.Columns)
	log.Printf("[INFO] 昨日列: %v", rep.Day.Columns)

	totals := TotalRows(long, cfg.MediaTotalLabel)
	if cfg.Verbose {
		log.Printf("[DEBUG] long rows=%d total rows=%d (media column %q, item column %q)",
			len(long.Rows), len(totals), long.MediaColumn, long.ItemColumn)
	}

	policies := PoliciesFor(cfg)
	bar := progressbar.NewOptions(2,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("windows"),
		progressbar.OptionSetVisibility(cfg.Verbose),
	)

	mtdSeries := Aggregate(totals, rep.MTD.Columns)
	rep.MTD.Keys = policies.ResolveKeys(mtdSeries.Labels)
	rep.MTD.Metrics = DeriveSeries(mtdSeries, rep.MTD.Keys, cfg)
	rep.MTD.Formatted = Format(rep.MTD.Metrics)
	_ = bar.Add(1)

	daySeries := Aggregate(totals, rep.Day.Columns)
	labels := daySeries.Labels
	if daySeries.Len() == 0 {
		labels = mtdSeries.Labels
	}
	rep.Day.Keys = withFallback(policies.ResolveKeys(labels), rep.MTD.Keys)
	rep.Day.Metrics = DeriveSeries(daySeries, rep.Day.Keys, cfg)
	rep.Day.Formatted = Format(rep.Day.Metrics)
	_ = bar.Add(1)

	log.Printf("[MATCH] MTD: %+v", rep.MTD.Keys)
	log.Printf("[MATCH] YDAY: %+v", rep.Day.Keys)
	if cfg.Verbose {
		log.Printf("[DEBUG] MTD -> cost=%.2f installs=%.2f pu=%.2f revenue=%.2f roas=%.4f",
			rep.MTD.Metrics.Cost, rep.MTD.Metrics.Installs, rep.MTD.Metrics.PayingUsers, rep.MTD.Metrics.Revenue, rep.MTD.Metrics.ROAS)
		log.Printf("[DEBUG] YDAY -> cost=%.2f installs=%.2f pu=%.2f revenue=%.2f roas=%.4f",
			rep.Day.Metrics.Cost, rep.Day.Metrics.Installs, rep.Day.Metrics.PayingUsers, rep.Day.Metrics.Revenue, rep.Day.Metrics.ROAS)
	}
	return rep, nil
}
