package notifier

import (
	"fmt"
	"strings"
	"text/template"

	"ads-daily-report/pkg/calculator"
	"ads-daily-report/pkg/models"
)

var blockTmpl = template.Must(template.New("block").Parse(
	"費用：{{.cost}}\n" +
		"インストール：{{.installs}}\n" +
		"課金者数：{{.pu}}\n" +
		"CPI：{{.cpi}}\n" +
		"CPA：{{.cpa}}\n" +
		"課金率：{{.pu_rate}}\n" +
		"課金金額：{{.revenue}}\n" +
		"ARPPU：{{.arppu}}\n" +
		"ROAS：{{.roas}}"))

// BuildMessage assembles the chat text: optional mention, intro, then the
// month-to-date block and yesterday's block.
func BuildMessage(rep models.Report, cfg models.Config) (string, error) {
	var b strings.Builder
	if cfg.MentionText != "" {
		b.WriteString(cfg.MentionText + "\n")
	}
	b.WriteString(cfg.IntroMessage + "\n\n")

	fmt.Fprintf(&b, "▼%d月進捗（%d/%d-%d/%d時点）\n",
		int(rep.Today.Month()),
		int(rep.FirstDay.Month()), rep.FirstDay.Day(),
		int(rep.Yesterday.Month()), rep.Yesterday.Day())
	if err := blockTmpl.Execute(&b, rep.MTD.Formatted); err != nil {
		return "", err
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "▼昨日進捗(%s)\n", calculator.DayLabel(rep.Yesterday))
	if err := blockTmpl.Execute(&b, rep.Day.Formatted); err != nil {
		return "", err
	}
	return b.String(), nil
}
