// Package config builds the run configuration: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"os"
	"strconv"
	"strings"

	"ads-daily-report/pkg/calculator"
	"ads-daily-report/pkg/models"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v2"
)

const notSet = "URL_NOT_SET"

// LookupFunc reads one environment variable (os.LookupEnv in production).
type LookupFunc func(key string) (string, bool)

// Defaults returns the configuration used when nothing is overridden.
// IntroMessage is left empty; unless overridden, Load derives it from the
// spreadsheet URL.
func Defaults() models.Config {
	return models.Config{
		WebhookURL:        notSet,
		SpreadsheetURL:    notSet,
		BotName:           "pjscbf 広告効果",
		IconEmoji:         ":bar_chart:",
		MediaTotalLabel:   "全体",
		LabelCostBase:     "消化金額",
		LabelInstallsBase: "インストール",
		LabelPUAdjustBase: "課金者数(adjust)",
		LabelRevenueBase:  "課金金額(adjust)",
		RevenueSplit:      calculator.DefaultRevenueSplit,
		FeeDivisor:        calculator.DefaultFeeDivisor,
		TimeZone:          "Asia/Tokyo",
		Source:            "sheets",
	}
}

// Load applies the YAML file at path (skipped when path is "") and then the
// environment on top of Defaults.
func Load(path string, lookup LookupFunc) (models.Config, error) {
	cfg := Defaults()
	introSet := false
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return models.Config{}, eris.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return models.Config{}, eris.Wrapf(err, "parse %s", path)
		}
		var intro struct {
			Message *string `yaml:"intro_message"`
		}
		if err := yaml.Unmarshal(data, &intro); err != nil {
			return models.Config{}, eris.Wrapf(err, "parse %s", path)
		}
		introSet = intro.Message != nil
	}
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	for key, dst := range map[string]*string{
		"SLACK_WEBHOOK_URL":       &cfg.WebhookURL,
		"SPREADSHEET_URL":         &cfg.SpreadsheetURL,
		"SHEET_YM":                &cfg.SheetName,
		"BOT_NAME":                &cfg.BotName,
		"INTRO_MESSAGE":           &cfg.IntroMessage,
		"MENTION_TEXT":            &cfg.MentionText,
		"ICON_EMOJI":              &cfg.IconEmoji,
		"MEDIA_TOTAL_LABEL":       &cfg.MediaTotalLabel,
		"LABEL_COST_BASE":         &cfg.LabelCostBase,
		"LABEL_INSTALLS_BASE":     &cfg.LabelInstallsBase,
		"LABEL_PU_ADJUST_BASE":    &cfg.LabelPUAdjustBase,
		"LABEL_REVENUE_ADJ_BASE":  &cfg.LabelRevenueBase,
		"REPORT_TZ":               &cfg.TimeZone,
		"SOURCE":                  &cfg.Source,
		"SOURCE_PATH":             &cfg.SourcePath,
		"SOURCE_DSN":              &cfg.SourceDSN,
		"SOURCE_TABLE":            &cfg.SourceTable,
		"GOOGLE_CREDENTIALS_FILE": &cfg.CredentialsFile,
	} {
		if v, ok := lookup(key); ok {
			*dst = v
			introSet = introSet || key == "INTRO_MESSAGE"
		}
	}

	for key, dst := range map[string]*float64{
		"REVENUE_SPLIT": &cfg.RevenueSplit,
		"FEE_DIVISOR":   &cfg.FeeDivisor,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return models.Config{}, eris.Wrapf(err, "%s=%q", key, v)
		}
		*dst = f
	}

	if !introSet {
		cfg.IntroMessage = "pjscbfの<" + cfg.SpreadsheetURL + "|広告効果>共有です！"
	}
	return cfg, nil
}
