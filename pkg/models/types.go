package models

import (
	"time"
)

/*
LOAD → raw table as read from the spreadsheet (or any other table source).
*/

// RawTable is the source sheet: Header is the first row, Rows the data rows.
// Every cell is a string; rows may be shorter than the header.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Cell returns the cell at (row, col), or "" when the row is too short.
func (t RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

/*
RESHAPE → long form, one row per (source row, date column).
*/

// LongRow is one pivoted cell.
type LongRow struct {
	Media  string // media name ("媒体名"), "" when the table has no media column
	Metric string // item label ("項目")
	Date   string // date column header, e.g. "10/18(日)"
	Value  string // raw cell
}

// LongTable is the melted table.
type LongTable struct {
	MediaColumn string // header used as media identity column
	ItemColumn  string // header used as item identity column
	HasMedia    bool   // false when only the item column could be identified
	Rows        []LongRow
}

/*
RESOLVE → label resolution.
*/

// ResolutionPolicy says how to find one metric row among free-text labels.
// Exact candidates are tried in order first, then the first label containing
// every fuzzy keyword wins.
type ResolutionPolicy struct {
	Exact []string
	Fuzzy []string
}

// WindowSeries is the per-label sum for one reporting window. Labels keeps
// the first-appearance order of the source rows.
type WindowSeries struct {
	Labels []string
	Values map[string]float64
}

// Len is the number of labels seen in the window.
func (s WindowSeries) Len() int { return len(s.Labels) }

// Get returns the summed value for label, 0 when absent or label is "".
func (s WindowSeries) Get(label string) float64 {
	if label == "" || s.Values == nil {
		return 0
	}
	return s.Values[label]
}

// ResolvedKeys are the original labels chosen for each base metric ("" = not found).
type ResolvedKeys struct {
	Cost        string
	Installs    string
	PayingUsers string
	Revenue     string
}

/*
COMPUTE → derived KPIs.
*/

// ResolvedMetrics holds the four base values and the ratios derived from them.
// Ratios are always recomputed; ratio rows present in the sheet are ignored.
type ResolvedMetrics struct {
	Cost        float64
	Installs    float64
	PayingUsers float64
	Revenue     float64

	CPA      float64
	CPI      float64
	PURate   float64 // percent
	ARPPU    float64
	ROASBase float64
	ROAS     float64 // percent
}

// WindowReport is the outcome for one window (month-to-date or yesterday).
type WindowReport struct {
	Columns   []string
	Keys      ResolvedKeys
	Metrics   ResolvedMetrics
	Formatted map[string]string
}

// Report is everything the notifier needs to assemble the message.
type Report struct {
	Today     time.Time
	FirstDay  time.Time
	Yesterday time.Time
	MTD       WindowReport
	Day       WindowReport
}

/*
CONFIG → parameters built once in main.
*/

// Config contains every tunable of a run.
type Config struct {
	WebhookURL     string `yaml:"webhook_url"`
	SpreadsheetURL string `yaml:"spreadsheet_url"`
	SheetName      string `yaml:"sheet_ym"` // worksheet name; empty = current "YYYYMM"
	BotName        string `yaml:"bot_name"`
	IntroMessage   string `yaml:"intro_message"`
	MentionText    string `yaml:"mention_text"`
	IconEmoji      string `yaml:"icon_emoji"`

	MediaTotalLabel   string `yaml:"media_total_label"`
	LabelCostBase     string `yaml:"label_cost_base"`
	LabelInstallsBase string `yaml:"label_installs_base"`
	LabelPUAdjustBase string `yaml:"label_pu_adjust_base"`
	LabelRevenueBase  string `yaml:"label_revenue_adj_base"`

	RevenueSplit float64 `yaml:"revenue_split"`
	FeeDivisor   float64 `yaml:"fee_divisor"`

	TimeZone string `yaml:"timezone"`

	Source          string `yaml:"source"` // sheets | csv | xlsx | sql
	SourcePath      string `yaml:"source_path"`
	SourceDSN       string `yaml:"source_dsn"`
	SourceTable     string `yaml:"source_table"`
	CredentialsFile string `yaml:"credentials_file"`

	Verbose bool `yaml:"verbose"`
}
