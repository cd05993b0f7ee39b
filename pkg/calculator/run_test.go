package calculator

import (
	"errors"
	"testing"
	"time"

	"ads-daily-report/pkg/models"
)

var jst = time.FixedZone("JST", 9*3600)

func testConfig() models.Config {
	return models.Config{
		MediaTotalLabel:   "全体",
		LabelCostBase:     "消化金額",
		LabelInstallsBase: "インストール",
		LabelPUAdjustBase: "課金者数(adjust)",
		LabelRevenueBase:  "課金金額(adjust)",
		RevenueSplit:      DefaultRevenueSplit,
		FeeDivisor:        DefaultFeeDivisor,
	}
}

// 2026-10-19 09:00 JST
var testNow = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func TestRun_SingleYesterdayColumn(t *testing.T) {
	table := models.RawTable{
		Header: []string{"媒体名", "項目", "10/18(日)"},
		Rows: [][]string{
			{"全体", "消化金額", "100,000"},
			{"全体", "インストール", "500"},
		},
	}
	rep, err := Run(table, testConfig(), testNow, jst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, w := range map[string]models.WindowReport{"mtd": rep.MTD, "yday": rep.Day} {
		if w.Formatted[KeyCost] != "¥100,000" || w.Formatted[KeyInstalls] != "500" || w.Formatted[KeyCPI] != "¥200" {
			t.Fatalf("%s: unexpected %v", name, w.Formatted)
		}
		if w.Formatted[KeyROAS] != "0.00%" || w.Formatted[KeyCPA] != "¥0" {
			t.Fatalf("%s: unexpected %v", name, w.Formatted)
		}
	}
	if rep.Yesterday.Day() != 18 || rep.FirstDay.Day() != 1 {
		t.Fatalf("unexpected dates: %+v", rep)
	}
}

func TestRun_WindowsAndAdjustPreference(t *testing.T) {
	table := models.RawTable{
		Header: []string{"媒体名", "項目", "9/30(水)", "10/1(木)", "10/17(土)", "10/18(日)", "10/19(月)"},
		Rows: [][]string{
			{"全体", "消化金額", "9,999", "1,000", "2,000", "3,000", "9,999"},
			{"全体", "インストール", "1", "10", "20", "30", "1"},
			{"全体", "インストール（adjust）", "1", "5", "5", "10", "1"},
			{"全体", "課金者数(adjust)", "1", "1", "1", "2", "1"},
			{"全体", "課金金額(adjust)", "1", "1,100", "0", "2,200", "1"},
			{"全体", "CPI", "1", "999", "999", "999", "1"},
			{"Meta", "消化金額", "5", "5", "5", "5", "5"},
		},
	}
	rep, err := Run(table, testConfig(), testNow, jst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.MTD.Columns) != 3 {
		t.Fatalf("mtd columns: %v", rep.MTD.Columns)
	}
	if rep.MTD.Keys.Installs != "インストール（adjust）" {
		t.Fatalf("installs key: %q", rep.MTD.Keys.Installs)
	}
	mtd := rep.MTD.Metrics
	if mtd.Cost != 6000 || mtd.Installs != 20 || mtd.PayingUsers != 4 || mtd.Revenue != 3300 {
		t.Fatalf("unexpected mtd %+v", mtd)
	}
	if !almostEqual(mtd.CPI, 300) {
		t.Fatalf("cpi recomputed from resolved rows, got %v", mtd.CPI)
	}
	day := rep.Day.Metrics
	if day.Cost != 3000 || day.Installs != 10 || day.PayingUsers != 2 || day.Revenue != 2200 {
		t.Fatalf("unexpected yday %+v", day)
	}
	// 2200*0.7/1.1 = 1400 → 1400/3000
	if rep.Day.Formatted[KeyROAS] != "46.67%" {
		t.Fatalf("roas: %q", rep.Day.Formatted[KeyROAS])
	}
}

func TestRun_UnresolvedMetricIsZero(t *testing.T) {
	table := models.RawTable{
		Header: []string{"媒体名", "項目", "10/18"},
		Rows:   [][]string{{"全体", "謎の指標", "123"}},
	}
	rep, err := Run(table, testConfig(), testNow, jst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.MTD.Keys != (models.ResolvedKeys{}) {
		t.Fatalf("expected no keys, got %+v", rep.MTD.Keys)
	}
	if rep.Day.Formatted[KeyCost] != "¥0" {
		t.Fatalf("unexpected %v", rep.Day.Formatted)
	}
}

func TestRun_MissingYesterdayColumn(t *testing.T) {
	table := models.RawTable{
		Header: []string{"媒体名", "項目", "10/17(土)"},
		Rows:   [][]string{{"全体", "消化金額", "700"}},
	}
	rep, err := Run(table, testConfig(), testNow, jst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Day.Columns) != 0 {
		t.Fatalf("expected no yesterday column, got %v", rep.Day.Columns)
	}
	// resolved against MTD labels but summed over an empty window
	if rep.Day.Keys.Cost != "消化金額" || rep.Day.Metrics.Cost != 0 {
		t.Fatalf("unexpected yday %+v", rep.Day)
	}
	if rep.MTD.Metrics.Cost != 700 {
		t.Fatalf("unexpected mtd %+v", rep.MTD.Metrics)
	}
}

func TestRun_EmptyTableIsFatal(t *testing.T) {
	_, err := Run(models.RawTable{}, testConfig(), testNow, jst)
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("got %v, want ErrEmptyTable", err)
	}
}
