package calculator

import (
	"errors"
	"testing"

	"ads-daily-report/pkg/models"
)

func TestReshape_NamedIdentityColumns(t *testing.T) {
	table := models.RawTable{
		Header: []string{"10/1(水)", "媒体名", "項目", "10/2(木)"},
		Rows: [][]string{
			{"1", "全体", "消化金額", "2"},
			{"3", "Meta", "消化金額", "4"},
		},
	}
	long, err := Reshape(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (rows) × (columns − 2)
	if len(long.Rows) != 4 {
		t.Fatalf("got %d long rows, want 4", len(long.Rows))
	}
	first := long.Rows[0]
	if first != (models.LongRow{Media: "全体", Metric: "消化金額", Date: "10/1(水)", Value: "1"}) {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if long.Rows[3].Date != "10/2(木)" || long.Rows[3].Media != "Meta" {
		t.Fatalf("unexpected last row: %+v", long.Rows[3])
	}
}

func TestReshape_PositionalFallback(t *testing.T) {
	table := models.RawTable{
		Header: []string{"media", "item", "10/1"},
		Rows:   [][]string{{"全体", "インストール", "500"}},
	}
	long, err := Reshape(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !long.HasMedia || long.MediaColumn != "media" || long.ItemColumn != "item" {
		t.Fatalf("unexpected identity columns: %+v", long)
	}
	if len(long.Rows) != 1 || long.Rows[0].Metric != "インストール" {
		t.Fatalf("unexpected rows: %+v", long.Rows)
	}
}

func TestReshape_ItemOnlyHasNoMedia(t *testing.T) {
	table := models.RawTable{
		Header: []string{"項目", "10/1", "10/2"},
		Rows:   [][]string{{"消化金額", "1", "2"}},
	}
	long, err := Reshape(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if long.HasMedia {
		t.Fatal("expected HasMedia=false")
	}
	if len(long.Rows) != 2 {
		t.Fatalf("got %d long rows, want 2", len(long.Rows))
	}
}

func TestReshape_ShortRowsPadded(t *testing.T) {
	table := models.RawTable{
		Header: []string{"媒体名", "項目", "10/1", "10/2"},
		Rows:   [][]string{{"全体", "消化金額", "100"}},
	}
	long, err := Reshape(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(long.Rows) != 2 || long.Rows[1].Value != "" {
		t.Fatalf("unexpected rows: %+v", long.Rows)
	}
}

func TestReshape_EmptyHeader(t *testing.T) {
	_, err := Reshape(models.RawTable{})
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("got %v, want ErrEmptyTable", err)
	}
}

func TestReshape_SingleColumn(t *testing.T) {
	if _, err := Reshape(models.RawTable{Header: []string{"10/1"}}); err == nil {
		t.Fatal("expected error for single-column header")
	}
}
