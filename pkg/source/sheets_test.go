package source

import "testing"

func TestSpreadsheetID_FromURL(t *testing.T) {
	got, err := SpreadsheetID("https://docs.google.com/spreadsheets/d/1AbC-d_E/edit#gid=0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1AbC-d_E" {
		t.Fatalf("got %q, want %q", got, "1AbC-d_E")
	}
}

func TestSpreadsheetID_BareID(t *testing.T) {
	got, err := SpreadsheetID(" 1AbC-d_E ")
	if err != nil || got != "1AbC-d_E" {
		t.Fatalf("got %q (err=%v)", got, err)
	}
}

func TestSpreadsheetID_NotSet(t *testing.T) {
	for _, in := range []string{"", "URL_NOT_SET", "https://example.com/x"} {
		if _, err := SpreadsheetID(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFromValues_PadsShortRows(t *testing.T) {
	values := [][]interface{}{
		{"媒体名", "項目", "10/18(日)", "10/19(月)"},
		{"全体", "消化金額", "¥100,000"},
		{"全体", "インストール", 500, nil},
	}
	table := FromValues(values)
	if len(table.Header) != 4 || len(table.Rows) != 2 {
		t.Fatalf("unexpected shape: %+v", table)
	}
	if len(table.Rows[0]) != 4 || table.Rows[0][3] != "" {
		t.Fatalf("row not padded: %v", table.Rows[0])
	}
	if table.Cell(1, 2) != "500" || table.Cell(1, 3) != "" {
		t.Fatalf("unexpected cells: %v", table.Rows[1])
	}
}

func TestFromValues_Empty(t *testing.T) {
	if table := FromValues(nil); len(table.Header) != 0 {
		t.Fatalf("expected empty table, got %+v", table)
	}
}

func TestQuoteSheet(t *testing.T) {
	if got := quoteSheet("It's 202610"); got != "'It''s 202610'" {
		t.Fatalf("got %q", got)
	}
}
