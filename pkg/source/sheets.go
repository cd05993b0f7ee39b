package source

import (
	"context"
	"log"
	"regexp"
	"strings"

	"ads-daily-report/pkg/models"

	"github.com/rotisserie/eris"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var spreadsheetIDRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// GoogleSheets reads one worksheet with the Sheets API (readonly scope).
// Without CredentialsFile, application default credentials are used.
type GoogleSheets struct {
	Spreadsheet     string // URL or bare id
	Sheet           string
	CredentialsFile string
}

func (g GoogleSheets) Fetch(ctx context.Context) (models.RawTable, error) {
	id, err := SpreadsheetID(g.Spreadsheet)
	if err != nil {
		return models.RawTable{}, err
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if g.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(g.CredentialsFile))
	}
	log.Printf("[INFO] Google認証開始（spreadsheets.readonly）")
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return models.RawTable{}, eris.Wrap(err, "sheets service")
	}

	log.Printf("[INFO] スプレッドシートを開きます: %s (sheet %s)", id, g.Sheet)
	resp, err := svc.Spreadsheets.Values.Get(id, quoteSheet(g.Sheet)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return models.RawTable{}, eris.Wrapf(err, "read sheet %q", g.Sheet)
	}
	return FromValues(resp.Values), nil
}

// SpreadsheetID extracts the id from a spreadsheet URL; a value without
// "/spreadsheets/d/" is taken as the id itself.
func SpreadsheetID(urlOrID string) (string, error) {
	s := strings.TrimSpace(urlOrID)
	if m := spreadsheetIDRe.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}
	if s == "" || s == "URL_NOT_SET" || strings.Contains(s, "/") {
		return "", eris.Errorf("no spreadsheet id in %q", urlOrID)
	}
	return s, nil
}

// FromValues converts a Sheets value range into a table. The API drops
// trailing empty cells, so short rows are padded.
func FromValues(values [][]interface{}) models.RawTable {
	if len(values) == 0 {
		return models.RawTable{}
	}
	out := models.RawTable{Header: make([]string, len(values[0]))}
	for i, v := range values[0] {
		out.Header[i] = cellString(v)
	}
	rows := make([][]string, 0, len(values)-1)
	for _, r := range values[1:] {
		row := make([]string, len(r))
		for i, v := range r {
			row[i] = cellString(v)
		}
		rows = append(rows, row)
	}
	out.Rows = padRows(out.Header, rows)
	return out
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
