// Package source reads the report sheet from wherever it lives.
package source

import (
	"context"
	"fmt"

	"ads-daily-report/pkg/database"
	"ads-daily-report/pkg/models"

	"github.com/rotisserie/eris"
)

// Source yields the raw report table.
type Source interface {
	Fetch(ctx context.Context) (models.RawTable, error)
}

// New picks the source configured in cfg. sheet is the worksheet name;
// explicit tells whether it came from configuration rather than the calendar.
func New(cfg models.Config, sheet string, explicit bool) (Source, error) {
	switch cfg.Source {
	case "", "sheets":
		return GoogleSheets{
			Spreadsheet:     cfg.SpreadsheetURL,
			Sheet:           sheet,
			CredentialsFile: cfg.CredentialsFile,
		}, nil
	case "csv":
		if cfg.SourcePath == "" {
			return nil, eris.New("csv source needs SOURCE_PATH")
		}
		return CSVFile{Path: cfg.SourcePath}, nil
	case "xlsx":
		if cfg.SourcePath == "" {
			return nil, eris.New("xlsx source needs SOURCE_PATH")
		}
		return XLSXFile{Path: cfg.SourcePath, Sheet: sheet, Explicit: explicit}, nil
	case "sql":
		if cfg.SourceDSN == "" || cfg.SourceTable == "" {
			return nil, eris.New("sql source needs SOURCE_DSN and SOURCE_TABLE")
		}
		return database.Source{DSN: cfg.SourceDSN, Table: cfg.SourceTable}, nil
	}
	return nil, eris.Errorf("unknown source %q (sheets, csv, xlsx, sql)", cfg.Source)
}

// padRows makes every row as long as the header.
func padRows(header []string, rows [][]string) [][]string {
	for i, r := range rows {
		if len(r) < len(header) {
			padded := make([]string, len(header))
			copy(padded, r)
			rows[i] = padded
		}
	}
	return rows
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
