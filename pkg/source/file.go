package source

import (
	"context"
	"encoding/csv"
	"log"
	"os"
	"strings"

	"ads-daily-report/pkg/models"

	"github.com/rotisserie/eris"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

// CSVFile reads a sheet exported as CSV.
type CSVFile struct {
	Path string
}

func (c CSVFile) Fetch(_ context.Context) (models.RawTable, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return models.RawTable{}, eris.Wrap(err, "open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return models.RawTable{}, eris.Wrap(err, "read csv")
	}
	if len(records) == 0 {
		return models.RawTable{}, nil
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return models.RawTable{Header: header, Rows: padRows(header, records[1:])}, nil
}

// XLSXFile reads one worksheet of an .xlsx workbook, cells as displayed.
// When Sheet is missing and was not set explicitly, the first sheet is used.
type XLSXFile struct {
	Path     string
	Sheet    string
	Explicit bool
}

func (x XLSXFile) Fetch(_ context.Context) (models.RawTable, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return models.RawTable{}, eris.Wrap(err, "open xlsx")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.RawTable{}, eris.New("no sheets found")
	}
	sheet := x.Sheet
	if !lo.Contains(sheets, sheet) {
		if x.Explicit {
			return models.RawTable{}, eris.Errorf("sheet %q not found in %v", sheet, sheets)
		}
		log.Printf("[WARN] シート %q が無いため %q を使用します", sheet, sheets[0])
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.RawTable{}, eris.Wrapf(err, "read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return models.RawTable{}, nil
	}
	return models.RawTable{Header: rows[0], Rows: padRows(rows[0], rows[1:])}, nil
}
