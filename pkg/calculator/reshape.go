package calculator

import (
	"log"

	"ads-daily-report/pkg/models"

	"github.com/rotisserie/eris"
	"github.com/samber/lo"
)

const (
	MediaColumn = "媒体名"
	ItemColumn  = "項目"
)

var ErrEmptyTable = eris.New("シートが空です。ヘッダを確認してください。")

// Reshape melts the table into one LongRow per (data row, non-identity column).
//
// Identity columns are "媒体名"/"項目" when both are present. With only "項目"
// the table has no media column and every other column is pivoted. Otherwise
// the first two columns stand in for them.
func Reshape(t models.RawTable) (models.LongTable, error) {
	if len(t.Header) == 0 || lo.EveryBy(t.Header, func(h string) bool { return h == "" }) {
		return models.LongTable{}, ErrEmptyTable
	}

	mediaIdx := lo.IndexOf(t.Header, MediaColumn)
	itemIdx := lo.IndexOf(t.Header, ItemColumn)
	out := models.LongTable{HasMedia: true}

	switch {
	case mediaIdx >= 0 && itemIdx >= 0:
	case itemIdx >= 0:
		log.Printf("[WARN] '%s' が見つからないため媒体フィルタを省略します", MediaColumn)
		out.HasMedia = false
	default:
		if len(t.Header) < 2 {
			return models.LongTable{}, eris.Errorf("need at least two columns, got header=%v", t.Header)
		}
		mediaIdx, itemIdx = 0, 1
		log.Printf("[WARN] '%s'/'%s'が見つからないため代替ID列を使用: %v", MediaColumn, ItemColumn, t.Header[:2])
	}
	out.ItemColumn = t.Header[itemIdx]
	if out.HasMedia {
		out.MediaColumn = t.Header[mediaIdx]
	}

	out.Rows = make([]models.LongRow, 0, len(t.Rows)*len(t.Header))
	for r := range t.Rows {
		media := ""
		if out.HasMedia {
			media = t.Cell(r, mediaIdx)
		}
		item := t.Cell(r, itemIdx)
		for c, h := range t.Header {
			if c == itemIdx || (out.HasMedia && c == mediaIdx) {
				continue
			}
			out.Rows = append(out.Rows, models.LongRow{
				Media:  media,
				Metric: item,
				Date:   h,
				Value:  t.Cell(r, c),
			})
		}
	}
	return out, nil
}
