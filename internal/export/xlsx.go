package export

import (
	"fmt"

	"github.com/phrazzld/scry-studycards/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the cards.
const SheetName = "Study Cards"

var headers = []string{"#", "Emoji", "Title", "Content", "Page", "Model"}

// XLSX returns a workbook with one row per card, in order.
func XLSX(model string, cards []domain.StudyCard) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, card := range cards {
		var page any
		if p, ok := card.Page(); ok {
			page = p
		}
		row := []any{i + 1, card.Emoji, card.Title, card.Content, page, model}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write card %d: %w", i+1, err)
		}
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	if len(cards) > 0 {
		last, _ := excelize.CoordinatesToCellName(4, len(cards)+1)
		_ = f.SetCellStyle(SheetName, "D2", last, wrap)
	}

	_ = f.SetColWidth(SheetName, "A", "A", 5)
	_ = f.SetColWidth(SheetName, "B", "B", 8)
	_ = f.SetColWidth(SheetName, "C", "C", 18)
	_ = f.SetColWidth(SheetName, "D", "D", 80)
	_ = f.SetColWidth(SheetName, "E", "E", 8)
	_ = f.SetColWidth(SheetName, "F", "F", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
