// Package report renders budget data into xlsx workbooks.
package report

import (
	"fmt"

	"github.com/family-budget/backend/internal/aggregation"
	"github.com/family-budget/backend/internal/labels"
	"github.com/family-budget/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
)

// ContentType is the media type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const moneyFormat = "$#,##0.00"

// styles holds the IDs of the cell styles registered with a workbook.
type styles struct {
	header    int
	subheader int
	money     int
	text      int
	positive  int
	negative  int
}

func border() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func newStyles(f *excelize.File) (styles, error) {
	format := moneyFormat
	definitions := []*excelize.Style{
		{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      fill("2563EB"),
			Border:    border(),
			Alignment: &excelize.Alignment{Horizontal: "center"},
		},
		{
			Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:   fill("60A5FA"),
			Border: border(),
		},
		{
			CustomNumFmt: &format,
			Border:       border(),
		},
		{
			Border: border(),
		},
		{
			CustomNumFmt: &format,
			Font:         &excelize.Font{Color: "166534"},
			Fill:         fill("DCFCE7"),
			Border:       border(),
		},
		{
			CustomNumFmt: &format,
			Font:         &excelize.Font{Color: "DC2626"},
			Fill:         fill("FEE2E2"),
			Border:       border(),
		},
	}

	ids := make([]int, len(definitions))
	for i, def := range definitions {
		id, err := f.NewStyle(def)
		if err != nil {
			return styles{}, err
		}
		ids[i] = id
	}

	return styles{
		header:    ids[0],
		subheader: ids[1],
		money:     ids[2],
		text:      ids[3],
		positive:  ids[4],
		negative:  ids[5],
	}, nil
}

// cell sets the value and style of the cell at col, row. Both are 1-based.
func cell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, name, value); err != nil {
		return err
	}

	if style == 0 {
		return nil
	}
	return f.SetCellStyle(sheet, name, name, style)
}

func write(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func closeFile(f *excelize.File) {
	if err := f.Close(); err != nil {
		log.Error().Err(err).Msg("closing workbook")
	}
}

// Annual renders the summary workbook for the month records of a year.
//
// The workbook has one sheet with a row per month, ordered by month. The
// sums are the same as in aggregation.Annual. Records of other years are
// ignored. If no record is left, aggregation.ErrNoDataForYear is returned.
func Annual(year int, months []models.MonthRecord, lbl labels.Set) ([]byte, error) {
	sorted := make([]models.MonthRecord, 0, len(months))
	for _, m := range months {
		if m.Year == year {
			sorted = append(sorted, m)
		}
	}

	if len(sorted) == 0 {
		return nil, aggregation.ErrNoDataForYear
	}

	slices.SortStableFunc(sorted, func(a, b models.MonthRecord) int {
		return a.Month - b.Month
	})

	f := excelize.NewFile()
	defer closeFile(f)

	sheet := lbl.AnnualSummary
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	s, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheet, "A", "A", 20); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "D", 15); err != nil {
		return nil, err
	}

	for i, header := range lbl.SummaryHeaders {
		if err := cell(f, sheet, i+1, 1, header, s.header); err != nil {
			return nil, err
		}
	}

	for i, m := range sorted {
		row := i + 2
		totals := aggregation.Totals(m)

		name := m.MonthName
		if name == "" {
			name = lbl.MonthName(m.Month)
		}

		savingsStyle := s.positive
		if totals.Savings.IsNegative() {
			savingsStyle = s.negative
		}

		values := []struct {
			value any
			style int
		}{
			{name, 0},
			{totals.Income.InexactFloat64(), s.money},
			{totals.Expenses.InexactFloat64(), s.money},
			{totals.Savings.InexactFloat64(), savingsStyle},
		}

		for col, v := range values {
			if err := cell(f, sheet, col+1, row, v.value, v.style); err != nil {
				return nil, err
			}
		}
	}

	return write(f)
}

// Template renders a blank budget workbook.
//
// The first sheet holds instructions, it is followed by one sheet per
// month with placeholder rows for the income of two members.
func Template(lbl labels.Set) ([]byte, error) {
	f := excelize.NewFile()
	defer closeFile(f)

	s, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	instructions := lbl.Instructions
	if err := f.SetSheetName(f.GetSheetName(0), instructions); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(instructions, "A", "A", 80); err != nil {
		return nil, err
	}

	if err := cell(f, instructions, 1, 1, lbl.InstructionsTitle, s.header); err != nil {
		return nil, err
	}

	for i, line := range lbl.InstructionLines {
		if err := cell(f, instructions, 1, i+3, line, 0); err != nil {
			return nil, err
		}
	}

	upper := cases.Upper(lbl.Tag)
	for _, month := range lbl.Months {
		if err := monthSheet(f, s, lbl, month, upper); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", month, err)
		}
	}

	f.SetActiveSheet(0)
	return write(f)
}

func monthSheet(f *excelize.File, s styles, lbl labels.Set, month string, upper cases.Caser) error {
	if _, err := f.NewSheet(month); err != nil {
		return err
	}

	if err := f.SetColWidth(month, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(month, "B", "C", 15); err != nil {
		return err
	}

	if err := cell(f, month, 1, 1, fmt.Sprintf(lbl.TemplateTitle, upper.String(month)), s.header); err != nil {
		return err
	}
	if err := f.MergeCell(month, "A1", "C1"); err != nil {
		return err
	}

	if err := cell(f, month, 1, 3, lbl.IncomeHeader, s.subheader); err != nil {
		return err
	}
	if err := cell(f, month, 2, 3, lbl.AmountHeader, s.subheader); err != nil {
		return err
	}

	for i := 1; i <= 2; i++ {
		if err := cell(f, month, 1, 3+i, fmt.Sprintf(lbl.MemberPlaceholder, i), s.text); err != nil {
			return err
		}
		if err := cell(f, month, 2, 3+i, 0, s.money); err != nil {
			return err
		}
	}

	return nil
}
