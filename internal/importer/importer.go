// kahootboard/internal/importer/importer.go
package importer

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/jozzegt/kahootboard/models"
)

var (
	// ErrNoSheet means the workbook contained no sheets at all.
	ErrNoSheet = errors.New("no sheet found in workbook")

	// ErrNoData means no usable rows survived normalization. The
	// import is rejected wholesale; the existing table is untouched.
	ErrNoData = errors.New("no data found in sheet")
)

// Import parses the workbook and atomically replaces the score table,
// returning the number of rows inserted.
func Import(db *gorm.DB, r io.Reader) (int, error) {
	rows, err := ParseWorkbook(r)
	if err != nil {
		return 0, err
	}
	if err := Replace(db, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ParseWorkbook reads a spreadsheet and returns the normalized score
// rows. The sheet whose name contains "KAHOOT" (case-insensitive) is
// selected, falling back to the first sheet. The first row is always
// treated as a header and skipped; rows with a blank name are skipped
// silently.
func ParseWorkbook(r io.Reader) ([]models.ScoreRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if strings.Contains(strings.ToUpper(name), "KAHOOT") {
			sheet = name
			break
		}
	}

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var rows []models.ScoreRow
	for i := 1; i < len(grid); i++ {
		raw := grid[i]
		name := strings.TrimSpace(cell(raw, 0))
		if name == "" {
			continue
		}
		k1 := NormalizePercent(cell(raw, 1))
		k2 := NormalizePercent(cell(raw, 2))
		k3 := NormalizePercent(cell(raw, 3))
		rows = append(rows, models.ScoreRow{
			Name:  name,
			K1:    k1,
			K2:    k2,
			K3:    k3,
			Final: deriveFinal(k1, k2, k3),
		})
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	return rows, nil
}

// NormalizePercent converts one raw score cell into a percentage. A
// trailing '%' is stripped and a decimal comma becomes a decimal
// point; anything unparsable degrades to nil rather than failing the
// row. Parsed values in (0,1] are read as fractions and scaled by 100
// (spreadsheets that store 0.87 for 87%); a literal 1% entry is
// indistinguishable from a 100% fraction, and the fraction reading
// wins. The result is rounded to the nearest integer.
func NormalizePercent(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "%")
	s = strings.Replace(s, ",", ".", 1)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	if n > 0 && n <= 1 {
		n = n * 100
	}
	n = math.Round(n)
	return &n
}

// deriveFinal averages the three quiz scores over a fixed divisor of
// three, treating missing scores as zero. A sum of zero or less
// yields no final score.
func deriveFinal(k1, k2, k3 *float64) *float64 {
	total := orZero(k1) + orZero(k2) + orZero(k3)
	if total <= 0 {
		return nil
	}
	final := math.Round(total / 3)
	return &final
}

// Replace swaps the entire score table for rows inside one
// transaction. Readers never observe a partially replaced table; any
// failure rolls back to the previous contents.
func Replace(db *gorm.DB, rows []models.ScoreRow) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ScoreRow{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
