package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"ledger-recon/core/utils"
	"ledger-recon/feature/recon/models"
)

// dateLayouts are tried in order when parsing date cells.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// columns holds the resolved header positions for one file. A value of -1
// means the column is absent.
type columns struct {
	date        int
	description int
	amount      int
	debit       int
	credit      int
	category    int
}

// LoadFile reads a CSV file and returns normalized records for the given
// side. IDs are assigned sequentially and side-scoped, so they are stable
// for the duration of one reconciliation run.
func LoadFile(path string, side models.Side) ([]models.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", strings.ToLower(string(side)), path, err)
	}
	defer file.Close()

	records, err := Parse(file, side)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// Parse reads CSV content and returns normalized records for the given
// side. The header row is mapped case-insensitively; either an "amount"
// column or a "debit"+"credit" pair must be present. Debit and credit are
// netted by addition: the feeds carry credits already signed.
func Parse(r io.Reader, side models.Side) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	prefix := strings.ToLower(string(side))
	var records []models.Record
	row := 0
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row %d: %w", row+2, err)
		}
		row++

		rec := models.Record{
			ID:     fmt.Sprintf("%s-%d", prefix, row),
			Side:   side,
			Amount: netAmount(cells, cols),
		}

		if cols.description >= 0 && cols.description < len(cells) {
			rec.Description = strings.TrimSpace(cells[cols.description])
		}
		if cols.date >= 0 && cols.date < len(cells) {
			rec.Date = parseDate(cells[cols.date])
		}
		if cols.category >= 0 && cols.category < len(cells) && strings.TrimSpace(cells[cols.category]) != "" {
			rec.Category = strings.TrimSpace(cells[cols.category])
		} else {
			rec.Category = Categorize(rec.Description)
		}

		records = append(records, rec)
	}

	return records, nil
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{date: -1, description: -1, amount: -1, debit: -1, credit: -1, category: -1}

	for i, cell := range header {
		switch utils.NormalizeHeader(cell) {
		case "date", "post_date", "effective_date", "transaction_date":
			if cols.date < 0 {
				cols.date = i
			}
		case "description", "memo", "details":
			if cols.description < 0 {
				cols.description = i
			}
		case "amount", "net_amount":
			cols.amount = i
		case "debit":
			cols.debit = i
		case "credit":
			cols.credit = i
		case "category", "type":
			cols.category = i
		}
	}

	if cols.amount < 0 && (cols.debit < 0 || cols.credit < 0) {
		return cols, fmt.Errorf("header must contain an amount column or a debit/credit pair")
	}
	return cols, nil
}

// netAmount computes the signed net amount for a row. Unparseable cells
// contribute zero, matching the tolerant coercion of the upstream feeds.
func netAmount(cells []string, cols columns) float64 {
	if cols.amount >= 0 && cols.amount < len(cells) {
		f, _ := utils.ToFloat(cells[cols.amount])
		return f
	}
	var net float64
	if cols.debit >= 0 && cols.debit < len(cells) {
		f, _ := utils.ToFloat(cells[cols.debit])
		net += f
	}
	if cols.credit >= 0 && cols.credit < len(cells) {
		f, _ := utils.ToFloat(cells[cols.credit])
		net += f
	}
	return net
}

func parseDate(cell string) *time.Time {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
