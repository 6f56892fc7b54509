package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/stokradar/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Column names accepted in the header row, in normalized lowercase form.
// Turkish price lists commonly use marka/kod/açıklama/fiyat.
var (
	brandHeaders       = map[string]bool{"marka": true, "brand": true}
	codeHeaders        = map[string]bool{"kod": true, "code": true, "urun kodu": true}
	descriptionHeaders = map[string]bool{"aciklama": true, "açıklama": true, "description": true}
	priceHeaders       = map[string]bool{"fiyat": true, "price": true}
)

// columnMap holds the resolved column index for each required field
type columnMap struct {
	brand       int
	code        int
	description int
	price       int
}

// Parser reads product rows from Excel workbooks
type Parser struct{}

// NewParser creates a new workbook parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseCatalog extracts catalog rows from the first sheet of an Excel
// workbook. Columns are resolved by header name; when the header row is not
// recognized and the sheet has at least four columns, the conventional
// marka/kod/açıklama/fiyat order is assumed. Cells past the end of a short
// row read as empty; field-level validation is left to the caller.
func (p *Parser) ParseCatalog(r io.Reader) ([]domain.Row, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFile, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyWorkbook
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFile, err)
	}
	if len(rows) < 2 {
		return nil, domain.ErrEmptyWorkbook
	}

	columns, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	parsed := make([]domain.Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		parsed = append(parsed, domain.Row{
			Brand:       cell(row, columns.brand),
			Code:        cell(row, columns.code),
			Description: cell(row, columns.description),
			Price:       cell(row, columns.price),
		})
	}

	return parsed, nil
}

// resolveColumns maps required fields to column indexes from the header row
func resolveColumns(header []string) (columnMap, error) {
	columns := columnMap{brand: -1, code: -1, description: -1, price: -1}

	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		switch {
		case brandHeaders[normalized] && columns.brand < 0:
			columns.brand = i
		case codeHeaders[normalized] && columns.code < 0:
			columns.code = i
		case descriptionHeaders[normalized] && columns.description < 0:
			columns.description = i
		case priceHeaders[normalized] && columns.price < 0:
			columns.price = i
		}
	}

	if columns.brand >= 0 && columns.code >= 0 && columns.description >= 0 && columns.price >= 0 {
		return columns, nil
	}

	// Unrecognized headers: fall back to positional order when the sheet is
	// wide enough.
	if len(header) >= 4 {
		return columnMap{brand: 0, code: 1, description: 2, price: 3}, nil
	}

	return columnMap{}, fmt.Errorf("%w: need marka, kod, aciklama, fiyat", domain.ErrMissingColumns)
}

// cell returns the trimmed cell value at index, or empty when the row is
// shorter than the resolved column.
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
