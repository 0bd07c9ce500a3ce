package parser

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/xuri/excelize/v2"
)

// ReadOptions configures workbook reading.
type ReadOptions struct {
	// IncludeLinks replaces a cell's text with its hyperlink target.
	// Only honored for xlsx workbooks.
	IncludeLinks bool
}

// ReadWorkbook reads every sheet of an xlsx or legacy xls workbook.
func ReadWorkbook(path string, opts ReadOptions) (*models.Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return readXLS(path)
	default:
		return readXLSX(path, opts)
	}
}

func readXLSX(path string, opts ReadOptions) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := newWorkbook(path)
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}

		var links map[cellKey]string
		if opts.IncludeLinks {
			links = extractLinks(f, sheetName, rows)
		}

		wb.SheetOrder = append(wb.SheetOrder, sheetName)
		wb.Sheets[sheetName] = ExtractTable(sheetName, rows, links)
	}

	return wb, nil
}

// extractLinks collects hyperlink targets of non-empty cells.
func extractLinks(f *excelize.File, sheetName string, rows [][]string) map[cellKey]string {
	links := make(map[cellKey]string)
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				continue
			}
			hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
			if err == nil && hasLink && target != "" {
				links[cellKey{rowIdx, colIdx}] = target
			}
		}
	}
	return links
}

// readXLS reads a legacy BIFF workbook. ReadAllCells returns the rows of
// every non-empty sheet back to back, MaxRow+1 rows per sheet, so they are
// split again by sheet.
func readXLS(path string) (wb *models.Workbook, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// extrame/xls panics on some malformed records.
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, fmt.Errorf("read xls: %v", r)
		}
	}()

	book, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("no workbook stream found")
	}

	all := book.ReadAllCells(math.MaxInt32)

	wb = newWorkbook(path)
	offset := 0
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}

		var rows [][]string
		if sheet.MaxRow != 0 {
			n := int(sheet.MaxRow) + 1
			if offset+n > len(all) {
				n = len(all) - offset
			}
			rows = all[offset : offset+n]
			offset += n
		}

		wb.SheetOrder = append(wb.SheetOrder, sheet.Name)
		wb.Sheets[sheet.Name] = ExtractTable(sheet.Name, rows, nil)
	}

	return wb, nil
}

func newWorkbook(path string) *models.Workbook {
	return &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]*models.Table),
	}
}
