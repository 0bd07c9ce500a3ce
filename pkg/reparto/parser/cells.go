package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
)

// cellKey addresses a cell by 0-based row and column.
type cellKey struct {
	row, col int
}

// ExtractTable builds a header-led table from the raw rows of a sheet.
// The header is the first non-empty row of the sheet's data bounds; empty
// rows below it are skipped. If links is non-nil, a cell's hyperlink target
// replaces its displayed text.
func ExtractTable(sheetName string, rows [][]string, links map[cellKey]string) *models.Table {
	table := &models.Table{Name: sheetName}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return table
	}

	table.Range = boundsToRange(minRow, maxRow, minCol, maxCol)
	table.Columns = headerColumns(rows[minRow], minCol, maxCol)

	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		values := make(models.Row)

		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			cellValue := strings.TrimSpace(row[colIdx])
			if target, ok := links[cellKey{rowIdx, colIdx}]; ok && target != "" {
				cellValue = target
			}
			if cellValue == "" {
				continue
			}
			values[table.Columns[colIdx-minCol]] = parseValue(cellValue)
		}

		if len(values) > 0 {
			table.Rows = append(table.Rows, values)
		}
	}

	return table
}

// headerColumns names each column in [minCol, maxCol]. Blank headers become
// "Unnamed: N" and repeats get the first free ".1", ".2" suffix.
func headerColumns(header []string, minCol, maxCol int) []string {
	columns := make([]string, 0, maxCol-minCol+1)
	seen := make(map[string]int)

	for colIdx := minCol; colIdx <= maxCol; colIdx++ {
		name := ""
		if colIdx < len(header) {
			name = strings.TrimSpace(header[colIdx])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(colIdx-minCol)
		}
		if n, dup := seen[name]; dup {
			base := name
			for {
				n++
				name = base + "." + strconv.Itoa(n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 0
		columns = append(columns, name)
	}

	return columns
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and Inf stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
