package models

// Workbook is a workbook-level container with one table per sheet.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetOrder lists sheet names as they appear in the file.
	SheetOrder []string `json:"sheet_order"`
	// Sheets maps sheet name to its table.
	Sheets map[string]*Table `json:"sheets"`
}

// First returns the table of the first sheet, or nil for an empty workbook.
func (w *Workbook) First() *Table {
	if w == nil || len(w.SheetOrder) == 0 {
		return nil
	}
	return w.Sheets[w.SheetOrder[0]]
}

// Sheet returns the table for name and whether it exists.
func (w *Workbook) Sheet(name string) (*Table, bool) {
	if w == nil {
		return nil, false
	}
	t, ok := w.Sheets[name]
	return t, ok
}
