package models

// Table represents the header-led data region of a single sheet.
type Table struct {
	// Name is the sheet name the table was read from.
	Name string `json:"name"`
	// Range is the sheet range the table was read from (e.g., "A1:F20").
	Range string `json:"range,omitempty"`
	// Columns lists header names in sheet order.
	Columns []string `json:"columns"`
	// Rows contains data rows below the header.
	Rows []Row `json:"rows,omitempty"`
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
