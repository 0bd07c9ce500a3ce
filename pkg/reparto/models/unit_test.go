package models

import "testing"

func TestNormalizeUnitID(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected UnitID
	}{
		{int64(1203), "1203"},
		{1203, "1203"},
		{1203.0, "1203"},
		{" 1203 ", "1203"},
		{"1203.0", "1203"},
		{12.5, "12.5"},
		{"T-01", "T-01"},
		{nil, ""},
	}

	for _, tt := range tests {
		if result := NormalizeUnitID(tt.input); result != tt.expected {
			t.Errorf("NormalizeUnitID(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestUnitIDInt(t *testing.T) {
	if n, ok := UnitID("9999").Int(); !ok || n != 9999 {
		t.Errorf("Int() = (%d, %v), expected (9999, true)", n, ok)
	}
	if _, ok := UnitID("T-01").Int(); ok {
		t.Error("Expected non-numeric unit to have no integer form")
	}
}

func TestParseStopStatus(t *testing.T) {
	tests := []struct {
		label    string
		expected StopStatus
	}{
		{"NO ENTREGADO", StatusNotDelivered},
		{" ENTREGADO ", StatusDelivered},
		{"PARADA INVÁLIDA", StatusInvalidStop},
		{"entregado", StatusOther},
	}

	for _, tt := range tests {
		if result := ParseStopStatus(tt.label); result != tt.expected {
			t.Errorf("ParseStopStatus(%q) = %q, expected %q", tt.label, result, tt.expected)
		}
	}
}

func TestCellText(t *testing.T) {
	row := Row{"a": int64(5), "b": 2.5, "c": "x"}
	if row.Text("a") != "5" || row.Text("b") != "2.5" || row.Text("c") != "x" || row.Text("missing") != "" {
		t.Errorf("Unexpected text rendering: %q %q %q", row.Text("a"), row.Text("b"), row.Text("c"))
	}
	if row.Has("missing") {
		t.Error("Expected missing column to be absent")
	}
}
