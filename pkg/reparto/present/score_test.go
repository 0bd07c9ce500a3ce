package present

import (
	"testing"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
)

func intPtr(n int) *int { return &n }

func TestCoerceScore(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected *int
	}{
		{"95.4", intPtr(95)},
		{95.4, intPtr(95)},
		{int64(70), intPtr(70)},
		{89.5, intPtr(90)},
		{88.5, intPtr(88)},
		{"abc", nil},
		{nil, nil},
		{"", nil},
		{101.0, nil},
		{-3.0, nil},
	}

	for _, tt := range tests {
		result := CoerceScore(tt.input)
		switch {
		case result == nil && tt.expected == nil:
		case result == nil || tt.expected == nil || *result != *tt.expected:
			t.Errorf("CoerceScore(%v) = %v, expected %v", tt.input, deref(result), deref(tt.expected))
		}
	}
}

func deref(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		score    *int
		expected models.CellClass
	}{
		{intPtr(100), models.ClassGood},
		{intPtr(90), models.ClassGood},
		{intPtr(89), models.ClassWarning},
		{intPtr(70), models.ClassWarning},
		{intPtr(69), models.ClassCritical},
		{intPtr(0), models.ClassCritical},
		{nil, models.ClassNone},
	}

	for _, tt := range tests {
		if result := ClassifyScore(tt.score); result != tt.expected {
			t.Errorf("ClassifyScore(%v) = %q, expected %q", deref(tt.score), result, tt.expected)
		}
	}
}

func TestClassifyEveryScore(t *testing.T) {
	for s := 0; s <= 100; s++ {
		class := ClassifyScore(intPtr(s))
		good := class == models.ClassGood
		warning := class == models.ClassWarning
		critical := class == models.ClassCritical
		if good != (s >= 90) || warning != (s >= 70 && s < 90) || critical != (s < 70) {
			t.Errorf("ClassifyScore(%d) = %q", s, class)
		}
	}
}

func TestClassColor(t *testing.T) {
	if c := ClassColor(models.ClassGood); c != "#92d050" {
		t.Errorf("ClassColor(good) = %q", c)
	}
	if c := ClassColor(models.ClassNone); c != "" {
		t.Errorf("ClassColor(none) = %q, expected no color", c)
	}
}
