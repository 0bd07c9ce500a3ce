// Package present turns loaded tables into display-ready dashboard views.
package present

import (
	"math"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/parser"
)

// Score thresholds.
const (
	GoodScore    = 90
	WarningScore = 70
)

// classColors are the cell backgrounds of each class.
var classColors = map[models.CellClass]string{
	models.ClassGood:     "#92d050",
	models.ClassWarning:  "#ffff00",
	models.ClassCritical: "#ff0000",
}

// CoerceScore converts a safety score cell to a rounded integer in 0..100.
// Returns nil for absent, non-numeric or out-of-range values.
func CoerceScore(v interface{}) *int {
	f, ok := parser.ToFloat(v)
	if !ok {
		return nil
	}
	rounded := math.RoundToEven(f)
	if rounded < 0 || rounded > 100 {
		return nil
	}
	score := int(rounded)
	return &score
}

// ClassifyScore returns the styling class of a coerced score.
func ClassifyScore(score *int) models.CellClass {
	switch {
	case score == nil:
		return models.ClassNone
	case *score >= GoodScore:
		return models.ClassGood
	case *score >= WarningScore:
		return models.ClassWarning
	default:
		return models.ClassCritical
	}
}

// ClassColor returns the background color of c, or "" for no styling.
func ClassColor(c models.CellClass) string {
	return classColors[c]
}
