package helper

import (
	"fmt"
	"math"
)

const (
	centimetersPerInch = 2.54
	poundsPerKilogram  = 2.20462
)

// FormatHeight renders decimeters as F'I" (M.MM m). Inches are rounded before
// splitting into feet so the inch part never reads 12.
func FormatHeight(decimeters int32) string {
	cm := float64(decimeters) * 10
	totalInches := int(math.Round(cm / centimetersPerInch))
	feet := totalInches / 12
	inches := totalInches % 12
	return fmt.Sprintf(`%d'%d" (%.2f m)`, feet, inches, cm/100)
}

// FormatWeight renders hectograms as L.L lbs (K.K kg).
func FormatWeight(hectograms int32) string {
	kg := float64(hectograms) / 10
	return fmt.Sprintf("%.1f lbs (%.1f kg)", kg*poundsPerKilogram, kg)
}
