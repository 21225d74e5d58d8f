// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"math"
)

// WordprocessingML measures page geometry in twips (1/20 pt, 1440/inch),
// run sizes in half-points, and paragraph spacing in twips.

func mmToTwips(mm float64) int {
	return int(math.Round(mm * 1440.0 / 25.4))
}

func ptToTwips(pt float64) int {
	return int(math.Round(pt * 20))
}

func ptToHalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

func itoa(v int) string {
	return fmt.Sprintf("%d", v)
}
