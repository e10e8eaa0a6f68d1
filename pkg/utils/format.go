package utils

import (
	"fmt"
	"math"
)

// FormatROI renders an ROI percentage for display. Non-finite values render as
// the infinity sentinel instead of leaking NaN/Inf downstream.
func FormatROI(roi float64) string {
	if math.IsNaN(roi) {
		return "∞"
	}
	if math.IsInf(roi, 1) {
		return "∞"
	}
	if math.IsInf(roi, -1) {
		return "-∞"
	}
	return fmt.Sprintf("%.2f%%", roi)
}
