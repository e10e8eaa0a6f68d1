package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatROI(t *testing.T) {
	assert.Equal(t, "19.53%", FormatROI(19.5328))
	assert.Equal(t, "-5.00%", FormatROI(-5))
	assert.Equal(t, "0.00%", FormatROI(0))

	// Non-finite values render as the sentinel instead of leaking NaN/Inf.
	assert.Equal(t, "∞", FormatROI(math.NaN()))
	assert.Equal(t, "∞", FormatROI(math.Inf(1)))
	assert.Equal(t, "-∞", FormatROI(math.Inf(-1)))
}
