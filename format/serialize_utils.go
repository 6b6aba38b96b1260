// Package format contains number formatting used in text outputs.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatToFixedWidthString formats n right aligned in w characters with as many
// decimals as fit. Values whose integer part does not fit fall back to %g.
func FloatToFixedWidthString(n float64, w int) string {
	wStr := strconv.Itoa(w)
	s := fmt.Sprintf("%"+wStr+"."+wStr+"f", n)
	if dot := strings.IndexByte(s, '.'); dot < 0 || dot >= w {
		return fmt.Sprintf("%"+wStr+"g", n)
	}
	trimed := strings.TrimRight(strings.TrimRight(s[:w], "0"), ".")
	return strings.Repeat(" ", w-len(trimed)) + trimed
}
