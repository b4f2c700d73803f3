package units

// Judge metric values travel as strings with unit suffixes: execution time in
// decimal seconds ("0.12s") and memory in kilobytes ("262144 KB"). Values are
// stored and returned verbatim; only averaging needs the numeric part.

import (
	"fmt"
	"strconv"
	"strings"
)

func TimeSeconds(seconds string) string {
	return seconds + "s"
}

func MemoryKB(kilobytes int) string {
	return fmt.Sprintf("%d KB", kilobytes)
}

// ParseNumber extracts the numeric part of a metric string, ignoring the unit
// suffix. Returns nil for missing or unparsable values.
func ParseNumber(value *string) *float64 {
	if value == nil || *value == "" {
		return nil
	}
	var b strings.Builder
	for _, r := range *value {
		if r >= '0' && r <= '9' || r == '.' {
			b.WriteRune(r)
		}
	}
	num, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}
	return &num
}

// Average computes the mean of the parsable values, rounded to 3 decimal
// places. Missing and unparsable values are skipped; if nothing parses the
// result is nil, not zero.
func Average(values []*string) *string {
	var sum float64
	var count int
	for _, value := range values {
		if num := ParseNumber(value); num != nil {
			sum += *num
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := fmt.Sprintf("%.3f", sum/float64(count))
	return &avg
}
