package numutil

import "strconv"

// IntWithCommas returns a string representation of an integer with commas
// as thousands separators.
//
// Example:
//
//	12345 -> "12,345"
func IntWithCommas(i int64) string {
	if i < 0 {
		return "-" + IntWithCommas(-i)
	}
	if i < 1000 {
		return strconv.FormatInt(i, 10)
	}
	return IntWithCommas(i/1000) + "," + pad3(i%1000)
}

func pad3(i int64) string {
	s := strconv.FormatInt(i, 10)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
