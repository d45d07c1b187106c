package internal

import "strconv"

// Value holds exactly one of float64, string, or FormulaError: the result
// of reading a cell.
type Value any

// FormatValue renders a Value the way PrintValues displays it: a double
// with the minimum digits necessary to round-trip, a string verbatim, or
// the FormulaError's textual form.
func FormatValue(v Value) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	case FormulaError:
		return val.String()
	default:
		return ""
	}
}
