package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// CoerceBool converts yes/no-style values to a boolean. The second return
// value reports whether the input was recognized.
func CoerceBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "yes", "y":
			return true, true
		case "false", "no", "n", "", "n/a", "not available":
			return false, true
		}
	}
	return false, false
}

var numberPattern = regexp.MustCompile(`-?\d+(?:,\d{3})*(?:\.\d+)?`)

// CoerceNumber extracts a numeric value from currency-flavored text like
// "500 INR", "₹1,200" or "Free entry". Plain numbers pass through.
func CoerceNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		s := strings.TrimSpace(val)
		lower := strings.ToLower(s)
		if lower == "" || lower == "n/a" || lower == "not available" ||
			strings.Contains(lower, "free") {
			return 0, true
		}
		if m := numberPattern.FindString(s); m != "" {
			n, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
			if err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

var rangePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[-–to]+\s*(\d+(?:\.\d+)?)`)

// CoerceDuration converts duration phrases to decimal hours. Worked
// conversions: "2-3 hours" -> 2.5, "30 minutes" -> 0.5, "Full day
// experience" -> 8, "Half day tour" -> 4. Numeric inputs pass through, so
// the coercion is idempotent.
func CoerceDuration(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		switch {
		case s == "" || s == "n/a" || s == "not available":
			return 0, true
		case strings.Contains(s, "full day"):
			return 8, true
		case strings.Contains(s, "half day"):
			return 4, true
		}
		if m := rangePattern.FindStringSubmatch(s); m != nil {
			lo, err1 := strconv.ParseFloat(m[1], 64)
			hi, err2 := strconv.ParseFloat(m[2], 64)
			if err1 == nil && err2 == nil {
				n := (lo + hi) / 2
				if strings.Contains(s, "minute") || strings.Contains(s, "min") {
					n /= 60
				}
				return n, true
			}
		}
		if m := numberPattern.FindString(s); m != "" {
			n, err := strconv.ParseFloat(m, 64)
			if err == nil {
				if strings.Contains(s, "minute") || strings.Contains(s, "min") {
					n /= 60
				}
				return n, true
			}
		}
	}
	return 0, false
}
