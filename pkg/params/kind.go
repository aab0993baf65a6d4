package params

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a parameter default.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindList   Kind = "list"
	KindString Kind = "str"
)

var (
	intPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[+-]?[0-9]*\.[0-9]*$`)
)

// KindOf infers the kind of literal text: integer and float literals,
// true/false in any case, bracketed lists, and str for everything else.
func KindOf(s string) Kind {
	switch {
	case isInt(s):
		return KindInt
	case isFloat(s):
		return KindFloat
	case isBool(s):
		return KindBool
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		return KindList
	default:
		return KindString
	}
}

func isInt(s string) bool { return intPattern.MatchString(s) }

// isFloat accepts decimal-point literals and single-e scientific notation
// with a numeric mantissa and an integer exponent. Single characters are
// never floats, so a bare dot stays a string.
func isFloat(s string) bool {
	if len(s) <= 1 {
		return false
	}
	if floatPattern.MatchString(s) {
		return true
	}
	parts := strings.Split(strings.ToLower(s), "e")
	if len(parts) != 2 {
		return false
	}
	mantissa, exponent := parts[0], parts[1]
	if mantissa == "" || exponent == "" {
		return false
	}
	if !isInt(mantissa) && !floatPattern.MatchString(mantissa) {
		return false
	}
	return isInt(exponent)
}

func isBool(s string) bool {
	lower := strings.ToLower(s)
	return lower == "true" || lower == "false"
}

// ValueOf converts literal text into its Go value per the inferred kind:
// int64, float64, bool, []any for lists, and the text itself for strings.
// Literals that fail to convert despite their kind fall back to the text.
func ValueOf(s string) any {
	switch KindOf(s) {
	case KindInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return n
		}
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f
		}
	case KindBool:
		return strings.EqualFold(s, "true")
	case KindList:
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return []any{}
		}
		elems := strings.Split(inner, ",")
		values := make([]any, len(elems))
		for i, elem := range elems {
			values[i] = ValueOf(strings.TrimSpace(elem))
		}
		return values
	}
	return s
}
