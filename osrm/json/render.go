package json

import (
	"math"
	"strconv"
)

// Render returns the textual form of v as a fresh byte slice.
func Render(v Value) []byte {
	return Append(nil, v)
}

// Append appends the textual form of v to dst and returns the extended slice.
//
// Numbers render with up to 10 significant digits and never depend on the
// process locale; NaN and infinities render as null. Object members render in
// insertion order. Recursion depth equals document depth.
func Append(dst []byte, v Value) []byte {
	switch t := v.(type) {
	case nil:
		return append(dst, "null"...)
	case Null:
		return append(dst, "null"...)
	case Boolean:
		if t {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number:
		return appendNumber(dst, float64(t))
	case String:
		return appendEscaped(dst, string(t))
	case Array:
		dst = append(dst, '[')
		for i, e := range t {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = Append(dst, e)
		}
		return append(dst, ']')
	case *Object:
		dst = append(dst, '{')
		for i, k := range t.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendEscaped(dst, k)
			dst = append(dst, ':')
			dst = Append(dst, t.values[k])
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

func appendNumber(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	return strconv.AppendFloat(dst, f, 'g', 10, 64)
}

const hexDigits = "0123456789abcdef"

// appendEscaped writes s between double quotes. The escape set is fixed:
// quote and backslash get a leading backslash, the five named control
// characters use their short escapes, any other byte below 0x20 becomes
// \u00xx with lowercase hex, and everything else passes through byte-wise.
func appendEscaped(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			} else {
				dst = append(dst, c)
			}
		}
	}
	return append(dst, '"')
}
