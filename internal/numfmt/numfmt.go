// Package numfmt formats numeric cell values before they are written as text.
//
// A spec is an fmt layout holding exactly one verb, for example "%.2f" or
// "%.1f%%". The extra flag ' asks for digit grouping ("%'.2f" renders
// 1234.5 as "1,234.50"); grouping is done by golang.org/x/text so the
// separators follow the configured language.
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrSpec  = errors.New("invalid number format")
	ErrValue = errors.New("value is not numeric")
)

// Default matches two decimals with thousands separators
const Default = "%'.2f"

var verbPattern = regexp.MustCompile(`%([-+# 0']*)(\d*)(?:\.(\d+))?([a-zA-Z%])`)

type Spec struct {
	layout  string
	verb    byte
	grouped bool
	printer *message.Printer
}

// Parse validates a spec. Grouped specs print with English separators.
func Parse(s string) (Spec, error) {
	return ParseLang(s, language.English)
}

// ParseLang validates a spec whose digit grouping follows tag
func ParseLang(s string, tag language.Tag) (Spec, error) {
	var verbs int
	var verb byte
	var grouped bool
	for _, m := range verbPattern.FindAllStringSubmatch(s, -1) {
		if m[4] == "%" {
			continue
		}
		verbs++
		verb = m[4][0]
		grouped = grouped || strings.Contains(m[1], "'")
	}
	if verbs != 1 {
		return Spec{}, fmt.Errorf("%w: %q needs exactly one verb", ErrSpec, s)
	}
	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G', 'd', 'v', 'x', 'X', 'o', 'b':
	default:
		return Spec{}, fmt.Errorf("%w: %q uses unsupported verb %%%c", ErrSpec, s, verb)
	}

	spec := Spec{
		layout:  strings.ReplaceAll(s, "'", ""),
		verb:    verb,
		grouped: grouped,
	}
	if grouped {
		spec.printer = message.NewPrinter(tag)
	}
	return spec, nil
}

// MustParse is Parse for package-level specs
func MustParse(s string) Spec {
	spec, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return spec
}

func (s Spec) String() string {
	if s.grouped {
		return strings.Replace(s.layout, "%", "%'", 1)
	}
	return s.layout
}

// Format renders a Go integer or float with the spec. Integers reach
// integer verbs and %v without passing through float64.
func (s Spec) Format(v any) (string, error) {
	f, _, ok := toFloat(v)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrValue, v)
	}
	n, isInt := integer(v)

	var arg any
	switch s.verb {
	case 'd', 'x', 'X', 'o', 'b':
		if isInt {
			arg = n
			break
		}
		r := math.Round(f)
		if math.IsNaN(r) || r < math.MinInt64 || r >= math.MaxInt64 {
			return "", fmt.Errorf("%w: %v does not fit an integer", ErrValue, f)
		}
		arg = int64(r)
	case 'v':
		if isInt {
			arg = n
		} else {
			arg = v
		}
	default:
		arg = f
	}

	if s.grouped {
		return s.printer.Sprintf(s.layout, arg), nil
	}
	return fmt.Sprintf(s.layout, arg), nil
}

// integer widens signed values to int64 and unsigned values to uint64
func integer(v any) (any, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	}
	return nil, false
}

// IsNumber reports whether v is one of Go's integer or float types
func IsNumber(v any) bool {
	_, _, ok := toFloat(v)
	return ok
}

// Float converts a numeric value to float64
func Float(v any) (float64, bool) {
	f, _, ok := toFloat(v)
	return f, ok
}

func toFloat(v any) (float64, bool, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true, true
	case int8:
		return float64(n), true, true
	case int16:
		return float64(n), true, true
	case int32:
		return float64(n), true, true
	case int64:
		return float64(n), true, true
	case uint:
		return float64(n), true, true
	case uint8:
		return float64(n), true, true
	case uint16:
		return float64(n), true, true
	case uint32:
		return float64(n), true, true
	case uint64:
		return float64(n), true, true
	case float32:
		return float64(n), false, true
	case float64:
		return n, false, true
	}
	return 0, false, false
}
