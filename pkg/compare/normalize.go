package compare

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/confdiff-inc/confdiff-engine/pkg/jsonutil"
)

// Canonical value forms produced by normalizeValue:
//
//	nil (the NULL sentinel), bool, decimal.Decimal, string,
//	[]any and map[string]any of canonical values.
//
// Absent cells and explicit nulls both canonicalize to nil, which is distinct
// from the empty string. Normalization is idempotent: every canonical form is
// its own fixed point.

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeValue canonicalizes a cell value for equality checks. With
// fold=false only minimal coercion applies: numbers of any Go type compare
// numerically, strings byte-for-byte, nested structures element-wise. With
// fold=true strings are additionally trimmed, whitespace-collapsed and
// lowercased, and numeric- or boolean-looking strings compare as numbers or
// booleans. The stored row data is never modified.
func normalizeValue(v any, fold bool) any {
	switch val := v.(type) {
	case nil:
		return nil
	case bool:
		return val
	case decimal.Decimal:
		return val
	case json.Number:
		if d, err := decimal.NewFromString(val.String()); err == nil {
			return d
		}
		return normalizeString(val.String(), fold)
	case string:
		return normalizeString(val, fold)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeValue(elem, fold)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = normalizeValue(elem, fold)
		}
		return out
	default:
		if d, ok := toDecimal(val); ok {
			return d
		}
		// Driver scalars outside the JSON shapes (time.Time, byte
		// slices, uuid and the like) compare by their string rendering.
		return normalizeString(jsonutil.Stringify(val), fold)
	}
}

func normalizeString(s string, fold bool) any {
	if !fold {
		return s
	}

	folded := strings.ToLower(strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " ")))
	if folded != "" {
		if d, err := decimal.NewFromString(folded); err == nil {
			return d
		}
	}
	switch folded {
	case "true":
		return true
	case "false":
		return false
	}
	return folded
}

// toDecimal converts any Go numeric type to a decimal.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromUint64(uint64(n)), true
	case uint8:
		return decimal.NewFromUint64(uint64(n)), true
	case uint16:
		return decimal.NewFromUint64(uint64(n)), true
	case uint32:
		return decimal.NewFromUint64(uint64(n)), true
	case uint64:
		return decimal.NewFromUint64(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case float64:
		return decimal.NewFromFloat(n), true
	}
	return decimal.Decimal{}, false
}

// canonicalEqual compares two canonical values. Arrays are order-sensitive;
// objects compare by key set and per-key value, agnostic to insertion order.
func canonicalEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		return ok && av.Equal(bv)
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !canonicalEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, ael := range av {
			bel, ok := bv[k]
			if !ok || !canonicalEqual(ael, bel) {
				return false
			}
		}
		return true
	}
	return false
}

// encodeCanonical renders a canonical value as a collision-safe string for
// key index lookups. Strings and object keys are length-prefixed so payload
// bytes can never shift component or element boundaries; decimals encode
// through big.Rat so equal numbers with different exponents ("1.0" vs "1")
// share one encoding; object keys are sorted so insertion order cannot
// split a key.
func encodeCanonical(sb *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		sb.WriteString("z")
	case bool:
		if val {
			sb.WriteString("b:1")
		} else {
			sb.WriteString("b:0")
		}
	case decimal.Decimal:
		sb.WriteString("n:")
		sb.WriteString(val.Rat().RatString())
	case string:
		encodeString(sb, val)
	case []any:
		sb.WriteString("a:[")
		for _, elem := range val {
			encodeCanonical(sb, elem)
			sb.WriteByte(0x1e)
		}
		sb.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString("o:{")
		for _, k := range keys {
			encodeString(sb, k)
			sb.WriteByte('=')
			encodeCanonical(sb, val[k])
			sb.WriteByte(0x1e)
		}
		sb.WriteByte('}')
	}
}

// encodeString writes a length-prefixed string: s:<len>:<bytes>. The prefix
// makes the payload self-delimiting, so values containing separator bytes
// cannot collide with adjacent components.
func encodeString(sb *strings.Builder, s string) {
	sb.WriteString("s:")
	sb.WriteString(strconv.Itoa(len(s)))
	sb.WriteByte(':')
	sb.WriteString(s)
}
