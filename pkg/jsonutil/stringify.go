package jsonutil

import (
	"encoding/json"
	"fmt"
	"time"
)

// Stringify renders a cell value for display and char-diffing. Scalars render
// directly, absent/null values render as "NULL" (distinct from the empty
// string), and nested structures render as compact JSON. Values that fail to
// marshal fall back to fmt's default formatting.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	case json.Number:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case float32:
		return Stringify(float64(val))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case time.Time:
		return val.Format(time.RFC3339)
	case []byte:
		return string(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
