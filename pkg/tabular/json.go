package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FromJSON builds a dataset from a JSON array of objects. Object key order is
// preserved for the column list (encoding/json's map decoding would lose it,
// so the top-level objects are walked token by token). Numbers decode as
// json.Number to avoid float rounding before comparison.
func FromJSON(name string, data []byte) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("dataset JSON must be an array of objects, got %v", tok)
	}

	d := New(name)
	for dec.More() {
		cols, rec, err := decodeOrderedObject(dec)
		if err != nil {
			return nil, err
		}
		d.Append(cols, rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}
	return d, nil
}

// decodeOrderedObject reads one {...} object, returning its keys in
// document order alongside the decoded record.
func decodeOrderedObject(dec *json.Decoder) ([]string, Record, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("dataset rows must be JSON objects, got %v", tok)
	}

	var cols []string
	rec := Record{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, key)
		rec[key] = val
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}
	return cols, rec, nil
}

// decodeValue reads one JSON value. Nested objects decode to plain maps;
// key order only matters for the top-level column list.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, or nil
		return tok, nil
	}

	switch delim {
	case '{':
		obj := make(map[string]any)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj[key] = val
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
		}
		return obj, nil
	case '[':
		arr := make([]any, 0)
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected JSON delimiter %q", delim.String())
	}
}
