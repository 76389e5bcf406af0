package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is a loosely shaped backend object read field by field. Each accessor
// takes the accepted spellings of a field in priority order; the first present,
// non-null one wins.
type Record map[string]json.RawMessage

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func DecodeRecord(raw json.RawMessage) (Record, error) {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("expected object: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("expected object, got null")
	}
	return rec, nil
}

func (r Record) lookup(keys []string) (json.RawMessage, string, bool) {
	for _, key := range keys {
		raw, ok := r[key]
		if !ok {
			continue
		}
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || string(trimmed) == "null" {
			continue
		}
		return trimmed, key, true
	}
	return nil, "", false
}

// ID returns a required identifier given as a string or a number.
func (r Record) ID(keys ...string) (string, error) {
	raw, key, ok := r.lookup(keys)
	if !ok {
		return "", fmt.Errorf("missing %s", keys[0])
	}
	id := scalarText(raw)
	if id == "" {
		return "", fmt.Errorf("invalid %s", key)
	}
	return id, nil
}

// OptionalID is ID with an empty default.
func (r Record) OptionalID(keys ...string) string {
	raw, _, ok := r.lookup(keys)
	if !ok {
		return ""
	}
	return scalarText(raw)
}

// String returns the trimmed text value, or "" when absent.
func (r Record) String(keys ...string) string {
	raw, _, ok := r.lookup(keys)
	if !ok {
		return ""
	}
	return scalarText(raw)
}

// Int accepts numbers and numeric strings; anything else is 0.
func (r Record) Int(keys ...string) int {
	raw, _, ok := r.lookup(keys)
	if !ok {
		return 0
	}
	text := scalarText(raw)
	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int(f)
	}
	return 0
}

// Decimal accepts numbers and numeric strings (comma decimal separator included);
// anything else is zero.
func (r Record) Decimal(keys ...string) decimal.Decimal {
	raw, _, ok := r.lookup(keys)
	if !ok {
		return decimal.Zero
	}
	text := strings.ReplaceAll(scalarText(raw), ",", ".")
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Bool accepts JSON booleans, 0/1 and "true"/"false".
func (r Record) Bool(keys ...string) bool {
	raw, _, ok := r.lookup(keys)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(scalarText(raw))
	return err == nil && b
}

// Time parses RFC 3339 timestamps or plain dates; unparsable values are nil.
func (r Record) Time(keys ...string) *time.Time {
	raw, _, ok := r.lookup(keys)
	if !ok {
		return nil
	}
	text := scalarText(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	return nil
}

func scalarText(raw json.RawMessage) string {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}
	switch raw[0] {
	case '{', '[':
		return ""
	}
	return strings.TrimSpace(string(raw))
}
