package idea

import (
	"encoding/json"
	"strings"
	"time"
)

// encodeList serializes an ordered list field (themes, tone) to the stable
// text form stored in the database. A nil slice encodes the same as an empty
// one.
func encodeList(values []string) string {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// decodeList restores a serialized list field. Rows ingested by the first
// dashboard generation stored comma-separated text instead of JSON; those
// decode as split-and-trimmed elements.
func decodeList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err == nil {
		return values
	}

	parts := strings.Split(raw, ",")
	values = make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// nextDate computes the scheduling date for a new idea: the latest existing
// date, or today when the account has none, plus the posting interval.
func nextDate(latest *time.Time, now time.Time, intervalDays int) time.Time {
	base := now
	if latest != nil {
		base = *latest
	}
	return base.AddDate(0, 0, intervalDays)
}
