package batchfile

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexFloat handles JSON fields that can be either string or number.
// Blank and unparseable values decode as zero rather than failing the row
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	// Try as number first
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}

	// Try as string, tolerating thousands separators
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(n)
		return nil
	}

	*f = 0
	return nil
}

// FlexInt handles JSON fields that can be either string or number
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexInt(i)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexInt(i)
		return nil
	}

	*f = 0
	return nil
}

// batchLayouts are the date layouts upstream exports have been seen to use,
// tried in order. Layouts without a zone parse as UTC
var batchLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
	"02-Jan-2006",
}

// FlexTime handles JSON timestamp fields that can be an RFC3339 string, one of
// several spreadsheet date layouts, or an epoch number. Values that parse to
// nothing decode as the zero time, which downstream code treats as absent
type FlexTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			t.Time = time.Time{}
			return nil
		}
		for _, layout := range batchLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				t.Time = ts.UTC()
				return nil
			}
		}
		t.Time = time.Time{}
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil && n > 0 {
		// numeric timestamps come from JS exports as epoch millis;
		// values too small to be millis are taken as epoch seconds
		if n < 1e12 {
			n *= 1000
		}
		t.Time = time.UnixMilli(n).UTC()
		return nil
	}

	t.Time = time.Time{}
	return nil
}
