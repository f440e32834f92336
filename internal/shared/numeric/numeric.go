// Package numeric holds lenient JSON number types for form-style payloads.
//
// Absent, null, empty or non-numeric values decode to zero instead of failing the
// whole request; numeric strings such as "300000" are accepted. Int truncates
// fractional input toward zero and saturates at the int64 range.
package numeric

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Int int64

func (n *Int) UnmarshalJSON(data []byte) error {
	f, ok := parse(data)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = Int(toInt64(f))
	return nil
}

// 2^63 as a float64; float64(math.MaxInt64) rounds up to this value.
const int64Limit = 1 << 63

func toInt64(f float64) int64 {
	switch {
	case f >= int64Limit:
		return math.MaxInt64
	case f <= -int64Limit:
		return math.MinInt64
	default:
		return int64(math.Trunc(f))
	}
}

func (n Int) Int64() int64 { return int64(n) }

type Float float64

func (n *Float) UnmarshalJSON(data []byte) error {
	f, ok := parse(data)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = Float(f)
	return nil
}

func (n Float) Float64() float64 { return float64(n) }

func parse(data []byte) (float64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	return f, err == nil
}
