package numeric_test

import (
	"encoding/json"
	"math"
	"testing"

	"go-payslip/internal/shared/numeric"

	"github.com/stretchr/testify/assert"
)

func TestInt_UnmarshalJSON(t *testing.T) {
	cases := map[string]int64{
		`{"v":300000}`:   300000,
		`{"v":"250000"}`: 250000,
		`{"v":1200.9}`:   1200,
		`{"v":null}`:     0,
		`{"v":""}`:       0,
		`{"v":"abc"}`:    0,
		`{"v":true}`:     0,
		`{"v":[1,2]}`:    0,
		`{}`:             0,
		`{"v":" 42 "}`:   42,
		`{"v":-5}`:       -5,
		`{"v":1e20}`:     math.MaxInt64,
		`{"v":"9.3e18"}`: math.MaxInt64,
		`{"v":-1e20}`:    math.MinInt64,
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			var body struct {
				V numeric.Int `json:"v"`
			}
			assert.NoError(t, json.Unmarshal([]byte(input), &body))
			assert.Equal(t, want, body.V.Int64())
		})
	}
}

func TestFloat_UnmarshalJSON(t *testing.T) {
	var body struct {
		Days  numeric.Float `json:"days"`
		Hours numeric.Float `json:"hours"`
		Extra numeric.Float `json:"extra"`
	}

	err := json.Unmarshal([]byte(`{"days":"20.5","hours":160,"extra":"n/a"}`), &body)

	assert.NoError(t, err)
	assert.Equal(t, 20.5, body.Days.Float64())
	assert.Equal(t, 160.0, body.Hours.Float64())
	assert.Equal(t, 0.0, body.Extra.Float64())
}
