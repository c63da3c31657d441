package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	type testCase struct {
		input    string
		expected time.Duration
		errMsg   string
	}
	tcs := []testCase{
		{input: "10s", expected: 10 * time.Second},
		{input: "300ms", expected: 300 * time.Millisecond},
		{input: "1h30m", expected: 90 * time.Minute},
		{input: "abc", errMsg: `time: invalid duration "abc"`},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tc.input))
			if tc.errMsg != "" {
				require.EqualError(t, err, tc.errMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, d.Duration)
		})
	}
}

func TestDurationMarshalText(t *testing.T) {
	d := NewDuration(10 * time.Minute)
	text, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "10m0s", string(text))

	var back Duration
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, d, back)
}

func TestDurationJSONSchema(t *testing.T) {
	schema := Duration{}.JSONSchema()
	raw, err := json.Marshal(schema)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"type":"string"`)
}
