package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiresAt(t *testing.T) {
	t.Parallel()

	want := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "rfc3339 string", raw: `"2030-01-01T00:00:00Z"`, want: want},
		{name: "epoch seconds number", raw: `1893456000`, want: want},
		{name: "epoch milliseconds number", raw: `1893456000000`, want: want},
		{name: "epoch seconds as string", raw: `"1893456000"`, want: want},
		{name: "garbage string is non-expiring", raw: `"soon"`, want: time.Time{}},
		{name: "null is non-expiring", raw: `null`, want: time.Time{}},
		{name: "zero is non-expiring", raw: `0`, want: time.Time{}},
		{name: "negative is non-expiring", raw: `-5`, want: time.Time{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseExpiresAt(json.RawMessage(tt.raw))
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseExpiresAt_Absent(t *testing.T) {
	t.Parallel()

	assert.True(t, parseExpiresAt(nil).IsZero())
	assert.True(t, parseExpiresAt(json.RawMessage{}).IsZero())
}
