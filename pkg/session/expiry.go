package session

import (
	"encoding/json"
	"strconv"
	"time"
)

// Epoch values below this are too small to be milliseconds for any modern
// date, so they are read as seconds and scaled up.
const epochSecondsThreshold = 1e12

// parseExpiresAt normalizes the backend's expiry field, which has shipped as
// an RFC 3339 string, epoch seconds and epoch milliseconds at different
// times. Unparseable input yields the zero time, treated as non-expiring.
func parseExpiresAt(raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if t, err := time.Parse(time.RFC3339, text); err == nil {
			return t
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return fromEpoch(f)
		}
		return time.Time{}
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return fromEpoch(number)
	}

	return time.Time{}
}

func fromEpoch(value float64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	if value < epochSecondsThreshold {
		value *= 1000
	}
	return time.UnixMilli(int64(value)).UTC()
}
