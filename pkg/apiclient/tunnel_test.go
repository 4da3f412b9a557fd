package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTunnelBypass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host       string
		wantHeader string
		wantValue  string
		wantOK     bool
	}{
		{host: "abc123.ngrok-free.app", wantHeader: "ngrok-skip-browser-warning", wantValue: "true", wantOK: true},
		{host: "demo.ngrok.io", wantHeader: "ngrok-skip-browser-warning", wantValue: "true", wantOK: true},
		{host: "Helpdesk.NGROK.APP", wantHeader: "ngrok-skip-browser-warning", wantValue: "true", wantOK: true},
		{host: "support.loca.lt", wantHeader: "bypass-tunnel-reminder", wantValue: "1", wantOK: true},
		{host: "localhost", wantOK: false},
		{host: "support.example.com", wantOK: false},
		{host: "ngrok.example.com", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			header, value, ok := tunnelBypass(tt.host)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantHeader, header)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
