package apiclient

import "strings"

// Forwarding tunnels used for local development serve an HTML warning page
// before the first request unless a vendor-specific header opts out.
var tunnelBypasses = []struct {
	suffixes []string
	header   string
	value    string
}{
	{
		suffixes: []string{".ngrok-free.app", ".ngrok.app", ".ngrok.io", ".ngrok.dev"},
		header:   "ngrok-skip-browser-warning",
		value:    "true",
	},
	{
		suffixes: []string{".loca.lt"},
		header:   "bypass-tunnel-reminder",
		value:    "1",
	},
}

// tunnelBypass returns the opt-out header for hosts served through a known
// tunneling proxy.
func tunnelBypass(host string) (header, value string, ok bool) {
	lowered := strings.ToLower(host)
	for _, bypass := range tunnelBypasses {
		for _, suffix := range bypass.suffixes {
			if strings.HasSuffix(lowered, suffix) {
				return bypass.header, bypass.value, true
			}
		}
	}
	return "", "", false
}
