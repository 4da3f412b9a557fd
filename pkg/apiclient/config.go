package apiclient

import "time"

// Config holds client configuration, loadable from environment variables via
// the config package.
type Config struct {
	// BaseURL is the API origin; falls back to the local development server.
	BaseURL string `env:"HELPDESK_API_BASE_URL" envDefault:"http://localhost:5000/api"`

	// Timeout bounds each request end to end.
	Timeout time.Duration `env:"HELPDESK_HTTP_TIMEOUT" envDefault:"30s"`
}
