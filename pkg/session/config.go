package session

import "time"

// Config tunes session restoration. Defaults match the product's observed
// behavior; override via environment only when debugging.
type Config struct {
	// ExpiryTolerance absorbs clock skew between client and server: a
	// persisted session whose expiry is past by no more than this is still
	// restored optimistically.
	ExpiryTolerance time.Duration `env:"HELPDESK_SESSION_EXPIRY_TOLERANCE" envDefault:"30s"`

	// VerifyAttempts is the total attempt budget for the background
	// identity verification, including the first try.
	VerifyAttempts int `env:"HELPDESK_SESSION_VERIFY_ATTEMPTS" envDefault:"3"`

	// VerifyBackoffStep grows linearly per attempt: step, 2*step, ...
	// Short on purpose: it papers over auth-propagation races right after a
	// deployment, not extended outages.
	VerifyBackoffStep time.Duration `env:"HELPDESK_SESSION_VERIFY_BACKOFF_STEP" envDefault:"400ms"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		ExpiryTolerance:   30 * time.Second,
		VerifyAttempts:    3,
		VerifyBackoffStep: 400 * time.Millisecond,
	}
}
