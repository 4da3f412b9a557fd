package retry

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy computes the delay before a retry attempt.
// Implementations must be safe for concurrent use.
type BackoffStrategy interface {
	// NextInterval returns the delay before the given attempt.
	// Attempt starts at 1 for the first retry.
	NextInterval(attempt int) time.Duration
}

// Linear grows the delay by a fixed step per attempt: min(Step * attempt, Max).
// This is the shape used for session-restoration retries, where a short,
// predictable ramp beats exponential growth.
type Linear struct {
	Step time.Duration
	Max  time.Duration
}

func (l Linear) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	step := l.Step
	if step == 0 {
		step = time.Second
	}

	delay := step * time.Duration(attempt)
	if l.Max > 0 && delay > l.Max {
		delay = l.Max
	}
	return delay
}

// Exponential doubles (by default) the delay each attempt with optional
// jitter to spread retries from concurrent clients.
type Exponential struct {
	Initial      time.Duration
	Max          time.Duration
	Multiplier   float64
	JitterFactor float64
}

func (e Exponential) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.Initial
	if initial == 0 {
		initial = time.Second
	}
	max := e.Max
	if max == 0 {
		max = 30 * time.Second
	}
	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))

	if e.JitterFactor > 0 {
		interval *= 1 + (rand.Float64()*2-1)*e.JitterFactor
	}

	if interval > float64(max) {
		interval = float64(max)
	}
	return time.Duration(interval)
}

// Fixed waits the same interval before every retry.
type Fixed struct {
	Interval time.Duration
}

func (f Fixed) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Interval
}
