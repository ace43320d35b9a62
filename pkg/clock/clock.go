package clock

import "time"

// Clock supplies the current instant. Injected everywhere time-dependent
// decisions are made so tests can pin "now".
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }
