package config

import (
	"time"
)

// Duration wraps time.Duration so it can be written as "1.5s" in TOML and
// in environment variables
type Duration time.Duration

// String returns the string representation of Duration
func (d Duration) String() string {
	return time.Duration(d).String()
}

// AsDuration converts a config.Duration to a time.Duration
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
