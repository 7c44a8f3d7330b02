// Package config loads the sequencer settings used by the dubstep binary from
// a TOML file and DUBSTEP_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/librescoot/dubstep"
	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk configuration. Environment variables override values
// read from the file.
type File struct {
	Total          int      `toml:"total"           env:"DUBSTEP_TOTAL"`
	Cycle          bool     `toml:"cycle"           env:"DUBSTEP_CYCLE"`
	Duration       Duration `toml:"duration"        env:"DUBSTEP_DURATION"`
	AutoPlay       bool     `toml:"autoplay"        env:"DUBSTEP_AUTOPLAY"`
	AnimationSpeed Duration `toml:"animation_speed" env:"DUBSTEP_ANIMATION_SPEED"`

	// Slides are optional titles shown by the terminal player. When set and
	// Total is zero, Total becomes len(Slides).
	Slides []string `toml:"slides"`
}

// Parse decodes TOML. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Join(ErrFailedToParseConfig, err)
	}
	return &f, nil
}

// Load reads a TOML file and applies environment overrides
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadConfig, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.ApplyEnv(); err != nil {
		return nil, err
	}
	return f, nil
}

// FromEnv builds a File from environment variables only
func FromEnv() (*File, error) {
	f := &File{}
	if err := f.ApplyEnv(); err != nil {
		return nil, err
	}
	return f, nil
}

// ApplyEnv overrides fields whose DUBSTEP_* variable is set
func (f *File) ApplyEnv() error {
	if err := env.Parse(f); err != nil {
		return errors.Join(ErrFailedToParseConfig, err)
	}
	return nil
}

// Controller converts the file into a dubstep.Config carrying hooks
func (f *File) Controller(hooks dubstep.Hooks) dubstep.Config {
	total := f.Total
	if total == 0 {
		total = len(f.Slides)
	}
	return dubstep.Config{
		Total:          total,
		Cycle:          f.Cycle,
		Duration:       f.Duration.AsDuration(),
		AutoPlay:       f.AutoPlay,
		AnimationSpeed: f.AnimationSpeed.AsDuration(),
		Hooks:          hooks,
	}
}

// Validate checks the settings the same way dubstep.New does
func (f *File) Validate() error {
	if err := f.Controller(dubstep.Hooks{}).Validate(); err != nil {
		return errors.Join(ErrFailedToValidateConfig, err)
	}
	return nil
}

// Title returns the slide title for step, or "" when no slide matches
func (f *File) Title(step int) string {
	if step < 0 || step >= len(f.Slides) {
		return ""
	}
	return f.Slides[step]
}

// String summarizes the settings
func (f *File) String() string {
	cfg := f.Controller(dubstep.Hooks{})

	var b strings.Builder
	b.WriteString("Sequencer:\n")
	fmt.Fprintf(&b, "- Total: %s\n", optional(cfg.Total > 0, fmt.Sprint(cfg.Total)))
	fmt.Fprintf(&b, "- Cycle: %t\n", cfg.Cycle)
	fmt.Fprintf(&b, "- Duration: %s\n", optional(cfg.Duration > 0, cfg.Duration.String()))
	fmt.Fprintf(&b, "- AutoPlay: %t\n", cfg.AutoPlay)
	fmt.Fprintf(&b, "- Animation speed: %s\n", optional(cfg.AnimationSpeed > 0, cfg.AnimationSpeed.String()))
	fmt.Fprintf(&b, "- Slides: %d", len(f.Slides))
	return b.String()
}

func optional(set bool, value string) string {
	if !set {
		return "unset"
	}
	return value
}
