package config

import "errors"

var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToParseConfig    = errors.New("failed to parse config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
)
