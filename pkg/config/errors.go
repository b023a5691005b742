package config

import "errors"

var (
	// ErrParsingConfig wraps every failure to parse variables into the target struct.
	ErrParsingConfig = errors.New("config: parse environment")

	ErrNilPointer = errors.New("config: nil target")
)
