package schemafile

import "errors"

var (
	ErrReadSchema     = errors.New("failed to read schema file")
	ErrParseSchema    = errors.New("failed to parse schema")
	ErrInvalidField   = errors.New("invalid schema field")
	ErrInvalidRule    = errors.New("invalid schema rule")
	ErrUnsupportedExt = errors.New("unsupported schema file extension")
)
