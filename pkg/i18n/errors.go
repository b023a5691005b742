package i18n

import "errors"

var (
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrUnsupportedFile   = errors.New("unsupported translation file")
	ErrInvalidLanguage   = errors.New("invalid translation language")
)
