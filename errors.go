package richtext

import "github.com/riverfjs/richtext-go/internal/types"

// Errors returned by span operations. Use errors.Is to test for them.
var (
	ErrRange        = types.ErrRange
	ErrConfig       = types.ErrConfig
	ErrSpanNotFound = types.ErrSpanNotFound
)

type (
	RangeError  = types.RangeError
	ConfigError = types.ConfigError
)
