package logger

import (
	"time"

	"go.uber.org/zap"
)

// String creates a field with a string value.
func String(key, val string) Field {
	return zap.String(key, val)
}

// Strings creates a field with a string slice value.
func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Int creates a field with an int value.
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 creates a field with an int64 value.
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Bool creates a field with a boolean value.
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Duration creates a field with a time.Duration value.
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Error creates a field for an error value under the "error" key.
func Error(err error) Field {
	return zap.Error(err)
}

// Any creates a field from an arbitrary value.
func Any(key string, val any) Field {
	return zap.Any(key, val)
}
