package ts3

import (
	"errors"
	"strconv"
)

var (
	// ErrNotFetched is stored in properties that were never fetched.
	ErrNotFetched = errors.New("property not fetched yet")
	// ErrNotReady is returned by API accessors when the entity itself is unavailable.
	ErrNotReady = errors.New("data not ready")
	// ErrOutOfRange is stored when a raw value does not fit the target type.
	ErrOutOfRange = errors.New("raw value out of range")
)

// DecodeError reports a raw integer code that does not belong to an enum.
type DecodeError struct {
	Enum string
	Raw  int64
}

func (e *DecodeError) Error() string {
	return "ts3: unknown " + e.Enum + " code " + strconv.FormatInt(e.Raw, 10)
}
