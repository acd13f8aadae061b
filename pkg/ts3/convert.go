package ts3

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// maxSeconds is the largest number of seconds a time.Duration can hold.
const maxSeconds = math.MaxInt64 / int64(time.Second)

// toInt64 widens raw, failing for unsigned values above math.MaxInt64.
func toInt64[R constraints.Integer](raw R) (int64, error) {
	if raw > 0 && uint64(raw) > math.MaxInt64 {
		return 0, fmt.Errorf("raw value %d: %w", raw, ErrOutOfRange)
	}
	return int64(raw), nil
}

// AsDuration interprets a raw integer as a number of seconds.
func AsDuration[R constraints.Integer](o Outcome[R]) Outcome[time.Duration] {
	raw, err := o.Get()
	if err != nil {
		return Fail[time.Duration](err)
	}
	secs, err := toInt64(raw)
	if err != nil {
		return Fail[time.Duration](err)
	}
	if secs > maxSeconds || secs < -maxSeconds {
		return Fail[time.Duration](fmt.Errorf("%d seconds: %w", secs, ErrOutOfRange))
	}
	return Ok(time.Duration(secs) * time.Second)
}

// AsTime interprets a raw integer as seconds since the Unix epoch.
func AsTime[R constraints.Integer](o Outcome[R]) Outcome[time.Time] {
	raw, err := o.Get()
	if err != nil {
		return Fail[time.Time](err)
	}
	secs, err := toInt64(raw)
	if err != nil {
		return Fail[time.Time](err)
	}
	return Ok(time.Unix(secs, 0).UTC())
}

// AsBool interprets a raw integer as a flag: zero is false, anything else true.
func AsBool[R constraints.Integer](o Outcome[R]) Outcome[bool] {
	raw, err := o.Get()
	if err != nil {
		return Fail[bool](err)
	}
	return Ok(raw != 0)
}

// Decode converts a raw integer code into an enum through parse, which must
// reject codes it does not know. Codes that do not fit an int64 never reach
// parse.
func Decode[R constraints.Integer, T any](o Outcome[R], parse func(int64) (T, error)) Outcome[T] {
	raw, err := o.Get()
	if err != nil {
		return Fail[T](err)
	}
	code, err := toInt64(raw)
	if err != nil {
		return Fail[T](err)
	}
	return Capture(parse(code))
}
