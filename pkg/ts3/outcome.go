package ts3

// Outcome is the stored result of fetching a single property: either a value
// or the error the fetch failed with.
type Outcome[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully fetched value.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Fail wraps a fetch error. A nil error is replaced by ErrNotFetched so a
// failed Outcome never reports success.
func Fail[T any](err error) Outcome[T] {
	if err == nil {
		err = ErrNotFetched
	}
	return Outcome[T]{err: err}
}

// Pending is the placeholder of a property that has not been fetched yet.
func Pending[T any]() Outcome[T] {
	return Outcome[T]{err: ErrNotFetched}
}

// Capture turns the (value, error) pair of a fetch call into an Outcome.
func Capture[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Outcome[T]{err: err}
	}
	return Outcome[T]{value: v}
}

// Get returns the value or the stored error.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.err
}

// Ref returns a pointer to the stored value. The pointer aliases the copy
// held by the receiver, so callers must not keep it across updates.
func (o *Outcome[T]) Ref() (*T, error) {
	if o.err != nil {
		return nil, o.err
	}
	return &o.value, nil
}

// Err returns the stored error, nil on success.
func (o Outcome[T]) Err() error {
	return o.err
}

// Failed reports whether the outcome holds an error.
func (o Outcome[T]) Failed() bool {
	return o.err != nil
}

// ValueOr returns the value, or def when the outcome failed.
func (o Outcome[T]) ValueOr(def T) T {
	if o.err != nil {
		return def
	}
	return o.value
}

// Or keeps o when it holds a value and falls back to other otherwise.
// other is taken as is, including its error.
func (o Outcome[T]) Or(other Outcome[T]) Outcome[T] {
	if o.err != nil {
		return other
	}
	return o
}
