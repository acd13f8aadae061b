package ts3_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ts3go/ts3plugin/pkg/ts3"
)

var errFetch = errors.New("fetch failed")

func TestOutcomeGet(t *testing.T) {
	v, err := ts3.Ok("lobby").Get()
	require.NoError(t, err)
	assert.Equal(t, "lobby", v)

	v, err = ts3.Fail[string](errFetch).Get()
	assert.ErrorIs(t, err, errFetch)
	assert.Empty(t, v)

	_, err = ts3.Pending[int32]().Get()
	assert.ErrorIs(t, err, ts3.ErrNotFetched)
}

func TestFailNilError(t *testing.T) {
	o := ts3.Fail[int32](nil)
	assert.True(t, o.Failed())
	assert.ErrorIs(t, o.Err(), ts3.ErrNotFetched)
}

func TestCapture(t *testing.T) {
	fetch := func(ok bool) (uint64, error) {
		if ok {
			return 42, nil
		}
		return 7, errFetch
	}

	o := ts3.Capture(fetch(true))
	assert.False(t, o.Failed())
	assert.Equal(t, uint64(42), o.ValueOr(0))

	o = ts3.Capture(fetch(false))
	assert.True(t, o.Failed())
	assert.ErrorIs(t, o.Err(), errFetch)
	// The value returned next to an error is discarded.
	assert.Equal(t, uint64(0), o.ValueOr(0))
}

func TestOutcomeRef(t *testing.T) {
	o := ts3.Ok(int32(5))
	p, err := o.Ref()
	require.NoError(t, err)
	*p = 6
	assert.Equal(t, int32(6), o.ValueOr(0))

	failed := ts3.Fail[int32](errFetch)
	p, err = failed.Ref()
	assert.Nil(t, p)
	assert.ErrorIs(t, err, errFetch)
}

func TestOutcomeOr(t *testing.T) {
	errOther := errors.New("other failed")

	type testCase struct {
		name    string
		self    ts3.Outcome[string]
		other   ts3.Outcome[string]
		want    string
		wantErr error
	}

	testCases := []testCase{
		{
			name:  "ok keeps self",
			self:  ts3.Ok("a"),
			other: ts3.Ok("b"),
			want:  "a",
		},
		{
			name:  "ok ignores failed other",
			self:  ts3.Ok("a"),
			other: ts3.Fail[string](errOther),
			want:  "a",
		},
		{
			name:  "failed takes other",
			self:  ts3.Fail[string](errFetch),
			other: ts3.Ok("b"),
			want:  "b",
		},
		{
			name:    "failed takes failed other",
			self:    ts3.Fail[string](errFetch),
			other:   ts3.Fail[string](errOther),
			wantErr: errOther,
		},
		{
			name:  "pending takes other",
			self:  ts3.Pending[string](),
			other: ts3.Ok("b"),
			want:  "b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.self.Or(tc.other).Get()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
