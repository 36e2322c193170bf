package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "out of range",
			err:      OutOfRange("vector.get", 7, 3),
			contains: []string{"[vector.get]", "out_of_range", "index 7", "length 3"},
		},
		{
			name:     "minimal error",
			err:      &Error{Kind: KindEmpty},
			contains: []string{"empty"},
		},
		{
			name:     "unsupported type",
			err:      Unsupported("format.size", "map[string]int"),
			contains: []string{"[format.size]", "unsupported", "type map[string]int"},
		},
		{
			name:     "error with cause",
			err:      Wrap("format.write", KindWrite, stderrors.New("disk full"), "sink rejected bytes"),
			contains: []string{"write", "sink rejected bytes", "caused by", "disk full"},
		},
		{
			name: "detail after index",
			err: New("str.at", KindOutOfRange).
				Index(-1).
				Length(0).
				Detail("negative index %d", -1).
				Build(),
			contains: []string{"index -1", " - negative index -1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				assert.Contains(t, msg, s)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap("format.write", KindWrite, cause, "")

	require.ErrorIs(t, err, cause)
	assert.Same(t, cause, stderrors.Unwrap(err))
}

func TestError_Is(t *testing.T) {
	err := OutOfRange("vector.get", 4, 2)

	assert.ErrorIs(t, err, ErrOutOfRange, "sentinel matches on kind")
	assert.ErrorIs(t, err, &Error{Op: "vector.get", Kind: KindOutOfRange})
	assert.NotErrorIs(t, err, &Error{Op: "vector.set", Kind: KindOutOfRange})
	assert.NotErrorIs(t, err, ErrEmpty)
	assert.NotErrorIs(t, err, stderrors.New("out_of_range"))
}

func TestError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading row: %w", Empty("vector.pop_back"))

	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, KindEmpty, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(stderrors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestConvenienceConstructors(t *testing.T) {
	full := Full("vector.push_back", 4)
	assert.Equal(t, KindFull, full.Kind)
	assert.Contains(t, full.Error(), "capacity 4 reached")

	rel := Released("own.load")
	assert.Equal(t, "own.load", rel.Op)
	assert.ErrorIs(t, rel, ErrReleased)

	b := New("format.size", KindArgumentCount).Type("int").Detail("plain").Build()
	assert.Equal(t, "plain", b.Detail)
	assert.Equal(t, "int", b.Type)
}
