//go:build unit

package errs_test

import (
	"testing"

	"hotel-booking-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("room unavailable")

	t.Run("marked errors match both the sentinel and the cause", func(t *testing.T) {
		cause := errs.New("conflicting stay for room 101")
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("the cause keeps the message", func(t *testing.T) {
		cause := errs.New("boom")
		err := errs.Mark(cause, sentinel)

		assert.Equal(t, "boom", err.Error())
	})

	t.Run("marking nil yields the sentinel itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("marks survive wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("boom"), sentinel), "creating booking")
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("stack of the cause stays printable", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), sentinel)

		lines := errs.ExtractStackLines(err, 4)
		require.NotEmpty(t, lines)
		assert.Equal(t, "boom", lines[0])
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Run("nil error yields nothing", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 8))
	})

	t.Run("line count is capped", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 2)
		assert.LessOrEqual(t, len(lines), 2)
	})
}
