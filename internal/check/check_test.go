package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kets"
)

func TestSameLen(t *testing.T) {
	assert.NotPanics(t, func() { SameLen("dot", 3, 3) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)

		var lm *kets.ErrLengthMismatch
		require.True(t, errors.As(err, &lm))
		assert.Equal(t, "dot", lm.Op)
		assert.Equal(t, 3, lm.Expected)
		assert.Equal(t, 4, lm.Actual)
		assert.ErrorIs(t, err, kets.ErrPrecondition)
	}()
	SameLen("dot", 3, 4)
}

func TestLayout(t *testing.T) {
	assert.NotPanics(t, func() { Layout(nil) })
	assert.PanicsWithError(t, "invalid compact basis layout (width 0, len 4): width must be positive", func() {
		Layout(&kets.ErrInvalidLayout{Kind: "compact", Width: 0, Len: 4, Reason: "width must be positive"})
	})
}
