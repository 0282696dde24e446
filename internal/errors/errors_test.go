package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrap_KeepsChainAndStack(t *testing.T) {
	sentinel := New("boom")
	wrapped := Wrapf(sentinel, "load %s", "offer")

	assert.ErrorIs(t, wrapped, sentinel)
	assert.EqualError(t, wrapped, "load offer: boom")
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrap_KeepsChainAndStack")
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

func TestAs_FindsTypedErrorThroughWraps(t *testing.T) {
	err := WithStack(Wrap(&codedError{code: "OFFER_NOT_FOUND"}, "find"))

	var target *codedError
	require.True(t, As(err, &target))
	assert.Equal(t, "OFFER_NOT_FOUND", target.code)
	assert.False(t, Is(err, New("OFFER_NOT_FOUND")))
}
