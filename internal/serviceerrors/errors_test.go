package serviceerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromError_PassesThroughAppError(t *testing.T) {
	t.Parallel()

	err := NewDuplicateItem()
	assert.Same(t, err, FromError(err))

	wrapped := fmt.Errorf("handler: %w", NewInvalidCredentials())
	assert.ErrorIs(t, FromError(wrapped), NewInvalidCredentials())
}

func TestFromError_WrapsUnknownAsInternal(t *testing.T) {
	t.Parallel()

	base := errors.New("connection refused")
	appErr := FromError(base)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Internal server error", appErr.Msg)
	assert.ErrorIs(t, appErr, base)
	assert.True(t, appErr.IsInternal())
}

func TestIs_MatchesByCodeAndMessage(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NewDuplicateEmail(), NewDuplicateEmail())
	assert.NotErrorIs(t, NewDuplicateEmail(), NewDuplicateItem())
	assert.NotErrorIs(t, NewUnauthorized(), NewInvalidToken())
}

func TestWrap_KeepsClientMessage(t *testing.T) {
	t.Parallel()

	base := errors.New("pq: duplicate key value")
	err := NewDuplicateItem().Wrap(base)
	assert.Equal(t, "Pokemon already in collection", err.Error())
	assert.ErrorIs(t, err, base)
}
