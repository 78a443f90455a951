//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"elibrary-borrowing/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallErrorClassification(t *testing.T) {
	t.Run("not-found kind is detected through wrapping", func(t *testing.T) {
		err := infra.WrapCallErr(infra.KindRemoteNotFound, "book not found", nil)
		assert.True(t, infra.IsRemoteNotFound(err))
		assert.False(t, infra.IsCallKind(err, infra.KindRemoteFailure))
	})

	t.Run("failure kind carries the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := infra.WrapCallErr(infra.KindRemoteFailure, "book service unreachable", cause)
		assert.True(t, infra.IsCallKind(err, infra.KindRemoteFailure))
		assert.False(t, infra.IsRemoteNotFound(err))
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("message formats with and without cause", func(t *testing.T) {
		bare := infra.WrapCallErr(infra.KindRemoteNotFound, "user not found", nil)
		assert.Equal(t, "REMOTE_NOT_FOUND: user not found", bare.Error())

		wrapped := infra.WrapCallErr(infra.KindRemoteFailure, "auth call", errors.New("timeout"))
		require.ErrorContains(t, wrapped, "REMOTE_FAILURE: auth call")
		assert.ErrorContains(t, wrapped, "timeout")
	})

	t.Run("repository and call kinds never cross-match", func(t *testing.T) {
		repoErr := infra.WrapRepoErr("row missing", nil, infra.KindNotFound)
		assert.False(t, infra.IsRemoteNotFound(repoErr))
		assert.False(t, infra.IsCallKind(repoErr, infra.KindRemoteFailure))

		callErr := infra.WrapCallErr(infra.KindRemoteNotFound, "entity gone", nil)
		assert.False(t, infra.IsKind(callErr, infra.KindNotFound))
		assert.False(t, infra.IsKind(callErr, infra.KindDBFailure))
	})

	t.Run("nil and plain errors classify as neither kind", func(t *testing.T) {
		assert.False(t, infra.IsRemoteNotFound(nil))
		assert.False(t, infra.IsCallKind(errors.New("plain"), infra.KindRemoteFailure))
	})
}
