package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := NewError(MODEL_NO_RESULTS, "no nodes were found")
	assert.Equal(t, "[MODEL_NO_RESULTS] no nodes were found", err.Error())

	wrapped := WrapError(GRAPH_QUERY_SYNTAX, "statement rejected", errors.New("boom"))
	assert.Equal(t, "[GRAPH_QUERY_SYNTAX] statement rejected: boom", wrapped.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := WrapError(CONFIG_LOAD_FAILED, "failed", cause)
	assert.ErrorIs(t, err, cause)
}

func TestError_IsMatchesByCode(t *testing.T) {
	a := NewError(MODEL_NOT_FOUND, "one message")
	b := NewError(MODEL_NOT_FOUND, "another message")
	c := NewError(MODEL_NO_RESULTS, "different code")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}

func TestHasCode(t *testing.T) {
	err := NewError(VALIDATION_TYPE_MISMATCH, "bad value")
	assert.True(t, HasCode(err, VALIDATION_TYPE_MISMATCH))
	assert.False(t, HasCode(err, MODEL_NOT_FOUND))

	// Codes are found through wrapping layers.
	wrapped := fmt.Errorf("context: %w", err)
	assert.True(t, HasCode(wrapped, VALIDATION_TYPE_MISMATCH))

	assert.False(t, HasCode(errors.New("plain"), VALIDATION_TYPE_MISMATCH))
	assert.False(t, HasCode(nil, VALIDATION_TYPE_MISMATCH))
}

func TestNewRetryableError(t *testing.T) {
	err := NewRetryableError(GRAPH_CONNECTION_FAILED, "timeout")
	assert.True(t, err.Retryable)

	require.False(t, NewError(GRAPH_CONNECTION_FAILED, "refused").Retryable)
}
