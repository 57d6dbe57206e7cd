package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesTypeAndCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewInternalError("failed to persist feedback", cause)

	assert.Contains(t, err.Error(), "INTERNAL")
	assert.Contains(t, err.Error(), "failed to persist feedback")
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("no information found for code: XYZ999")))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", NewNotFoundError("missing"))))
	assert.False(t, IsNotFound(NewValidationError("bad rating")))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))
	assert.False(t, IsNotFound(nil))
}
