package ossched

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredErrorMessage(t *testing.T) {
	err := NewError("LOAD_CONFIG", ErrCodeConfigMalformed, "missing CPU Scheduling Code")
	assert.Equal(t, "ossched: missing CPU Scheduling Code (op=LOAD_CONFIG)", err.Error())
	assert.Equal(t, ErrCodeConfigMalformed, err.Code)
}

func TestWrapErrorPreservesCode(t *testing.T) {
	inner := NewError("PARSE_WORKLOAD", ErrCodeWorkloadMalformed, "unbalanced A{finish}")
	wrapped := WrapError("RUN", ErrCodeConfigMalformed, inner)
	assert.Equal(t, ErrCodeWorkloadMalformed, wrapped.Code)
	assert.True(t, errors.Is(wrapped, inner))
}

func TestWrapErrorPlainCause(t *testing.T) {
	wrapped := WrapError("OPEN_LOG", ErrCodeLogOpenFailure, fmt.Errorf("permission denied"))
	assert.Equal(t, ErrCodeLogOpenFailure, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "permission denied")
}

func TestWrapErrorNilIsNil(t *testing.T) {
	assert.Nil(t, WrapError("OP", ErrCodeConfigMalformed, nil))
}

func TestIsCode(t *testing.T) {
	err := NewError("OP", ErrCodeWorkloadNotFound, "no such file")
	assert.True(t, IsCode(err, ErrCodeWorkloadNotFound))
	assert.False(t, IsCode(err, ErrCodeLogOpenFailure))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeWorkloadNotFound))
}
