package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	v := NewValidation("bad field %q", "name")
	assert.True(t, IsKind(v, KindValidation))
	assert.False(t, IsKind(v, KindNotFound))
	assert.Equal(t, `bad field "name"`, v.Error())

	nf := NewNotFound("record with id %s not found", "42")
	assert.True(t, IsKind(nf, KindNotFound))
	assert.Equal(t, "record with id 42 not found", nf.Error())
}

func TestStartup_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("address already in use")
	err := NewStartup("could not bind port 8080", cause)

	assert.True(t, IsKind(err, KindStartup))
	assert.Contains(t, err.Error(), "could not bind port 8080")
	assert.Contains(t, err.Error(), "address already in use")
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsKind_Wrapped(t *testing.T) {
	inner := NewValidation("nope")
	wrapped := fmt.Errorf("resolver failed: %w", inner)
	assert.True(t, IsKind(wrapped, KindValidation))
}

func TestExtensions_CarryCode(t *testing.T) {
	tests := []struct {
		err  *Error
		code string
	}{
		{NewValidation("x"), "VALIDATION"},
		{NewNotFound("x"), "NOT_FOUND"},
		{NewStartup("x", nil), "STARTUP"},
	}
	for _, tt := range tests {
		ext := tt.err.Extensions()
		require.NotNil(t, ext)
		assert.Equal(t, tt.code, ext["code"])
	}
}
