package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"validation", Validation("Name is required"), ErrValidation, "Name is required"},
		{"validation field", ValidationField("email", "Email is required"), ErrValidation, "Email is required"},
		{"not found", NotFound("Skill not found"), ErrNotFound, "Skill not found"},
		{"unauthorized", Unauthorized("Invalid credentials"), ErrUnauthorized, "Invalid credentials"},
		{"conflict", Conflict("name"), ErrConflict, "Duplicate field value: name"},
		{"dependency", Dependency("Failed to upload", errors.New("s3 down")), ErrDependency, "Failed to upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.msg, PublicMessage(tt.err, "fallback"))
		})
	}
}

func TestDependency_KeepsCause(t *testing.T) {
	cause := errors.New("s3 down")
	err := Dependency("Failed to upload", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "s3 down")
}

func TestPublicMessage_Fallback(t *testing.T) {
	assert.Equal(t, "Server Error", PublicMessage(errors.New("boom"), "Server Error"))
	assert.Equal(t, "Server Error", PublicMessage(nil, "Server Error"))
}

func TestError_StackIsPrintable(t *testing.T) {
	err := NotFound("Project not found")
	out := fmt.Sprintf("%+v", err)
	assert.Contains(t, out, "Project not found")
	assert.Contains(t, out, "common.NotFound")
}
