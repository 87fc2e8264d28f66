package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategory(t *testing.T) {
	tests := []struct {
		code string
		want Category
	}{
		{ErrCodeFixtureParse, CategoryFixture},
		{ErrCodeFileNotFound, CategoryIO},
		{ErrCodeInvalidQuery, CategoryValidation},
		{ErrCodeInternal, CategoryInternal},
		{"bad", CategoryInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.code, "msg", nil).Category, tt.code)
	}
}

func TestError_Format(t *testing.T) {
	err := New(ErrCodeInvalidQuery, "bad query", nil)
	assert.Equal(t, "[ERR_401_INVALID_QUERY] bad query", err.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(ErrCodeFileRead, cause)

	require.NotNil(t, err)
	assert.Equal(t, "underlying", err.Message)
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, Wrap(ErrCodeFileRead, nil))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := Newf(ErrCodeUnknownReceiver, "no class %q", "Foo")
	assert.True(t, stderrors.Is(err, New(ErrCodeUnknownReceiver, "", nil)))
	assert.False(t, stderrors.Is(err, New(ErrCodeInvalidQuery, "", nil)))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetCode(New(ErrCodeInternal, "x", nil)))
	assert.Empty(t, GetCode(fmt.Errorf("plain")))
}

func TestFormatForCLI(t *testing.T) {
	err := New(ErrCodeFileNotFound, "no such fixture", nil).
		WithSuggestion("check the --fixture path")
	out := FormatForCLI(err)

	assert.Contains(t, out, "Error: no such fixture")
	assert.Contains(t, out, "Suggestion: check the --fixture path")
	assert.Contains(t, out, ErrCodeFileNotFound)

	assert.Contains(t, FormatForCLI(fmt.Errorf("plain")), "plain")
	assert.Empty(t, FormatForCLI(nil))
}
