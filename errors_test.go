package vnode

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm/vnode/lib/encoding"
)

var sentinels = []error{
	ErrNotFound,
	ErrDecryptFailed,
	ErrSignatureInvalid,
	ErrInvalidFormat,
	ErrInvalidAttrs,
	ErrComponentPanic,
	ErrEmptyResult,
}

func TestSentinelErrors(t *testing.T) {
	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j {
				assert.False(t, errors.Is(err1, err2), "%v and %v should be distinct", err1, err2)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	for _, err := range sentinels {
		assert.True(t, strings.HasPrefix(err.Error(), "vnode:"), "%q should start with 'vnode:'", err.Error())
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrNotFound", ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("wrapped: %w", ErrNotFound), true},
		{"other error", errors.New("other error"), false},
		{"ErrDecryptFailed", ErrDecryptFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsNotFound(tt.err))
		})
	}
}

func TestIsDecryptionError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrDecryptFailed", ErrDecryptFailed, true},
		{"ErrSignatureInvalid", ErrSignatureInvalid, true},
		{"wrapped ErrDecryptFailed", fmt.Errorf("wrapped: %w", ErrDecryptFailed), true},
		{"wrapped ErrSignatureInvalid", fmt.Errorf("wrapped: %w", ErrSignatureInvalid), true},
		{"ErrNotFound", ErrNotFound, false},
		{"ErrInvalidFormat", ErrInvalidFormat, false},
		{"other error", errors.New("other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsDecryptionError(tt.err))
		})
	}
}

func TestWrapEncodingError(t *testing.T) {
	other := errors.New("other")
	tests := []struct {
		name          string
		err           error
		expectWrapped error
	}{
		{"nil error", nil, nil},
		{"encoding.ErrInvalidFormat", fmt.Errorf("%w: bad", encoding.ErrInvalidFormat), ErrInvalidFormat},
		{"encoding.ErrSignatureInvalid", encoding.ErrSignatureInvalid, ErrSignatureInvalid},
		{"encoding.ErrDecryptFailed", encoding.ErrDecryptFailed, ErrDecryptFailed},
		{"other error passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wrapEncodingError(tt.err)
			if tt.expectWrapped == nil {
				assert.NoError(t, result)
				return
			}
			assert.ErrorIs(t, result, tt.expectWrapped)
		})
	}
}
