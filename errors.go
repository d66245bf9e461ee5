package vnode

import "errors"

// Sentinel errors for registry operations.
var (
	ErrNotFound         = errors.New("vnode: component not found")
	ErrDecryptFailed    = errors.New("vnode: props decryption failed")
	ErrSignatureInvalid = errors.New("vnode: signature verification failed")
	ErrInvalidFormat    = errors.New("vnode: invalid props format")
	ErrInvalidAttrs     = errors.New("vnode: attrs must be a map")
	ErrComponentPanic   = errors.New("vnode: component panicked")
	ErrEmptyResult      = errors.New("vnode: component produced no node")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
