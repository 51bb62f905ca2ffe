// Package common defines shared constants and sentinel errors used across
// docvault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/store-level errors.
	ErrNotFound = errors.New("not found")
	ErrStore    = errors.New("store error")

	// Cipher engine errors. ErrIntegrity means the authentication tag did not
	// verify (tampered or corrupted ciphertext, or wrong key); ErrMalformedEnvelope
	// means the stored blob is too short to even contain a nonce.
	ErrIntegrity         = errors.New("ciphertext integrity check failed")
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// Validation / folder-gate errors. ErrWrongPassword deliberately covers both
	// "wrong password" and "folder not found" so callers cannot tell them apart.
	ErrValidation    = errors.New("validation error")
	ErrWrongPassword = errors.New("wrong password")
	ErrGateLocked    = errors.New("folder is locked")

	// View-handle lifecycle.
	ErrHandleExpired = errors.New("view handle expired")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
