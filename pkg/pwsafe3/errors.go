package pwsafe3

import "fmt"

// Code identifies the class of failure returned by Open or Unlock.
type Code int

const (
	// Structural failures: the bytes do not form a well-formed PWS3 container.
	ErrFileNotFound Code = iota
	ErrFailedToOpenFile
	ErrFileReadError
	ErrFileNotSupported
	ErrFileTooSmall
	ErrEofPositionError
	ErrEofSentinelMissing

	// Key-derivation failures.
	ErrIterationsNotInitialized
	ErrInvalidKey

	// MAC/integrity failures.
	ErrMacKeyRejected
	ErrInvalidSignature

	// TLV failures.
	ErrInvalidUtf8InStringField
	ErrUnexpectedEndOfPlaintext
)

var codeText = map[Code]string{
	ErrFileNotFound:              "file not found",
	ErrFailedToOpenFile:          "failed to open file",
	ErrFileReadError:             "file read error",
	ErrFileNotSupported:          "file not supported: missing or wrong PWS3 tag",
	ErrFileTooSmall:              "file too small: truncated before MAC tag",
	ErrEofPositionError:          "EOF sentinel appears before body start",
	ErrEofSentinelMissing:        "EOF sentinel not found",
	ErrIterationsNotInitialized:  "stretch iteration count is zero",
	ErrInvalidKey:                "passphrase does not match stored key hash",
	ErrMacKeyRejected:            "MAC key construction rejected",
	ErrInvalidSignature:          "MAC verification failed",
	ErrInvalidUtf8InStringField:  "invalid UTF-8 in string field",
	ErrUnexpectedEndOfPlaintext:  "plaintext buffer ended mid-element",
}

func (c Code) String() string {
	if s, ok := codeText[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown error code %d", int(c))
}

// Error is the single error type returned by every public pwsafe3 operation.
// All errors are fatal to the enclosing Open/Unlock call; none are
// recoverable by retrying the same operation with the same inputs.
type Error struct {
	Code Code
	Err  error // optional wrapped cause, e.g. the underlying os.Open error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pwsafe3: %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("pwsafe3: %s", e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(code Code, cause error) *Error {
	return &Error{Code: code, Err: cause}
}

// IsStructural reports whether err is a container-layout failure (bad tag,
// missing sentinel, truncated file) as opposed to a key or MAC failure.
func IsStructural(err error) bool {
	pe, ok := err.(*Error)
	if !ok {
		return false
	}
	switch pe.Code {
	case ErrFileNotFound, ErrFailedToOpenFile, ErrFileReadError, ErrFileNotSupported,
		ErrFileTooSmall, ErrEofPositionError, ErrEofSentinelMissing:
		return true
	}
	return false
}

// IsIntegrity reports whether err indicates the passphrase or the body/MAC
// failed verification, as opposed to a structural or TLV failure.
func IsIntegrity(err error) bool {
	pe, ok := err.(*Error)
	if !ok {
		return false
	}
	switch pe.Code {
	case ErrInvalidKey, ErrInvalidSignature, ErrMacKeyRejected:
		return true
	}
	return false
}
