package cdtext

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformed is matched by every error Decode returns.
var ErrMalformed = errors.New("malformed CD-TEXT")

// Causes of a *PackError.
var (
	ErrCRC              = errors.New("CRC mismatch")
	ErrSequence         = errors.New("unexpected sequence number")
	ErrExtension        = errors.New("extension flag set")
	ErrUnsupported      = errors.New("unsupported feature")
	ErrCharPosition     = errors.New("binary pack with nonzero character position")
	ErrUnterminatedText = errors.New("unterminated text")
	ErrNoPreviousText   = errors.New("repeat marker with no previous text")
)

// Warnings collected in CDText.Warnings.
var (
	ErrMissingSizeInfo = errors.New("missing size information")
	ErrUnknownEncoding = errors.New("unknown character code")
	ErrUnknownLanguage = errors.New("undefined language code")
	ErrDuplicateField  = errors.New("duplicate field")
)

// PackError reports a pack that failed validation. It matches ErrMalformed
// and unwraps to the specific cause.
type PackError struct {
	Seq int
	ID  PackID
	Err error
}

func (e *PackError) Error() string {
	return fmt.Sprintf("CD-TEXT pack %d (%v): %v", e.Seq, e.ID, e.Err)
}

func (e *PackError) Unwrap() error { return e.Err }

func (e *PackError) Is(target error) bool { return target == ErrMalformed }

// BlockError reports a block that cannot be decoded. Like PackError it
// matches ErrMalformed.
type BlockError struct {
	Block int
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("CD-TEXT block %d: %v", e.Block, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

func (e *BlockError) Is(target error) bool { return target == ErrMalformed }

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformed, format, args...)
}
