package cdda

import "github.com/pkg/errors"

// ErrMalformedTOC is wrapped by every error returned while decoding a TOC
// buffer. Use errors.Is to test for it.
var ErrMalformedTOC = errors.New("malformed TOC")

// malformed annotates ErrMalformedTOC with a description of the violation.
func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedTOC, format, args...)
}
