package cdtext

import (
	"github.com/go-logr/logr"
)

// Option configures Decode.
type Option func(*options)

type options struct {
	log logr.Logger
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that receives warnings and debug output.
// Warnings are also returned in CDText.Warnings.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
