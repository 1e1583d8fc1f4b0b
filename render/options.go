// SPDX-License-Identifier: MIT

package render

import "errors"

const (
	// DefaultDelimiter separates adjacent cells of a row.
	DefaultDelimiter = "\t\t"

	// DefaultInfSymbol is printed for unreachable cells.
	DefaultInfSymbol = "INF"
)

var (
	// ErrEmptyDelimiter is the panic value of WithDelimiter("").
	ErrEmptyDelimiter = errors.New("render: delimiter must not be empty")

	// ErrEmptyInfSymbol is the panic value of WithInfSymbol("").
	ErrEmptyInfSymbol = errors.New("render: infinity symbol must not be empty")
)

// Option configures Write and String.
type Option func(*Options)

// Options holds rendering configuration. Fields are unexported; use WithX.
type Options struct {
	delimiter string
	infSymbol string
	header    bool
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		delimiter: DefaultDelimiter,
		infSymbol: DefaultInfSymbol,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithDelimiter sets the cell separator. Panics on "".
func WithDelimiter(sep string) Option {
	return func(o *Options) {
		if sep == "" {
			panic(ErrEmptyDelimiter.Error())
		}
		o.delimiter = sep
	}
}

// WithInfSymbol sets the text printed for matrix.Inf. Panics on "".
func WithInfSymbol(sym string) Option {
	return func(o *Options) {
		if sym == "" {
			panic(ErrEmptyInfSymbol.Error())
		}
		o.infSymbol = sym
	}
}

// WithHeader prepends a line with the column indices 0..n−1.
func WithHeader() Option {
	return func(o *Options) {
		o.header = true
	}
}
