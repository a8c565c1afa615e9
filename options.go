package gridpath

import (
	"io"
	"log"
	"runtime"
)

// Options defines parameters for path finding.
type Options struct {
	NumberOfWorkers int
	Logger          *log.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers sets how many queries FindPaths runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger routes search diagnostics to logger. Without it nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	opts := Options{NumberOfWorkers: runtime.NumCPU()}
	for _, o := range options {
		o(&opts)
	}
	if opts.NumberOfWorkers < 1 {
		opts.NumberOfWorkers = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return opts
}
