// SPDX-License-Identifier: MIT

package matching

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/multicut/counter"
)

// Operations reported to the counter sink.
const (
	OpSearch       counter.Op = "matching.search"
	OpArc          counter.Op = "matching.arc"
	OpContraction  counter.Op = "matching.contraction"
	OpExpansion    counter.Op = "matching.expansion"
	OpAugmentation counter.Op = "matching.augmentation"
	OpBFSVisit     counter.Op = "matching.bfs_visit"
)

// Option configures an engine call.
type Option func(*Options)

// Options holds the telemetry hooks of the engine.
type Options struct {
	// Counter receives operation counts; defaults to counter.Discard.
	Counter counter.Sink

	// Logger receives Debug-level traces of contractions, expansions and
	// augmentations; defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns silent options.
func DefaultOptions() Options {
	return Options{
		Counter: counter.Discard,
		Logger:  zap.NewNop(),
	}
}

// WithCounter reports operation counts to sink. A nil sink is ignored.
func WithCounter(sink counter.Sink) Option {
	return func(o *Options) {
		if sink != nil {
			o.Counter = sink
		}
	}
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
