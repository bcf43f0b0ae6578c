package system

import (
	"time"

	"github.com/sonr-go/sonr/sonrlog"
)

// engineConfig holds configuration resolved from Option values.
//
// Grounded on the teacher's options.go functional-options pattern
// (LoopOption / loopOptionImpl / resolveLoopOptions), generalized from
// Loop-specific knobs (microtask ordering, fast-path mode, metrics) to
// this engine's knobs (logger, token-table sizing, poll timeout).
type engineConfig struct {
	logger        sonrlog.Logger
	tokenCapacity int
	tokenOffset   int
	pollTimeout   time.Duration
}

// Option configures an Engine constructed with New.
type Option interface {
	apply(*engineConfig)
}

type optionFunc func(*engineConfig)

func (f optionFunc) apply(cfg *engineConfig) { f(cfg) }

// WithLogger sets the structured logger used for engine lifecycle and
// dispatch events. Defaults to sonrlog.Disabled().
func WithLogger(logger sonrlog.Logger) Option {
	return optionFunc(func(cfg *engineConfig) { cfg.logger = logger })
}

// WithTokenCapacity seeds the engine's token slot vector capacity.
func WithTokenCapacity(n int) Option {
	return optionFunc(func(cfg *engineConfig) { cfg.tokenCapacity = n })
}

// WithTokenOffset seeds the engine's token slot vector offset, letting a
// host application shard the token namespace across multiple engines
// sharing one process (spec's disjointness invariant for component A).
func WithTokenOffset(n int) Option {
	return optionFunc(func(cfg *engineConfig) { cfg.tokenOffset = n })
}

// WithPollTimeout bounds a single selector poll call so a host application
// can interleave non-reactor work between polls. The default blocks
// indefinitely, preserved across the edge-triggered drain contract.
func WithPollTimeout(d time.Duration) Option {
	return optionFunc(func(cfg *engineConfig) { cfg.pollTimeout = d })
}

func resolveOptions(opts []Option) *engineConfig {
	cfg := &engineConfig{
		logger:        sonrlog.Disabled(),
		tokenCapacity: 1024,
		pollTimeout:   -1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	return cfg
}
