// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness is available.
	rng *rand.Rand
}

// newBuilderConfig applies opts in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// requireRNG returns the configured RNG or ErrNeedRandSource.
func (c builderConfig) requireRNG(method string) (*rand.Rand, error) {
	if c.rng == nil {
		return nil, builderErrorf(method, "rng is required", ErrNeedRandSource)
	}

	return c.rng, nil
}
