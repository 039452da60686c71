// SPDX-License-Identifier: MIT
// Package design: run options.

package design

import (
	"github.com/katalvlaran/stimset/progress"
	"go.uber.org/zap"
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	logger   *zap.Logger
	reporter progress.Reporter
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{logger: zap.NewNop(), reporter: progress.Nop()}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("design: WithLogger(nil)")
	}
	return func(c *runConfig) { c.logger = l }
}

// WithReporter sets the progress listener. Panics on nil.
func WithReporter(r progress.Reporter) Option {
	if r == nil {
		panic("design: WithReporter(nil)")
	}
	return func(c *runConfig) { c.reporter = r }
}
