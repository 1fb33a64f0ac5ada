// Package converter runs batch mesh conversions over directory trees.
//
// Every regular file matching the source format of the requested target is
// converted through the intermediate mesh form and written to the output
// directory under the same relative path with the extension swapped.
// Per-file failures do not abort a run, they are collected in the run
// report.
package converter

import (
	"go.uber.org/zap"

	"github.com/rbxasset/meshconv/pkg/cache"
	"github.com/rbxasset/meshconv/pkg/util"
)

// Converter processes batch conversion runs.
type Converter struct {
	*cfg
}

// Option is an option of the Converter constructor.
type Option func(*cfg)

// ProgressCallback is called from worker routines after every processed
// file with the finished and total counts.
type ProgressCallback func(done, total int, path string)

type cfg struct {
	log *zap.Logger

	cache *cache.Cache

	taskPool util.WorkerPool

	progress ProgressCallback
}

func defaultCfg() *cfg {
	return &cfg{
		log:      zap.L(),
		taskPool: util.NewPseudoWorkerPool(),
	}
}

// New creates, initializes and returns a Converter instance.
func New(opts ...Option) *Converter {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	c.log = c.log.With(zap.String("component", "batch converter"))

	return &Converter{cfg: c}
}

// WithLogger returns an option to set the Converter logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l
	}
}

// WithCache returns an option to reuse finished conversions between runs.
func WithCache(cc *cache.Cache) Option {
	return func(c *cfg) {
		c.cache = cc
	}
}

// WithWorkerPool returns an option to set the pool converting files
// concurrently. The default pool executes in the caller's routine.
func WithWorkerPool(p util.WorkerPool) Option {
	return func(c *cfg) {
		c.taskPool = p
	}
}

// WithProgressCallback returns an option to observe per-file progress of
// a run.
func WithProgressCallback(cb ProgressCallback) Option {
	return func(c *cfg) {
		c.progress = cb
	}
}
