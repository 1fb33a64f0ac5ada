// Package cache persists mesh conversion results between runs.
//
// Entries are addressed by the digest of the source payload and the target
// format tag, stored in a BoltDB file and optionally zstd-compressed. A
// small in-memory LRU layer serves repeated lookups of the same batch.
package cache

import (
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.etcd.io/bbolt"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Cache is a content-addressed store of finished conversions.
//
// Open, Init and Close manage the lifecycle, every other method requires an
// initialized instance.
type Cache struct {
	*cfg

	mem    *simplelru.LRU[Key, []byte]
	memMtx sync.Mutex

	hits   *atomic.Uint64
	misses *atomic.Uint64

	comp compressor

	boltDB *bbolt.DB
}

// Option is an option of the Cache constructor.
type Option func(*cfg)

type cfg struct {
	perm fs.FileMode

	path string

	boltOptions *bbolt.Options

	memCapacity int

	compress bool

	log *zap.Logger
}

func defaultCfg() *cfg {
	return &cfg{
		perm: os.ModePerm,
		boltOptions: &bbolt.Options{
			Timeout: 100 * time.Millisecond,
		},
		memCapacity: 256,
		compress:    true,
		log:         zap.L(),
	}
}

// New creates and returns a new Cache instance.
func New(opts ...Option) *Cache {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	if c.memCapacity < 1 {
		c.memCapacity = 1
	}

	mem, _ := simplelru.NewLRU[Key, []byte](c.memCapacity, nil) // no error, capacity is positive

	return &Cache{
		cfg:    c,
		mem:    mem,
		hits:   atomic.NewUint64(0),
		misses: atomic.NewUint64(0),
		comp:   compressor{enabled: c.compress},
	}
}

// Stats returns how many lookups were served and how many missed since the
// instance was created.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *Cache) memGet(k Key) ([]byte, bool) {
	c.memMtx.Lock()
	defer c.memMtx.Unlock()

	return c.mem.Get(k)
}

func (c *Cache) memAdd(k Key, data []byte) {
	c.memMtx.Lock()
	defer c.memMtx.Unlock()

	c.mem.Add(k, data)
}

// WithPath returns an option to set the system path of the cache file.
func WithPath(path string) Option {
	return func(c *cfg) {
		c.path = path
	}
}

// WithPermissions returns an option to specify the permission bits of the
// cache file and its directory.
func WithPermissions(perm fs.FileMode) Option {
	return func(c *cfg) {
		c.perm = perm
	}
}

// WithMemoryCapacity returns an option to set how many entries the
// in-memory layer holds.
func WithMemoryCapacity(n int) Option {
	return func(c *cfg) {
		c.memCapacity = n
	}
}

// WithCompression returns an option to toggle zstd compression of stored
// payloads. Entries written compressed stay readable with compression off.
func WithCompression(enabled bool) Option {
	return func(c *cfg) {
		c.compress = enabled
	}
}

// WithLogger returns an option to specify the cache logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l.With(zap.String("component", "conversion cache"))
	}
}
