package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var cacheBucket = []byte("converted")

// Open opens the cache database at the configured path with configured
// permissions, creating the file and its directory when missing.
func (c *Cache) Open() error {
	c.log.Debug("creating directory for cache BoltDB",
		zap.String("path", c.path),
	)

	err := os.MkdirAll(filepath.Dir(c.path), c.perm)
	if err == nil {
		c.log.Debug("opening cache BoltDB",
			zap.String("path", c.path),
			zap.Stringer("permissions", c.perm),
		)

		c.boltDB, err = bbolt.Open(c.path, c.perm, c.boltOptions)
	}

	return err
}

// Init initializes the database structure and the compression codecs.
//
// If the cache is already initialized, no action is taken on the database.
func (c *Cache) Init() error {
	c.log.Debug("initializing conversion cache",
		zap.Int("memory capacity", c.memCapacity),
		zap.Bool("compression", c.compress),
	)

	if err := c.comp.init(); err != nil {
		return fmt.Errorf("init compression codecs: %w", err)
	}

	return c.boltDB.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(cacheBucket); err != nil {
			return fmt.Errorf("create bucket %q: %w", cacheBucket, err)
		}
		return nil
	})
}

// Close releases the database and codec resources.
func (c *Cache) Close() error {
	c.log.Debug("closing cache BoltDB",
		zap.String("path", c.path),
	)

	err := c.comp.close()

	if closeErr := c.boltDB.Close(); err == nil {
		err = closeErr
	}

	return err
}
