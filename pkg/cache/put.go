package cache

import (
	"fmt"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// PutPrm groups the parameters of the Put operation.
type PutPrm struct {
	key  Key
	data []byte
}

// SetKey sets the cache key to store under.
func (p *PutPrm) SetKey(k Key) {
	p.key = k
}

// SetPayload sets the conversion result to store.
func (p *PutPrm) SetPayload(data []byte) {
	p.data = data
}

// Put stores a conversion result, compressing it when compression is
// enabled. An existing entry under the same key is overwritten.
func (c *Cache) Put(prm PutPrm) error {
	stored := c.comp.compress(prm.data)

	err := c.boltDB.Update(func(tx *bbolt.Tx) error {
		buck := tx.Bucket(cacheBucket)
		if buck == nil {
			return fmt.Errorf("bucket %q not found, cache is not initialized", cacheBucket)
		}

		return buck.Put(prm.key[:], stored)
	})
	if err != nil {
		return fmt.Errorf("persist cache entry: %w", err)
	}

	c.memAdd(prm.key, prm.data)

	c.log.Debug("cache entry stored",
		zap.Stringer("key", prm.key),
		zap.Int("size", len(prm.data)),
		zap.Int("stored size", len(stored)),
	)

	return nil
}
