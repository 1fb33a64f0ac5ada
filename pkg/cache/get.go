package cache

import (
	"fmt"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// GetPrm groups the parameters of the Get operation.
type GetPrm struct {
	key Key
}

// SetKey sets the cache key to look up.
func (p *GetPrm) SetKey(k Key) {
	p.key = k
}

// GetRes groups the results of the Get operation.
type GetRes struct {
	data []byte
}

// Payload returns the cached conversion result.
func (r GetRes) Payload() []byte {
	return r.data
}

// Get reads a conversion result by key, consulting the memory layer before
// the database.
//
// Returns ErrNotFound if the key is not cached.
func (c *Cache) Get(prm GetPrm) (GetRes, error) {
	if data, ok := c.memGet(prm.key); ok {
		c.hits.Inc()
		return GetRes{data: data}, nil
	}

	var stored []byte

	err := c.boltDB.View(func(tx *bbolt.Tx) error {
		buck := tx.Bucket(cacheBucket)
		if buck == nil {
			return ErrNotFound
		}

		v := buck.Get(prm.key[:])
		if v == nil {
			return ErrNotFound
		}

		// The value is only valid inside the transaction.
		stored = append([]byte{}, v...)

		return nil
	})
	if err != nil {
		c.misses.Inc()
		return GetRes{}, err
	}

	data, err := c.comp.decompress(stored)
	if err != nil {
		return GetRes{}, fmt.Errorf("decompress cached payload: %w", err)
	}

	c.hits.Inc()
	c.memAdd(prm.key, data)

	c.log.Debug("cache entry read from database",
		zap.Stringer("key", prm.key),
		zap.Int("size", len(data)),
	)

	return GetRes{data: data}, nil
}
