package cache

import "errors"

// ErrNotFound is returned by Get when the requested conversion result is
// not cached.
var ErrNotFound = errors.New("cache entry not found")
