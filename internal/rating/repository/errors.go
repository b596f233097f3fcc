package repository

import "errors"

var (
	ErrCacheMiss      = errors.New("repository: cache miss")
	ErrCacheSetFailed = errors.New("repository: failed to set cache")
	ErrCacheCorrupt   = errors.New("repository: cached value is corrupt")
)
