package redis

import (
	"parentsguide-srv/internal/rating/repository"
	"parentsguide-srv/pkg/log"
	pkgRedis "parentsguide-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
