package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parentsguide-srv/internal/model"
	"parentsguide-srv/internal/rating/repository"
	pkgRedis "parentsguide-srv/pkg/redis"
)

func (r *implCacheRepository) GetResult(ctx context.Context, contentID string) (model.RatingResult, error) {
	data, err := r.redis.Get(ctx, repository.ResultKey(contentID))
	if errors.Is(err, pkgRedis.ErrNotFound) {
		return model.RatingResult{}, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Warnf(ctx, "rating.repository.redis.GetResult: Failed to read %s: %v", contentID, err)
		return model.RatingResult{}, err
	}

	var result model.RatingResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		r.l.Errorf(ctx, "rating.repository.redis.GetResult: Failed to unmarshal %s: %v", contentID, err)
		return model.RatingResult{}, fmt.Errorf("%w: %v", repository.ErrCacheCorrupt, err)
	}
	return result, nil
}

func (r *implCacheRepository) SaveResult(ctx context.Context, result model.RatingResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrCacheSetFailed, err)
	}
	if err := r.redis.Set(ctx, repository.ResultKey(result.ContentID), data, ttl); err != nil {
		r.l.Errorf(ctx, "rating.repository.redis.SaveResult: Failed to save %s: %v", result.ContentID, err)
		return fmt.Errorf("%w: %v", repository.ErrCacheSetFailed, err)
	}
	return nil
}
