package services

import (
	"context"
	"encoding/json"
	"time"

	"hypnoraffle/database"
	"hypnoraffle/metrics"
	"hypnoraffle/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	qrRefSlugCachePrefix = "qr_ref:slug:"
	qrRefCacheTTL        = 5 * time.Minute
)

func getCachedQrRef(ctx context.Context, slug string) (*models.QrRef, bool) {
	if database.REDIS == nil {
		return nil, false
	}

	cachedData, err := database.REDIS.Get(ctx, qrRefSlugCachePrefix+slug).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("failed to read QR ref cache", zap.String("slug", slug), zap.Error(err))
		}
		metrics.CacheMisses.Inc()
		return nil, false
	}

	var ref models.QrRef
	if err := json.Unmarshal([]byte(cachedData), &ref); err != nil {
		zap.L().Warn("failed to unmarshal cached QR ref", zap.String("slug", slug), zap.Error(err))
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	return &ref, true
}

func cacheQrRef(ctx context.Context, ref *models.QrRef) {
	if database.REDIS == nil {
		return
	}

	data, err := json.Marshal(ref)
	if err != nil {
		return
	}
	if err := database.REDIS.Set(ctx, qrRefSlugCachePrefix+ref.Slug, data, qrRefCacheTTL).Err(); err != nil {
		zap.L().Warn("failed to cache QR ref", zap.String("slug", ref.Slug), zap.Error(err))
	}
}

func invalidateQrRef(ctx context.Context, slugs ...string) {
	if database.REDIS == nil || len(slugs) == 0 {
		return
	}

	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		keys = append(keys, qrRefSlugCachePrefix+slug)
	}
	if err := database.REDIS.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("failed to invalidate QR ref cache", zap.Strings("slugs", slugs), zap.Error(err))
	}
}
