package services

import (
	"context"
	"fmt"

	"hypnoraffle/database"
	"hypnoraffle/models"
	"hypnoraffle/realtime"

	"go.uber.org/zap"
)

// Number of scans included in a qr_scans snapshot
const liveScansLimit = 100

// CollectionSnapshot loads the current content of a realtime collection
func CollectionSnapshot(ctx context.Context, collection string) (interface{}, error) {
	switch collection {
	case realtime.CollectionParticipants:
		return ListParticipants(ctx, "", false)
	case realtime.CollectionSessions:
		return ListSessions(ctx)
	case realtime.CollectionQrRefs:
		return ListQrRefs(ctx, QrRefFilter{})
	case realtime.CollectionQrScans:
		var scans []models.QrScan
		if err := database.DB.WithContext(ctx).Order("scanned_at DESC").Limit(liveScansLimit).Find(&scans).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch scans: %w", err)
		}
		return scans, nil
	}
	return nil, fmt.Errorf("unknown collection %q", collection)
}

// publishCollection pushes a fresh snapshot of collection to its subscribers, if any
func publishCollection(ctx context.Context, collection string) {
	if realtime.Subscribers(collection) == 0 {
		return
	}

	data, err := CollectionSnapshot(ctx, collection)
	if err != nil {
		zap.L().Warn("failed to build realtime snapshot", zap.String("collection", collection), zap.Error(err))
		return
	}
	realtime.Publish(realtime.Update{
		Collection: collection,
		UpdateType: realtime.UpdateSnapshot,
		Data:       data,
	})
}
