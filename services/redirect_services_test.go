package services

import (
	"context"
	"testing"
	"time"

	"hypnoraffle/database"
	"hypnoraffle/models"
	"hypnoraffle/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectOutcomeLocation(t *testing.T) {
	assert.Equal(t, "https://example.com", OutcomeRedirect.Location("https://example.com"))
	assert.Equal(t, "/qr-ref", OutcomeMissingSlug.Location(""))
	assert.Equal(t, "/qr-ref?error=not_found", OutcomeNotFound.Location(""))
	assert.Equal(t, "/qr-ref?error=inactive", OutcomeInactive.Location(""))
	assert.Equal(t, "/qr-ref?error=expired", OutcomeExpired.Location(""))
	assert.Equal(t, "/qr-ref?error=no_target", OutcomeNoTarget.Location(""))
	assert.Equal(t, "/qr-ref?error=server_error", OutcomeServerError.Location(""))
}

func TestResolveRedirect(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	_, err := CreateQrRef(ctx, QrRefInput{Name: "Live", TargetURL: "https://example.com/live", ExpiresAt: &future})
	require.NoError(t, err)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Off", TargetURL: "https://example.com/off", IsActive: boolPtr(false)})
	require.NoError(t, err)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Old", TargetURL: "https://example.com/old", ExpiresAt: &past})
	require.NoError(t, err)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Blank"})
	require.NoError(t, err)
	// Stored before target validation existed
	require.NoError(t, database.DB.Create(&models.QrRef{Name: "Relative", Slug: "relative", TargetURL: "/menu", IsActive: true}).Error)

	tests := []struct {
		name     string
		slug     string
		outcome  RedirectOutcome
		location string
	}{
		{"redirects to target", "live", OutcomeRedirect, "https://example.com/live"},
		{"empty slug", "", OutcomeMissingSlug, "/qr-ref"},
		{"unknown slug", "missing", OutcomeNotFound, "/qr-ref?error=not_found"},
		{"slug is not trimmed", " live", OutcomeNotFound, "/qr-ref?error=not_found"},
		{"blank slug is looked up as is", "  ", OutcomeNotFound, "/qr-ref?error=not_found"},
		{"relative target", "relative", OutcomeServerError, "/qr-ref?error=server_error"},
		{"inactive", "off", OutcomeInactive, "/qr-ref?error=inactive"},
		{"expired", "old", OutcomeExpired, "/qr-ref?error=expired"},
		{"no target", "blank", OutcomeNoTarget, "/qr-ref?error=no_target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, outcome := ResolveRedirect(ctx, tt.slug, ScanMetadata{DeviceType: DeviceMobile}, now)
			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.location, outcome.Location(target))
		})
	}
}

func TestResolveRedirectCountsOnlyServedScans(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	live, err := CreateQrRef(ctx, QrRefInput{Name: "Live", TargetURL: "https://example.com"})
	require.NoError(t, err)
	off, err := CreateQrRef(ctx, QrRefInput{Name: "Off", TargetURL: "https://example.com", IsActive: boolPtr(false)})
	require.NoError(t, err)
	blank, err := CreateQrRef(ctx, QrRefInput{Name: "Blank"})
	require.NoError(t, err)

	for _, slug := range []string{"live", "live", "off", "blank"} {
		ResolveRedirect(ctx, slug, ScanMetadata{}, now)
	}

	counts := map[string]int64{}
	for _, id := range []string{live.ID, off.ID, blank.ID} {
		ref, err := GetQrRef(ctx, id)
		require.NoError(t, err)
		counts[ref.Slug] = ref.ScanCount
	}

	assert.Equal(t, int64(2), counts["live"])
	assert.Zero(t, counts["off"])
	// A scan without target is still counted before falling back
	assert.Equal(t, int64(1), counts["blank"])
}

func TestResolveRedirectThroughCache(t *testing.T) {
	testutil.SetupTestDB(t)
	testutil.SetupRedis(t)
	ctx := context.Background()
	now := time.Now().UTC()

	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Promo", TargetURL: "https://example.com/promo"})
	require.NoError(t, err)

	_, outcome := ResolveRedirect(ctx, "promo", ScanMetadata{}, now)
	require.Equal(t, OutcomeRedirect, outcome)

	_, err = ToggleQrRef(ctx, ref.ID)
	require.NoError(t, err)

	_, outcome = ResolveRedirect(ctx, "promo", ScanMetadata{}, now)
	assert.Equal(t, OutcomeInactive, outcome)
}
