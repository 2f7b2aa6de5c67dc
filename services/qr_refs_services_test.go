package services

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
	"time"

	"hypnoraffle/config"
	"hypnoraffle/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		refName  string
		expected string
		wantErr  bool
	}{
		{"explicit", "spring-party", "ignored", "spring-party", false},
		{"derived from name", "", "Spring Party 2024!", "spring-party-2024", false},
		{"derived drops accents", "", "Soirée Été", "soiree-ete", false},
		{"uppercase rejected", "Spring", "", "", true},
		{"double dash rejected", "a--b", "", "", true},
		{"trailing dash rejected", "abc-", "", "", true},
		{"too long rejected", strings.Repeat("a", MaxSlugLength+1), "", "", true},
		{"nothing to derive from", "", "!!!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSlug(tt.raw, tt.refName)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSlug)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeSlugTruncatesDerivedSlug(t *testing.T) {
	got, err := NormalizeSlug("", strings.Repeat("word ", 30))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), MaxSlugLength)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestValidateTargetURL(t *testing.T) {
	assert.NoError(t, ValidateTargetURL(""))
	assert.NoError(t, ValidateTargetURL("https://example.com/page?x=1"))
	assert.NoError(t, ValidateTargetURL("http://example.com"))
	assert.ErrorIs(t, ValidateTargetURL("ftp://example.com"), ErrInvalidTargetURL)
	assert.ErrorIs(t, ValidateTargetURL("/relative"), ErrInvalidTargetURL)
	assert.ErrorIs(t, ValidateTargetURL("https://"), ErrInvalidTargetURL)
}

func TestCreateQrRef(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Flyer A", TargetURL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "flyer-a", ref.Slug)
	assert.True(t, ref.IsActive)
	assert.Zero(t, ref.ScanCount)

	_, err = CreateQrRef(ctx, QrRefInput{Name: "Flyer A again", Slug: "flyer-a"})
	assert.ErrorIs(t, err, ErrSlugTaken)

	inactive, err := CreateQrRef(ctx, QrRefInput{Name: "Poster", IsActive: boolPtr(false)})
	require.NoError(t, err)
	stored, err := GetQrRef(ctx, inactive.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	_, err = CreateQrRef(ctx, QrRefInput{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidQrRefName)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Bad", TargetURL: "javascript:alert(1)"})
	assert.ErrorIs(t, err, ErrInvalidTargetURL)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Long description", Description: strings.Repeat("d", MaxDescriptionLength+1)})
	assert.ErrorIs(t, err, ErrInvalidDescription)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Long category", Category: strings.Repeat("c", MaxCategoryLength+1)})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	// Limits count runes, not bytes
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Accents", Category: strings.Repeat("é", MaxCategoryLength)})
	assert.NoError(t, err)
}

func TestListQrRefsFilters(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := CreateQrRef(ctx, QrRefInput{Name: "Table 1", Category: "tables"})
	require.NoError(t, err)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Table 2", Category: "tables", IsActive: boolPtr(false)})
	require.NoError(t, err)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Door"})
	require.NoError(t, err)

	all, err := ListQrRefs(ctx, QrRefFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tables, err := ListQrRefs(ctx, QrRefFilter{Category: "tables"})
	require.NoError(t, err)
	assert.Len(t, tables, 2)

	activeTables, err := ListQrRefs(ctx, QrRefFilter{Category: "tables", IsActive: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, activeTables, 1)
	assert.Equal(t, "table-1", activeTables[0].Slug)
}

func TestUpdateQrRef(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	expiry := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Menu", TargetURL: "https://example.com/menu", ExpiresAt: &expiry})
	require.NoError(t, err)
	_, err = CreateQrRef(ctx, QrRefInput{Name: "Other"})
	require.NoError(t, err)

	updated, err := UpdateQrRef(ctx, ref.ID, QrRefUpdate{
		Slug:        strPtr("menu-v2"),
		TargetURL:   strPtr(""),
		IsActive:    boolPtr(false),
		ClearExpiry: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "menu-v2", updated.Slug)
	assert.Equal(t, "Menu", updated.Name)

	stored, err := GetQrRef(ctx, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, "menu-v2", stored.Slug)
	assert.Empty(t, stored.TargetURL)
	assert.False(t, stored.IsActive)
	assert.Nil(t, stored.ExpiresAt)

	_, err = UpdateQrRef(ctx, ref.ID, QrRefUpdate{Slug: strPtr("other")})
	assert.ErrorIs(t, err, ErrSlugTaken)

	_, err = UpdateQrRef(ctx, ref.ID, QrRefUpdate{TargetURL: strPtr("nope")})
	assert.ErrorIs(t, err, ErrInvalidTargetURL)

	_, err = UpdateQrRef(ctx, ref.ID, QrRefUpdate{Description: strPtr(strings.Repeat("d", MaxDescriptionLength+1))})
	assert.ErrorIs(t, err, ErrInvalidDescription)
	_, err = UpdateQrRef(ctx, ref.ID, QrRefUpdate{Category: strPtr(strings.Repeat("c", MaxCategoryLength+1))})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = UpdateQrRef(ctx, "00000000-0000-0000-0000-000000000000", QrRefUpdate{})
	assert.ErrorIs(t, err, ErrQrRefNotFound)
}

func TestToggleQrRef(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Toggle me"})
	require.NoError(t, err)

	toggled, err := ToggleQrRef(ctx, ref.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = ToggleQrRef(ctx, ref.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestDeleteQrRefRemovesScans(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Gone", TargetURL: "https://example.com"})
	require.NoError(t, err)
	_, err = RecordScan(ctx, ref, ScanMetadata{DeviceType: DeviceMobile}, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, DeleteQrRef(ctx, ref.ID))

	var scans int64
	require.NoError(t, db.Table("qr_scans").Where("qr_ref_id = ?", ref.ID).Count(&scans).Error)
	assert.Zero(t, scans)
	assert.ErrorIs(t, DeleteQrRef(ctx, ref.ID), ErrQrRefNotFound)
}

func TestSlugLookupIsCached(t *testing.T) {
	testutil.SetupTestDB(t)
	mr := testutil.SetupRedis(t)
	ctx := context.Background()

	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Cached", TargetURL: "https://example.com/a"})
	require.NoError(t, err)

	_, err = GetQrRefBySlug(ctx, "cached")
	require.NoError(t, err)
	assert.True(t, mr.Exists(qrRefSlugCachePrefix+"cached"))
	assert.InDelta(t, qrRefCacheTTL.Seconds(), mr.TTL(qrRefSlugCachePrefix+"cached").Seconds(), 1)

	// Updates must not be hidden by the cached copy
	_, err = UpdateQrRef(ctx, ref.ID, QrRefUpdate{TargetURL: strPtr("https://example.com/b")})
	require.NoError(t, err)
	assert.False(t, mr.Exists(qrRefSlugCachePrefix+"cached"))

	got, err := GetQrRefBySlug(ctx, "cached")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/b", got.TargetURL)

	require.NoError(t, DeleteQrRef(ctx, ref.ID))
	_, err = GetQrRefBySlug(ctx, "cached")
	assert.ErrorIs(t, err, ErrQrRefNotFound)
}

func TestQrImage(t *testing.T) {
	testutil.SetConfig(t, &config.BaseURL, "https://raffle.example.com")

	ref := testRef("menu")
	assert.Equal(t, "https://raffle.example.com/qr-ref/menu", PublicURL(ref))

	data, err := QrImage(ref, 0)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultImageSize, img.Bounds().Dx())

	_, err = QrImage(ref, MinImageSize-1)
	assert.ErrorIs(t, err, ErrInvalidImageSize)
	_, err = QrImage(ref, MaxImageSize+1)
	assert.ErrorIs(t, err, ErrInvalidImageSize)
}
