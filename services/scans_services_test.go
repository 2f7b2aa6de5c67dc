package services

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"hypnoraffle/models"
	"hypnoraffle/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	iphoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	ipadUA    = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	botUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func testRef(slug string) *models.QrRef {
	return &models.QrRef{ID: "7c9e6679-7425-40de-944b-e07fc1f90ae7", Name: slug, Slug: slug, IsActive: true}
}

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name   string
		ua     string
		device string
	}{
		{"iphone", iphoneUA, DeviceMobile},
		{"ipad", ipadUA, DeviceTablet},
		{"desktop", desktopUA, DeviceDesktop},
		{"bot", botUA, DeviceBot},
		{"empty", "", DeviceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device, _, _ := parseUserAgent(tt.ua)
			assert.Equal(t, tt.device, device)
		})
	}

	_, os, browser := parseUserAgent(desktopUA)
	assert.Contains(t, os, "Windows")
	assert.Equal(t, "Chrome", browser)
}

func TestScanMetadataFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/qr-ref/menu", nil)
	req.Header.Set("User-Agent", iphoneUA)
	req.Header.Set("Referer", "https://instagram.com/")
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.8")
	req.Header.Set("X-Vercel-IP-Country", "fr")
	req.Header.Set("X-Vercel-IP-City", "Saint-%C3%89tienne")
	req.Header.Set("X-Vercel-IP-Country-Region", "ARA")

	meta := ScanMetadataFromRequest(req, "203.0.113.9")

	assert.Equal(t, DeviceMobile, meta.DeviceType)
	assert.Equal(t, "203.0.113.9", meta.IPAddress)
	assert.Equal(t, "https://instagram.com/", meta.Referrer)
	assert.Equal(t, "fr-FR", meta.Language)
	assert.Equal(t, "FR", meta.CountryCode)
	assert.Equal(t, "France", meta.Country)
	assert.Equal(t, "Saint-Étienne", meta.City)
	assert.Equal(t, "ARA", meta.Region)
}

func TestScanMetadataIgnoresUnknownCountry(t *testing.T) {
	req := httptest.NewRequest("GET", "/qr-ref/menu", nil)
	req.Header.Set("CF-IPCountry", "XX")

	meta := ScanMetadataFromRequest(req, "")
	assert.Empty(t, meta.CountryCode)
	assert.Empty(t, meta.Country)
	assert.Equal(t, DeviceUnknown, meta.DeviceType)
}

func TestRecordScanIncrementsCounter(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Counter", TargetURL: "https://example.com"})
	require.NoError(t, err)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		_, err := RecordScan(ctx, ref, ScanMetadata{DeviceType: DeviceDesktop, CountryCode: "DE"}, now)
		require.NoError(t, err)
	}

	stored, err := GetQrRef(ctx, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.ScanCount)
	require.NotNil(t, stored.LastScannedAt)

	_, err = RecordScan(ctx, testRef("ghost"), ScanMetadata{}, now)
	assert.ErrorIs(t, err, ErrQrRefNotFound)
}

func TestListScans(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Scanned"})
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := RecordScan(ctx, ref, ScanMetadata{DeviceType: DeviceMobile}, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	scans, err := ListScans(ctx, ref.ID, 2)
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.True(t, scans[0].ScannedAt.After(scans[1].ScannedAt))

	scans, err = ListScans(ctx, ref.ID, 0)
	require.NoError(t, err)
	assert.Len(t, scans, 5)

	_, err = ListScans(ctx, "00000000-0000-0000-0000-000000000000", 10)
	assert.ErrorIs(t, err, ErrQrRefNotFound)
}

func TestGetScanStats(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	ref, err := CreateQrRef(ctx, QrRefInput{Name: "Stats"})
	require.NoError(t, err)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	scans := []struct {
		meta ScanMetadata
		at   time.Time
	}{
		{ScanMetadata{DeviceType: DeviceMobile, CountryCode: "FR"}, now.Add(-time.Hour)},
		{ScanMetadata{DeviceType: DeviceMobile, CountryCode: "FR"}, now.Add(-26 * time.Hour)},
		{ScanMetadata{DeviceType: DeviceDesktop}, now.Add(-2 * time.Hour)},
		{ScanMetadata{DeviceType: DeviceTablet, CountryCode: "DE"}, now.AddDate(0, 0, -40)},
	}
	for _, s := range scans {
		_, err := RecordScan(ctx, ref, s.meta, s.at)
		require.NoError(t, err)
	}

	stats, err := GetScanStats(ctx, ref.ID, now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, map[string]int64{DeviceMobile: 2, DeviceDesktop: 1, DeviceTablet: 1}, stats.ByDevice)
	assert.Equal(t, map[string]int64{"FR": 2, "DE": 1, DeviceUnknown: 1}, stats.ByCountry)
	// The 40 day old scan is outside the daily window
	assert.Equal(t, []DayCount{{Day: "2024-06-14", Count: 1}, {Day: "2024-06-15", Count: 2}}, stats.ByDay)
}
