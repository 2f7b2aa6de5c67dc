package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"hypnoraffle/database"
	"hypnoraffle/metrics"
	"hypnoraffle/models"
	"hypnoraffle/realtime"

	"github.com/mssola/useragent"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gorm.io/gorm"
)

// Device types recorded on scans
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

const (
	DefaultScanLimit = 100
	MaxScanLimit     = 1000
	statsWindowDays  = 30
)

// Geo headers set by the edge in front of the service, first match wins
var (
	countryHeaders = []string{"X-Vercel-IP-Country", "CF-IPCountry", "X-Country-Code"}
	regionHeaders  = []string{"X-Vercel-IP-Country-Region", "X-Region"}
	cityHeaders    = []string{"X-Vercel-IP-City", "X-City"}
)

// ScanMetadata describes the client behind a scan
type ScanMetadata struct {
	UserAgent   string
	DeviceType  string
	OS          string
	Browser     string
	IPAddress   string
	Country     string
	CountryCode string
	City        string
	Region      string
	Referrer    string
	Language    string
}

// DayCount is the number of scans on one UTC day
type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// ScanStats aggregates the scans of a QR ref
type ScanStats struct {
	QrRefID   string           `json:"qr_ref_id"`
	Total     int64            `json:"total"`
	ByDevice  map[string]int64 `json:"by_device"`
	ByCountry map[string]int64 `json:"by_country"`
	ByDay     []DayCount       `json:"by_day"`
}

// ScanMetadataFromRequest extracts device, geo and locale data from a redirect request
func ScanMetadataFromRequest(r *http.Request, clientIP string) ScanMetadata {
	meta := ScanMetadata{
		UserAgent: r.UserAgent(),
		IPAddress: clientIP,
		Referrer:  r.Referer(),
	}

	meta.DeviceType, meta.OS, meta.Browser = parseUserAgent(meta.UserAgent)

	meta.CountryCode = strings.ToUpper(firstHeader(r, countryHeaders))
	if meta.CountryCode == "XX" || len(meta.CountryCode) != 2 {
		meta.CountryCode = ""
	}
	if meta.CountryCode != "" {
		if region, err := language.ParseRegion(meta.CountryCode); err == nil {
			meta.Country = display.English.Regions().Name(region)
		}
	}
	meta.Region = unescapeHeader(firstHeader(r, regionHeaders))
	meta.City = unescapeHeader(firstHeader(r, cityHeaders))

	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
		meta.Language = tags[0].String()
	}

	return meta
}

func parseUserAgent(raw string) (deviceType string, os string, browser string) {
	if strings.TrimSpace(raw) == "" {
		return DeviceUnknown, "", ""
	}

	ua := useragent.New(raw)
	os = ua.OSInfo().Name
	browser, _ = ua.Browser()

	switch {
	case ua.Bot():
		deviceType = DeviceBot
	case strings.Contains(raw, "iPad") || strings.Contains(raw, "Tablet") ||
		(strings.Contains(raw, "Android") && !strings.Contains(raw, "Mobile")):
		deviceType = DeviceTablet
	case ua.Mobile():
		deviceType = DeviceMobile
	default:
		deviceType = DeviceDesktop
	}
	return deviceType, os, browser
}

func firstHeader(r *http.Request, names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(r.Header.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

func unescapeHeader(v string) string {
	if decoded, err := url.QueryUnescape(v); err == nil {
		return decoded
	}
	return v
}

// RecordScan atomically increments the scan counter of ref and logs the scan event
func RecordScan(ctx context.Context, ref *models.QrRef, meta ScanMetadata, now time.Time) (*models.QrScan, error) {
	defer metrics.RecordDBOperation("record_scan", "qr_scans", time.Now())

	scan := models.QrScan{
		QrRefID:     ref.ID,
		Slug:        ref.Slug,
		UserAgent:   meta.UserAgent,
		DeviceType:  meta.DeviceType,
		OS:          meta.OS,
		Browser:     meta.Browser,
		IPAddress:   meta.IPAddress,
		Country:     meta.Country,
		CountryCode: meta.CountryCode,
		City:        meta.City,
		Region:      meta.Region,
		Referrer:    meta.Referrer,
		Language:    meta.Language,
		ScannedAt:   now,
	}

	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.QrRef{}).Where("id = ?", ref.ID).UpdateColumns(map[string]interface{}{
			"scan_count":      gorm.Expr("scan_count + ?", 1),
			"last_scanned_at": now,
		})
		if result.Error != nil {
			return fmt.Errorf("failed to increment scan count: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrQrRefNotFound
		}
		if err := tx.Create(&scan).Error; err != nil {
			return fmt.Errorf("failed to log scan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.QrScans.WithLabelValues(scan.DeviceType).Inc()
	if realtime.Subscribers(realtime.CollectionQrScans) > 0 {
		realtime.Publish(realtime.Update{
			Collection: realtime.CollectionQrScans,
			UpdateType: realtime.UpdateScan,
			Data:       scan,
		})
	}
	publishCollection(ctx, realtime.CollectionQrRefs)
	return &scan, nil
}

// ListScans returns the latest scans of a QR ref
func ListScans(ctx context.Context, qrRefID string, limit int) ([]models.QrScan, error) {
	if _, err := GetQrRef(ctx, qrRefID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultScanLimit
	}
	if limit > MaxScanLimit {
		limit = MaxScanLimit
	}

	var scans []models.QrScan
	if err := database.DB.WithContext(ctx).Where("qr_ref_id = ?", qrRefID).
		Order("scanned_at DESC").Limit(limit).Find(&scans).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scans: %w", err)
	}
	return scans, nil
}

type groupCount struct {
	Label string
	Total int64
}

// GetScanStats aggregates the scans of a QR ref by device, country and day (last 30 days)
func GetScanStats(ctx context.Context, qrRefID string, now time.Time) (*ScanStats, error) {
	if _, err := GetQrRef(ctx, qrRefID); err != nil {
		return nil, err
	}

	db := database.DB.WithContext(ctx)
	stats := ScanStats{
		QrRefID:   qrRefID,
		ByDevice:  map[string]int64{},
		ByCountry: map[string]int64{},
		ByDay:     []DayCount{},
	}

	if err := db.Model(&models.QrScan{}).Where("qr_ref_id = ?", qrRefID).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count scans: %w", err)
	}

	var devices []groupCount
	if err := db.Model(&models.QrScan{}).Select("device_type AS label, COUNT(*) AS total").
		Where("qr_ref_id = ?", qrRefID).Group("device_type").Scan(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to group scans by device: %w", err)
	}
	for _, d := range devices {
		stats.ByDevice[labelOrUnknown(d.Label)] += d.Total
	}

	var countries []groupCount
	if err := db.Model(&models.QrScan{}).Select("country_code AS label, COUNT(*) AS total").
		Where("qr_ref_id = ?", qrRefID).Group("country_code").Scan(&countries).Error; err != nil {
		return nil, fmt.Errorf("failed to group scans by country: %w", err)
	}
	for _, c := range countries {
		stats.ByCountry[labelOrUnknown(c.Label)] += c.Total
	}

	// Grouped in Go so the query stays portable across PostgreSQL and SQLite
	since := now.UTC().AddDate(0, 0, -statsWindowDays)
	var times []time.Time
	if err := db.Model(&models.QrScan{}).Where("qr_ref_id = ? AND scanned_at >= ?", qrRefID, since).
		Pluck("scanned_at", &times).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scan times: %w", err)
	}
	perDay := map[string]int64{}
	for _, t := range times {
		perDay[t.UTC().Format("2006-01-02")]++
	}
	for day, count := range perDay {
		stats.ByDay = append(stats.ByDay, DayCount{Day: day, Count: count})
	}
	sort.Slice(stats.ByDay, func(i, j int) bool { return stats.ByDay[i].Day < stats.ByDay[j].Day })

	return &stats, nil
}

func labelOrUnknown(label string) string {
	if label == "" {
		return DeviceUnknown
	}
	return label
}
