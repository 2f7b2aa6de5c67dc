package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hypnoraffle/config"
	"hypnoraffle/database"
	"hypnoraffle/metrics"
	"hypnoraffle/models"
	"hypnoraffle/realtime"

	"github.com/gosimple/slug"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const (
	MaxQrRefNameLength   = 100
	MaxDescriptionLength = 255
	MaxCategoryLength    = 50
	MaxSlugLength        = 64
	DefaultImageSize     = 256
	MinImageSize         = 128
	MaxImageSize         = 1024
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// QrRefInput holds the fields accepted when creating a QR ref
type QrRefInput struct {
	Name        string
	Slug        string
	TargetURL   string
	Description string
	Category    string
	IsActive    *bool
	ExpiresAt   *time.Time
}

// QrRefUpdate holds a partial update; nil fields are left untouched
type QrRefUpdate struct {
	Name        *string
	Slug        *string
	TargetURL   *string
	Description *string
	Category    *string
	IsActive    *bool
	ExpiresAt   *time.Time
	ClearExpiry bool
}

// QrRefFilter restricts ListQrRefs
type QrRefFilter struct {
	Category string
	IsActive *bool
}

// NormalizeSlug validates slug, deriving it from name when empty
func NormalizeSlug(raw string, name string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		s = slug.Make(name)
		if len(s) > MaxSlugLength {
			s = strings.TrimRight(s[:MaxSlugLength], "-")
		}
	}
	if len(s) > MaxSlugLength || !slugPattern.MatchString(s) {
		return "", ErrInvalidSlug
	}
	return s, nil
}

func validateQrRefName(name string) error {
	if err := validate.Var(name, "required,max="+strconv.Itoa(MaxQrRefNameLength)); err != nil {
		return ErrInvalidQrRefName
	}
	return nil
}

func validateDescription(description string) error {
	if err := validate.Var(description, "max="+strconv.Itoa(MaxDescriptionLength)); err != nil {
		return ErrInvalidDescription
	}
	return nil
}

func validateCategory(category string) error {
	if err := validate.Var(category, "max="+strconv.Itoa(MaxCategoryLength)); err != nil {
		return ErrInvalidCategory
	}
	return nil
}

// ValidateTargetURL accepts an empty URL (the redirect then reports no_target) or an absolute http(s) URL
func ValidateTargetURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidTargetURL
	}
	return nil
}

// PublicURL is the address encoded in the printed QR code
func PublicURL(ref *models.QrRef) string {
	return config.BaseURL + "/qr-ref/" + ref.Slug
}

// CreateQrRef stores a new QR ref
func CreateQrRef(ctx context.Context, in QrRefInput) (*models.QrRef, error) {
	defer metrics.RecordDBOperation("create", "qr_refs", time.Now())

	name := strings.TrimSpace(in.Name)
	if err := validateQrRefName(name); err != nil {
		return nil, err
	}
	s, err := NormalizeSlug(in.Slug, name)
	if err != nil {
		return nil, err
	}
	target := strings.TrimSpace(in.TargetURL)
	if err := ValidateTargetURL(target); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(in.Description)
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	category := strings.TrimSpace(in.Category)
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if err := ensureSlugFree(ctx, database.DB, s, ""); err != nil {
		return nil, err
	}

	ref := models.QrRef{
		Name:        name,
		Slug:        s,
		TargetURL:   target,
		Description: description,
		Category:    category,
		IsActive:    true,
		ExpiresAt:   in.ExpiresAt,
	}
	if in.IsActive != nil {
		ref.IsActive = *in.IsActive
	}

	if err := database.DB.WithContext(ctx).Create(&ref).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create QR ref: %w", err)
	}

	publishCollection(ctx, realtime.CollectionQrRefs)
	return &ref, nil
}

// ListQrRefs returns the QR refs matching filter, newest first
func ListQrRefs(ctx context.Context, filter QrRefFilter) ([]models.QrRef, error) {
	query := database.DB.WithContext(ctx).Model(&models.QrRef{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var refs []models.QrRef
	if err := query.Order("created_at DESC").Find(&refs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch QR refs: %w", err)
	}
	return refs, nil
}

// GetQrRef returns a QR ref by id
func GetQrRef(ctx context.Context, id string) (*models.QrRef, error) {
	if !validID(id) {
		return nil, ErrQrRefNotFound
	}

	var ref models.QrRef
	if err := database.DB.WithContext(ctx).First(&ref, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrQrRefNotFound
		}
		return nil, fmt.Errorf("failed to fetch QR ref: %w", err)
	}
	return &ref, nil
}

// GetQrRefBySlug returns a QR ref by slug, through the Redis cache when available.
// The cached copy may carry a stale scan counter.
func GetQrRefBySlug(ctx context.Context, s string) (*models.QrRef, error) {
	if cached, ok := getCachedQrRef(ctx, s); ok {
		return cached, nil
	}

	defer metrics.RecordDBOperation("get_by_slug", "qr_refs", time.Now())

	var ref models.QrRef
	if err := database.DB.WithContext(ctx).First(&ref, "slug = ?", s).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrQrRefNotFound
		}
		return nil, fmt.Errorf("failed to fetch QR ref: %w", err)
	}

	cacheQrRef(ctx, &ref)
	return &ref, nil
}

// UpdateQrRef applies a partial update
func UpdateQrRef(ctx context.Context, id string, upd QrRefUpdate) (*models.QrRef, error) {
	ref, err := GetQrRef(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := ref.Slug

	if upd.Name != nil {
		ref.Name = strings.TrimSpace(*upd.Name)
		if err := validateQrRefName(ref.Name); err != nil {
			return nil, err
		}
	}
	if upd.Slug != nil {
		s, err := NormalizeSlug(*upd.Slug, ref.Name)
		if err != nil {
			return nil, err
		}
		if s != oldSlug {
			if err := ensureSlugFree(ctx, database.DB, s, ref.ID); err != nil {
				return nil, err
			}
		}
		ref.Slug = s
	}
	if upd.TargetURL != nil {
		target := strings.TrimSpace(*upd.TargetURL)
		if err := ValidateTargetURL(target); err != nil {
			return nil, err
		}
		ref.TargetURL = target
	}
	if upd.Description != nil {
		ref.Description = strings.TrimSpace(*upd.Description)
		if err := validateDescription(ref.Description); err != nil {
			return nil, err
		}
	}
	if upd.Category != nil {
		ref.Category = strings.TrimSpace(*upd.Category)
		if err := validateCategory(ref.Category); err != nil {
			return nil, err
		}
	}
	if upd.IsActive != nil {
		ref.IsActive = *upd.IsActive
	}
	if upd.ClearExpiry {
		ref.ExpiresAt = nil
	} else if upd.ExpiresAt != nil {
		ref.ExpiresAt = upd.ExpiresAt
	}

	// Select("*") so that zero values (is_active=false, empty strings, nil expiry) are written too
	if err := database.DB.WithContext(ctx).Model(ref).Select("*").Omit("scan_count", "last_scanned_at", "created_at").Updates(ref).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update QR ref: %w", err)
	}

	invalidateQrRef(ctx, oldSlug, ref.Slug)
	publishCollection(ctx, realtime.CollectionQrRefs)
	return ref, nil
}

// ToggleQrRef flips the active flag
func ToggleQrRef(ctx context.Context, id string) (*models.QrRef, error) {
	ref, err := GetQrRef(ctx, id)
	if err != nil {
		return nil, err
	}
	active := !ref.IsActive
	return UpdateQrRef(ctx, id, QrRefUpdate{IsActive: &active})
}

// DeleteQrRef removes a QR ref and its scans
func DeleteQrRef(ctx context.Context, id string) error {
	ref, err := GetQrRef(ctx, id)
	if err != nil {
		return err
	}

	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("qr_ref_id = ?", ref.ID).Delete(&models.QrScan{}).Error; err != nil {
			return fmt.Errorf("failed to delete scans: %w", err)
		}
		if err := tx.Delete(&models.QrRef{}, "id = ?", ref.ID).Error; err != nil {
			return fmt.Errorf("failed to delete QR ref: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	invalidateQrRef(ctx, ref.Slug)
	publishCollection(ctx, realtime.CollectionQrRefs)
	return nil
}

// QrImage renders the PNG QR code pointing at the ref's public redirect URL
func QrImage(ref *models.QrRef, size int) ([]byte, error) {
	if size == 0 {
		size = DefaultImageSize
	}
	if size < MinImageSize || size > MaxImageSize {
		return nil, ErrInvalidImageSize
	}

	png, err := qrcode.Encode(PublicURL(ref), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

func ensureSlugFree(ctx context.Context, db *gorm.DB, s string, exceptID string) error {
	query := db.WithContext(ctx).Model(&models.QrRef{}).Where("slug = ?", s)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if count > 0 {
		return ErrSlugTaken
	}
	return nil
}
