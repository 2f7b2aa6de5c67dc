package services

import (
	"context"
	"errors"
	"net/url"
	"time"

	"hypnoraffle/metrics"

	"go.uber.org/zap"
)

// FallbackPath is the QR manager page the redirect endpoint falls back to
const FallbackPath = "/qr-ref"

// RedirectOutcome is the result of resolving a slug; every value but OutcomeRedirect is an error tag
type RedirectOutcome string

const (
	OutcomeRedirect    RedirectOutcome = "redirect"
	OutcomeMissingSlug RedirectOutcome = "missing_slug"
	OutcomeNotFound    RedirectOutcome = "not_found"
	OutcomeInactive    RedirectOutcome = "inactive"
	OutcomeExpired     RedirectOutcome = "expired"
	OutcomeNoTarget    RedirectOutcome = "no_target"
	OutcomeServerError RedirectOutcome = "server_error"
)

// Location returns the redirect location for an outcome; target is only used for OutcomeRedirect
func (o RedirectOutcome) Location(target string) string {
	switch o {
	case OutcomeRedirect:
		return target
	case OutcomeMissingSlug:
		return FallbackPath
	default:
		return FallbackPath + "?error=" + string(o)
	}
}

// ResolveRedirect looks up slug, checks the active flag and expiry, counts the scan and
// returns where the client should be sent
func ResolveRedirect(ctx context.Context, slug string, meta ScanMetadata, now time.Time) (string, RedirectOutcome) {
	target, outcome := resolveRedirect(ctx, slug, meta, now)
	metrics.QrRedirects.WithLabelValues(string(outcome)).Inc()
	return target, outcome
}

func resolveRedirect(ctx context.Context, slug string, meta ScanMetadata, now time.Time) (string, RedirectOutcome) {
	if slug == "" {
		return "", OutcomeMissingSlug
	}

	ref, err := GetQrRefBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, ErrQrRefNotFound) {
			zap.L().Error("QR ref lookup failed", zap.String("slug", slug), zap.Error(err))
		} else {
			zap.L().Info("QR ref not found", zap.String("slug", slug))
		}
		return "", OutcomeNotFound
	}

	if !ref.IsActive {
		return "", OutcomeInactive
	}
	if ref.Expired(now) {
		return "", OutcomeExpired
	}

	// A failed scan log does not block the visitor
	if _, err := RecordScan(ctx, ref, meta, now); err != nil {
		zap.L().Error("failed to record QR scan", zap.String("slug", slug), zap.Error(err))
	}

	if ref.TargetURL == "" {
		return "", OutcomeNoTarget
	}

	target, err := url.Parse(ref.TargetURL)
	if err != nil || !target.IsAbs() {
		zap.L().Error("QR ref has an unusable target URL", zap.String("slug", slug), zap.String("target_url", ref.TargetURL))
		return "", OutcomeServerError
	}
	return target.String(), OutcomeRedirect
}
