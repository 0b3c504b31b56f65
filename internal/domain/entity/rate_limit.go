package entity

import (
	"strings"
	"time"
)

// xAPIPrefixes are the historical base URLs of the X API. Endpoints under any
// of them collapse to the same relative path.
var xAPIPrefixes = []string{
	"https://api.twitter.com/2/",
	"https://api.x.com/2/",
	"https://api.twitter.com/labs/2/",
	"https://api.twitter.com/1.1/",
	"https://upload.twitter.com/1.1/",
	"https://stream.twitter.com/1.1/",
}

// XProfileEndpoint is the normalized endpoint the profile lookup is recorded under.
const XProfileEndpoint = "users/me"

// NormalizeEndpoint strips a known API prefix. Relative paths and unknown
// hosts are returned unchanged.
func NormalizeEndpoint(endpoint string) string {
	if !strings.HasPrefix(endpoint, "http") {
		return endpoint
	}

	for _, prefix := range xAPIPrefixes {
		if strings.HasPrefix(endpoint, prefix) {
			return endpoint[len(prefix):]
		}
	}

	return endpoint
}

// RateLimitWindow is one limit window. Reset is a unix timestamp in seconds.
type RateLimitWindow struct {
	Limit     int
	Remaining int
	Reset     int64
}

func (w RateLimitWindow) limiting(now time.Time) bool {
	return w.Remaining == 0 && now.Before(time.Unix(w.Reset, 0))
}

func (w RateLimitWindow) expired(now time.Time) bool {
	return !now.Before(time.Unix(w.Reset, 0))
}

// RateLimit is the snapshot of the X rate-limit headers for one endpoint and method.
type RateLimit struct {
	Endpoint    string
	Method      string
	Limit       int
	Remaining   int
	Reset       int64
	Day         *RateLimitWindow
	LastUpdated time.Time
}

func (r RateLimit) primary() RateLimitWindow {
	return RateLimitWindow{Limit: r.Limit, Remaining: r.Remaining, Reset: r.Reset}
}

// IsLimiting reports whether either the primary or the day window still blocks calls.
func (r RateLimit) IsLimiting(now time.Time) bool {
	if r.Reset != 0 && r.primary().limiting(now) {
		return true
	}

	return r.Day != nil && r.Day.Reset != 0 && r.Day.limiting(now)
}

// LimitedUntil returns the latest reset of the windows that still block
// calls, or the zero time when none does.
func (r RateLimit) LimitedUntil(now time.Time) time.Time {
	var until time.Time
	if r.Reset != 0 && r.primary().limiting(now) {
		until = time.Unix(r.Reset, 0)
	}
	if r.Day != nil && r.Day.Reset != 0 && r.Day.limiting(now) {
		if day := time.Unix(r.Day.Reset, 0); day.After(until) {
			until = day
		}
	}

	return until
}

// IsExpired reports whether every window of the snapshot has reset.
func (r RateLimit) IsExpired(now time.Time) bool {
	if !r.primary().expired(now) {
		return false
	}

	return r.Day == nil || r.Day.expired(now)
}

// Matches reports whether the snapshot is for endpoint and method, exactly or after normalization.
func (r RateLimit) Matches(endpoint, method string, exact bool) bool {
	if !strings.EqualFold(r.Method, method) {
		return false
	}
	if exact {
		return r.Endpoint == endpoint
	}

	return NormalizeEndpoint(r.Endpoint) == NormalizeEndpoint(endpoint)
}

// FindRateLimit looks up a snapshot with an exact match first, then a normalized scan.
func FindRateLimit(limits []RateLimit, endpoint, method string) (int, bool) {
	if method == "" {
		method = "GET"
	}

	for i := range limits {
		if limits[i].Matches(endpoint, method, true) {
			return i, true
		}
	}
	for i := range limits {
		if limits[i].Matches(endpoint, method, false) {
			return i, true
		}
	}

	return -1, false
}
