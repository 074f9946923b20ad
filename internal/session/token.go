package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Package session implements the signed admin session cookie.
//
// Token format: "v1:<expirationEpochMillis>:<userID>.<hexHmacSha256>".
// The portion before the last '.' is the payload; the portion after is the
// authentication tag computed over the payload with the server secret.
// Verification is a pure function of (cookie value, secret, clock) so the
// gate middleware and request handlers share one implementation and cannot
// drift apart.

const (
	// CookieName is the admin session cookie name.
	CookieName = "admin_session"

	versionPrefix = "v1:"
)

// Session is a validated session descriptor.
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

// Sign computes the hex-encoded HMAC-SHA256 tag of payload under secret.
func Sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// NewToken mints a session token for userID expiring at exp.
func NewToken(userID, secret string, exp time.Time) string {
	payload := fmt.Sprintf("%s%d:%s", versionPrefix, exp.UnixMilli(), userID)
	return payload + "." + Sign(payload, secret)
}

// Verify checks a cookie value against the secret at time now.
// It returns the session descriptor and true only when the token is
// well-formed, carries the expected version, has not expired, and the tag
// matches under constant-time comparison. Any other outcome is a uniform
// rejection; there is no partial result.
func Verify(cookieValue, secret string, now time.Time) (Session, bool) {
	if cookieValue == "" || secret == "" {
		return Session{}, false
	}

	idx := strings.LastIndex(cookieValue, ".")
	if idx <= 0 {
		return Session{}, false
	}
	payload := cookieValue[:idx]
	tag := cookieValue[idx+1:]

	if !strings.HasPrefix(payload, versionPrefix) {
		return Session{}, false
	}
	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return Session{}, false
	}

	expMillis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Session{}, false
	}
	userID := parts[2]
	if userID == "" {
		return Session{}, false
	}

	exp := time.UnixMilli(expMillis)
	if !now.Before(exp) {
		return Session{}, false
	}

	expected := Sign(payload, secret)
	if subtle.ConstantTimeCompare([]byte(tag), []byte(expected)) != 1 {
		return Session{}, false
	}

	return Session{UserID: userID, ExpiresAt: exp}, true
}
