package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewCookie builds the session cookie carrying token, expiring at exp.
// Secure is set only when serving production TLS; HttpOnly and SameSite=Lax
// always apply.
func NewCookie(token string, exp time.Time, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// ExpiredCookie builds an empty, already-expired session cookie. Setting it
// clears the client's copy; it does not invalidate other copies of a still
// valid token, which remain accepted until their embedded expiry passes.
func ExpiredCookie(secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
