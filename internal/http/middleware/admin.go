package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"printshop/internal/session"
)

// SessionLocalKey is the key under which the validated session descriptor is
// stored in Fiber's context locals.
const SessionLocalKey = "admin_session"

const loginPath = "/admin/login"

// AdminGate guards the /admin pages and the /api/admin endpoints with the
// signed session cookie. Requests to other paths pass through untouched, as
// do the login page and login endpoint themselves.
//
// Behavior on rejection depends on the surface: browser pages redirect to
// the login page with the original destination in ?next=, while API routes
// answer 401 JSON. When the signing secret is not configured the gate fails
// closed and sends every protected request to the login page with
// ?error=misconfigured.
func AdminGate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Routing is case-insensitive by default, so prefix checks run on a
		// lowercased copy; /API/ADMIN must not slip past the gate.
		lower := strings.ToLower(path)
		isPage := strings.HasPrefix(lower, "/admin")
		isAPI := strings.HasPrefix(lower, "/api/admin")
		if !isPage && !isAPI {
			return c.Next()
		}
		if lower == loginPath || lower == "/api/admin/login" {
			return c.Next()
		}

		if secret == "" {
			if isAPI {
				return unauthorizedJSON(c)
			}
			return c.Redirect(loginPath+"?error=misconfigured", fiber.StatusSeeOther)
		}

		sess, ok := session.Verify(c.Cookies(session.CookieName), secret, time.Now())
		if !ok {
			if isAPI {
				return unauthorizedJSON(c)
			}
			target := path
			if q := string(c.Request().URI().QueryString()); q != "" {
				target += "?" + q
			}
			return c.Redirect(loginPath+"?next="+url.QueryEscape(target), fiber.StatusSeeOther)
		}

		c.Locals(SessionLocalKey, sess)
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by AdminGate, if any.
func SessionFromCtx(c *fiber.Ctx) (session.Session, bool) {
	sess, ok := c.Locals(SessionLocalKey).(session.Session)
	return sess, ok
}

// unauthorizedJSON mirrors the handler error envelope without importing the
// handler package.
func unauthorizedJSON(c *fiber.Ctx) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"request_id": rid,
		"error": fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": "authentication required",
		},
	})
}
