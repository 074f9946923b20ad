package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"printshop/internal/http/middleware"
	"printshop/internal/service"
	"printshop/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Next     string `json:"next"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Login authenticates the admin and sets the session cookie.
func Login(svc service.AuthService, secureCookies bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return serviceError(c, err)
		}

		c.Cookie(session.NewCookie(res.Token, res.ExpiresAt, secureCookies))

		// Only admin destinations are honored; anything else lands on the
		// dashboard so the login form cannot be used as an open redirect.
		redirectTo := req.Next
		if !strings.HasPrefix(redirectTo, "/admin") {
			redirectTo = "/admin"
		}
		return c.JSON(fiber.Map{"ok": true, "redirectTo": redirectTo, "user": res.User})
	}
}

// Logout clears the session cookie. Previously issued tokens stay valid
// until their embedded expiry; only the client's copy is dropped.
func Logout(secureCookies bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(session.ExpiredCookie(secureCookies))
		return c.JSON(fiber.Map{"ok": true})
	}
}

// ChangePassword rotates the authenticated admin's password.
func ChangePassword(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := middleware.SessionFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}

		var req changePasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.ChangePassword(c.UserContext(), sess.UserID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
