package handler

import (
	"github.com/gofiber/fiber/v2"

	"printshop/internal/service"
)

// UploadImage stores an admin-uploaded site image (multipart/form-data,
// field name: file) under the given kind's prefix in the object store.
func UploadImage(svc service.MediaService, kind service.ImageKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		img, err := svc.UploadImage(c.UserContext(), kind, service.ImageUpload{
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(img)
	}
}
