package handler

import (
	"github.com/gofiber/fiber/v2"

	"printshop/internal/service"
)

// ListGallery lists gallery images. The public route hides invisible ones.
func ListGallery(svc service.GalleryService, visibleOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		images, err := svc.List(c.UserContext(), visibleOnly)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(images)
	}
}

// GetGalleryImage returns a single gallery image.
func GetGalleryImage(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		img, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(img)
	}
}

// CreateGalleryImage adds an image to the gallery.
func CreateGalleryImage(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.GalleryInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		img, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(img)
	}
}

// UpdateGalleryImage replaces a gallery image's editable fields.
func UpdateGalleryImage(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.GalleryInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		img, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(img)
	}
}

// DeleteGalleryImage removes a gallery image.
func DeleteGalleryImage(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
