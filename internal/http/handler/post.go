package handler

import (
	"github.com/gofiber/fiber/v2"

	"printshop/internal/service"
)

// ListPosts lists blog posts. The public route hides drafts.
func ListPosts(svc service.PostService, publishedOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}
		res, err := svc.List(c.UserContext(), publishedOnly, limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetPostBySlug serves a published post on the public blog.
func GetPostBySlug(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// GetPost returns a post by ID, drafts included.
func GetPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// CreatePost adds a blog post.
func CreatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.PostInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdatePost replaces a post's editable fields.
func UpdatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.PostInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// DeletePost removes a post.
func DeletePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
