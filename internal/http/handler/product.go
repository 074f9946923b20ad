package handler

import (
	"github.com/gofiber/fiber/v2"

	"printshop/internal/repository"
	"printshop/internal/service"
)

// ListProducts lists catalog products. The public route forces active=true;
// the admin route passes filters through.
func ListProducts(svc service.CatalogService, publicOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}

		f := repository.ProductListFilter{CategoryID: c.Query("category")}
		if publicOnly {
			active := true
			f.Active = &active
		} else if v := c.Query("active"); v != "" {
			active := v == "true"
			f.Active = &active
		}

		res, err := svc.ListProducts(c.UserContext(), f, limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetProduct returns a single product.
func GetProduct(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetProduct(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// CreateProduct adds a product to the catalog.
func CreateProduct(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ProductInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.CreateProduct(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateProduct replaces a product's editable fields.
func UpdateProduct(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ProductInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.UpdateProduct(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// DeleteProduct removes a product.
func DeleteProduct(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetCategory returns a single category.
func GetCategory(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := svc.GetCategory(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(cat)
	}
}

// ListCategories lists all product categories.
func ListCategories(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats, err := svc.ListCategories(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(cats)
	}
}

// CreateCategory adds a product category.
func CreateCategory(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CategoryInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		cat, err := svc.CreateCategory(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cat)
	}
}

// UpdateCategory replaces a category's editable fields.
func UpdateCategory(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CategoryInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		cat, err := svc.UpdateCategory(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(cat)
	}
}

// DeleteCategory removes a category.
func DeleteCategory(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
