package handler

import (
	"github.com/gofiber/fiber/v2"

	"printshop/internal/service"
)

// ListOrders lists shop orders for the admin, optionally by status.
func ListOrders(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}
		res, err := svc.List(c.UserContext(), c.Query("status"), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetOrder returns a single order.
func GetOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(o)
	}
}

// UpdateOrder applies the admin's status and notes patch.
func UpdateOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd service.OrderUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		o, err := svc.Update(c.UserContext(), c.Params("id"), upd)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(o)
	}
}
