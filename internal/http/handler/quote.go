package handler

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"printshop/internal/service"
)

// SubmitQuote accepts the public quote request form (multipart/form-data,
// repeated field name: files).
func SubmitQuote(svc service.QuoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "multipart form required")
		}

		sub := service.QuoteSubmission{
			Name:    formValue(form.Value, "name"),
			Email:   formValue(form.Value, "email"),
			Phone:   formValue(form.Value, "phone"),
			Message: formValue(form.Value, "message"),
		}
		for _, fh := range form.File["files"] {
			fh := fh
			sub.Files = append(sub.Files, service.UploadFile{
				Name: fh.Filename,
				Size: fh.Size,
				Open: func() (io.ReadCloser, error) {
					f, err := fh.Open()
					if err != nil {
						return nil, err
					}
					return f, nil
				},
			})
		}

		quote, err := svc.Submit(c.UserContext(), sub)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(quote)
	}
}

// ListQuotes lists quote requests for the admin, optionally by status.
func ListQuotes(svc service.QuoteService) fiber.Handler {
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

// GetQuote returns a single quote request.
func GetQuote(svc service.QuoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quote, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(quote)
	}
}

// ReviewQuote applies the admin's status, notes, and price patch.
func ReviewQuote(svc service.QuoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rev service.QuoteReview
		if err := c.BodyParser(&rev); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		quote, err := svc.Review(c.UserContext(), c.Params("id"), rev)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(quote)
	}
}

func formValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// pageParams parses limit/offset query parameters. On a parse failure it
// writes the error response itself and reports ok=false; the handler should
// then return nil.
func pageParams(c *fiber.Ctx) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		return 0, 0, false
	}
	return limit, offset, true
}
