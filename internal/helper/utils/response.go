package utils

import "github.com/gofiber/fiber/v2"

// Pagination is the page block returned with every list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

func ResponseValidationError(ctx *fiber.Ctx, fields map[string]string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": msg,
	})
}

func ResponsePage(ctx *fiber.Ctx, data interface{}, p Pagination, msg string) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": p,
		"message":    msg,
	})
}
