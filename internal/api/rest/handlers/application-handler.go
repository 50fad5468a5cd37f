package handlers

import (
	"errors"
	"strings"

	"github.com/RentHaven/property_service/internal/api/rest/middleware"
	"github.com/RentHaven/property_service/internal/domain"
	"github.com/RentHaven/property_service/internal/dto"
	"github.com/RentHaven/property_service/internal/helper"
	"github.com/RentHaven/property_service/internal/helper/utils"
	"github.com/RentHaven/property_service/internal/repository"
	"github.com/RentHaven/property_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	svc   services.ApplicationService
	auth  helper.Auth
	users repository.UserRepository
}

func NewApplicationHandler(svc services.ApplicationService, auth helper.Auth, users repository.UserRepository) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, auth: auth, users: users}
}

func (h *ApplicationHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/applications")

	// Public
	api.Post("/", h.Submit)
	api.Get("/status", h.Status)

	// Landlord only
	authenticated := middleware.AuthMiddleware(h.auth, h.users)
	api.Get("/", authenticated, middleware.LandlordOnly(), h.List)
	api.Get("/:id", authenticated, middleware.LandlordOnly(), h.GetByID)
	api.Put("/:id/review", authenticated, middleware.LandlordOnly(), h.Review)
}

func (h *ApplicationHandler) Submit(ctx *fiber.Ctx) error {
	var requestBody dto.ApplicationRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if fieldErrs := requestBody.Validate(); len(fieldErrs) > 0 {
		return utils.ResponseValidationError(ctx, fieldErrs)
	}

	app, err := h.svc.Submit(requestBody)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationExists) {
			return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error during application submission")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.NewApplicationResponse(app), "Application submitted successfully")
}

func (h *ApplicationHandler) List(ctx *fiber.Ctx) error {
	status := strings.TrimSpace(ctx.Query("status"))
	if status != "" {
		parsed, ok := domain.ParseApplicationStatus(status)
		if !ok {
			return utils.ResponseValidationError(ctx, map[string]string{
				"status": "must be one of PENDING, UNDER_REVIEW, APPROVED, REJECTED, WITHDRAWN",
			})
		}
		status = string(parsed)
	}
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	apps, total, err := h.svc.List(status, page, limit)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponsePage(ctx,
		dto.NewApplicationResponseList(apps),
		utils.NewPagination(page, limit, total),
		"Applications retrieved successfully",
	)
}

func (h *ApplicationHandler) GetByID(ctx *fiber.Ctx) error {
	app, err := h.svc.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.NewApplicationResponse(app), "Application retrieved successfully")
}

func (h *ApplicationHandler) Review(ctx *fiber.Ctx) error {
	reviewer, ok := middleware.CurrentUser(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Not authorized")
	}

	var requestBody dto.ReviewRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if fieldErrs := requestBody.Validate(); len(fieldErrs) > 0 {
		return utils.ResponseValidationError(ctx, fieldErrs)
	}

	app, err := h.svc.Review(ctx.Params("id"), reviewer.ID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrApplicationFinalized):
			return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
		default:
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error during application review")
		}
	}

	msg := "Application " + strings.ToLower(string(app.ApplicationStatus)) + " successfully"
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.NewApplicationResponse(app), msg)
}

func (h *ApplicationHandler) Status(ctx *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(ctx.Query("email")))
	if email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Email parameter is required")
	}

	status, err := h.svc.GetStatusByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "No application found for this email address")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, status, "Application status retrieved successfully")
}
