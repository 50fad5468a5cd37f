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

type AuthHandler struct {
	svc   services.AuthService
	auth  helper.Auth
	users repository.UserRepository
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth, users repository.UserRepository) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth, users: users}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Post("/refresh", h.Refresh)
	api.Get("/check-email", h.CheckEmail)

	api.Get("/me", middleware.AuthMiddleware(h.auth, h.users), h.Me)
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if fieldErrs := requestBody.Validate(); len(fieldErrs) > 0 {
		return utils.ResponseValidationError(ctx, fieldErrs)
	}

	payload, err := h.svc.Register(requestBody)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error during registration")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, payload, "User registered successfully")
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	if fieldErrs := requestBody.Validate(); len(fieldErrs) > 0 {
		return utils.ResponseValidationError(ctx, fieldErrs)
	}

	payload, err := h.svc.Login(requestBody)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error during login")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, payload, "Login successful")
}

func (h *AuthHandler) Refresh(ctx *fiber.Ctx) error {
	var requestBody dto.RefreshRequest
	if err := ctx.BodyParser(&requestBody); err != nil || strings.TrimSpace(requestBody.RefreshToken) == "" {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Refresh token is required")
	}

	payload, err := h.svc.RefreshAccessToken(requestBody.RefreshToken)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, payload, "Token refreshed successfully")
}

func (h *AuthHandler) CheckEmail(ctx *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(ctx.Query("email")))
	if email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Email parameter is required")
	}

	availability, err := h.svc.CheckEmailAvailability(email)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error while checking email availability")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, availability, "Email availability checked")
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Not authorized")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, user, "User retrieved successfully")
}
