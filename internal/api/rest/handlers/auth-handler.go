package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medwellsolutions/Medwell-Backend/internal/api/rest/middleware"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper/utils"
	"github.com/medwellsolutions/Medwell-Backend/internal/services"
)

type AuthHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewAuthHandler(svc services.UserService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)

	profile := api.Group("/profile", middleware.AuthMiddleware(h.auth))
	profile.Get("/me", h.Me)
	profile.Patch("/", h.UpdateProfile)
	profile.Patch("/password", h.ChangePassword)
}

func (h *AuthHandler) Signup(ctx *fiber.Ctx) error {
	var requestBody dto.SignupRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.Signup(requestBody)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.ProfileFrom(user))
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	user, token, err := h.svc.Login(requestBody)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ProfileFrom(user),
	})
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	user, err := h.svc.GetProfile(claims.UserID)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ProfileFrom(user))
}

func (h *AuthHandler) UpdateProfile(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var requestBody dto.UpdateProfileRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.UpdateProfile(claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ProfileFrom(user))
}

func (h *AuthHandler) ChangePassword(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var requestBody dto.ChangePasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.ChangePassword(claims.UserID, requestBody); err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "password updated")
}
