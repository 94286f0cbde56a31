package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/medwellsolutions/Medwell-Backend/internal/api/rest/middleware"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper/utils"
	"github.com/medwellsolutions/Medwell-Backend/internal/services"
)

type AdminHandler struct {
	svc    services.ReviewService
	events services.EventService
	auth   helper.Auth
}

func NewAdminHandler(svc services.ReviewService, events services.EventService, auth helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, events: events, auth: auth}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.AuthMiddleware(h.auth), middleware.AdminOnly())

	admin.Get("/applications", h.ListApplications)
	admin.Get("/applications/:userID", h.GetApplication)
	admin.Patch("/applications/:userID/status", h.SetApplicationStatus)

	admin.Get("/submissions", h.ListSubmissions)
	admin.Get("/submissions/:id", h.GetSubmission)
	admin.Patch("/submissions/:id/status", h.SetSubmissionStatus)

	admin.Post("/events", h.CreateEvent)
}

func paramUint(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(v), nil
}

func (h *AdminHandler) ListApplications(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	apps, err := h.svc.ListPendingApplications(ctx.Query("role"), limit, offset)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

func (h *AdminHandler) GetApplication(ctx *fiber.Ctx) error {
	userID, err := paramUint(ctx, "userID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	detail, err := h.svc.GetApplicationDetail(userID)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detail)
}

func (h *AdminHandler) SetApplicationStatus(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	userID, err := paramUint(ctx, "userID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var requestBody dto.SetApplicationStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.SetApplicationStatus(claims.UserID, userID, requestBody); err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "application status updated")
}

func (h *AdminHandler) ListSubmissions(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	subs, err := h.svc.ListPendingSubmissions(limit, offset)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, subs)
}

func (h *AdminHandler) GetSubmission(ctx *fiber.Ctx) error {
	id, err := paramUint(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	detail, err := h.svc.GetSubmissionDetail(id)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detail)
}

func (h *AdminHandler) SetSubmissionStatus(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	id, err := paramUint(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var requestBody dto.ReviewSubmissionRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	detail, err := h.svc.SetSubmissionStatus(claims.UserID, id, requestBody)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detail)
}

func (h *AdminHandler) CreateEvent(ctx *fiber.Ctx) error {
	var requestBody dto.EventCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	event, err := h.events.CreateEvent(requestBody)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, event)
}
