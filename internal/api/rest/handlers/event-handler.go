package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medwellsolutions/Medwell-Backend/internal/api/rest/middleware"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper/utils"
	"github.com/medwellsolutions/Medwell-Backend/internal/services"
)

type EventHandler struct {
	svc  services.EventService
	auth helper.Auth
}

func NewEventHandler(svc services.EventService, auth helper.Auth) *EventHandler {
	return &EventHandler{svc: svc, auth: auth}
}

func (h *EventHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.AuthMiddleware(h.auth))

	api.Get("/events/:month", h.ListByMonth)
	api.Get("/event/:eventID", h.GetEvent)

	api.Post("/event/:eventID/submissions", h.CreateSubmission)
	api.Get("/submissions/me", h.ListMySubmissions)
}

func (h *EventHandler) ListByMonth(ctx *fiber.Ctx) error {
	events, err := h.svc.ListEventsByMonth(ctx.Params("month"))
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, events)
}

func (h *EventHandler) GetEvent(ctx *fiber.Ctx) error {
	eventID, err := paramUint(ctx, "eventID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	event, err := h.svc.GetEvent(eventID)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, event)
}

func (h *EventHandler) CreateSubmission(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	eventID, err := paramUint(ctx, "eventID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var requestBody dto.SubmissionCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	sub, err := h.svc.CreateSubmission(claims.UserID, eventID, requestBody)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, sub)
}

func (h *EventHandler) ListMySubmissions(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	subs, err := h.svc.ListMySubmissions(claims.UserID, limit, offset)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, subs)
}
