package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/medwellsolutions/Medwell-Backend/internal/api/rest/middleware"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper/utils"
	"github.com/medwellsolutions/Medwell-Backend/internal/interfaces"
	"github.com/medwellsolutions/Medwell-Backend/internal/services"
	pkgutils "github.com/medwellsolutions/Medwell-Backend/pkg/utils"
)

// one uploaded document at most 12MB
const maxUploadBytes = 12 << 20

type VettingHandler struct {
	svc   services.VettingService
	files interfaces.FileStore
	auth  helper.Auth
}

func NewVettingHandler(svc services.VettingService, files interfaces.FileStore, auth helper.Auth) *VettingHandler {
	return &VettingHandler{svc: svc, files: files, auth: auth}
}

func (h *VettingHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.AuthMiddleware(h.auth))

	api.Post("/participant/vetting", h.SubmitParticipant)
	api.Post("/doctor/vetting", h.SubmitDoctor)
	api.Post("/supplier/vetting", h.SubmitSupplier)
	api.Post("/sponsor/vetting", h.SubmitSponsor)
	api.Post("/non-profit/vetting", h.SubmitNonProfit)

	api.Get("/vetting/me", h.GetMine)
	api.Get("/files/*", h.DownloadFile)
}

/* =========================
   multipart helpers
========================= */

func collectFiles(form *multipart.Form) ([]dto.FormFile, error) {
	var out []dto.FormFile
	for field, headers := range form.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			b, err := pkgutils.ReadAllLimit(f, maxUploadBytes)
			f.Close()
			if err != nil {
				return nil, err
			}
			out = append(out, dto.FormFile{
				Field:       field,
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Bytes:       b,
			})
		}
	}
	return out, nil
}

func formValue(form *multipart.Form, key string) string {
	if vals := form.Value[key]; len(vals) > 0 {
		return strings.TrimSpace(vals[0])
	}
	return ""
}

// formList accepts either repeated fields or a single JSON array string,
// matching how browser clients post multi-selects alongside files.
func formList(form *multipart.Form, key string) []string {
	vals := form.Value[key]
	if len(vals) == 0 {
		return nil
	}
	if len(vals) == 1 && strings.HasPrefix(strings.TrimSpace(vals[0]), "[") {
		var out []string
		if err := json.Unmarshal([]byte(vals[0]), &out); err == nil {
			return out
		}
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func formBool(form *multipart.Form, key string) bool {
	switch strings.ToLower(formValue(form, key)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

/* =========================
   routes
========================= */

func (h *VettingHandler) SubmitParticipant(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var requestBody dto.ParticipantVettingRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	resp, err := h.svc.SubmitParticipant(ctx.Context(), claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *VettingHandler) SubmitDoctor(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "multipart form required")
	}
	files, err := collectFiles(form)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	requestBody := dto.DoctorVettingRequest{
		ClinicName:           formValue(form, "clinicName"),
		PracticeAddress:      formValue(form, "practiceAddress"),
		Website:              formValue(form, "website"),
		SocialLinks:          formList(form, "socialLinks"),
		HipaaAcknowledged:    formBool(form, "hipaaAcknowledged"),
		ParticipationOptions: formList(form, "participationOptions"),
		PromoteEngagement:    formValue(form, "promoteEngagement"),
		MeaningfulCauses:     formValue(form, "meaningfulCauses"),
		CampaignFit:          formList(form, "campaignFit"),
	}

	resp, err := h.svc.SubmitDoctor(ctx.Context(), claims.UserID, requestBody, files)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *VettingHandler) SubmitSupplier(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "multipart form required")
	}
	files, err := collectFiles(form)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	requestBody := dto.SupplierVettingRequest{
		BusinessName:      formValue(form, "businessName"),
		BusinessStructure: formValue(form, "businessStructure"),
		ContactName:       formValue(form, "contactName"),
		Phone:             formValue(form, "phone"),
		SocialLinks:       formList(form, "socialLinks"),
		TaxID:             formValue(form, "taxID"),
		SupplierCategory:  formList(form, "supplierCategory"),

		MembershipParticipation: formList(form, "MembershipParticipation"),

		Wellness:          formValue(form, "wellness"),
		Interest:          formValue(form, "interest"),
		NonProfitInterest: formValue(form, "nonProfitInterest"),

		CommunityImpactRebate:           formBool(form, "communityImpactRebate"),
		PerformanceAccountability:       formBool(form, "performanceAccountability"),
		MedwellPartnership:              formBool(form, "medwellPartnership"),
		AssetsSupply:                    formBool(form, "assetsSupply"),
		MembershipRevokeAcknowledgement: formBool(form, "membershipRevokeAcknowledgement"),
	}

	resp, err := h.svc.SubmitSupplier(ctx.Context(), claims.UserID, requestBody, files)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *VettingHandler) SubmitSponsor(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "multipart form required")
	}
	files, err := collectFiles(form)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	requestBody := dto.SponsorVettingRequest{
		BusinessName:    formValue(form, "businessName"),
		EntityType:      formValue(form, "entityType"),
		EntityTypeOther: formValue(form, "entityTypeOther"),
		ContactName:     formValue(form, "contactName"),
		ContactTitle:    formValue(form, "contactTitle"),
		ContactEmail:    formValue(form, "contactEmail"),
		ContactPhone:    formValue(form, "contactPhone"),
		SocialLinks:     formList(form, "socialLinks"),

		MissionValues:  formValue(form, "missionValues"),
		CsrEsgOverview: formValue(form, "csrEsgOverview"),

		SponsorshipGoals:    formList(form, "sponsorshipGoals"),
		FundingModels:       formList(form, "fundingModels"),
		FundingOther:        formValue(form, "fundingOther"),
		ActivationReadiness: formList(form, "activationReadiness"),
		CauseAlignment:      formList(form, "causeAlignment"),
		CauseOther:          formValue(form, "causeOther"),

		AgreeImpactProgram:   formBool(form, "agreeImpactProgram"),
		AgreePublicListing:   formBool(form, "agreePublicListing"),
		AcknowledgeCommunity: formBool(form, "acknowledgeCommunity"),
		AgreeQuarterlyReport: formBool(form, "agreeQuarterlyReport"),
		AgreeParticipate12mo: formBool(form, "agreeParticipate12mo"),
	}

	resp, err := h.svc.SubmitSponsor(ctx.Context(), claims.UserID, requestBody, files)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *VettingHandler) SubmitNonProfit(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "multipart form required")
	}
	files, err := collectFiles(form)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	requestBody := dto.NonProfitVettingRequest{
		LegalName:    formValue(form, "legalName"),
		StateIncorp:  formValue(form, "stateIncorp"),
		ContactName:  formValue(form, "contactName"),
		ContactTitle: formValue(form, "contactTitle"),
		ContactPhone: formValue(form, "contactPhone"),
		ContactEmail: formValue(form, "contactEmail"),
		SocialLinks:  formList(form, "socialLinks"),

		MissionStatement: formValue(form, "missionStatement"),
		ProgramsSummary:  formValue(form, "programsSummary"),

		ParticipationReadiness: formList(form, "participationReadiness"),

		AlignWithMedwell: formValue(form, "alignWithMedwell"),
		PastCampaign:     formValue(form, "pastCampaign"),
		DesiredImpact:    formValue(form, "desiredImpact"),

		ProgramFit: formList(form, "programFit"),

		AgreeMonthlyOrQuarterly: formBool(form, "agreeMonthlyOrQuarterly"),
		UnderstandPerformance:   formBool(form, "understandPerformance"),
		AgreeCoMarketing:        formBool(form, "agreeCoMarketing"),
		AcknowledgeOngoing:      formBool(form, "acknowledgeOngoing"),
		AgreeShareMetrics:       formBool(form, "agreeShareMetrics"),
	}

	resp, err := h.svc.SubmitNonProfit(ctx.Context(), claims.UserID, requestBody, files)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *VettingHandler) GetMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	rec, err := h.svc.GetMine(claims.UserID)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rec)
}

// DownloadFile streams a stored document back with its content type.
// File ids may contain slashes, hence the wildcard route.
func (h *VettingHandler) DownloadFile(ctx *fiber.Ctx) error {
	fileID := ctx.Params("*")
	if fileID == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file id required")
	}

	rc, contentType, err := h.files.Open(ctx.Context(), fileID)
	if err != nil {
		return utils.ResponseForError(ctx, err)
	}

	if contentType != "" {
		ctx.Set(fiber.HeaderContentType, contentType)
	}
	return ctx.SendStream(rc)
}
