package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/interfaces"
	"github.com/medwellsolutions/Medwell-Backend/internal/repository"
)

const (
	msgRegistrationCompleted = "registration completed"
	msgAlreadyCompleted      = "registration already completed"
)

type VettingService interface {
	SubmitParticipant(ctx context.Context, userID uint, input dto.ParticipantVettingRequest) (*dto.VettingResponse, error)
	SubmitDoctor(ctx context.Context, userID uint, input dto.DoctorVettingRequest, files []dto.FormFile) (*dto.VettingResponse, error)
	SubmitSupplier(ctx context.Context, userID uint, input dto.SupplierVettingRequest, files []dto.FormFile) (*dto.VettingResponse, error)
	SubmitSponsor(ctx context.Context, userID uint, input dto.SponsorVettingRequest, files []dto.FormFile) (*dto.VettingResponse, error)
	SubmitNonProfit(ctx context.Context, userID uint, input dto.NonProfitVettingRequest, files []dto.FormFile) (*dto.VettingResponse, error)
	GetMine(userID uint) (*domain.VettingRecord, error)
}

type vettingService struct {
	repo     repository.VettingRepository
	users    repository.UserRepository
	files    interfaces.FileStore
	producer interfaces.ProducerHandler
}

func NewVettingService(repo repository.VettingRepository, users repository.UserRepository, files interfaces.FileStore, producer interfaces.ProducerHandler) VettingService {
	return &vettingService{
		repo:     repo,
		users:    users,
		files:    files,
		producer: producer,
	}
}

// applicant loads the user and checks the route role against the
// account role. A doctor posting the supplier form is a 403, not a
// validation error.
func (v *vettingService) applicant(userID uint, role domain.Role) (*domain.User, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	user, err := v.users.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, fmt.Errorf("%w: this form is for the %s role", domain.ErrForbidden, role)
	}
	return user, nil
}

// existing returns the already-stored record when the user has one, so
// repeat submissions short-circuit before any validation or upload.
func (v *vettingService) existing(userID uint) (*dto.VettingResponse, error) {
	rec, err := v.repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.VettingResponse{Message: msgAlreadyCompleted, Data: rec}, nil
}

func (v *vettingService) uploadAll(ctx context.Context, role domain.Role, files []dto.FormFile) (map[string][]domain.FileRef, error) {
	folder := fmt.Sprintf("vetting/%s", role)
	refs := map[string][]domain.FileRef{}
	for _, f := range files {
		ref, err := v.files.Store(ctx, folder, f.Filename, f.ContentType, f.Bytes)
		if err != nil {
			return nil, err
		}
		refs[f.Field] = append(refs[f.Field], ref)
	}
	return refs, nil
}

func one(refs map[string][]domain.FileRef, field string) *domain.FileRef {
	if got := refs[field]; len(got) > 0 {
		return &got[0]
	}
	return nil
}

func (v *vettingService) persist(user *domain.User, role domain.Role, form any) (*dto.VettingResponse, error) {
	raw, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}

	rec := &domain.VettingRecord{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         role,
		ReviewStatus: domain.ReviewStatusHold,
		Payload:      domain.JSONPayload(raw),
	}

	stored, created, err := v.repo.CreateIfAbsent(rec)
	if err != nil {
		return nil, err
	}

	msg := msgAlreadyCompleted
	if created {
		msg = msgRegistrationCompleted
		if v.producer != nil {
			payload := fmt.Sprintf(`{"user_id":%d,"role":"%s"}`, user.ID, role)
			if err := v.producer.PublishMessage([]byte("vetting.submitted"), []byte(payload)); err != nil {
				log.Printf("publish vetting.submitted failed: %v", err)
			}
		}
	}
	return &dto.VettingResponse{Message: msg, Data: stored}, nil
}

func (v *vettingService) SubmitParticipant(ctx context.Context, userID uint, input dto.ParticipantVettingRequest) (*dto.VettingResponse, error) {
	user, err := v.applicant(userID, domain.RoleParticipant)
	if err != nil {
		return nil, err
	}
	if resp, err := v.existing(userID); err != nil || resp != nil {
		return resp, err
	}
	if err := validateParticipant(&input); err != nil {
		return nil, err
	}

	form := domain.ParticipantForm{
		InterestAreas:       input.InterestAreas,
		Commitments:         input.Commitments,
		Goals:               input.Goals,
		CodeOfParticipation: input.CodeOfParticipation,
	}
	return v.persist(user, domain.RoleParticipant, form)
}

func (v *vettingService) SubmitDoctor(ctx context.Context, userID uint, input dto.DoctorVettingRequest, files []dto.FormFile) (*dto.VettingResponse, error) {
	user, err := v.applicant(userID, domain.RoleDoctor)
	if err != nil {
		return nil, err
	}
	if resp, err := v.existing(userID); err != nil || resp != nil {
		return resp, err
	}
	if err := validateDoctor(&input); err != nil {
		return nil, err
	}
	if err := checkFiles(doctorFileSlots, files); err != nil {
		return nil, err
	}

	refs, err := v.uploadAll(ctx, domain.RoleDoctor, files)
	if err != nil {
		return nil, err
	}

	compliance := domain.DoctorCompliance{
		HipaaAcknowledged: input.HipaaAcknowledged,
		BusinessLicense:   one(refs, "businessLicense"),
		W9:                one(refs, "w9"),
		Logo:              one(refs, "logo"),
		Headshot:          one(refs, "headshot"),
	}
	if input.HipaaAcknowledged {
		now := time.Now()
		compliance.HipaaAcknowledgedAt = &now
	}

	form := domain.DoctorForm{
		ClinicName:           input.ClinicName,
		PracticeAddress:      input.PracticeAddress,
		Website:              input.Website,
		SocialLinks:          input.SocialLinks,
		Compliance:           compliance,
		ParticipationOptions: input.ParticipationOptions,
		AlignmentImpact: domain.AlignmentImpact{
			PromoteEngagement: input.PromoteEngagement,
			MeaningfulCauses:  input.MeaningfulCauses,
		},
		CampaignFit: input.CampaignFit,
	}
	return v.persist(user, domain.RoleDoctor, form)
}

func (v *vettingService) SubmitSupplier(ctx context.Context, userID uint, input dto.SupplierVettingRequest, files []dto.FormFile) (*dto.VettingResponse, error) {
	user, err := v.applicant(userID, domain.RoleSupplier)
	if err != nil {
		return nil, err
	}
	if resp, err := v.existing(userID); err != nil || resp != nil {
		return resp, err
	}
	if err := validateSupplier(&input); err != nil {
		return nil, err
	}
	if err := checkFiles(supplierFileSlots, files); err != nil {
		return nil, err
	}

	refs, err := v.uploadAll(ctx, domain.RoleSupplier, files)
	if err != nil {
		return nil, err
	}

	form := domain.SupplierForm{
		BusinessName:      input.BusinessName,
		BusinessStructure: input.BusinessStructure,
		ContactName:       input.ContactName,
		Phone:             input.Phone,
		SocialLinks:       input.SocialLinks,
		TaxID:             input.TaxID,
		SupplierCategory:  input.SupplierCategory,
		Compliance: domain.SupplierCompliance{
			BusinessLicense:         one(refs, "businessLicense"),
			W9:                      one(refs, "w9"),
			SupplierDiversityStatus: one(refs, "supplierDiversityStatus"),
		},
		MembershipParticipation: input.MembershipParticipation,
		ServiceOverview: domain.ServiceOverview{
			ProductCatalog:        one(refs, "productCatalog"),
			PricingTiers:          one(refs, "pricingTiers"),
			MOQ:                   one(refs, "MOQ"),
			Warranty:              one(refs, "warranty"),
			DistributorAgreements: one(refs, "distributorAgreements"),
		},
		Wellness:          input.Wellness,
		Interest:          input.Interest,
		NonProfitInterest: input.NonProfitInterest,

		CommunityImpactRebate:           input.CommunityImpactRebate,
		PerformanceAccountability:       input.PerformanceAccountability,
		MedwellPartnership:              input.MedwellPartnership,
		AssetsSupply:                    input.AssetsSupply,
		MembershipRevokeAcknowledgement: input.MembershipRevokeAcknowledgement,
	}
	return v.persist(user, domain.RoleSupplier, form)
}

func (v *vettingService) SubmitSponsor(ctx context.Context, userID uint, input dto.SponsorVettingRequest, files []dto.FormFile) (*dto.VettingResponse, error) {
	user, err := v.applicant(userID, domain.RoleSponsor)
	if err != nil {
		return nil, err
	}
	if resp, err := v.existing(userID); err != nil || resp != nil {
		return resp, err
	}
	if err := validateSponsor(&input); err != nil {
		return nil, err
	}
	if err := checkFiles(sponsorFileSlots, files); err != nil {
		return nil, err
	}

	refs, err := v.uploadAll(ctx, domain.RoleSponsor, files)
	if err != nil {
		return nil, err
	}

	form := domain.SponsorForm{
		BusinessName:    input.BusinessName,
		EntityType:      input.EntityType,
		EntityTypeOther: input.EntityTypeOther,
		ContactName:     input.ContactName,
		ContactTitle:    input.ContactTitle,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		SocialLinks:     input.SocialLinks,

		MissionValues:  input.MissionValues,
		CsrEsgOverview: input.CsrEsgOverview,

		BrandLegal: domain.BrandLegal{
			Logo:              one(refs, "logo"),
			StyleGuide:        one(refs, "styleGuide"),
			MarketingLanguage: one(refs, "marketingLanguage"),
			W9OrReceipt:       one(refs, "w9OrReceipt"),
			LiaisonDoc:        one(refs, "liaisonDoc"),
		},

		SponsorshipGoals:    input.SponsorshipGoals,
		FundingModels:       input.FundingModels,
		FundingOther:        input.FundingOther,
		ActivationReadiness: input.ActivationReadiness,
		CauseAlignment:      input.CauseAlignment,
		CauseOther:          input.CauseOther,

		AgreeImpactProgram:   input.AgreeImpactProgram,
		AgreePublicListing:   input.AgreePublicListing,
		AcknowledgeCommunity: input.AcknowledgeCommunity,
		AgreeQuarterlyReport: input.AgreeQuarterlyReport,
		AgreeParticipate12mo: input.AgreeParticipate12mo,
	}
	return v.persist(user, domain.RoleSponsor, form)
}

func (v *vettingService) SubmitNonProfit(ctx context.Context, userID uint, input dto.NonProfitVettingRequest, files []dto.FormFile) (*dto.VettingResponse, error) {
	user, err := v.applicant(userID, domain.RoleNonProfit)
	if err != nil {
		return nil, err
	}
	if resp, err := v.existing(userID); err != nil || resp != nil {
		return resp, err
	}
	if err := validateNonProfit(&input); err != nil {
		return nil, err
	}
	if err := checkFiles(nonProfitFileSlots, files); err != nil {
		return nil, err
	}

	refs, err := v.uploadAll(ctx, domain.RoleNonProfit, files)
	if err != nil {
		return nil, err
	}

	form := domain.NonProfitForm{
		LegalName:    input.LegalName,
		StateIncorp:  input.StateIncorp,
		ContactName:  input.ContactName,
		ContactTitle: input.ContactTitle,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		SocialLinks:  input.SocialLinks,

		MissionStatement: input.MissionStatement,
		ProgramsSummary:  input.ProgramsSummary,

		EligibilityDocs: domain.EligibilityDocs{
			DeterminationLetter: one(refs, "determinationLetter"),
			TaxExemptLetter:     one(refs, "taxExemptLetter"),
			GoodStandingCert:    one(refs, "goodStandingCert"),
			ImpactSummary:       one(refs, "impactSummary"),
			MediaKit:            refs["mediaKit"],
		},

		ParticipationReadiness: input.ParticipationReadiness,

		AlignWithMedwell: input.AlignWithMedwell,
		PastCampaign:     input.PastCampaign,
		DesiredImpact:    input.DesiredImpact,

		ProgramFit: input.ProgramFit,

		AgreeMonthlyOrQuarterly: input.AgreeMonthlyOrQuarterly,
		UnderstandPerformance:   input.UnderstandPerformance,
		AgreeCoMarketing:        input.AgreeCoMarketing,
		AcknowledgeOngoing:      input.AcknowledgeOngoing,
		AgreeShareMetrics:       input.AgreeShareMetrics,
	}
	return v.persist(user, domain.RoleNonProfit, form)
}

func (v *vettingService) GetMine(userID uint) (*domain.VettingRecord, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	return v.repo.FindByUserID(userID)
}
