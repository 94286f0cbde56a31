package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
)

// Structural validation for the role vetting forms. Everything here is
// pure: no file bytes leave the process until a form has passed, which
// keeps the orphaned-blob window as small as it can be without a
// compensating delete.

var einRegex = regexp.MustCompile(`^\d{2}-\d{7}$`)

type fileKind string

const (
	filePDF        fileKind = "pdf"
	fileImage      fileKind = "image"
	filePDFOrImage fileKind = "pdfOrImage"
)

type fileSlot struct {
	field    string
	kind     fileKind
	required bool
	multi    bool
	maxCount int
}

var doctorFileSlots = []fileSlot{
	{field: "businessLicense", kind: filePDF, required: true},
	{field: "w9", kind: filePDF, required: true},
	{field: "logo", kind: fileImage},
	{field: "headshot", kind: fileImage},
}

var supplierFileSlots = []fileSlot{
	{field: "businessLicense", kind: filePDF, required: true},
	{field: "w9", kind: filePDF, required: true},
	{field: "supplierDiversityStatus", kind: filePDF},
	{field: "productCatalog", kind: filePDF},
	{field: "pricingTiers", kind: filePDF},
	{field: "MOQ", kind: filePDF},
	{field: "warranty", kind: filePDF},
	{field: "distributorAgreements", kind: filePDF},
}

var sponsorFileSlots = []fileSlot{
	{field: "logo", kind: fileImage},
	{field: "styleGuide", kind: filePDF},
	{field: "marketingLanguage", kind: filePDF},
	{field: "w9OrReceipt", kind: filePDF, required: true},
	{field: "liaisonDoc", kind: filePDF},
}

var nonProfitFileSlots = []fileSlot{
	{field: "determinationLetter", kind: filePDFOrImage, required: true},
	{field: "taxExemptLetter", kind: filePDFOrImage, required: true},
	{field: "goodStandingCert", kind: filePDFOrImage},
	{field: "impactSummary", kind: filePDF},
	{field: "mediaKit", kind: filePDFOrImage, multi: true, maxCount: 5},
}

func matchesKind(kind fileKind, contentType string) bool {
	switch kind {
	case filePDF:
		return contentType == "application/pdf"
	case fileImage:
		return strings.HasPrefix(contentType, "image/")
	case filePDFOrImage:
		return contentType == "application/pdf" || strings.HasPrefix(contentType, "image/")
	}
	return false
}

func kindMessage(kind fileKind) string {
	switch kind {
	case filePDF:
		return "must be a PDF"
	case fileImage:
		return "must be an image"
	default:
		return "must be a PDF or image"
	}
}

// checkFiles verifies required slots are present and every present file
// matches its slot's allowed content types.
func checkFiles(slots []fileSlot, files []dto.FormFile) error {
	byField := map[string][]dto.FormFile{}
	for _, f := range files {
		byField[f.Field] = append(byField[f.Field], f)
	}

	for _, slot := range slots {
		got := byField[slot.field]
		if len(got) == 0 {
			if slot.required {
				return domain.NewValidationError(slot.field, "is required")
			}
			continue
		}
		if !slot.multi && len(got) > 1 {
			return domain.NewValidationError(slot.field, "accepts a single file")
		}
		if slot.multi && slot.maxCount > 0 && len(got) > slot.maxCount {
			return domain.NewValidationError(slot.field, fmt.Sprintf("accepts at most %d files", slot.maxCount))
		}
		for _, f := range got {
			if len(f.Bytes) == 0 || strings.TrimSpace(f.Filename) == "" {
				return domain.NewValidationError(slot.field, "file is empty")
			}
			if !matchesKind(slot.kind, f.ContentType) {
				return domain.NewValidationError(slot.field, kindMessage(slot.kind))
			}
		}
	}
	return nil
}

func uniqStrings(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func checkEnum(field string, values, allowed []string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	for _, v := range values {
		if _, ok := set[v]; !ok {
			return domain.NewValidationError(field, fmt.Sprintf("%q is not an allowed option", v))
		}
	}
	return nil
}

func checkMin(field string, values []string, min int) error {
	if len(values) < min {
		return domain.NewValidationError(field, fmt.Sprintf("please select at least %d options", min))
	}
	return nil
}

func checkRequired(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(field, "is required")
	}
	return checkMax(field, value, max)
}

func checkMax(field, value string, max int) error {
	if len(value) > max {
		return domain.NewValidationError(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

func checkURLs(field string, links []string) error {
	for _, link := range links {
		u, err := url.Parse(strings.TrimSpace(link))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return domain.NewValidationError(field, "each link must be a valid URL with protocol (e.g., https://...)")
		}
	}
	return nil
}

func checkAgreements(agreements map[string]bool) error {
	for field, ok := range agreements {
		if !ok {
			return domain.NewValidationError(field, "must be accepted")
		}
	}
	return nil
}

/* =========================
   Per-role form checks
========================= */

func validateParticipant(input *dto.ParticipantVettingRequest) error {
	input.InterestAreas = uniqStrings(input.InterestAreas)
	input.Commitments = uniqStrings(input.Commitments)

	if err := checkEnum("interest_areas", input.InterestAreas, domain.InterestAreas); err != nil {
		return err
	}
	if err := checkEnum("commitments", input.Commitments, domain.CommitmentOptions); err != nil {
		return err
	}
	if err := checkMin("commitments", input.Commitments, 5); err != nil {
		return err
	}
	if err := checkMax("goals.causePreference", input.Goals.CausePreference, 2000); err != nil {
		return err
	}
	if err := checkMax("goals.activityPreference", input.Goals.ActivityPreference, 2000); err != nil {
		return err
	}
	code := input.CodeOfParticipation
	return checkAgreements(map[string]bool{
		"codeOfParticipation.communityPositive":    code.CommunityPositive,
		"codeOfParticipation.respectfulInclusive":  code.RespectfulInclusive,
		"codeOfParticipation.rewardsUnderstanding": code.RewardsUnderstanding,
		"codeOfParticipation.followGuidelines":     code.FollowGuidelines,
		"codeOfParticipation.committedToWellness":  code.CommittedToWellness,
		"codeOfParticipation.guardianApproval":     code.GuardianApproval,
	})
}

func validateDoctor(input *dto.DoctorVettingRequest) error {
	input.SocialLinks = uniqStrings(input.SocialLinks)
	input.ParticipationOptions = uniqStrings(input.ParticipationOptions)
	input.CampaignFit = uniqStrings(input.CampaignFit)

	if err := checkRequired("clinicName", input.ClinicName, 120); err != nil {
		return err
	}
	if err := checkRequired("practiceAddress", input.PracticeAddress, 300); err != nil {
		return err
	}
	if input.Website != "" {
		if err := checkURLs("website", []string{input.Website}); err != nil {
			return err
		}
	}
	if err := checkURLs("socialLinks", input.SocialLinks); err != nil {
		return err
	}
	if err := checkEnum("participationOptions", input.ParticipationOptions, domain.DoctorParticipationOptions); err != nil {
		return err
	}
	if err := checkMin("participationOptions", input.ParticipationOptions, 5); err != nil {
		return err
	}
	if err := checkRequired("alignmentImpact.promoteEngagement", input.PromoteEngagement, 2000); err != nil {
		return err
	}
	return checkRequired("alignmentImpact.meaningfulCauses", input.MeaningfulCauses, 2000)
}

func validateSupplier(input *dto.SupplierVettingRequest) error {
	input.SocialLinks = uniqStrings(input.SocialLinks)
	input.SupplierCategory = uniqStrings(input.SupplierCategory)
	input.MembershipParticipation = uniqStrings(input.MembershipParticipation)

	if err := checkRequired("businessName", input.BusinessName, 120); err != nil {
		return err
	}
	if err := checkRequired("businessStructure", input.BusinessStructure, 120); err != nil {
		return err
	}
	if err := checkEnum("businessStructure", []string{input.BusinessStructure}, domain.BusinessStructures); err != nil {
		return err
	}
	if err := checkRequired("contactName", input.ContactName, 120); err != nil {
		return err
	}
	if err := checkRequired("phone", input.Phone, 25); err != nil {
		return err
	}
	if err := checkURLs("socialLinks", input.SocialLinks); err != nil {
		return err
	}
	if !einRegex.MatchString(strings.TrimSpace(input.TaxID)) {
		return domain.NewValidationError("taxID", "EIN must match NN-NNNNNNN format")
	}
	if err := checkEnum("supplierCategory", input.SupplierCategory, domain.SupplierCategories); err != nil {
		return err
	}
	if err := checkEnum("MembershipParticipation", input.MembershipParticipation, domain.MembershipParticipationOptions); err != nil {
		return err
	}
	if err := checkMin("MembershipParticipation", input.MembershipParticipation, 5); err != nil {
		return err
	}
	if err := checkRequired("wellness", input.Wellness, 2000); err != nil {
		return err
	}
	if err := checkRequired("interest", input.Interest, 2000); err != nil {
		return err
	}
	if err := checkMax("nonProfitInterest", input.NonProfitInterest, 300); err != nil {
		return err
	}
	return checkAgreements(map[string]bool{
		"communityImpactRebate":           input.CommunityImpactRebate,
		"performanceAccountability":       input.PerformanceAccountability,
		"medwellPartnership":              input.MedwellPartnership,
		"assetsSupply":                    input.AssetsSupply,
		"membershipRevokeAcknowledgement": input.MembershipRevokeAcknowledgement,
	})
}

func validateSponsor(input *dto.SponsorVettingRequest) error {
	input.SocialLinks = uniqStrings(input.SocialLinks)
	input.SponsorshipGoals = uniqStrings(input.SponsorshipGoals)
	input.FundingModels = uniqStrings(input.FundingModels)
	input.ActivationReadiness = uniqStrings(input.ActivationReadiness)
	input.CauseAlignment = uniqStrings(input.CauseAlignment)

	if err := checkRequired("businessName", input.BusinessName, 120); err != nil {
		return err
	}
	if err := checkEnum("entityType", []string{input.EntityType}, domain.EntityTypes); err != nil {
		return err
	}
	if err := checkMax("entityTypeOther", input.EntityTypeOther, 120); err != nil {
		return err
	}
	if err := checkRequired("contactName", input.ContactName, 120); err != nil {
		return err
	}
	if err := checkMax("contactTitle", input.ContactTitle, 120); err != nil {
		return err
	}
	if err := checkRequired("contactEmail", input.ContactEmail, 120); err != nil {
		return err
	}
	if !strings.Contains(input.ContactEmail, "@") {
		return domain.NewValidationError("contactEmail", "is invalid")
	}
	if err := checkRequired("contactPhone", input.ContactPhone, 30); err != nil {
		return err
	}
	if err := checkURLs("socialLinks", input.SocialLinks); err != nil {
		return err
	}
	if err := checkMax("missionValues", input.MissionValues, 2000); err != nil {
		return err
	}
	if err := checkMax("csrEsgOverview", input.CsrEsgOverview, 2000); err != nil {
		return err
	}
	if err := checkEnum("sponsorshipGoals", input.SponsorshipGoals, domain.SponsorshipGoals); err != nil {
		return err
	}
	if err := checkEnum("fundingModels", input.FundingModels, domain.FundingModels); err != nil {
		return err
	}
	if err := checkMax("fundingOther", input.FundingOther, 200); err != nil {
		return err
	}
	if err := checkEnum("activationReadiness", input.ActivationReadiness, domain.ActivationReadinessOptions); err != nil {
		return err
	}
	if err := checkEnum("causeAlignment", input.CauseAlignment, domain.CauseAreas); err != nil {
		return err
	}
	if err := checkMax("causeOther", input.CauseOther, 200); err != nil {
		return err
	}
	return checkAgreements(map[string]bool{
		"agreeImpactProgram":   input.AgreeImpactProgram,
		"agreePublicListing":   input.AgreePublicListing,
		"acknowledgeCommunity": input.AcknowledgeCommunity,
		"agreeQuarterlyReport": input.AgreeQuarterlyReport,
		"agreeParticipate12mo": input.AgreeParticipate12mo,
	})
}

func validateNonProfit(input *dto.NonProfitVettingRequest) error {
	input.SocialLinks = uniqStrings(input.SocialLinks)
	input.ParticipationReadiness = uniqStrings(input.ParticipationReadiness)
	input.ProgramFit = uniqStrings(input.ProgramFit)

	if err := checkRequired("legalName", input.LegalName, 160); err != nil {
		return err
	}
	if err := checkRequired("stateIncorp", input.StateIncorp, 80); err != nil {
		return err
	}
	if err := checkRequired("contactName", input.ContactName, 120); err != nil {
		return err
	}
	if err := checkMax("contactTitle", input.ContactTitle, 120); err != nil {
		return err
	}
	if err := checkRequired("contactPhone", input.ContactPhone, 30); err != nil {
		return err
	}
	if err := checkRequired("contactEmail", input.ContactEmail, 160); err != nil {
		return err
	}
	if !strings.Contains(input.ContactEmail, "@") {
		return domain.NewValidationError("contactEmail", "is invalid")
	}
	if err := checkURLs("socialLinks", input.SocialLinks); err != nil {
		return err
	}
	if err := checkRequired("missionStatement", input.MissionStatement, 2000); err != nil {
		return err
	}
	if err := checkRequired("programsSummary", input.ProgramsSummary, 2000); err != nil {
		return err
	}
	if err := checkEnum("participationReadiness", input.ParticipationReadiness, domain.ParticipationReadinessOptions); err != nil {
		return err
	}
	if err := checkMin("participationReadiness", input.ParticipationReadiness, 5); err != nil {
		return err
	}
	if err := checkRequired("alignWithMedwell", input.AlignWithMedwell, 2000); err != nil {
		return err
	}
	if err := checkRequired("pastCampaign", input.PastCampaign, 2000); err != nil {
		return err
	}
	if err := checkRequired("desiredImpact", input.DesiredImpact, 2000); err != nil {
		return err
	}
	if err := checkEnum("programFit", input.ProgramFit, domain.AwarenessCampaigns); err != nil {
		return err
	}
	return checkAgreements(map[string]bool{
		"agreeMonthlyOrQuarterly": input.AgreeMonthlyOrQuarterly,
		"understandPerformance":   input.UnderstandPerformance,
		"agreeCoMarketing":        input.AgreeCoMarketing,
		"acknowledgeOngoing":      input.AcknowledgeOngoing,
		"agreeShareMetrics":       input.AgreeShareMetrics,
	})
}
