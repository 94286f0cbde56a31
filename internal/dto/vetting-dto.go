package dto

import "github.com/medwellsolutions/Medwell-Backend/internal/domain"

// FormFile is one uploaded multipart file, already read into memory.
// Field names the form slot it was posted under.
type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Bytes       []byte
}

type ParticipantVettingRequest struct {
	InterestAreas       []string                   `json:"interest_areas"`
	Commitments         []string                   `json:"commitments"`
	Goals               domain.ParticipantGoals    `json:"goals"`
	CodeOfParticipation domain.CodeOfParticipation `json:"codeOfParticipation"`
}

type DoctorVettingRequest struct {
	ClinicName           string
	PracticeAddress      string
	Website              string
	SocialLinks          []string
	HipaaAcknowledged    bool
	ParticipationOptions []string
	PromoteEngagement    string
	MeaningfulCauses     string
	CampaignFit          []string
}

type SupplierVettingRequest struct {
	BusinessName      string
	BusinessStructure string
	ContactName       string
	Phone             string
	SocialLinks       []string
	TaxID             string
	SupplierCategory  []string

	MembershipParticipation []string

	Wellness          string
	Interest          string
	NonProfitInterest string

	CommunityImpactRebate           bool
	PerformanceAccountability       bool
	MedwellPartnership              bool
	AssetsSupply                    bool
	MembershipRevokeAcknowledgement bool
}

type SponsorVettingRequest struct {
	BusinessName    string
	EntityType      string
	EntityTypeOther string
	ContactName     string
	ContactTitle    string
	ContactEmail    string
	ContactPhone    string
	SocialLinks     []string

	MissionValues  string
	CsrEsgOverview string

	SponsorshipGoals    []string
	FundingModels       []string
	FundingOther        string
	ActivationReadiness []string
	CauseAlignment      []string
	CauseOther          string

	AgreeImpactProgram   bool
	AgreePublicListing   bool
	AcknowledgeCommunity bool
	AgreeQuarterlyReport bool
	AgreeParticipate12mo bool
}

type NonProfitVettingRequest struct {
	LegalName    string
	StateIncorp  string
	ContactName  string
	ContactTitle string
	ContactPhone string
	ContactEmail string
	SocialLinks  []string

	MissionStatement string
	ProgramsSummary  string

	ParticipationReadiness []string

	AlignWithMedwell string
	PastCampaign     string
	DesiredImpact    string

	ProgramFit []string

	AgreeMonthlyOrQuarterly bool
	UnderstandPerformance   bool
	AgreeCoMarketing        bool
	AcknowledgeOngoing      bool
	AgreeShareMetrics       bool
}

type VettingResponse struct {
	Message string                `json:"message"`
	Data    *domain.VettingRecord `json:"data"`
}
