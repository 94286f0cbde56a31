package domain

import "time"

// Closed option lists for the role vetting forms. These are business
// content shown on the forms, so the wording (including spacing) must
// stay exactly as published.

var InterestAreas = []string{
	"Volunteering for health-related nonprofits",
	"Participating in 5K walks, wellness events, or virtual challenges",
	"Learning about self-care, nutrition, or health topics",
	"Sharing my story or journey (video, photo, post, etc.)",
	"Hosting or co-hosting a livestream or podcast",
	"Creating or sharing awareness content on social media",
	"Supporting causes like mental health, cancer, or veterans",
	"Helping spread the word about Medwell campaigns",
	"Earning points to assign to a cause or nonprofit I care about",
}

var CommitmentOptions = []string{
	"Complete a short wellness self-assessment ",
	"Participate in a 30–60 min workshop, livestream, or Kahoot ",
	"Submit a user-generated post (video, image, quote, story) ",
	"Refer 2–3 friends to the platform ",
	"Assign points to a nonprofit or cause ",
	"Join a themed month campaign (e.g. Autism, Breast Cancer) ",
	"Volunteer 1–3 hours for a community or awareness event ",
	"Attend a podcast, reel recording, or livestream as a guest or viewer ",
	"Take part in a campus or virtual “Wheel of Impact” game ",
	"Share a testimonial about your experience ",
}

var DoctorParticipationOptions = []string{
	"Host or co-host a patient wellness workshop or livestream",
	"Record a short educational video or podcast segment",
	"Review health literacy content for medical accuracy",
	"Offer discounted wellness screenings tied to campaigns",
	"Refer patients to cause-aligned community programs",
	"Speak at a campus or community awareness event",
	"Contribute a monthly wellness tip or article",
	"Join a themed awareness month as a featured provider",
	"Mentor student participants on health careers",
}

var MembershipParticipationOptions = []string{
	"Agree to contribute a % community impact fee (donations toward nonprofits)",
	"Provide transparent pricing and competitive bids via Medwell’s platform",
	"Offer volume or performance-based rebate structures",
	"Participate in co-branded marketing campaigns (flyers, livestreams, cause activations)",
	"Sponsor or match donations for monthly awareness campaigns",
	"Submit product education materials for workshops or student learning",
	"Provide quarterly sales/performance reports for impact tracking",
	"Join at least one cause-related initiative (e.g., Autism, Breast Cancer) annually",
}

var SupplierCategories = []string{
	"Pharmaceuticals", "Medical Devices", "Diagnostics", "Wellness",
	"Nutrition", "HealthTech", "Services", "Other",
}

var BusinessStructures = []string{
	"LLC", "C-Corp", "S-Corp", "Sole Proprietor", "Partnership", "Nonprofit", "Other",
}

var EntityTypes = []string{
	"Corporation", "Small Business", "Foundation", "B Corp", "Other",
}

var SponsorshipGoals = []string{
	"Donate funds tied to point-based activities",
	"Match points earned by participants with monetary donations",
	"Offer in-kind rewards (gift cards, merchandise, experiences)",
	"Sponsor an awareness month (e.g. Autism, Stress, Breast Cancer)",
	"Provide scholarship or grant funds for student participants",
	"Engage in co-branded content (podcasts, livestreams, event booths)",
	"Sponsor a challenge (e.g. 5K, Kahoot, trivia, Wheel of Impact)",
	"Contribute toward performance-based community rebates",
	"Provide volunteers or ambassadors from your workforce",
}

var FundingModels = []string{
	"Monthly recurring donation",
	"Match-based donations",
	"Awareness campaign sponsorship (flat-rate or tiered)",
	"Product placement or in-kind donation value",
	"One-time scholarship or nonprofit grant funding",
	"Other",
}

var ActivationReadinessOptions = []string{
	"Approve use of your logo for community marketing",
	"Submit a company rep for a podcast or livestream",
	"Attend or co-sponsor a community or campus event",
	"Review quarterly PACE impact reports",
	"Promote program internally via email/newsletter",
	"Provide a 60–90 second brand video or testimonial",
	"Engage staff in volunteer or “Assign It Forward” team day",
	"Join monthly cause-aligned initiatives as featured sponsor",
	"Offer special rewards or discounts tied to point campaigns",
}

var CauseAreas = []string{
	"Mental Health Awareness",
	"Veterans & First Responders",
	"Autism & Neurodiversity",
	"Cancer (Breast, Prostate, Pediatric, etc.)",
	"Student Wellness & College Health",
	"Women’s Health",
	"Diabetes & Heart Disease",
	"Underserved Communities",
	"Health Literacy & Access",
	"Other",
}

var ParticipationReadinessOptions = []string{
	"Host or co-host a health literacy workshop or virtual discussion",
	"Promote health awareness content or wellness challenges",
	"Accept points converted into donations or grants",
	"Assign a representative to participate in quarterly PACE review",
	"Submit a success story, testimonial, or video for community visibility",
	"Promote the program through your newsletter, email list, or social media",
	"Engage in student org collaborations or service hour tracking",
	"Share flyers or co-brand campaign materials provided by Medwell",
	"Co-develop cause-aligned Kahoot games or podcast topics",
	"Provide performance metrics or beneficiary stories upon request",
	"Other",
}

var AwarenessCampaigns = []string{
	"Mental Health / Stress Awareness",
	"Veterans & First Responders",
	"Autism & Neurodiversity",
	"Cancer Support (e.g., Breast, Prostate, Pediatric)",
	"Nutrition, Fitness & Healthy Living",
	"Disability Inclusion",
	"Youth & Education",
	"Caregivers & Aging Adults",
	"Health Equity & Access",
	"Other",
}

/* =========================
   Variant payloads
========================= */

type ParticipantGoals struct {
	CausePreference    string `json:"causePreference,omitempty"`
	ActivityPreference string `json:"activityPreference,omitempty"`
}

type CodeOfParticipation struct {
	CommunityPositive    bool `json:"communityPositive"`
	RespectfulInclusive  bool `json:"respectfulInclusive"`
	RewardsUnderstanding bool `json:"rewardsUnderstanding"`
	FollowGuidelines     bool `json:"followGuidelines"`
	CommittedToWellness  bool `json:"committedToWellness"`
	GuardianApproval     bool `json:"guardianApproval"`
}

type ParticipantForm struct {
	InterestAreas       []string            `json:"interest_areas"`
	Commitments         []string            `json:"commitments"`
	Goals               ParticipantGoals    `json:"goals"`
	CodeOfParticipation CodeOfParticipation `json:"codeOfParticipation"`
}

type DoctorCompliance struct {
	HipaaAcknowledged   bool       `json:"hipaaAcknowledged"`
	HipaaAcknowledgedAt *time.Time `json:"hipaaAcknowledgedAt,omitempty"`
	BusinessLicense     *FileRef   `json:"businessLicense,omitempty"`
	W9                  *FileRef   `json:"w9,omitempty"`
	Logo                *FileRef   `json:"logo,omitempty"`
	Headshot            *FileRef   `json:"headshot,omitempty"`
}

type AlignmentImpact struct {
	PromoteEngagement string `json:"promoteEngagement"`
	MeaningfulCauses  string `json:"meaningfulCauses"`
}

type DoctorForm struct {
	ClinicName           string           `json:"clinicName"`
	PracticeAddress      string           `json:"practiceAddress"`
	Website              string           `json:"website,omitempty"`
	SocialLinks          []string         `json:"socialLinks"`
	Compliance           DoctorCompliance `json:"compliance"`
	ParticipationOptions []string         `json:"participationOptions"`
	AlignmentImpact      AlignmentImpact  `json:"alignmentImpact"`
	CampaignFit          []string         `json:"campaignFit"`
}

type SupplierCompliance struct {
	BusinessLicense         *FileRef `json:"businessLicense,omitempty"`
	W9                      *FileRef `json:"w9,omitempty"`
	SupplierDiversityStatus *FileRef `json:"supplierDiversityStatus,omitempty"`
}

type ServiceOverview struct {
	ProductCatalog        *FileRef `json:"productCatalog,omitempty"`
	PricingTiers          *FileRef `json:"pricingTiers,omitempty"`
	MOQ                   *FileRef `json:"MOQ,omitempty"`
	Warranty              *FileRef `json:"warranty,omitempty"`
	DistributorAgreements *FileRef `json:"distributorAgreements,omitempty"`
}

type SupplierForm struct {
	BusinessName      string             `json:"businessName"`
	BusinessStructure string             `json:"businessStructure"`
	ContactName       string             `json:"contactName"`
	Phone             string             `json:"phone"`
	SocialLinks       []string           `json:"socialLinks"`
	TaxID             string             `json:"taxID"`
	SupplierCategory  []string           `json:"supplierCategory"`
	Compliance        SupplierCompliance `json:"compliance"`

	MembershipParticipation []string        `json:"MembershipParticipation"`
	ServiceOverview         ServiceOverview `json:"serviceOverview"`

	Wellness          string `json:"wellness"`
	Interest          string `json:"interest"`
	NonProfitInterest string `json:"nonProfitInterest,omitempty"`

	CommunityImpactRebate           bool `json:"communityImpactRebate"`
	PerformanceAccountability       bool `json:"performanceAccountability"`
	MedwellPartnership              bool `json:"medwellPartnership"`
	AssetsSupply                    bool `json:"assetsSupply"`
	MembershipRevokeAcknowledgement bool `json:"membershipRevokeAcknowledgement"`
}

type BrandLegal struct {
	Logo              *FileRef `json:"logo,omitempty"`
	StyleGuide        *FileRef `json:"styleGuide,omitempty"`
	MarketingLanguage *FileRef `json:"marketingLanguage,omitempty"`
	W9OrReceipt       *FileRef `json:"w9OrReceipt,omitempty"`
	LiaisonDoc        *FileRef `json:"liaisonDoc,omitempty"`
}

type SponsorForm struct {
	BusinessName    string   `json:"businessName"`
	EntityType      string   `json:"entityType"`
	EntityTypeOther string   `json:"entityTypeOther,omitempty"`
	ContactName     string   `json:"contactName"`
	ContactTitle    string   `json:"contactTitle,omitempty"`
	ContactEmail    string   `json:"contactEmail"`
	ContactPhone    string   `json:"contactPhone"`
	SocialLinks     []string `json:"socialLinks"`

	MissionValues  string `json:"missionValues,omitempty"`
	CsrEsgOverview string `json:"csrEsgOverview,omitempty"`

	BrandLegal BrandLegal `json:"brandLegal"`

	SponsorshipGoals    []string `json:"sponsorshipGoals"`
	FundingModels       []string `json:"fundingModels"`
	FundingOther        string   `json:"fundingOther,omitempty"`
	ActivationReadiness []string `json:"activationReadiness"`
	CauseAlignment      []string `json:"causeAlignment"`
	CauseOther          string   `json:"causeOther,omitempty"`

	AgreeImpactProgram   bool `json:"agreeImpactProgram"`
	AgreePublicListing   bool `json:"agreePublicListing"`
	AcknowledgeCommunity bool `json:"acknowledgeCommunity"`
	AgreeQuarterlyReport bool `json:"agreeQuarterlyReport"`
	AgreeParticipate12mo bool `json:"agreeParticipate12mo"`
}

type EligibilityDocs struct {
	DeterminationLetter *FileRef  `json:"determinationLetter,omitempty"`
	TaxExemptLetter     *FileRef  `json:"taxExemptLetter,omitempty"`
	GoodStandingCert    *FileRef  `json:"goodStandingCert,omitempty"`
	ImpactSummary       *FileRef  `json:"impactSummary,omitempty"`
	MediaKit            []FileRef `json:"mediaKit,omitempty"`
}

type NonProfitForm struct {
	LegalName    string   `json:"legalName"`
	StateIncorp  string   `json:"stateIncorp"`
	ContactName  string   `json:"contactName"`
	ContactTitle string   `json:"contactTitle,omitempty"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail"`
	SocialLinks  []string `json:"socialLinks"`

	MissionStatement string `json:"missionStatement"`
	ProgramsSummary  string `json:"programsSummary"`

	EligibilityDocs EligibilityDocs `json:"eligibilityDocs"`

	ParticipationReadiness []string `json:"participationReadiness"`

	AlignWithMedwell string `json:"alignWithMedwell"`
	PastCampaign     string `json:"pastCampaign"`
	DesiredImpact    string `json:"desiredImpact"`

	ProgramFit []string `json:"programFit"`

	AgreeMonthlyOrQuarterly bool `json:"agreeMonthlyOrQuarterly"`
	UnderstandPerformance   bool `json:"understandPerformance"`
	AgreeCoMarketing        bool `json:"agreeCoMarketing"`
	AcknowledgeOngoing      bool `json:"acknowledgeOngoing"`
	AgreeShareMetrics       bool `json:"agreeShareMetrics"`
}
