package model

// ProcessingStatus reports whether an analysis completed
type ProcessingStatus string

const (
	StatusSuccess ProcessingStatus = "success"
	StatusFailed  ProcessingStatus = "failed"
)

// SectionType identifies a contract section bucket
type SectionType string

const (
	SectionPaymentTerms         SectionType = "payment_terms"
	SectionTerminationClauses   SectionType = "termination_clauses"
	SectionLiabilityLimitations SectionType = "liability_limitations"
	SectionWarrantyDisclaimers  SectionType = "warranty_disclaimers"
	SectionConfidentiality      SectionType = "confidentiality"
	SectionIntellectualProperty SectionType = "intellectual_property"
	SectionDisputeResolution    SectionType = "dispute_resolution"
	SectionGeneralTerms         SectionType = "general_terms"
)

// SectionOrder is the fixed enumeration order used for classification
// tie-breaks and for rendering. general_terms is the default bucket and
// always comes last.
var SectionOrder = []SectionType{
	SectionPaymentTerms,
	SectionTerminationClauses,
	SectionLiabilityLimitations,
	SectionWarrantyDisclaimers,
	SectionConfidentiality,
	SectionIntellectualProperty,
	SectionDisputeResolution,
	SectionGeneralTerms,
}

// KeyTerm is a glossary term found in the document with its plain-English
// definition and the context window around its first occurrence
type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Context    string `json:"context"`
}

// RiskLevel buckets the overall risk score
type RiskLevel string

const (
	RiskHigh    RiskLevel = "HIGH"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskLow     RiskLevel = "LOW"
	RiskVeryLow RiskLevel = "VERY LOW"
)

// RiskFactor is one matched risk indicator with its point impact and context
type RiskFactor struct {
	Factor  string `json:"factor"`
	Impact  string `json:"impact"`
	Context string `json:"context"`
}

// RiskAssessment is the weighted keyword risk score for a document.
// RiskScore is clamped to >= 0 for reporting; the level thresholds are
// applied to the raw, unclamped score before clamping.
type RiskAssessment struct {
	RiskLevel        RiskLevel    `json:"risk_level"`
	RiskScore        int          `json:"risk_score"`
	Reasons          []string     `json:"reasons"`
	DetailedAnalysis []RiskFactor `json:"detailed_analysis"`
}

// Obligations holds obligation sentences grouped into non-exclusive
// categories. Every category is always populated: empty categories get a
// single placeholder entry.
type Obligations struct {
	All         []string `json:"all_obligations"`
	Critical    []string `json:"critical_obligations"`
	Payment     []string `json:"payment_obligations"`
	Performance []string `json:"performance_obligations"`
}

// TimelineEvent pairs an event trigger with a nearby date literal
type TimelineEvent struct {
	Date  string `json:"date"`
	Event string `json:"event"`
	Type  string `json:"type"` // always "milestone"
}

// FinancialTerms is the extracted financial profile of a document.
// Every list is de-duplicated in first-seen order and capped at 10.
type FinancialTerms struct {
	Amounts         []string `json:"amounts"`
	PaymentSchedule []string `json:"payment_schedule"`
	Penalties       []string `json:"penalties"`
	InterestRates   []string `json:"interest_rates"`
	Currencies      []string `json:"currencies"`
	PaymentMethods  []string `json:"payment_methods"`
}

// DetailedSummary is the narrative portion of an analysis
type DetailedSummary struct {
	ExecutiveSummary string          `json:"executive_summary"`
	KeyPoints        []string        `json:"key_points"`
	FinancialTerms   FinancialTerms  `json:"financial_terms"`
	Timeline         []TimelineEvent `json:"timeline"`
	ContractType     string          `json:"contract_type"`
	MainSubject      string          `json:"main_subject"`
}

// AnalysisResult is the complete structured analysis of one document.
// Built once per request, never mutated after construction.
type AnalysisResult struct {
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	Error            string           `json:"error,omitempty"`

	DetailedSummary DetailedSummary          `json:"detailed_summary"`
	KeyTerms        []KeyTerm                `json:"key_terms"`
	Obligations     Obligations              `json:"obligations"`
	RiskAssessment  RiskAssessment           `json:"risk_assessment"`
	Sections        map[SectionType][]string `json:"sections"`
	Entities        map[string][]string      `json:"entities"`
	SimplifiedText  string                   `json:"simplified_text"`
}

// FailedResult builds a failed analysis result with a descriptive message.
// Callers must check ProcessingStatus rather than relying on transport
// errors.
func FailedResult(msg string) *AnalysisResult {
	return &AnalysisResult{
		ProcessingStatus: StatusFailed,
		Error:            msg,
	}
}
