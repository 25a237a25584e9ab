// Package readiness scores organizational preparedness for an AI deployment
// across four categories: data, technical, organizational, compliance.
//
// Each category is a weighted checklist normalized to 0–100; the weights of
// every category sum to exactly 100 (INV-8). The overall score is the
// rounded mean of the four (INV-9).
package readiness

import (
	"fmt"
	"math"
)

// DataQuality rates the state of the training/grounding data.
type DataQuality string

const (
	DataQualityHigh   DataQuality = "high"
	DataQualityMedium DataQuality = "medium"
	DataQualityLow    DataQuality = "low"
)

// Level is the overall readiness verdict.
type Level string

const (
	Ready            Level = "ready"
	NeedsPreparation Level = "needs-preparation"
	NotReady         Level = "not-ready"
)

// Inputs is the readiness-stage questionnaire.
type Inputs struct {
	// Data category.
	DataSourcesIdentified bool        `json:"dataSourcesIdentified" yaml:"data_sources_identified"`
	DataAccessible        bool        `json:"dataAccessible" yaml:"data_accessible"`
	PrivacyCleared        bool        `json:"privacyCleared" yaml:"privacy_cleared"`
	DataQuality           DataQuality `json:"dataQuality" yaml:"data_quality"`

	// Technical category.
	MLExperience          bool `json:"mlExperience" yaml:"ml_experience"`
	APIIntegrationDone    bool `json:"apiIntegrationDone" yaml:"api_integration_done"`
	MonitoringInPlace     bool `json:"monitoringInPlace" yaml:"monitoring_in_place"`
	TeamSize              int  `json:"teamSize" yaml:"team_size"`

	// Organizational category.
	ExecutiveSponsor      bool `json:"executiveSponsor" yaml:"executive_sponsor"`
	BudgetApproved        bool `json:"budgetApproved" yaml:"budget_approved"`
	ChangeManagementPlan  bool `json:"changeManagementPlan" yaml:"change_management_plan"`
	TimelineWeeks         int  `json:"timelineWeeks" yaml:"timeline_weeks"`

	// Compliance category.
	GDPRCompliant         bool `json:"gdprCompliant" yaml:"gdpr_compliant"`
	AIActAssessed         bool `json:"aiActAssessed" yaml:"ai_act_assessed"`
	AuditTrail            bool `json:"auditTrail" yaml:"audit_trail"`
	IncidentResponsePlan  bool `json:"incidentResponsePlan" yaml:"incident_response_plan"`
}

// CategoryScores holds the four 0–100 category scores.
type CategoryScores struct {
	Data           int `json:"data" yaml:"data"`
	Technical      int `json:"technical" yaml:"technical"`
	Organizational int `json:"organizational" yaml:"organizational"`
	Compliance     int `json:"compliance" yaml:"compliance"`
}

// Outputs is the readiness assessment.
type Outputs struct {
	CategoryScores          CategoryScores `json:"categoryScores" yaml:"category_scores"`
	OverallScore            int            `json:"overallScore" yaml:"overall_score"`
	ReadinessLevel          Level          `json:"readinessLevel" yaml:"readiness_level"`
	Gaps                    []string       `json:"gaps,omitempty" yaml:"gaps,omitempty"`
	Recommendations         []string       `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	RiskFactors             []string       `json:"riskFactors,omitempty" yaml:"risk_factors,omitempty"`
	EstimatedTimelineWeeks  int            `json:"estimatedTimelineWeeks" yaml:"estimated_timeline_weeks"`
}

// Checklist item weight: every boolean item contributes 25 points within its
// category; the categorical band (quality, team size, timeline) supplies the
// remaining 25 so each category tops out at exactly 100 (INV-8).
const itemWeight = 25

// timelinePenaltyPerGap is the fraction added to the user's timeline per
// identified gap (INV-10).
const timelinePenaltyPerGap = 0.10

// checkItem couples a checklist accessor with its gap action text.
type checkItem struct {
	done bool
	gap  string
}

// Score aggregates the four weighted category checklists into an overall
// readiness assessment. Pure (INV-1); all scores clamped to [0,100] (INV-8).
func Score(in Inputs) Outputs {
	dataItems := []checkItem{
		{in.DataSourcesIdentified, "Identify and document the data sources the system will use"},
		{in.DataAccessible, "Establish technical access to the required data"},
		{in.PrivacyCleared, "Complete a privacy review of the data involved"},
	}
	techItems := []checkItem{
		{in.MLExperience, "Build or hire machine-learning experience on the team"},
		{in.APIIntegrationDone, "Prove out an API integration with the chosen provider"},
		{in.MonitoringInPlace, "Stand up monitoring for model behavior in production"},
	}
	orgItems := []checkItem{
		{in.ExecutiveSponsor, "Secure an executive sponsor for the initiative"},
		{in.BudgetApproved, "Get the implementation budget approved"},
		{in.ChangeManagementPlan, "Write a change-management plan for affected staff"},
	}
	complianceItems := []checkItem{
		{in.GDPRCompliant, "Bring data processing into GDPR compliance"},
		{in.AIActAssessed, "Run an EU AI Act risk assessment for the system"},
		{in.AuditTrail, "Implement an audit trail for automated decisions"},
		{in.IncidentResponsePlan, "Write an incident-response plan covering AI failures"},
	}

	scores := CategoryScores{
		Data:           clamp(itemPoints(dataItems) + qualityPoints(in.DataQuality)),
		Technical:      clamp(itemPoints(techItems) + teamSizePoints(in.TeamSize)),
		Organizational: clamp(itemPoints(orgItems) + timelinePoints(in.TimelineWeeks)),
		Compliance:     clamp(itemPoints(complianceItems)),
	}

	overall := clamp(int(math.Round(float64(scores.Data+scores.Technical+scores.Organizational+scores.Compliance) / 4)))

	var gaps []string
	for _, items := range [][]checkItem{dataItems, techItems, orgItems, complianceItems} {
		for _, it := range items {
			if !it.done {
				gaps = append(gaps, it.gap)
			}
		}
	}

	// Timeline penalty: +10% per gap, rounded up (INV-10).
	estimated := in.TimelineWeeks
	if len(gaps) > 0 {
		estimated = int(math.Ceil(float64(in.TimelineWeeks) * (1 + timelinePenaltyPerGap*float64(len(gaps)))))
	}

	return Outputs{
		CategoryScores:         scores,
		OverallScore:           overall,
		ReadinessLevel:         level(overall),
		Gaps:                   gaps,
		Recommendations:        recommendations(scores),
		RiskFactors:            riskFactors(in, overall, len(gaps)),
		EstimatedTimelineWeeks: estimated,
	}
}

// itemPoints sums the checklist contribution of a category.
func itemPoints(items []checkItem) int {
	pts := 0
	for _, it := range items {
		if it.done {
			pts += itemWeight
		}
	}
	return pts
}

// qualityPoints maps data quality into the data category's 25-point band.
func qualityPoints(q DataQuality) int {
	switch q {
	case DataQualityHigh:
		return 25
	case DataQualityMedium:
		return 15
	case DataQualityLow:
		return 5
	default:
		return 0
	}
}

// teamSizePoints maps team size into the technical category's 25-point band:
// full credit at 3+, partial at 1–2, none at 0.
func teamSizePoints(size int) int {
	switch {
	case size >= 3:
		return 25
	case size >= 1:
		return 12
	default:
		return 0
	}
}

// timelinePoints maps the planned timeline into the organizational
// category's 25-point band: 8+ weeks is realistic, 4–7 tight, under 4 none.
func timelinePoints(weeks int) int {
	switch {
	case weeks >= 8:
		return 25
	case weeks >= 4:
		return 12
	default:
		return 0
	}
}

// level maps the overall score to a verdict: ready at 70+,
// needs-preparation at 40+, not-ready below.
func level(overall int) Level {
	switch {
	case overall >= 70:
		return Ready
	case overall >= 40:
		return NeedsPreparation
	default:
		return NotReady
	}
}

// recommendations emits one templated recommendation per category scoring
// under 70.
func recommendations(s CategoryScores) []string {
	var recs []string
	if s.Data < 70 {
		recs = append(recs, fmt.Sprintf("Data readiness is %d/100: close the data access and privacy gaps before selecting a vendor", s.Data))
	}
	if s.Technical < 70 {
		recs = append(recs, fmt.Sprintf("Technical readiness is %d/100: run a small proof-of-concept to build integration and monitoring experience", s.Technical))
	}
	if s.Organizational < 70 {
		recs = append(recs, fmt.Sprintf("Organizational readiness is %d/100: secure sponsorship and budget before committing to a timeline", s.Organizational))
	}
	if s.Compliance < 70 {
		recs = append(recs, fmt.Sprintf("Compliance readiness is %d/100: complete the regulatory groundwork in parallel with technical preparation", s.Compliance))
	}
	return recs
}

// riskFactors flags combinations that compound risk beyond the sum of their
// individual gaps.
func riskFactors(in Inputs, overall, gapCount int) []string {
	var factors []string
	if in.DataQuality == DataQualityLow && !in.MLExperience {
		factors = append(factors, "Low data quality combined with no ML experience: quality problems will likely go undetected until production")
	}
	if in.TimelineWeeks > 0 && in.TimelineWeeks < 8 && overall < 70 {
		factors = append(factors, fmt.Sprintf("A %d-week timeline is aggressive for the current readiness level", in.TimelineWeeks))
	}
	if in.TeamSize <= 1 {
		factors = append(factors, "A single-person team is a delivery and continuity risk for an AI deployment")
	}
	if !in.ExecutiveSponsor && gapCount > 3 {
		factors = append(factors, "Many gaps and no executive sponsor: remediation work is unlikely to be prioritized")
	}
	return factors
}

// clamp bounds a score to [0,100] (INV-8).
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
