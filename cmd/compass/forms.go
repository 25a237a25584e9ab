package main

// forms.go — the five stage questionnaires and their typed decoding.
//
// The TUI collects every answer as a string; the decode functions below turn
// a completed answer map into the stage's Inputs struct. Decoding is lenient
// where the engine is lenient (empty numbers are zero, empty booleans are
// false) and strict where it is strict (enums must name a valid option).

import (
	"fmt"
	"strconv"
	"strings"

	"compass/internal/architecture"
	"compass/internal/readiness"
	"compass/internal/risk"
	"compass/internal/roi"
)

type answerKind int

const (
	kindBool answerKind = iota
	kindInt
	kindFloat
	kindEnum
	kindList
)

// question is one questionnaire entry.
type question struct {
	key     string
	prompt  string
	kind    answerKind
	options []string // kindEnum only
}

// hint is the short input-format reminder shown next to the prompt.
func (q question) hint() string {
	switch q.kind {
	case kindBool:
		return "(y/n)"
	case kindEnum:
		return "(" + strings.Join(q.options, "/") + ")"
	case kindList:
		return "(comma-separated, empty for none)"
	}
	return ""
}

// ---------------------------------------------------------------------------
// answer parsing
// ---------------------------------------------------------------------------

func parseBool(answers map[string]string, key string) (bool, error) {
	switch strings.ToLower(answers[key]) {
	case "", "n", "no", "false", "0":
		return false, nil
	case "y", "yes", "true", "1":
		return true, nil
	}
	return false, fmt.Errorf("%s: %q is not a yes/no answer", key, answers[key])
}

func parseInt(answers map[string]string, key string) (int, error) {
	v := answers[key]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", key, v)
	}
	return n, nil
}

func parseFloat(answers map[string]string, key string) (float64, error) {
	v := answers[key]
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, v)
	}
	return f, nil
}

func parseEnum(answers map[string]string, key string, options []string) (string, error) {
	v := strings.ToLower(answers[key])
	for _, opt := range options {
		if v == opt {
			return v, nil
		}
	}
	return "", fmt.Errorf("%s: %q is not one of %s", key, answers[key], strings.Join(options, ", "))
}

func parseList(answers map[string]string, key string) []string {
	v := answers[key]
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// stage 1 — risk classification
// ---------------------------------------------------------------------------

var riskQuestions = []question{
	{key: "biometricIdentification", prompt: "Real-time remote biometric identification in public spaces?", kind: kindBool},
	{key: "socialScoring", prompt: "Social scoring of natural persons?", kind: kindBool},
	{key: "manipulativeTechniques", prompt: "Subliminal or manipulative techniques causing harm?", kind: kindBool},
	{key: "exploitsVulnerabilities", prompt: "Exploits vulnerabilities of specific groups?", kind: kindBool},
	{key: "criticalInfrastructure", prompt: "Safety component of critical infrastructure?", kind: kindBool},
	{key: "education", prompt: "Used in education or vocational training decisions?", kind: kindBool},
	{key: "employment", prompt: "Used in employment or worker management decisions?", kind: kindBool},
	{key: "essentialServices", prompt: "Controls access to essential private or public services?", kind: kindBool},
	{key: "lawEnforcement", prompt: "Used by or for law enforcement?", kind: kindBool},
	{key: "migration", prompt: "Used in migration, asylum or border control?", kind: kindBool},
	{key: "justice", prompt: "Used in the administration of justice?", kind: kindBool},
	{key: "democraticProcesses", prompt: "Influences elections or democratic processes?", kind: kindBool},
	{key: "decisionsPerYear", prompt: "Automated decisions per year?", kind: kindInt},
	{key: "affectedIndividuals", prompt: "Individuals affected per year?", kind: kindInt},
}

func decodeRisk(answers map[string]string) (risk.Inputs, error) {
	var in risk.Inputs
	var err error
	bools := []struct {
		key string
		dst *bool
	}{
		{"biometricIdentification", &in.BiometricIdentification},
		{"socialScoring", &in.SocialScoring},
		{"manipulativeTechniques", &in.ManipulativeTechniques},
		{"exploitsVulnerabilities", &in.ExploitsVulnerabilities},
		{"criticalInfrastructure", &in.CriticalInfrastructure},
		{"education", &in.Education},
		{"employment", &in.Employment},
		{"essentialServices", &in.EssentialServices},
		{"lawEnforcement", &in.LawEnforcement},
		{"migration", &in.Migration},
		{"justice", &in.Justice},
		{"democraticProcesses", &in.DemocraticProcesses},
	}
	for _, b := range bools {
		if *b.dst, err = parseBool(answers, b.key); err != nil {
			return risk.Inputs{}, err
		}
	}
	if in.DecisionsPerYear, err = parseInt(answers, "decisionsPerYear"); err != nil {
		return risk.Inputs{}, err
	}
	if in.AffectedIndividuals, err = parseInt(answers, "affectedIndividuals"); err != nil {
		return risk.Inputs{}, err
	}
	return in, nil
}

func promptRiskInputs() (risk.Inputs, error) {
	answers, err := promptForm("Stage 1/5 — Risk classification", riskQuestions)
	if err != nil {
		return risk.Inputs{}, err
	}
	return decodeRisk(answers)
}

// ---------------------------------------------------------------------------
// stage 2 — ROI projection
// ---------------------------------------------------------------------------

var roiQuestions = []question{
	{key: "tasksPerMonth", prompt: "Tasks handled per month?", kind: kindFloat},
	{key: "minutesPerTask", prompt: "Minutes of labor per task today?", kind: kindFloat},
	{key: "laborCostPerHour", prompt: "Labor cost per hour (EUR)?", kind: kindFloat},
	{key: "errorRate", prompt: "Current error rate (0-100 %)?", kind: kindFloat},
	{key: "errorCostPerIncident", prompt: "Cost per error incident (EUR)?", kind: kindFloat},
	{key: "aiSuccessRate", prompt: "Expected AI success rate (0-100 %)?", kind: kindFloat},
	{key: "aiCostPerTask", prompt: "AI cost per task (EUR)?", kind: kindFloat},
	{key: "humanReviewPercent", prompt: "Share of AI output needing human review (0-100 %)?", kind: kindFloat},
	{key: "implementationCost", prompt: "One-off implementation cost (EUR)?", kind: kindFloat},
}

func decodeROI(answers map[string]string) (roi.Inputs, error) {
	var in roi.Inputs
	var err error
	floats := []struct {
		key string
		dst *float64
	}{
		{"tasksPerMonth", &in.TasksPerMonth},
		{"minutesPerTask", &in.MinutesPerTask},
		{"laborCostPerHour", &in.LaborCostPerHour},
		{"errorRate", &in.ErrorRate},
		{"errorCostPerIncident", &in.ErrorCostPerIncident},
		{"aiSuccessRate", &in.AISuccessRate},
		{"aiCostPerTask", &in.AICostPerTask},
		{"humanReviewPercent", &in.HumanReviewPercent},
		{"implementationCost", &in.ImplementationCost},
	}
	for _, f := range floats {
		if *f.dst, err = parseFloat(answers, f.key); err != nil {
			return roi.Inputs{}, err
		}
	}
	return in, nil
}

func promptROIInputs() (roi.Inputs, error) {
	answers, err := promptForm("Stage 2/5 — ROI projection", roiQuestions)
	if err != nil {
		return roi.Inputs{}, err
	}
	return decodeROI(answers)
}

// ---------------------------------------------------------------------------
// stage 3 — architecture selection
// ---------------------------------------------------------------------------

var architectureQuestions = []question{
	{key: "budgetPerMonth", prompt: "Monthly budget (EUR)?", kind: kindFloat},
	{key: "volumeQueriesPerMonth", prompt: "Expected queries per month?", kind: kindFloat},
	{key: "dataResidency", prompt: "Required data residency?", kind: kindEnum, options: []string{"eu", "us", "any"}},
	{key: "teamSkills", prompt: "Team skills (e.g. python, ml-ops, kubernetes)?", kind: kindList},
}

func decodeArchitecture(answers map[string]string) (architecture.Inputs, error) {
	var in architecture.Inputs
	var err error
	if in.BudgetPerMonth, err = parseFloat(answers, "budgetPerMonth"); err != nil {
		return architecture.Inputs{}, err
	}
	if in.VolumeQueriesPerMonth, err = parseFloat(answers, "volumeQueriesPerMonth"); err != nil {
		return architecture.Inputs{}, err
	}
	residency, err := parseEnum(answers, "dataResidency", []string{"eu", "us", "any"})
	if err != nil {
		return architecture.Inputs{}, err
	}
	in.DataResidency = architecture.Residency(residency)
	in.TeamSkills = parseList(answers, "teamSkills")
	return in, nil
}

func promptArchitectureInputs() (architecture.Inputs, error) {
	answers, err := promptForm("Stage 3/5 — Architecture selection", architectureQuestions)
	if err != nil {
		return architecture.Inputs{}, err
	}
	return decodeArchitecture(answers)
}

// ---------------------------------------------------------------------------
// stage 4 — readiness assessment
// ---------------------------------------------------------------------------

var readinessQuestions = []question{
	{key: "dataSourcesIdentified", prompt: "Data sources identified?", kind: kindBool},
	{key: "dataAccessible", prompt: "Data technically accessible?", kind: kindBool},
	{key: "privacyCleared", prompt: "Privacy review of the data cleared?", kind: kindBool},
	{key: "dataQuality", prompt: "Data quality?", kind: kindEnum, options: []string{"high", "medium", "low"}},
	{key: "mlExperience", prompt: "Team has ML/AI experience?", kind: kindBool},
	{key: "apiIntegrationDone", prompt: "Target system API integration done?", kind: kindBool},
	{key: "monitoringInPlace", prompt: "Production monitoring in place?", kind: kindBool},
	{key: "teamSize", prompt: "Engineers available for the project?", kind: kindInt},
	{key: "executiveSponsor", prompt: "Executive sponsor committed?", kind: kindBool},
	{key: "budgetApproved", prompt: "Budget approved?", kind: kindBool},
	{key: "changeManagementPlan", prompt: "Change management plan exists?", kind: kindBool},
	{key: "timelineWeeks", prompt: "Planned timeline in weeks?", kind: kindInt},
	{key: "gdprCompliant", prompt: "GDPR compliance established?", kind: kindBool},
	{key: "aiActAssessed", prompt: "AI Act obligations assessed?", kind: kindBool},
	{key: "auditTrail", prompt: "Decision audit trail available?", kind: kindBool},
	{key: "incidentResponsePlan", prompt: "Incident response plan exists?", kind: kindBool},
}

func decodeReadiness(answers map[string]string) (readiness.Inputs, error) {
	var in readiness.Inputs
	var err error
	bools := []struct {
		key string
		dst *bool
	}{
		{"dataSourcesIdentified", &in.DataSourcesIdentified},
		{"dataAccessible", &in.DataAccessible},
		{"privacyCleared", &in.PrivacyCleared},
		{"mlExperience", &in.MLExperience},
		{"apiIntegrationDone", &in.APIIntegrationDone},
		{"monitoringInPlace", &in.MonitoringInPlace},
		{"executiveSponsor", &in.ExecutiveSponsor},
		{"budgetApproved", &in.BudgetApproved},
		{"changeManagementPlan", &in.ChangeManagementPlan},
		{"gdprCompliant", &in.GDPRCompliant},
		{"aiActAssessed", &in.AIActAssessed},
		{"auditTrail", &in.AuditTrail},
		{"incidentResponsePlan", &in.IncidentResponsePlan},
	}
	for _, b := range bools {
		if *b.dst, err = parseBool(answers, b.key); err != nil {
			return readiness.Inputs{}, err
		}
	}
	quality, err := parseEnum(answers, "dataQuality", []string{"high", "medium", "low"})
	if err != nil {
		return readiness.Inputs{}, err
	}
	in.DataQuality = readiness.DataQuality(quality)
	if in.TeamSize, err = parseInt(answers, "teamSize"); err != nil {
		return readiness.Inputs{}, err
	}
	if in.TimelineWeeks, err = parseInt(answers, "timelineWeeks"); err != nil {
		return readiness.Inputs{}, err
	}
	return in, nil
}

func promptReadinessInputs() (readiness.Inputs, error) {
	answers, err := promptForm("Stage 4/5 — Readiness assessment", readinessQuestions)
	if err != nil {
		return readiness.Inputs{}, err
	}
	return decodeReadiness(answers)
}
