// Package risk classifies an AI system under the EU AI Act.
//
// Two rule layers run in order: the Article-5 prohibited practices (any one
// ends classification immediately, INV-4) and the Annex-III high-risk
// domains (all matches are collected, INV-6). Systems that trigger neither
// are limited-risk above an affected-population cutoff and minimal-risk
// below it (INV-7).
package risk

import "fmt"

// Classification is the risk level assigned to an AI system.
type Classification string

const (
	Prohibited  Classification = "prohibited"
	HighRisk    Classification = "high-risk"
	LimitedRisk Classification = "limited-risk"
	MinimalRisk Classification = "minimal-risk"
)

// limitedRiskCutoff is the affected-individuals count above which a system
// with no Annex-III trigger is limited-risk rather than minimal-risk (INV-7).
const limitedRiskCutoff = 10000

// Inputs is the risk-stage questionnaire.
type Inputs struct {
	// Article 5 prohibited practices, in priority order.
	BiometricIdentification bool `json:"biometricIdentification" yaml:"biometric_identification"`
	SocialScoring           bool `json:"socialScoring" yaml:"social_scoring"`
	ManipulativeTechniques  bool `json:"manipulativeTechniques" yaml:"manipulative_techniques"`
	ExploitsVulnerabilities bool `json:"exploitsVulnerabilities" yaml:"exploits_vulnerabilities"`

	// Annex III high-risk domains.
	CriticalInfrastructure bool `json:"criticalInfrastructure" yaml:"critical_infrastructure"`
	Education              bool `json:"education" yaml:"education"`
	Employment             bool `json:"employment" yaml:"employment"`
	EssentialServices      bool `json:"essentialServices" yaml:"essential_services"`
	LawEnforcement         bool `json:"lawEnforcement" yaml:"law_enforcement"`
	Migration              bool `json:"migration" yaml:"migration"`
	Justice                bool `json:"justice" yaml:"justice"`
	DemocraticProcesses    bool `json:"democraticProcesses" yaml:"democratic_processes"`

	// Scale.
	DecisionsPerYear    int `json:"decisionsPerYear" yaml:"decisions_per_year"`
	AffectedIndividuals int `json:"affectedIndividuals" yaml:"affected_individuals"`
}

// CostRange is an estimated compliance cost band in euros.
type CostRange struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// MonthRange is an estimated duration band in months.
type MonthRange struct {
	Low  int `json:"low" yaml:"low"`
	High int `json:"high" yaml:"high"`
}

// Outputs is the risk-stage result.
type Outputs struct {
	Classification          Classification `json:"classification" yaml:"classification"`
	ProhibitionReason       string         `json:"prohibitionReason,omitempty" yaml:"prohibition_reason,omitempty"`
	TriggeredCriteria       []string       `json:"triggeredCriteria,omitempty" yaml:"triggered_criteria,omitempty"`
	ComplianceRequirements  []string       `json:"complianceRequirements,omitempty" yaml:"compliance_requirements,omitempty"`
	EstimatedComplianceCost CostRange      `json:"estimatedComplianceCost" yaml:"estimated_compliance_cost"`
	EstimatedTimeMonths     MonthRange     `json:"estimatedTimeMonths" yaml:"estimated_time_months"`
}

// prohibitedTrigger pairs an Article-5 flag accessor with the practice it
// names. Order is the fixed evaluation priority (INV-4).
type prohibitedTrigger struct {
	set  func(Inputs) bool
	name string
}

var prohibitedTriggers = []prohibitedTrigger{
	{func(in Inputs) bool { return in.BiometricIdentification }, "Real-time remote biometric identification in public spaces"},
	{func(in Inputs) bool { return in.SocialScoring }, "Social scoring by or on behalf of public authorities"},
	{func(in Inputs) bool { return in.ManipulativeTechniques }, "Subliminal or purposefully manipulative techniques"},
	{func(in Inputs) bool { return in.ExploitsVulnerabilities }, "Exploitation of vulnerabilities of specific groups"},
}

// highRiskTrigger pairs an Annex-III flag accessor with its domain label.
// Declaration order is the output order of TriggeredCriteria (INV-6).
type highRiskTrigger struct {
	set  func(Inputs) bool
	name string
}

var highRiskTriggers = []highRiskTrigger{
	{func(in Inputs) bool { return in.CriticalInfrastructure }, "Critical infrastructure safety component"},
	{func(in Inputs) bool { return in.Education }, "Education and vocational training"},
	{func(in Inputs) bool { return in.Employment }, "Employment and worker management"},
	{func(in Inputs) bool { return in.EssentialServices }, "Access to essential private and public services"},
	{func(in Inputs) bool { return in.LawEnforcement }, "Law enforcement"},
	{func(in Inputs) bool { return in.Migration }, "Migration, asylum and border control"},
	{func(in Inputs) bool { return in.Justice }, "Administration of justice"},
	{func(in Inputs) bool { return in.DemocraticProcesses }, "Democratic processes and elections"},
}

// complianceRequirements is the static obligation list per classification.
var complianceRequirements = map[Classification][]string{
	HighRisk: {
		"Establish a risk management system (Art. 9)",
		"Data governance and quality management for training data (Art. 10)",
		"Technical documentation before market placement (Art. 11)",
		"Automatic event logging across the system lifetime (Art. 12)",
		"Transparency and provision of information to deployers (Art. 13)",
		"Human oversight measures (Art. 14)",
		"Accuracy, robustness and cybersecurity (Art. 15)",
		"Conformity assessment and CE marking",
	},
	LimitedRisk: {
		"Transparency notice: inform users they are interacting with an AI system (Art. 50)",
	},
	MinimalRisk: {},
}

// costTable holds fixed compliance cost bands per classification (euros).
var costTable = map[Classification]CostRange{
	HighRisk:    {Low: 80000, High: 250000},
	LimitedRisk: {Low: 5000, High: 15000},
	MinimalRisk: {},
	Prohibited:  {},
}

// timeTable holds fixed compliance duration bands per classification.
var timeTable = map[Classification]MonthRange{
	HighRisk:    {Low: 12, High: 24},
	LimitedRisk: {Low: 1, High: 2},
	MinimalRisk: {},
	Prohibited:  {},
}

// Classify maps risk inputs to a classification. Total function (INV-1):
// every input combination yields exactly one classification, no error path.
func Classify(in Inputs) Outputs {
	// Article 5 first: the lowest-index true trigger decides (INV-4) and
	// nothing downstream is evaluated.
	for _, trig := range prohibitedTriggers {
		if trig.set(in) {
			return Outputs{
				Classification:    Prohibited,
				ProhibitionReason: trig.name,
				ComplianceRequirements: []string{
					fmt.Sprintf("Prohibited practice under Article 5: %s. This system cannot be deployed in the EU.", trig.name),
				},
				EstimatedComplianceCost: costTable[Prohibited],
				EstimatedTimeMonths:     timeTable[Prohibited],
			}
		}
	}

	// Annex III: collect every true trigger (INV-6).
	var criteria []string
	for _, trig := range highRiskTriggers {
		if trig.set(in) {
			criteria = append(criteria, trig.name)
		}
	}
	if len(criteria) > 0 {
		return outputsFor(HighRisk, criteria)
	}

	if in.AffectedIndividuals > limitedRiskCutoff {
		return outputsFor(LimitedRisk, nil)
	}
	return outputsFor(MinimalRisk, nil)
}

func outputsFor(level Classification, criteria []string) Outputs {
	return Outputs{
		Classification:          level,
		TriggeredCriteria:       criteria,
		ComplianceRequirements:  complianceRequirements[level],
		EstimatedComplianceCost: costTable[level],
		EstimatedTimeMonths:     timeTable[level],
	}
}
