// Package roi projects the return on investment of replacing a manual
// process with an AI system.
//
// The calculation compares a fully-manual monthly cost (labor plus error
// remediation) against the AI-assisted monthly cost (per-task fees plus the
// human-review share of the original labor). Degenerate arithmetic is
// surfaced through tagged types, never numeric sentinels (INV-3).
package roi

import "fmt"

// ConfidenceLevel rates how much weight to give the projection.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Inputs describes the manual process being replaced and the AI system
// replacing it. Rates and percentages are 0–100.
type Inputs struct {
	TasksPerMonth        float64 `json:"tasksPerMonth" yaml:"tasks_per_month"`
	MinutesPerTask       float64 `json:"minutesPerTask" yaml:"minutes_per_task"`
	LaborCostPerHour     float64 `json:"laborCostPerHour" yaml:"labor_cost_per_hour"`
	ErrorRate            float64 `json:"errorRate" yaml:"error_rate"`
	ErrorCostPerIncident float64 `json:"errorCostPerIncident" yaml:"error_cost_per_incident"`

	AISuccessRate      float64 `json:"aiSuccessRate" yaml:"ai_success_rate"`
	AICostPerTask      float64 `json:"aiCostPerTask" yaml:"ai_cost_per_task"`
	HumanReviewPercent float64 `json:"humanReviewPercent" yaml:"human_review_percent"`
	ImplementationCost float64 `json:"implementationCost" yaml:"implementation_cost"`
}

// BreakEven is the tagged break-even result: either a month count or Never.
// Replaces the large-magic-number convention so the sentinel can never be
// used in arithmetic by accident (INV-3).
type BreakEven struct {
	Months float64 `json:"months,omitempty" yaml:"months,omitempty"`
	Never  bool    `json:"never,omitempty" yaml:"never,omitempty"`
}

// String renders the break-even for display.
func (b BreakEven) String() string {
	if b.Never {
		return "never"
	}
	return fmt.Sprintf("%.1f months", b.Months)
}

// Percent is a percentage that may be undefined (division by zero upstream).
type Percent struct {
	Value   float64 `json:"value" yaml:"value"`
	Defined bool    `json:"defined" yaml:"defined"`
}

// String renders the percentage for display.
func (p Percent) String() string {
	if !p.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", p.Value)
}

// Outputs is the ROI projection.
type Outputs struct {
	CurrentMonthlyCost float64         `json:"currentMonthlyCost" yaml:"current_monthly_cost"`
	AIMonthlyCost      float64         `json:"aiMonthlyCost" yaml:"ai_monthly_cost"`
	MonthlySavings     float64         `json:"monthlySavings" yaml:"monthly_savings"`
	AnnualSavings      float64         `json:"annualSavings" yaml:"annual_savings"`
	ROIPercentage      Percent         `json:"roiPercentage" yaml:"roi_percentage"`
	BreakEven          BreakEven       `json:"breakEven" yaml:"break_even"`
	ConfidenceLevel    ConfidenceLevel `json:"confidenceLevel" yaml:"confidence_level"`
	Risks              []string        `json:"risks,omitempty" yaml:"risks,omitempty"`
}

// Calculate projects savings, ROI and break-even for the given process
// parameters. Total over non-negative inputs (INV-1); range validation is
// the caller's concern (INV-2).
func Calculate(in Inputs) Outputs {
	laborPerTask := in.MinutesPerTask / 60 * in.LaborCostPerHour

	currentMonthly := in.TasksPerMonth*laborPerTask +
		in.TasksPerMonth*in.ErrorRate/100*in.ErrorCostPerIncident

	aiMonthly := in.TasksPerMonth*in.AICostPerTask +
		in.TasksPerMonth*in.HumanReviewPercent/100*laborPerTask

	monthlySavings := currentMonthly - aiMonthly
	annualSavings := monthlySavings * 12

	// ROI% is undefined with no implementation cost (INV-3): the division
	// has no meaning, so the result is tagged rather than zeroed.
	roiPct := Percent{}
	if in.ImplementationCost > 0 {
		roiPct = Percent{
			Value:   (annualSavings - in.ImplementationCost) / in.ImplementationCost * 100,
			Defined: true,
		}
	}

	breakEven := BreakEven{Never: true}
	if monthlySavings > 0 {
		breakEven = BreakEven{Months: in.ImplementationCost / monthlySavings}
	}

	return Outputs{
		CurrentMonthlyCost: currentMonthly,
		AIMonthlyCost:      aiMonthly,
		MonthlySavings:     monthlySavings,
		AnnualSavings:      annualSavings,
		ROIPercentage:      roiPct,
		BreakEven:          breakEven,
		ConfidenceLevel:    confidence(in),
		Risks:              assembleRisks(in, monthlySavings, breakEven),
	}
}

// confidence bands the projection by AI success rate and review overhead.
func confidence(in Inputs) ConfidenceLevel {
	switch {
	case in.AISuccessRate < 70 || in.HumanReviewPercent > 50:
		return ConfidenceLow
	case in.AISuccessRate >= 90 && in.HumanReviewPercent <= 20:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// assembleRisks collects free-text warnings from threshold checks.
func assembleRisks(in Inputs, monthlySavings float64, be BreakEven) []string {
	var risks []string
	if in.AISuccessRate < 80 {
		risks = append(risks, fmt.Sprintf("AI success rate of %.0f%% is below 80%% — expect significant rework volume", in.AISuccessRate))
	}
	if in.HumanReviewPercent > 30 {
		risks = append(risks, fmt.Sprintf("Human review of %.0f%% of tasks erodes most automation gains", in.HumanReviewPercent))
	}
	if monthlySavings < 0 {
		risks = append(risks, "AI-assisted process costs more per month than the manual process")
	}
	if be.Never {
		risks = append(risks, "Implementation cost is never recovered at current savings")
	} else if be.Months > 12 {
		risks = append(risks, fmt.Sprintf("Break-even of %s exceeds one year", be))
	}
	return risks
}
