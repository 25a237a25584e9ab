package wizard

// validate.go — field validation ahead of every stage (INV-2).
//
// The stage calculators are total over valid inputs; anything out of range
// is refused here with the offending field named, never clamped.

import (
	"compass/internal/architecture"
	"compass/internal/readiness"
	"compass/internal/risk"
	"compass/internal/roi"
)

// validateRisk checks the risk questionnaire's scale fields.
func validateRisk(in risk.Inputs) error {
	if in.DecisionsPerYear < 0 {
		return invalidf(StageRisk, "decisionsPerYear", "must not be negative (got %d)", in.DecisionsPerYear)
	}
	if in.AffectedIndividuals < 0 {
		return invalidf(StageRisk, "affectedIndividuals", "must not be negative (got %d)", in.AffectedIndividuals)
	}
	return nil
}

// validateROI checks counts, costs and percentages.
func validateROI(in roi.Inputs) error {
	nonNegative := []struct {
		field string
		value float64
	}{
		{"tasksPerMonth", in.TasksPerMonth},
		{"minutesPerTask", in.MinutesPerTask},
		{"laborCostPerHour", in.LaborCostPerHour},
		{"errorCostPerIncident", in.ErrorCostPerIncident},
		{"aiCostPerTask", in.AICostPerTask},
		{"implementationCost", in.ImplementationCost},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return invalidf(StageROI, f.field, "must not be negative (got %g)", f.value)
		}
	}
	percentages := []struct {
		field string
		value float64
	}{
		{"errorRate", in.ErrorRate},
		{"aiSuccessRate", in.AISuccessRate},
		{"humanReviewPercent", in.HumanReviewPercent},
	}
	for _, f := range percentages {
		if f.value < 0 || f.value > 100 {
			return invalidf(StageROI, f.field, "must be between 0 and 100 (got %g)", f.value)
		}
	}
	return nil
}

// validateArchitecture checks budget, volume and the residency enum.
func validateArchitecture(in architecture.Inputs) error {
	if in.BudgetPerMonth < 0 {
		return invalidf(StageArchitecture, "budgetPerMonth", "must not be negative (got %g)", in.BudgetPerMonth)
	}
	if in.VolumeQueriesPerMonth < 0 {
		return invalidf(StageArchitecture, "volumeQueriesPerMonth", "must not be negative (got %g)", in.VolumeQueriesPerMonth)
	}
	switch in.DataResidency {
	case architecture.ResidencyEU, architecture.ResidencyUS, architecture.ResidencyAny:
	default:
		return invalidf(StageArchitecture, "dataResidency", "must be one of eu, us, any (got %q)", in.DataResidency)
	}
	return nil
}

// validateReadiness checks team size, timeline and the quality enum.
func validateReadiness(in readiness.Inputs) error {
	if in.TeamSize < 0 {
		return invalidf(StageReadiness, "teamSize", "must not be negative (got %d)", in.TeamSize)
	}
	if in.TimelineWeeks < 0 {
		return invalidf(StageReadiness, "timelineWeeks", "must not be negative (got %d)", in.TimelineWeeks)
	}
	switch in.DataQuality {
	case readiness.DataQualityHigh, readiness.DataQualityMedium, readiness.DataQualityLow:
	default:
		return invalidf(StageReadiness, "dataQuality", "must be one of high, medium, low (got %q)", in.DataQuality)
	}
	return nil
}
