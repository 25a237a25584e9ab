package architecture

// select.go — catalog filtering and ranking.
//
// Select applies the three hard constraints (budget, residency, skills) and
// ranks survivors cheapest-first (INV-11, INV-12). An empty result is
// returned as-is: relaxing constraints is a presentation decision, not
// engine behavior.

import "sort"

// Inputs is the architecture-stage questionnaire.
type Inputs struct {
	BudgetPerMonth       float64   `json:"budgetPerMonth" yaml:"budget_per_month"`
	VolumeQueriesPerMonth float64  `json:"volumeQueriesPerMonth" yaml:"volume_queries_per_month"`
	DataResidency        Residency `json:"dataResidency" yaml:"data_residency"`
	TeamSkills           []string  `json:"teamSkills,omitempty" yaml:"team_skills,omitempty"`
}

// Recommendation is a catalog entry annotated with its estimated cost at the
// requested volume.
type Recommendation struct {
	Architecture         `json:",inline" yaml:",inline"`
	EstimatedMonthlyCost float64 `json:"estimatedMonthlyCost" yaml:"estimated_monthly_cost"`
}

// Select filters catalog against in and returns recommendations ranked
// ascending by estimated cost, ties broken by ascending complexity (INV-12).
// May be empty (INV-11); never exceeds the budget.
func Select(in Inputs, catalog []Architecture) []Recommendation {
	var recs []Recommendation
	for _, arch := range catalog {
		cost := MonthlyCost(arch, in.VolumeQueriesPerMonth)
		if cost > in.BudgetPerMonth {
			continue
		}
		if !residencyMatches(in.DataResidency, arch.Residency) {
			continue
		}
		if !skillsMatch(in.TeamSkills, arch.RequiredSkills) {
			continue
		}
		recs = append(recs, Recommendation{
			Architecture:         arch,
			EstimatedMonthlyCost: cost,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].EstimatedMonthlyCost != recs[j].EstimatedMonthlyCost {
			return recs[i].EstimatedMonthlyCost < recs[j].EstimatedMonthlyCost
		}
		return complexityRank[recs[i].Complexity] < complexityRank[recs[j].Complexity]
	})
	return recs
}

// residencyMatches reports whether an architecture's residency tag satisfies
// the requested residency. "any" on either side matches everything: the
// caller doesn't care, or the architecture deploys wherever it is needed.
func residencyMatches(want, have Residency) bool {
	return want == ResidencyAny || have == ResidencyAny || want == have
}

// skillsMatch reports whether the team's skills intersect the architecture's
// required-skills set. An empty team skill list places no constraint.
func skillsMatch(team, required []string) bool {
	if len(team) == 0 {
		return true
	}
	set := make(map[string]bool, len(team))
	for _, s := range team {
		set[s] = true
	}
	for _, r := range required {
		if set[r] {
			return true
		}
	}
	return false
}
