// Package deployment synthesizes the outputs of the four upstream advisory
// stages into a phased implementation plan.
//
// The phase list is an ordered builder: fixed phases are always appended,
// conditional phases are appended by predicate checks over upstream outputs
// (INV-15). No phase subtyping; a Phase is a flat record.
package deployment

import (
	"fmt"
	"math"

	"compass/internal/architecture"
	"compass/internal/readiness"
	"compass/internal/risk"
	"compass/internal/roi"
)

// Phase is one step of the implementation plan. Duration zero means
// open-ended (the ongoing monitoring phase).
type Phase struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	DurationWeeks int      `json:"durationWeeks" yaml:"duration_weeks"`
	Tasks         []string `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Deliverables  []string `json:"deliverables,omitempty" yaml:"deliverables,omitempty"`
}

// Summary condenses the headline numbers of the whole advisory session.
type Summary struct {
	AnnualSavings   float64             `json:"annualSavings" yaml:"annual_savings"`
	TotalWeeks      int                 `json:"totalWeeks" yaml:"total_weeks"`
	ComplianceLevel risk.Classification `json:"complianceLevel" yaml:"compliance_level"`
	ReadinessScore  int                 `json:"readinessScore" yaml:"readiness_score"`
	Architecture    string              `json:"architecture" yaml:"architecture"`
}

// Plan is the deployment-stage output.
type Plan struct {
	Phases          []Phase  `json:"phases" yaml:"phases"`
	CriticalFactors []string `json:"criticalFactors,omitempty" yaml:"critical_factors,omitempty"`
	NextSteps       []string `json:"nextSteps,omitempty" yaml:"next_steps,omitempty"`
	Summary         Summary  `json:"summary" yaml:"summary"`
}

// Inputs gathers the completed upstream outputs. Architecture is the
// top-ranked recommendation; nil when the selector returned nothing.
type Inputs struct {
	Risk         risk.Outputs
	ROI          roi.Outputs
	Architecture *architecture.Recommendation
	Readiness    readiness.Outputs
}

// preparationGapThreshold: a preparation phase is prepended only when the
// readiness stage found more than this many gaps.
const preparationGapThreshold = 3

// maxNextSteps caps the next-steps list; critical factors are uncapped.
const maxNextSteps = 6

// Generate builds the phased plan from the four upstream outputs. Errors if
// the risk stage classified the system as prohibited — a prohibited session
// never reaches this stage (INV-5), so this is a caller bug surfaced loudly.
func Generate(in Inputs) (Plan, error) {
	if in.Risk.Classification == risk.Prohibited {
		return Plan{}, fmt.Errorf("deployment plan requested for a prohibited system (%s)", in.Risk.ProhibitionReason)
	}

	var phases []Phase

	gaps := in.Readiness.Gaps
	if len(gaps) > preparationGapThreshold {
		phases = append(phases, Phase{
			Name:          "Preparation & Foundation",
			Description:   "Close the readiness gaps that would otherwise surface mid-project.",
			DurationWeeks: len(gaps), // one week per gap
			Tasks:         append([]string(nil), gaps...),
			Deliverables: []string{
				"Readiness gaps closed and re-scored",
				"Data access and privacy sign-off",
			},
		})
	}

	phases = append(phases, Phase{
		Name:          "Planning & Architecture",
		Description:   "Fix scope, success metrics and the technical design.",
		DurationWeeks: 3,
		Tasks: []string{
			"Write the technical design for the selected architecture",
			"Define measurable success criteria and baseline metrics",
			"Plan the integration points with existing systems",
		},
		Deliverables: []string{
			"Approved technical design",
			"Project plan with success metrics",
		},
	})

	devWeeks := int(math.Ceil(float64(in.Readiness.EstimatedTimelineWeeks) * 0.4))
	phases = append(phases, Phase{
		Name:          "Development & Testing",
		Description:   "Build, integrate and evaluate against the success criteria.",
		DurationWeeks: devWeeks,
		Tasks: []string{
			"Implement the core pipeline against the selected architecture",
			"Build the evaluation harness and run against baseline",
			"Integrate human-review workflow",
		},
		Deliverables: []string{
			"Working system in a staging environment",
			"Evaluation report against success criteria",
		},
	})

	if in.Risk.Classification == risk.HighRisk {
		phases = append(phases, Phase{
			Name:          "Compliance & Documentation",
			Description:   "Meet the high-risk obligations before market placement.",
			DurationWeeks: 4,
			// Tasks are exactly the classifier's obligation list.
			Tasks: append([]string(nil), in.Risk.ComplianceRequirements...),
			Deliverables: []string{
				"Technical documentation pack",
				"Conformity assessment evidence",
			},
		})
	}

	phases = append(phases, Phase{
		Name:          "Deployment & Launch",
		Description:   "Roll out to production behind a limited pilot.",
		DurationWeeks: 2,
		Tasks: []string{
			"Deploy to production with a restricted pilot group",
			"Enable monitoring dashboards and alerting",
			"Train the human-review staff",
		},
		Deliverables: []string{
			"Production deployment",
			"Pilot rollout report",
		},
	})

	phases = append(phases, Phase{
		Name:          "Monitor & Optimize",
		Description:   "Ongoing: track quality, cost and drift; expand from the pilot.",
		DurationWeeks: 0,
		Tasks: []string{
			"Review model quality and cost metrics weekly",
			"Expand rollout as success criteria hold",
			"Re-score readiness and ROI quarterly",
		},
	})

	total := 0
	for _, p := range phases {
		total += p.DurationWeeks
	}

	archName := ""
	if in.Architecture != nil {
		archName = in.Architecture.Name
	}

	return Plan{
		Phases:          phases,
		CriticalFactors: criticalFactors(in),
		NextSteps:       nextSteps(in),
		Summary: Summary{
			AnnualSavings:   in.ROI.AnnualSavings,
			TotalWeeks:      total,
			ComplianceLevel: in.Risk.Classification,
			ReadinessScore:  in.Readiness.OverallScore,
			Architecture:    archName,
		},
	}, nil
}

// criticalFactors assembles the uncapped success-factor list from rule
// checks over the upstream outputs.
func criticalFactors(in Inputs) []string {
	factors := []string{
		"Visible executive sponsorship through every phase",
		"Success metrics agreed before development starts",
	}
	if len(in.Readiness.Gaps) > 0 {
		factors = append(factors, fmt.Sprintf("Closing the %d identified readiness gaps before development", len(in.Readiness.Gaps)))
	}
	if in.Risk.Classification == risk.HighRisk {
		factors = append(factors, "Regulatory compliance work runs on the critical path — do not defer it")
	}
	if in.ROI.ConfidenceLevel == roi.ConfidenceLow {
		factors = append(factors, "ROI projection has low confidence: validate the assumptions in the pilot before scaling")
	}
	if in.ROI.BreakEven.Never {
		factors = append(factors, "The projection never breaks even — revisit the cost model before committing budget")
	}
	if in.Architecture != nil && in.Architecture.Complexity == architecture.ComplexityHigh {
		factors = append(factors, "The selected architecture is operationally complex; reserve dedicated ops capacity")
	}
	return factors
}

// nextSteps assembles the immediate action list, capped at maxNextSteps.
func nextSteps(in Inputs) []string {
	steps := []string{
		"Review the advisory report with project stakeholders",
	}
	// The two most pressing readiness gaps become immediate actions.
	for i, gap := range in.Readiness.Gaps {
		if i == 2 {
			break
		}
		steps = append(steps, gap)
	}
	if in.Risk.Classification == risk.HighRisk {
		steps = append(steps, "Engage legal counsel on the EU AI Act conformity assessment")
	}
	if in.Architecture != nil {
		steps = append(steps, fmt.Sprintf("Validate the %q architecture with a one-week proof of concept", in.Architecture.Name))
	}
	steps = append(steps,
		"Define measurable success criteria for the pilot",
		"Schedule the planning phase kickoff",
	)
	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}
