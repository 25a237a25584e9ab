package main

// summary.go — per-stage terminal summaries shared by wizard and run.

import (
	"fmt"

	"compass/internal/architecture"
	"compass/internal/deployment"
	"compass/internal/readiness"
	"compass/internal/risk"
	"compass/internal/roi"
)

func printRiskSummary(out risk.Outputs) {
	fmt.Println()
	fmt.Println(stageStyle.Render("Risk classification"))
	if out.Classification == risk.Prohibited {
		fmt.Printf("  %s %s\n", dangerStyle.Render("PROHIBITED:"), out.ProhibitionReason)
		for _, req := range out.ComplianceRequirements {
			fmt.Printf("  %s\n", req)
		}
		return
	}
	fmt.Printf("  %s %s\n", labelStyle.Render("classification:"), out.Classification)
	for _, c := range out.TriggeredCriteria {
		fmt.Printf("  %s %s\n", labelStyle.Render("triggered:"), c)
	}
	if len(out.ComplianceRequirements) > 0 {
		fmt.Printf("  %s %d obligations\n", labelStyle.Render("compliance:"), len(out.ComplianceRequirements))
		fmt.Printf("  %s €%.0f – €%.0f over %d–%d months\n", labelStyle.Render("estimated:"),
			out.EstimatedComplianceCost.Low, out.EstimatedComplianceCost.High,
			out.EstimatedTimeMonths.Low, out.EstimatedTimeMonths.High)
	}
}

func printROISummary(out roi.Outputs) {
	fmt.Println()
	fmt.Println(stageStyle.Render("ROI projection"))
	fmt.Printf("  %s €%.2f today, €%.2f with AI\n", labelStyle.Render("monthly cost:"),
		out.CurrentMonthlyCost, out.AIMonthlyCost)
	fmt.Printf("  %s €%.2f/month (€%.2f/year)\n", labelStyle.Render("savings:"),
		out.MonthlySavings, out.AnnualSavings)
	fmt.Printf("  %s %s, break-even %s, confidence %s\n", labelStyle.Render("roi:"),
		out.ROIPercentage, out.BreakEven, out.ConfidenceLevel)
	for _, r := range out.Risks {
		fmt.Printf("  %s %s\n", warnStyle.Render("risk:"), r)
	}
}

func printArchitectureSummary(recs []architecture.Recommendation) {
	fmt.Println()
	fmt.Println(stageStyle.Render("Architecture recommendations"))
	if len(recs) == 0 {
		fmt.Printf("  %s\n", warnStyle.Render("no architecture fits the constraints; relax the budget, residency or skills"))
		return
	}
	for i, rec := range recs {
		fmt.Printf("  %d. %s — €%.2f/month, %s complexity\n",
			i+1, rec.Name, rec.EstimatedMonthlyCost, rec.Complexity)
	}
	top := recs[0]
	fmt.Printf("  %s %s / %s / %s\n", labelStyle.Render("top stack:"),
		top.Components.LLM, top.Components.VectorDB, top.Components.Orchestration)
}

func printReadinessSummary(out readiness.Outputs) {
	fmt.Println()
	fmt.Println(stageStyle.Render("Readiness assessment"))
	fmt.Printf("  %s %d/100 (%s)\n", labelStyle.Render("overall:"), out.OverallScore, out.ReadinessLevel)
	fmt.Printf("  %s data %d, technical %d, organizational %d, compliance %d\n",
		labelStyle.Render("categories:"),
		out.CategoryScores.Data, out.CategoryScores.Technical,
		out.CategoryScores.Organizational, out.CategoryScores.Compliance)
	for _, g := range out.Gaps {
		fmt.Printf("  %s %s\n", warnStyle.Render("gap:"), g)
	}
	for _, r := range out.RiskFactors {
		fmt.Printf("  %s %s\n", dangerStyle.Render("risk factor:"), r)
	}
	fmt.Printf("  %s %d weeks\n", labelStyle.Render("realistic timeline:"), out.EstimatedTimelineWeeks)
}

func printPlanSummary(plan deployment.Plan) {
	fmt.Println()
	fmt.Println(stageStyle.Render("Deployment plan"))
	for i, phase := range plan.Phases {
		duration := fmt.Sprintf("%d weeks", phase.DurationWeeks)
		if phase.DurationWeeks == 0 {
			duration = "ongoing"
		}
		fmt.Printf("  %d. %s (%s)\n", i+1, phase.Name, duration)
	}
	fmt.Printf("  %s %d weeks to launch, €%.2f/year projected savings\n",
		labelStyle.Render("summary:"), plan.Summary.TotalWeeks, plan.Summary.AnnualSavings)
	fmt.Println()
	fmt.Println(okStyle.Render("Next steps"))
	for _, step := range plan.NextSteps {
		fmt.Printf("  - %s\n", step)
	}
}
