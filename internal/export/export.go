// Package export converts a completed wizard session into an advisory
// report vault.
//
// Vault layout:
//   index.md           — session summary and headline numbers
//   risk.md            — classification, triggers, obligations
//   roi.md             — cost comparison, savings, break-even
//   architecture.md    — ranked recommendations with cost breakdown
//   readiness.md       — category scores, gaps, risk factors
//   plan.md            — phased deployment plan
//   report.html        — the full report rendered to HTML
//
// Page generation is pure (no writes, INV-16); WriteBundle is the only
// function that touches the filesystem.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"compass/internal/risk"
	"compass/internal/wizard"
)

// Bundle holds pre-generated page content (path → markdown or html).
// Paths are relative to the output directory, using forward slashes.
type Bundle struct {
	pages map[string]string
}

// Page returns the content of a generated page, and whether it exists.
func (b *Bundle) Page(path string) (string, bool) {
	content, ok := b.pages[path]
	return content, ok
}

// Paths returns all page paths in sorted order.
func (b *Bundle) Paths() []string {
	paths := make([]string, 0, len(b.pages))
	for p := range b.pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// GenerateBundle builds all report pages from a completed session. Requires
// at least the risk stage; later pages are generated only for completed
// stages, so a prohibited session exports the risk page alone.
func GenerateBundle(state *wizard.State) (*Bundle, error) {
	if state.Risk == nil {
		return nil, fmt.Errorf("session %s has no completed stages", state.SessionID)
	}

	pages := make(map[string]string)
	pages["index.md"] = buildIndexPage(state)
	pages["risk.md"] = buildRiskPage(state)

	if state.ROI != nil {
		pages["roi.md"] = buildROIPage(state)
	}
	if state.Architecture != nil {
		pages["architecture.md"] = buildArchitecturePage(state)
	}
	if state.Readiness != nil {
		pages["readiness.md"] = buildReadinessPage(state)
	}
	if state.Deployment != nil {
		pages["plan.md"] = buildPlanPage(state)
	}

	html, err := renderHTML(pages)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	pages["report.html"] = html

	return &Bundle{pages: pages}, nil
}

// WriteBundle writes all pages in bundle to outputDir. Pages are written in
// sorted path order for idempotency (INV-16).
func WriteBundle(bundle *Bundle, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", outputDir, err)
	}
	for _, p := range bundle.Paths() {
		abs := filepath.Join(outputDir, filepath.FromSlash(p))
		content, _ := bundle.Page(p)
		if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Page builders
// ---------------------------------------------------------------------------

// buildIndexPage builds index.md — the session summary.
func buildIndexPage(state *wizard.State) string {
	var b strings.Builder
	b.WriteString(frontmatter([]string{"compass/index"}))
	b.WriteString("# AI Adoption Advisory Report\n\n")
	b.WriteString(fmt.Sprintf("- **Session**: `%s`\n", state.SessionID))
	b.WriteString(fmt.Sprintf("- **Created**: %s\n", state.CreatedAt.Format("2006-01-02 15:04 UTC")))
	b.WriteString(fmt.Sprintf("- **Risk classification**: %s\n", state.Risk.Outputs.Classification))

	if state.Prohibited() {
		b.WriteString("\n> **This system is prohibited under Article 5 of the EU AI Act and cannot be deployed.** ")
		b.WriteString("The remaining advisory stages were not run.\n")
		return b.String()
	}

	if state.ROI != nil {
		b.WriteString(fmt.Sprintf("- **Projected annual savings**: €%.0f\n", state.ROI.Outputs.AnnualSavings))
		b.WriteString(fmt.Sprintf("- **Break-even**: %s\n", state.ROI.Outputs.BreakEven))
	}
	if top := state.TopRecommendation(); top != nil {
		b.WriteString(fmt.Sprintf("- **Recommended architecture**: %s (≈ €%.0f/month)\n", top.Name, top.EstimatedMonthlyCost))
	}
	if state.Readiness != nil {
		b.WriteString(fmt.Sprintf("- **Readiness**: %d/100 (%s)\n", state.Readiness.Outputs.OverallScore, state.Readiness.Outputs.ReadinessLevel))
	}
	if state.Deployment != nil {
		b.WriteString(fmt.Sprintf("- **Plan**: %d phases, %d weeks to launch\n", len(state.Deployment.Plan.Phases), state.Deployment.Plan.Summary.TotalWeeks))
	}
	return b.String()
}

// buildRiskPage builds risk.md.
func buildRiskPage(state *wizard.State) string {
	out := state.Risk.Outputs
	var b strings.Builder
	b.WriteString(frontmatter([]string{"compass/risk", "risk/" + string(out.Classification)}))
	b.WriteString("# Risk Classification\n\n")
	b.WriteString(fmt.Sprintf("**Classification**: %s\n", out.Classification))

	if out.Classification == risk.Prohibited {
		b.WriteString(fmt.Sprintf("\n**Prohibited practice**: %s\n", out.ProhibitionReason))
		for _, req := range out.ComplianceRequirements {
			b.WriteString("\n> " + req + "\n")
		}
		return b.String()
	}

	if len(out.TriggeredCriteria) > 0 {
		b.WriteString("\n## Triggered Annex III Criteria\n\n")
		for _, c := range out.TriggeredCriteria {
			b.WriteString("- " + c + "\n")
		}
	}
	if len(out.ComplianceRequirements) > 0 {
		b.WriteString("\n## Compliance Requirements\n\n")
		for _, req := range out.ComplianceRequirements {
			b.WriteString("- " + req + "\n")
		}
	}
	if out.EstimatedComplianceCost.High > 0 {
		b.WriteString("\n## Estimated Compliance Effort\n\n")
		b.WriteString(fmt.Sprintf("- Cost: €%.0f – €%.0f\n", out.EstimatedComplianceCost.Low, out.EstimatedComplianceCost.High))
		b.WriteString(fmt.Sprintf("- Time: %d – %d months\n", out.EstimatedTimeMonths.Low, out.EstimatedTimeMonths.High))
	}
	return b.String()
}

// buildROIPage builds roi.md.
func buildROIPage(state *wizard.State) string {
	out := state.ROI.Outputs
	var b strings.Builder
	b.WriteString(frontmatter([]string{"compass/roi"}))
	b.WriteString("# ROI Projection\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Current monthly cost | €%.2f |\n", out.CurrentMonthlyCost))
	b.WriteString(fmt.Sprintf("| AI monthly cost | €%.2f |\n", out.AIMonthlyCost))
	b.WriteString(fmt.Sprintf("| Monthly savings | €%.2f |\n", out.MonthlySavings))
	b.WriteString(fmt.Sprintf("| Annual savings | €%.2f |\n", out.AnnualSavings))
	b.WriteString(fmt.Sprintf("| ROI (year one) | %s |\n", out.ROIPercentage))
	b.WriteString(fmt.Sprintf("| Break-even | %s |\n", out.BreakEven))
	b.WriteString(fmt.Sprintf("| Confidence | %s |\n", out.ConfidenceLevel))

	if len(out.Risks) > 0 {
		b.WriteString("\n## Projection Risks\n\n")
		for _, r := range out.Risks {
			b.WriteString("- " + r + "\n")
		}
	}
	return b.String()
}

// buildArchitecturePage builds architecture.md — the ranked recommendations.
func buildArchitecturePage(state *wizard.State) string {
	slot := state.Architecture
	var b strings.Builder
	b.WriteString(frontmatter([]string{"compass/architecture"}))
	b.WriteString("# Architecture Recommendations\n\n")

	if len(slot.Recommendations) == 0 {
		b.WriteString("No architecture in the catalog satisfies the stated budget, residency and skill constraints. ")
		b.WriteString("Consider raising the budget or relaxing the residency requirement.\n")
		return b.String()
	}

	for i, rec := range slot.Recommendations {
		b.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, rec.Name))
		b.WriteString(rec.Description + "\n\n")
		b.WriteString(fmt.Sprintf("- **Estimated cost**: €%.0f/month at %.0f queries/month\n", rec.EstimatedMonthlyCost, slot.Inputs.VolumeQueriesPerMonth))
		b.WriteString(fmt.Sprintf("- **Complexity**: %s\n", rec.Complexity))
		b.WriteString(fmt.Sprintf("- **Components**: %s / %s / %s\n", rec.Components.LLM, rec.Components.VectorDB, rec.Components.Orchestration))
		if len(rec.Pros) > 0 {
			b.WriteString("\n**Pros**\n\n")
			for _, p := range rec.Pros {
				b.WriteString("- " + p + "\n")
			}
		}
		if len(rec.Cons) > 0 {
			b.WriteString("\n**Cons**\n\n")
			for _, c := range rec.Cons {
				b.WriteString("- " + c + "\n")
			}
		}
		if rec.CodeExample != "" {
			b.WriteString("\n```go\n" + rec.CodeExample + "\n```\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// buildReadinessPage builds readiness.md.
func buildReadinessPage(state *wizard.State) string {
	out := state.Readiness.Outputs
	var b strings.Builder
	b.WriteString(frontmatter([]string{"compass/readiness", "readiness/" + string(out.ReadinessLevel)}))
	b.WriteString("# Readiness Assessment\n\n")
	b.WriteString(fmt.Sprintf("**Overall**: %d/100 (%s)\n\n", out.OverallScore, out.ReadinessLevel))
	b.WriteString("| Category | Score |\n")
	b.WriteString("|----------|-------|\n")
	b.WriteString(fmt.Sprintf("| Data | %d |\n", out.CategoryScores.Data))
	b.WriteString(fmt.Sprintf("| Technical | %d |\n", out.CategoryScores.Technical))
	b.WriteString(fmt.Sprintf("| Organizational | %d |\n", out.CategoryScores.Organizational))
	b.WriteString(fmt.Sprintf("| Compliance | %d |\n", out.CategoryScores.Compliance))

	if len(out.Gaps) > 0 {
		b.WriteString("\n## Gaps\n\n")
		for _, g := range out.Gaps {
			b.WriteString("- [ ] " + g + "\n")
		}
	}
	if len(out.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, r := range out.Recommendations {
			b.WriteString("- " + r + "\n")
		}
	}
	if len(out.RiskFactors) > 0 {
		b.WriteString("\n## Risk Factors\n\n")
		for _, r := range out.RiskFactors {
			b.WriteString("- " + r + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("\nEstimated timeline including gap remediation: **%d weeks**\n", out.EstimatedTimelineWeeks))
	return b.String()
}

// buildPlanPage builds plan.md — the phased deployment plan.
func buildPlanPage(state *wizard.State) string {
	plan := state.Deployment.Plan
	var b strings.Builder
	b.WriteString(frontmatter([]string{"compass/plan"}))
	b.WriteString("# Deployment Plan\n\n")

	for i, phase := range plan.Phases {
		duration := fmt.Sprintf("%d weeks", phase.DurationWeeks)
		if phase.DurationWeeks == 0 {
			duration = "ongoing"
		}
		b.WriteString(fmt.Sprintf("## Phase %d: %s (%s)\n\n", i+1, phase.Name, duration))
		b.WriteString(phase.Description + "\n\n")
		if len(phase.Tasks) > 0 {
			b.WriteString("**Tasks**\n\n")
			for _, t := range phase.Tasks {
				b.WriteString("- " + t + "\n")
			}
			b.WriteString("\n")
		}
		if len(phase.Deliverables) > 0 {
			b.WriteString("**Deliverables**\n\n")
			for _, d := range phase.Deliverables {
				b.WriteString("- " + d + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(plan.CriticalFactors) > 0 {
		b.WriteString("## Critical Success Factors\n\n")
		for _, f := range plan.CriticalFactors {
			b.WriteString("- " + f + "\n")
		}
		b.WriteString("\n")
	}
	if len(plan.NextSteps) > 0 {
		b.WriteString("## Next Steps\n\n")
		for i, s := range plan.NextSteps {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
		}
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// HTML rendering
// ---------------------------------------------------------------------------

// pageOrder is the reading order of the combined HTML report.
var pageOrder = []string{"index.md", "risk.md", "roi.md", "architecture.md", "readiness.md", "plan.md"}

// renderHTML concatenates the markdown pages in reading order and renders
// them with goldmark (tables enabled for the score and cost tables).
func renderHTML(pages map[string]string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var source strings.Builder
	for _, name := range pageOrder {
		content, ok := pages[name]
		if !ok {
			continue
		}
		source.WriteString(stripFrontmatter(content))
		source.WriteString("\n\n---\n\n")
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>AI Adoption Advisory Report</title>\n</head>\n<body>\n")
	if err := md.Convert([]byte(source.String()), &out); err != nil {
		return "", err
	}
	out.WriteString("</body>\n</html>\n")
	return out.String(), nil
}

// stripFrontmatter drops the leading --- block; the HTML report has no use
// for vault tags.
func stripFrontmatter(content string) string {
	if !strings.HasPrefix(content, "---\n") {
		return content
	}
	rest := content[4:]
	end := strings.Index(rest, "---\n")
	if end < 0 {
		return content
	}
	return strings.TrimLeft(rest[end+4:], "\n")
}

// frontmatter renders a sorted tag list as YAML frontmatter.
func frontmatter(tags []string) string {
	sorted := make([]string, len(tags))
	copy(sorted, tags)
	sort.Strings(sorted)
	var b strings.Builder
	b.WriteString("---\ntags:\n")
	for _, t := range sorted {
		b.WriteString("  - " + t + "\n")
	}
	b.WriteString("---\n\n")
	return b.String()
}
