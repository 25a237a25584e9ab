package readiness

// readiness_test.go — category weighting, bounds, gaps, timeline penalty.
//
// Invariants tested (see INVARIANT.md):
//   INV-1   Score is pure and deterministic
//   INV-8   category weights sum to 100; all scores within [0,100]
//   INV-9   overall is the rounded mean of the four categories
//   INV-10  timeline penalty is 10% per gap, rounded up

import (
	"reflect"
	"strings"
	"testing"
)

// fullInputs returns a questionnaire with everything in place.
func fullInputs() Inputs {
	return Inputs{
		DataSourcesIdentified: true,
		DataAccessible:        true,
		PrivacyCleared:        true,
		DataQuality:           DataQualityHigh,
		MLExperience:          true,
		APIIntegrationDone:    true,
		MonitoringInPlace:     true,
		TeamSize:              4,
		ExecutiveSponsor:      true,
		BudgetApproved:        true,
		ChangeManagementPlan:  true,
		TimelineWeeks:         12,
		GDPRCompliant:         true,
		AIActAssessed:         true,
		AuditTrail:            true,
		IncidentResponsePlan:  true,
	}
}

// ---------------------------------------------------------------------------
// Bounds and the perfect-score scenario
// ---------------------------------------------------------------------------

// TestPerfectScore pins the all-true scenario: every category 100, overall
// 100, ready, no gaps, no penalty.
func TestPerfectScore(t *testing.T) {
	out := Score(fullInputs())
	want := CategoryScores{Data: 100, Technical: 100, Organizational: 100, Compliance: 100}
	if out.CategoryScores != want {
		t.Errorf("CategoryScores = %+v, want %+v", out.CategoryScores, want)
	}
	if out.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", out.OverallScore)
	}
	if out.ReadinessLevel != Ready {
		t.Errorf("ReadinessLevel = %q, want %q", out.ReadinessLevel, Ready)
	}
	if len(out.Gaps) != 0 {
		t.Errorf("Gaps = %v, want none", out.Gaps)
	}
	if len(out.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want none", out.Recommendations)
	}
	if out.EstimatedTimelineWeeks != 12 {
		t.Errorf("EstimatedTimelineWeeks = %d, want unpenalized 12", out.EstimatedTimelineWeeks)
	}
}

// TestZeroInputsBounded verifies the empty questionnaire stays within
// bounds and lands at not-ready.
func TestZeroInputsBounded(t *testing.T) {
	out := Score(Inputs{})
	for name, score := range map[string]int{
		"data":           out.CategoryScores.Data,
		"technical":      out.CategoryScores.Technical,
		"organizational": out.CategoryScores.Organizational,
		"compliance":     out.CategoryScores.Compliance,
		"overall":        out.OverallScore,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s score = %d, want within [0,100]", name, score)
		}
	}
	if out.ReadinessLevel != NotReady {
		t.Errorf("ReadinessLevel = %q, want %q", out.ReadinessLevel, NotReady)
	}
	if len(out.Gaps) != 13 {
		t.Errorf("len(Gaps) = %d, want all 13 checklist items missing", len(out.Gaps))
	}
	if len(out.Recommendations) != 4 {
		t.Errorf("len(Recommendations) = %d, want one per category", len(out.Recommendations))
	}
}

// TestCategoryBands verifies the categorical 25-point bands.
func TestCategoryBands(t *testing.T) {
	t.Run("data quality", func(t *testing.T) {
		for quality, want := range map[DataQuality]int{
			DataQualityHigh:   25,
			DataQualityMedium: 15,
			DataQualityLow:    5,
		} {
			out := Score(Inputs{DataQuality: quality})
			if out.CategoryScores.Data != want {
				t.Errorf("data score with quality %q = %d, want %d", quality, out.CategoryScores.Data, want)
			}
		}
	})
	t.Run("team size", func(t *testing.T) {
		for size, want := range map[int]int{0: 0, 1: 12, 2: 12, 3: 25, 10: 25} {
			out := Score(Inputs{TeamSize: size})
			if out.CategoryScores.Technical != want {
				t.Errorf("technical score with team size %d = %d, want %d", size, out.CategoryScores.Technical, want)
			}
		}
	})
	t.Run("timeline", func(t *testing.T) {
		for weeks, want := range map[int]int{0: 0, 3: 0, 4: 12, 7: 12, 8: 25, 26: 25} {
			out := Score(Inputs{TimelineWeeks: weeks})
			if out.CategoryScores.Organizational != want {
				t.Errorf("organizational score with %d weeks = %d, want %d", weeks, out.CategoryScores.Organizational, want)
			}
		}
	})
}

// TestOverallIsRoundedMean verifies INV-9 on a mixed questionnaire.
func TestOverallIsRoundedMean(t *testing.T) {
	in := Inputs{
		// data: 2 items + medium quality = 50 + 15 = 65
		DataSourcesIdentified: true,
		DataAccessible:        true,
		DataQuality:           DataQualityMedium,
		// technical: 1 item + team of 2 = 25 + 12 = 37
		MLExperience: true,
		TeamSize:     2,
		// organizational: 3 items + 12 weeks = 75 + 25 = 100
		ExecutiveSponsor:     true,
		BudgetApproved:       true,
		ChangeManagementPlan: true,
		TimelineWeeks:        12,
		// compliance: 2 items = 50
		GDPRCompliant: true,
		AuditTrail:    true,
	}
	out := Score(in)
	want := CategoryScores{Data: 65, Technical: 37, Organizational: 100, Compliance: 50}
	if out.CategoryScores != want {
		t.Fatalf("CategoryScores = %+v, want %+v", out.CategoryScores, want)
	}
	// mean(65,37,100,50) = 63 exactly
	if out.OverallScore != 63 {
		t.Errorf("OverallScore = %d, want 63", out.OverallScore)
	}
	if out.ReadinessLevel != NeedsPreparation {
		t.Errorf("ReadinessLevel = %q, want %q", out.ReadinessLevel, NeedsPreparation)
	}
}

// ---------------------------------------------------------------------------
// Levels
// ---------------------------------------------------------------------------

// TestLevelThresholds verifies the 70/40 verdict boundaries.
func TestLevelThresholds(t *testing.T) {
	tests := []struct {
		overall int
		want    Level
	}{
		{100, Ready},
		{70, Ready},
		{69, NeedsPreparation},
		{40, NeedsPreparation},
		{39, NotReady},
		{0, NotReady},
	}
	for _, tt := range tests {
		if got := level(tt.overall); got != tt.want {
			t.Errorf("level(%d) = %q, want %q", tt.overall, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Gaps, penalty, risk factors
// ---------------------------------------------------------------------------

// TestTimelinePenalty verifies the 10%-per-gap upward adjustment (INV-10).
func TestTimelinePenalty(t *testing.T) {
	in := fullInputs()
	in.PrivacyCleared = false // 1 gap
	in.AuditTrail = false     // 2 gaps
	out := Score(in)
	if len(out.Gaps) != 2 {
		t.Fatalf("len(Gaps) = %d, want 2", len(out.Gaps))
	}
	// 12 * (1 + 0.10*2) = 14.4 → 15
	if out.EstimatedTimelineWeeks != 15 {
		t.Errorf("EstimatedTimelineWeeks = %d, want 15", out.EstimatedTimelineWeeks)
	}
}

// TestGapsPhrasedAsActions verifies each false item yields an action phrase.
func TestGapsPhrasedAsActions(t *testing.T) {
	in := fullInputs()
	in.MonitoringInPlace = false
	out := Score(in)
	want := []string{"Stand up monitoring for model behavior in production"}
	if !reflect.DeepEqual(out.Gaps, want) {
		t.Errorf("Gaps = %v, want %v", out.Gaps, want)
	}
}

// TestRiskFactorCombinations verifies compounding-risk detection.
func TestRiskFactorCombinations(t *testing.T) {
	t.Run("low quality without ML experience", func(t *testing.T) {
		in := fullInputs()
		in.DataQuality = DataQualityLow
		in.MLExperience = false
		out := Score(in)
		if !containsSubstring(out.RiskFactors, "quality problems") {
			t.Errorf("RiskFactors = %v, want low-quality/no-experience factor", out.RiskFactors)
		}
	})
	t.Run("aggressive timeline while unready", func(t *testing.T) {
		in := Inputs{TimelineWeeks: 5, TeamSize: 2}
		out := Score(in)
		if !containsSubstring(out.RiskFactors, "aggressive") {
			t.Errorf("RiskFactors = %v, want aggressive-timeline factor", out.RiskFactors)
		}
	})
	t.Run("no factors when healthy", func(t *testing.T) {
		out := Score(fullInputs())
		if len(out.RiskFactors) != 0 {
			t.Errorf("RiskFactors = %v, want none", out.RiskFactors)
		}
	})
}

// TestScoreIdempotent verifies identical inputs yield identical outputs
// (INV-1).
func TestScoreIdempotent(t *testing.T) {
	in := fullInputs()
	in.BudgetApproved = false
	a := Score(in)
	b := Score(in)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Score not idempotent:\n  first  %+v\n  second %+v", a, b)
	}
}

// containsSubstring reports whether any entry contains the substring.
func containsSubstring(entries []string, sub string) bool {
	for _, e := range entries {
		if strings.Contains(e, sub) {
			return true
		}
	}
	return false
}
