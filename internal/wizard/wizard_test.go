package wizard

// wizard_test.go — sequencing, validation, short-circuit, slot clearing.
//
// Invariants tested (see INVARIANT.md):
//   INV-2   invalid fields are refused by name, never clamped
//   INV-5   prohibited classification short-circuits later stages
//   INV-13  out-of-order invocation fails with a SequencingError
//   INV-14  re-running a stage clears downstream slots

import (
	"errors"
	"testing"

	"compass/internal/architecture"
	"compass/internal/readiness"
	"compass/internal/risk"
	"compass/internal/roi"
)

// validRisk/validROI/validArch/validReadiness are baseline stage inputs for
// walking the pipeline in tests.

func validRisk() risk.Inputs {
	return risk.Inputs{DecisionsPerYear: 50000, AffectedIndividuals: 2000}
}

func validROI() roi.Inputs {
	return roi.Inputs{
		TasksPerMonth:        1000,
		MinutesPerTask:       15,
		LaborCostPerHour:     25,
		ErrorRate:            5,
		ErrorCostPerIncident: 100,
		AISuccessRate:        92,
		AICostPerTask:        0.5,
		HumanReviewPercent:   15,
		ImplementationCost:   50000,
	}
}

func validArch() architecture.Inputs {
	return architecture.Inputs{
		BudgetPerMonth:        1000,
		VolumeQueriesPerMonth: 10000,
		DataResidency:         architecture.ResidencyEU,
	}
}

func validReadiness() readiness.Inputs {
	return readiness.Inputs{
		DataSourcesIdentified: true,
		DataAccessible:        true,
		PrivacyCleared:        true,
		DataQuality:           readiness.DataQualityHigh,
		MLExperience:          true,
		APIIntegrationDone:    true,
		MonitoringInPlace:     true,
		TeamSize:              4,
		ExecutiveSponsor:      true,
		BudgetApproved:        true,
		ChangeManagementPlan:  true,
		TimelineWeeks:         10,
		GDPRCompliant:         true,
		AIActAssessed:         true,
		AuditTrail:            true,
		IncidentResponsePlan:  true,
	}
}

// runToReadiness walks a pipeline through the first four stages.
func runToReadiness(t *testing.T, p *Pipeline) {
	t.Helper()
	if _, err := p.RunRisk(validRisk()); err != nil {
		t.Fatalf("RunRisk: %v", err)
	}
	if _, err := p.RunROI(validROI()); err != nil {
		t.Fatalf("RunROI: %v", err)
	}
	if _, err := p.RunArchitecture(validArch()); err != nil {
		t.Fatalf("RunArchitecture: %v", err)
	}
	if _, err := p.RunReadiness(validReadiness()); err != nil {
		t.Fatalf("RunReadiness: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Happy path
// ---------------------------------------------------------------------------

// TestFullPipeline walks all five stages and checks the session fills up.
func TestFullPipeline(t *testing.T) {
	p := NewPipeline(nil)
	runToReadiness(t, p)
	plan, err := p.RunDeployment()
	if err != nil {
		t.Fatalf("RunDeployment: %v", err)
	}
	if len(plan.Phases) == 0 {
		t.Error("plan has no phases")
	}
	st := p.State()
	for _, stage := range Stages {
		if !st.Completed(stage) {
			t.Errorf("stage %s not completed after full run", stage)
		}
	}
	if st.SessionID == "" {
		t.Error("SessionID is empty")
	}
	if top := st.TopRecommendation(); top == nil {
		t.Error("TopRecommendation is nil, want the cheapest EU-compatible entry")
	} else if plan.Summary.Architecture != top.Name {
		t.Errorf("Summary.Architecture = %q, want top recommendation %q", plan.Summary.Architecture, top.Name)
	}
}

// ---------------------------------------------------------------------------
// Sequencing (INV-13)
// ---------------------------------------------------------------------------

// TestOutOfOrderRefused verifies every downstream stage refuses to run
// before its dependencies, with a SequencingError.
func TestOutOfOrderRefused(t *testing.T) {
	p := NewPipeline(nil)

	assertSequencing := func(name string, err error) {
		t.Helper()
		if err == nil {
			t.Fatalf("%s ran without dependencies, want SequencingError", name)
		}
		var seqErr *SequencingError
		if !errors.As(err, &seqErr) {
			t.Fatalf("%s error = %v (%T), want *SequencingError", name, err, err)
		}
	}

	_, err := p.RunROI(validROI())
	assertSequencing("RunROI", err)
	_, err = p.RunArchitecture(validArch())
	assertSequencing("RunArchitecture", err)
	_, err = p.RunReadiness(validReadiness())
	assertSequencing("RunReadiness", err)
	_, err = p.RunDeployment()
	assertSequencing("RunDeployment", err)

	// Completing risk unlocks roi but not readiness.
	if _, err := p.RunRisk(validRisk()); err != nil {
		t.Fatalf("RunRisk: %v", err)
	}
	_, err = p.RunReadiness(validReadiness())
	assertSequencing("RunReadiness after risk only", err)
}

// TestProhibitedShortCircuit verifies no later stage runs once the system is
// classified prohibited (INV-5).
func TestProhibitedShortCircuit(t *testing.T) {
	p := NewPipeline(nil)
	out, err := p.RunRisk(risk.Inputs{ManipulativeTechniques: true})
	if err != nil {
		t.Fatalf("RunRisk: %v", err)
	}
	if out.Classification != risk.Prohibited {
		t.Fatalf("Classification = %q, want prohibited", out.Classification)
	}
	if !p.State().Prohibited() {
		t.Fatal("State.Prohibited() = false, want true")
	}
	if _, err := p.RunROI(validROI()); err == nil {
		t.Error("RunROI ran after prohibited classification, want SequencingError")
	}
	if _, err := p.RunDeployment(); err == nil {
		t.Error("RunDeployment ran after prohibited classification, want SequencingError")
	}

	// Correcting the risk inputs un-blocks the wizard.
	if _, err := p.RunRisk(validRisk()); err != nil {
		t.Fatalf("RunRisk (corrected): %v", err)
	}
	if _, err := p.RunROI(validROI()); err != nil {
		t.Errorf("RunROI after corrected risk: %v", err)
	}
}

// TestRerunClearsDownstream verifies re-running an upstream stage drops every
// later slot (INV-14).
func TestRerunClearsDownstream(t *testing.T) {
	p := NewPipeline(nil)
	runToReadiness(t, p)
	if _, err := p.RunDeployment(); err != nil {
		t.Fatalf("RunDeployment: %v", err)
	}

	// Re-running ROI invalidates architecture, readiness and deployment.
	if _, err := p.RunROI(validROI()); err != nil {
		t.Fatalf("RunROI rerun: %v", err)
	}
	st := p.State()
	if !st.Completed(StageRisk) || !st.Completed(StageROI) {
		t.Error("risk/roi slots lost on ROI rerun")
	}
	for _, stage := range []Stage{StageArchitecture, StageReadiness, StageDeployment} {
		if st.Completed(stage) {
			t.Errorf("stage %s still completed after ROI rerun, want cleared", stage)
		}
	}
	if _, err := p.RunDeployment(); err == nil {
		t.Error("RunDeployment ran on cleared dependencies, want SequencingError")
	}
}

// ---------------------------------------------------------------------------
// Validation (INV-2)
// ---------------------------------------------------------------------------

// TestValidationNamesField verifies invalid values are refused with the
// offending field named in the error.
func TestValidationNamesField(t *testing.T) {
	tests := []struct {
		name  string
		run   func(p *Pipeline) error
		field string
	}{
		{
			name: "negative affected individuals",
			run: func(p *Pipeline) error {
				_, err := p.RunRisk(risk.Inputs{AffectedIndividuals: -5})
				return err
			},
			field: "affectedIndividuals",
		},
		{
			name: "negative labor cost",
			run: func(p *Pipeline) error {
				in := validROI()
				in.LaborCostPerHour = -1
				_, err := p.RunROI(in)
				return err
			},
			field: "laborCostPerHour",
		},
		{
			name: "error rate above 100",
			run: func(p *Pipeline) error {
				in := validROI()
				in.ErrorRate = 150
				_, err := p.RunROI(in)
				return err
			},
			field: "errorRate",
		},
		{
			name: "unknown residency",
			run: func(p *Pipeline) error {
				in := validArch()
				in.DataResidency = "moon"
				_, err := p.RunArchitecture(in)
				return err
			},
			field: "dataResidency",
		},
		{
			name: "unknown data quality",
			run: func(p *Pipeline) error {
				in := validReadiness()
				in.DataQuality = "excellent"
				_, err := p.RunReadiness(in)
				return err
			},
			field: "dataQuality",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline(nil)
			runToReadiness(t, p)
			err := tt.run(p)
			if err == nil {
				t.Fatal("invalid input accepted, want ValidationError")
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("error = %v (%T), want *ValidationError", err, err)
			}
			if valErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", valErr.Field, tt.field)
			}
		})
	}
}

// TestValidationLeavesSlotUntouched verifies a refused stage does not
// overwrite or clear anything.
func TestValidationLeavesSlotUntouched(t *testing.T) {
	p := NewPipeline(nil)
	runToReadiness(t, p)
	in := validROI()
	in.AISuccessRate = 200
	if _, err := p.RunROI(in); err == nil {
		t.Fatal("invalid input accepted")
	}
	st := p.State()
	for _, stage := range []Stage{StageRisk, StageROI, StageArchitecture, StageReadiness} {
		if !st.Completed(stage) {
			t.Errorf("stage %s cleared by a refused invocation", stage)
		}
	}
}

// ---------------------------------------------------------------------------
// Resume
// ---------------------------------------------------------------------------

// TestResumeContinuesSession verifies a pipeline resumed over a saved state
// can run the remaining stages.
func TestResumeContinuesSession(t *testing.T) {
	p := NewPipeline(nil)
	runToReadiness(t, p)
	saved := p.State()

	resumed := Resume(saved, nil)
	plan, err := resumed.RunDeployment()
	if err != nil {
		t.Fatalf("RunDeployment on resumed session: %v", err)
	}
	if plan.Summary.ReadinessScore != saved.Readiness.Outputs.OverallScore {
		t.Errorf("resumed plan readiness = %d, want %d", plan.Summary.ReadinessScore, saved.Readiness.Outputs.OverallScore)
	}
}
