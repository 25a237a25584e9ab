package wizard

// wizard.go — the ordered pipeline over the five stage calculators.
//
// Each Run method validates its inputs (INV-2), checks its dependencies
// completed (INV-13), runs the pure stage function, stores the slot, and
// clears every downstream slot (INV-14). After a prohibited classification
// every later stage refuses to run (INV-5).

import (
	"compass/internal/architecture"
	"compass/internal/deployment"
	"compass/internal/readiness"
	"compass/internal/risk"
	"compass/internal/roi"
)

// Pipeline drives a session through the five stages in dependency order.
type Pipeline struct {
	state   *State
	catalog []architecture.Architecture
}

// NewPipeline starts a pipeline over a fresh session. A nil catalog means
// the built-in reference catalog.
func NewPipeline(catalog []architecture.Architecture) *Pipeline {
	if catalog == nil {
		catalog = architecture.DefaultCatalog()
	}
	return &Pipeline{state: NewState(), catalog: catalog}
}

// Resume continues a pipeline over a previously saved session.
func Resume(state *State, catalog []architecture.Architecture) *Pipeline {
	if catalog == nil {
		catalog = architecture.DefaultCatalog()
	}
	return &Pipeline{state: state, catalog: catalog}
}

// State exposes the session aggregate for display and persistence.
func (p *Pipeline) State() *State {
	return p.state
}

// guard refuses a stage after a prohibited classification (INV-5) and
// before its dependencies completed (INV-13).
func (p *Pipeline) guard(stage Stage, deps ...Stage) error {
	if stage != StageRisk && p.state.Prohibited() {
		return sequencef(stage, "wizard short-circuited: system is prohibited under Article 5")
	}
	for _, dep := range deps {
		if !p.state.Completed(dep) {
			return sequencef(stage, "requires the %s stage to complete first", dep)
		}
	}
	return nil
}

// clearFrom drops the slots of stage and everything after it, so downstream
// outputs can never go stale when an upstream stage is re-run (INV-14).
func (p *Pipeline) clearFrom(stage Stage) {
	clear := false
	for _, s := range Stages {
		if s == stage {
			clear = true
		}
		if !clear {
			continue
		}
		switch s {
		case StageRisk:
			p.state.Risk = nil
		case StageROI:
			p.state.ROI = nil
		case StageArchitecture:
			p.state.Architecture = nil
		case StageReadiness:
			p.state.Readiness = nil
		case StageDeployment:
			p.state.Deployment = nil
		}
	}
}

// RunRisk classifies the system and seeds the session. Re-running resets
// the whole pipeline (INV-14).
func (p *Pipeline) RunRisk(in risk.Inputs) (risk.Outputs, error) {
	if err := validateRisk(in); err != nil {
		return risk.Outputs{}, err
	}
	p.clearFrom(StageRisk)
	out := risk.Classify(in)
	p.state.Risk = &RiskSlot{Inputs: in, Outputs: out}
	return out, nil
}

// RunROI projects savings. Requires a non-prohibited risk classification.
func (p *Pipeline) RunROI(in roi.Inputs) (roi.Outputs, error) {
	if err := p.guard(StageROI, StageRisk); err != nil {
		return roi.Outputs{}, err
	}
	if err := validateROI(in); err != nil {
		return roi.Outputs{}, err
	}
	p.clearFrom(StageROI)
	out := roi.Calculate(in)
	p.state.ROI = &ROISlot{Inputs: in, Outputs: out}
	return out, nil
}

// RunArchitecture ranks the catalog against the constraints. The result may
// be empty; relaxing constraints is the caller's decision (INV-11).
func (p *Pipeline) RunArchitecture(in architecture.Inputs) ([]architecture.Recommendation, error) {
	if err := p.guard(StageArchitecture, StageRisk, StageROI); err != nil {
		return nil, err
	}
	if err := validateArchitecture(in); err != nil {
		return nil, err
	}
	p.clearFrom(StageArchitecture)
	recs := architecture.Select(in, p.catalog)
	p.state.Architecture = &ArchitectureSlot{Inputs: in, Recommendations: recs}
	return recs, nil
}

// RunReadiness scores organizational preparedness.
func (p *Pipeline) RunReadiness(in readiness.Inputs) (readiness.Outputs, error) {
	if err := p.guard(StageReadiness, StageRisk, StageROI, StageArchitecture); err != nil {
		return readiness.Outputs{}, err
	}
	if err := validateReadiness(in); err != nil {
		return readiness.Outputs{}, err
	}
	p.clearFrom(StageReadiness)
	out := readiness.Score(in)
	p.state.Readiness = &ReadinessSlot{Inputs: in, Outputs: out}
	return out, nil
}

// RunDeployment synthesizes the plan from all four upstream outputs.
func (p *Pipeline) RunDeployment() (deployment.Plan, error) {
	if err := p.guard(StageDeployment, StageRisk, StageROI, StageArchitecture, StageReadiness); err != nil {
		return deployment.Plan{}, err
	}
	plan, err := deployment.Generate(deployment.Inputs{
		Risk:         p.state.Risk.Outputs,
		ROI:          p.state.ROI.Outputs,
		Architecture: p.state.TopRecommendation(),
		Readiness:    p.state.Readiness.Outputs,
	})
	if err != nil {
		return deployment.Plan{}, err
	}
	p.state.Deployment = &DeploymentSlot{Plan: plan}
	return plan, nil
}
