// Package wizard holds the advisory session state and the ordered pipeline
// over the five stage calculators.
//
// The engine proper lives in the stage packages (risk, roi, architecture,
// readiness, deployment); this package owns what surrounds them: one
// {inputs, outputs} slot per stage, field validation before any stage runs
// (INV-2), and the invocation contract risk → roi → architecture →
// readiness → deployment with the prohibited short-circuit (INV-5, INV-13).
package wizard

import (
	"time"

	"github.com/google/uuid"

	"compass/internal/architecture"
	"compass/internal/deployment"
	"compass/internal/readiness"
	"compass/internal/risk"
	"compass/internal/roi"
)

// Stage identifies one of the five pipeline stages.
type Stage string

const (
	StageRisk         Stage = "risk"
	StageROI          Stage = "roi"
	StageArchitecture Stage = "architecture"
	StageReadiness    Stage = "readiness"
	StageDeployment   Stage = "deployment"
)

// Stages lists the pipeline in dependency order.
var Stages = []Stage{StageRisk, StageROI, StageArchitecture, StageReadiness, StageDeployment}

// RiskSlot holds the risk stage's confirmed inputs and computed outputs.
type RiskSlot struct {
	Inputs  risk.Inputs  `json:"inputs" yaml:"inputs"`
	Outputs risk.Outputs `json:"outputs" yaml:"outputs"`
}

// ROISlot holds the ROI stage's confirmed inputs and computed outputs.
type ROISlot struct {
	Inputs  roi.Inputs  `json:"inputs" yaml:"inputs"`
	Outputs roi.Outputs `json:"outputs" yaml:"outputs"`
}

// ArchitectureSlot holds the architecture stage's inputs and ranked results.
type ArchitectureSlot struct {
	Inputs          architecture.Inputs             `json:"inputs" yaml:"inputs"`
	Recommendations []architecture.Recommendation   `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// ReadinessSlot holds the readiness stage's inputs and assessment.
type ReadinessSlot struct {
	Inputs  readiness.Inputs  `json:"inputs" yaml:"inputs"`
	Outputs readiness.Outputs `json:"outputs" yaml:"outputs"`
}

// DeploymentSlot holds the synthesized plan.
type DeploymentSlot struct {
	Plan deployment.Plan `json:"plan" yaml:"plan"`
}

// State is the wizard session aggregate: one slot per stage, populated as
// the user confirms each stage's form. Nil slot = stage not yet run.
type State struct {
	SessionID string    `json:"sessionId" yaml:"session_id"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`

	Risk         *RiskSlot         `json:"risk,omitempty" yaml:"risk,omitempty"`
	ROI          *ROISlot          `json:"roi,omitempty" yaml:"roi,omitempty"`
	Architecture *ArchitectureSlot `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Readiness    *ReadinessSlot    `json:"readiness,omitempty" yaml:"readiness,omitempty"`
	Deployment   *DeploymentSlot   `json:"deployment,omitempty" yaml:"deployment,omitempty"`
}

// NewState creates an empty session.
func NewState() *State {
	return &State{
		SessionID: uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Prohibited reports whether the session was short-circuited by a
// prohibited risk classification (INV-5).
func (s *State) Prohibited() bool {
	return s.Risk != nil && s.Risk.Outputs.Classification == risk.Prohibited
}

// Completed reports whether the given stage has run.
func (s *State) Completed(stage Stage) bool {
	switch stage {
	case StageRisk:
		return s.Risk != nil
	case StageROI:
		return s.ROI != nil
	case StageArchitecture:
		return s.Architecture != nil
	case StageReadiness:
		return s.Readiness != nil
	case StageDeployment:
		return s.Deployment != nil
	}
	return false
}

// TopRecommendation returns the highest-ranked architecture, or nil when the
// selector returned an empty list (the caller decides how to relax, INV-11).
func (s *State) TopRecommendation() *architecture.Recommendation {
	if s.Architecture == nil || len(s.Architecture.Recommendations) == 0 {
		return nil
	}
	return &s.Architecture.Recommendations[0]
}
