package main

// batch.go — the non-interactive `compass run` command.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"compass/internal/architecture"
	"compass/internal/readiness"
	"compass/internal/risk"
	"compass/internal/roi"
	"compass/internal/session"
	"compass/internal/wizard"
)

// batchInputs is the YAML shape of a `compass run` inputs file: one section
// per questionnaire stage. Deployment takes no inputs of its own.
type batchInputs struct {
	Risk         risk.Inputs         `yaml:"risk"`
	ROI          roi.Inputs          `yaml:"roi"`
	Architecture architecture.Inputs `yaml:"architecture"`
	Readiness    readiness.Inputs    `yaml:"readiness"`
}

func runBatch(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: compass run <inputs.yaml> [catalog.yaml]")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read inputs %s: %w", args[0], err)
	}
	var in batchInputs
	if err := yaml.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse inputs %s: %w", args[0], err)
	}

	catalogPath := ""
	if len(args) >= 2 {
		catalogPath = args[1]
	}
	catalog, err := architecture.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	store, err := session.Open()
	if err != nil {
		return err
	}

	p := wizard.NewPipeline(catalog)

	riskOut, err := p.RunRisk(in.Risk)
	if err != nil {
		return err
	}
	printRiskSummary(riskOut)
	if p.State().Prohibited() {
		return finishSession(store, p.State())
	}

	roiOut, err := p.RunROI(in.ROI)
	if err != nil {
		return err
	}
	printROISummary(roiOut)

	recs, err := p.RunArchitecture(in.Architecture)
	if err != nil {
		return err
	}
	printArchitectureSummary(recs)

	readyOut, err := p.RunReadiness(in.Readiness)
	if err != nil {
		return err
	}
	printReadinessSummary(readyOut)

	plan, err := p.RunDeployment()
	if err != nil {
		return err
	}
	printPlanSummary(plan)

	return finishSession(store, p.State())
}
