// compass — EU AI Act advisory wizard.
//
// Five calculators behind one session: risk classification, ROI projection,
// architecture selection, readiness scoring and deployment planning.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"compass/internal/architecture"
	"compass/internal/export"
	"compass/internal/session"
	"compass/internal/wizard"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "wizard",
		short: "Run the interactive advisory wizard",
		usage: "compass wizard [catalog.yaml]",
		long: `Walk through the five advisory stages interactively:
risk classification, ROI projection, architecture selection,
readiness assessment and deployment planning.

A prohibited risk classification ends the session early: the
remaining stages cannot run for a system that may not be deployed.

The optional catalog.yaml replaces the built-in architecture
catalog. The finished session is saved under ~/.compass/.
`,
		run: runWizard,
	},
	{
		name:  "run",
		short: "Run all stages from a YAML inputs file",
		usage: "compass run <inputs.yaml> [catalog.yaml]",
		long: `Run the full pipeline non-interactively from a single YAML
document with one section per stage:

    risk:         { employment: true, decisions_per_year: 12000, ... }
    roi:          { tasks_per_month: 1000, minutes_per_task: 15, ... }
    architecture: { budget_per_month: 1000, data_residency: eu, ... }
    readiness:    { data_sources_identified: true, team_size: 3, ... }

Prints the stage summaries and saves the session under ~/.compass/.
`,
		run: runBatch,
	},
	{
		name:  "sessions",
		short: "List saved advisory sessions",
		usage: "compass sessions",
		long: `List the sessions saved under ~/.compass/ with their creation
time, risk classification and stage progress.
`,
		run: runSessions,
	},
	{
		name:  "export",
		short: "Write the advisory report for a session",
		usage: "compass export <session> <outdir>",
		long: `Generate the advisory report for a saved session: one markdown
page per completed stage plus a single-file HTML report, written
to <outdir>.
`,
		run: runExport,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "compass — EU AI Act advisory wizard\n\n")
	fmt.Fprintf(w, "Usage:\n  compass <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'compass help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "compass: unknown command %q\n\nRun 'compass help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'compass help' for usage.", args[0])
}

// ---------------------------------------------------------------------------
// wizard
// ---------------------------------------------------------------------------

func runWizard(args []string) error {
	catalogPath := ""
	if len(args) >= 1 {
		catalogPath = args[0]
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

	riskIn, err := promptRiskInputs()
	if err != nil {
		return err
	}
	riskOut, err := p.RunRisk(riskIn)
	if err != nil {
		return err
	}
	printRiskSummary(riskOut)

	// Article 5: nothing downstream makes sense for a prohibited system.
	if p.State().Prohibited() {
		return finishSession(store, p.State())
	}

	roiIn, err := promptROIInputs()
	if err != nil {
		return err
	}
	roiOut, err := p.RunROI(roiIn)
	if err != nil {
		return err
	}
	printROISummary(roiOut)

	archIn, err := promptArchitectureInputs()
	if err != nil {
		return err
	}
	recs, err := p.RunArchitecture(archIn)
	if err != nil {
		return err
	}
	printArchitectureSummary(recs)

	readyIn, err := promptReadinessInputs()
	if err != nil {
		return err
	}
	readyOut, err := p.RunReadiness(readyIn)
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

// finishSession saves the state and tells the user where it went.
func finishSession(store *session.Store, state *wizard.State) error {
	if err := store.Save(state); err != nil {
		return err
	}
	fmt.Printf("\nsession %s saved\n", state.SessionID)
	fmt.Printf("run 'compass export %s <outdir>' to generate the report\n", state.SessionID)
	return nil
}

// ---------------------------------------------------------------------------
// sessions
// ---------------------------------------------------------------------------

func runSessions(args []string) error {
	store, err := session.Open()
	if err != nil {
		return err
	}
	ids, err := store.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("no saved sessions")
		return nil
	}
	for _, id := range ids {
		state, err := store.Load(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading session %q: %v\n", id, err)
			continue
		}
		done := 0
		for _, stage := range wizard.Stages {
			if state.Completed(stage) {
				done++
			}
		}
		classification := "-"
		if state.Risk != nil {
			classification = string(state.Risk.Outputs.Classification)
		}
		fmt.Printf("%s  %s  %-12s  %d/%d stages\n",
			id, state.CreatedAt.Format("2006-01-02 15:04"), classification, done, len(wizard.Stages))
	}
	return nil
}

// ---------------------------------------------------------------------------
// export
// ---------------------------------------------------------------------------

func runExport(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: compass export <session> <outdir>")
	}
	store, err := session.Open()
	if err != nil {
		return err
	}
	state, err := store.Load(args[0])
	if err != nil {
		return err
	}
	bundle, err := export.GenerateBundle(state)
	if err != nil {
		return err
	}
	if err := export.WriteBundle(bundle, args[1]); err != nil {
		return err
	}
	for _, p := range bundle.Paths() {
		fmt.Printf("wrote %s\n", p)
	}
	return nil
}

func main() {
	if err := dispatch(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
