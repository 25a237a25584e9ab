package main

import (
	"strings"
	"testing"
)

// helpText calls the help function and returns the output as a string.
func helpText() string {
	var sb strings.Builder
	printUsage(&sb)
	return sb.String()
}

// longHelpText returns the long help for a named command.
func longHelpText(name string) string {
	var sb strings.Builder
	printCommandHelp(&sb, name)
	return sb.String()
}

// TestHelpContainsAllCommands verifies the help listing is derived from the
// commands slice: every registered command name appears in the output.
func TestHelpContainsAllCommands(t *testing.T) {
	help := helpText()
	for _, cmd := range commands {
		if !strings.Contains(help, cmd.name) {
			t.Errorf("help output missing command %q", cmd.name)
		}
		if !strings.Contains(help, cmd.short) {
			t.Errorf("help output missing short description for %q", cmd.short)
		}
	}
}

// TestHelpContainsUsageHeader verifies the overall help has a usage header.
func TestHelpContainsUsageHeader(t *testing.T) {
	help := helpText()
	if !strings.Contains(help, "Usage:") {
		t.Error("help output missing 'Usage:' header")
	}
	if !strings.Contains(help, "compass") {
		t.Error("help output missing program name 'compass'")
	}
}

// TestLongHelpForKnownCommands verifies each registered command has a long
// help section containing its usage line.
func TestLongHelpForKnownCommands(t *testing.T) {
	for _, cmd := range commands {
		long := longHelpText(cmd.name)
		if !strings.Contains(long, cmd.usage) {
			t.Errorf("long help for %q missing usage %q", cmd.name, cmd.usage)
		}
	}
}

// TestLongHelpUnknownCommand verifies asking for help on a nonsense name
// reports the name back.
func TestLongHelpUnknownCommand(t *testing.T) {
	long := longHelpText("frobnicate")
	if !strings.Contains(long, "frobnicate") {
		t.Error("unknown-command help should echo the requested name")
	}
}

// TestDispatchUnknownCommand verifies an unrecognized subcommand errors.
func TestDispatchUnknownCommand(t *testing.T) {
	err := dispatch([]string{"frobnicate"})
	if err == nil {
		t.Fatal("dispatch accepted unknown command")
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("error %q does not name the unknown command", err)
	}
}

// TestDecodeRisk verifies yes/no and numeric answers land in the right
// fields.
func TestDecodeRisk(t *testing.T) {
	answers := map[string]string{
		"employment":          "y",
		"lawEnforcement":      "no",
		"decisionsPerYear":    "12000",
		"affectedIndividuals": "",
	}
	in, err := decodeRisk(answers)
	if err != nil {
		t.Fatalf("decodeRisk: %v", err)
	}
	if !in.Employment {
		t.Error("employment = false, want true")
	}
	if in.LawEnforcement {
		t.Error("lawEnforcement = true, want false")
	}
	if in.DecisionsPerYear != 12000 {
		t.Errorf("decisionsPerYear = %d, want 12000", in.DecisionsPerYear)
	}
	if in.AffectedIndividuals != 0 {
		t.Errorf("affectedIndividuals = %d, want 0 for empty answer", in.AffectedIndividuals)
	}
}

// TestDecodeRiskRejectsBadBool verifies a malformed yes/no answer names the
// offending field.
func TestDecodeRiskRejectsBadBool(t *testing.T) {
	_, err := decodeRisk(map[string]string{"employment": "maybe"})
	if err == nil {
		t.Fatal("decodeRisk accepted a malformed boolean")
	}
	if !strings.Contains(err.Error(), "employment") {
		t.Errorf("error %q does not name the field", err)
	}
}

// TestDecodeROI verifies numeric parsing and the zero default for empty
// answers.
func TestDecodeROI(t *testing.T) {
	in, err := decodeROI(map[string]string{
		"tasksPerMonth":  "1000",
		"minutesPerTask": "7.5",
	})
	if err != nil {
		t.Fatalf("decodeROI: %v", err)
	}
	if in.TasksPerMonth != 1000 {
		t.Errorf("tasksPerMonth = %v, want 1000", in.TasksPerMonth)
	}
	if in.MinutesPerTask != 7.5 {
		t.Errorf("minutesPerTask = %v, want 7.5", in.MinutesPerTask)
	}
	if in.ImplementationCost != 0 {
		t.Errorf("implementationCost = %v, want 0 for empty answer", in.ImplementationCost)
	}
}

// TestDecodeArchitecture verifies the residency enum and the skill list
// splitting.
func TestDecodeArchitecture(t *testing.T) {
	in, err := decodeArchitecture(map[string]string{
		"budgetPerMonth":        "1500",
		"volumeQueriesPerMonth": "20000",
		"dataResidency":         "EU",
		"teamSkills":            "python, ml-ops , ",
	})
	if err != nil {
		t.Fatalf("decodeArchitecture: %v", err)
	}
	if in.DataResidency != "eu" {
		t.Errorf("dataResidency = %q, want %q", in.DataResidency, "eu")
	}
	want := []string{"python", "ml-ops"}
	if len(in.TeamSkills) != len(want) {
		t.Fatalf("teamSkills = %v, want %v", in.TeamSkills, want)
	}
	for i := range want {
		if in.TeamSkills[i] != want[i] {
			t.Errorf("teamSkills[%d] = %q, want %q", i, in.TeamSkills[i], want[i])
		}
	}
}

// TestDecodeArchitectureRejectsBadResidency verifies an invalid residency is
// refused with the valid options listed.
func TestDecodeArchitectureRejectsBadResidency(t *testing.T) {
	_, err := decodeArchitecture(map[string]string{
		"budgetPerMonth": "100",
		"dataResidency":  "mars",
	})
	if err == nil {
		t.Fatal("decodeArchitecture accepted residency \"mars\"")
	}
	if !strings.Contains(err.Error(), "eu, us, any") {
		t.Errorf("error %q does not list the valid options", err)
	}
}

// TestDecodeReadiness verifies the data-quality enum and the checklist
// booleans.
func TestDecodeReadiness(t *testing.T) {
	in, err := decodeReadiness(map[string]string{
		"dataSourcesIdentified": "yes",
		"dataQuality":           "medium",
		"teamSize":              "3",
		"timelineWeeks":         "10",
		"gdprCompliant":         "true",
	})
	if err != nil {
		t.Fatalf("decodeReadiness: %v", err)
	}
	if !in.DataSourcesIdentified {
		t.Error("dataSourcesIdentified = false, want true")
	}
	if in.DataQuality != "medium" {
		t.Errorf("dataQuality = %q, want %q", in.DataQuality, "medium")
	}
	if in.TeamSize != 3 || in.TimelineWeeks != 10 {
		t.Errorf("teamSize/timelineWeeks = %d/%d, want 3/10", in.TeamSize, in.TimelineWeeks)
	}
	if !in.GDPRCompliant {
		t.Error("gdprCompliant = false, want true")
	}
}

// TestQuestionHints verifies the per-kind input hints.
func TestQuestionHints(t *testing.T) {
	cases := []struct {
		q    question
		want string
	}{
		{question{kind: kindBool}, "(y/n)"},
		{question{kind: kindEnum, options: []string{"eu", "us", "any"}}, "(eu/us/any)"},
		{question{kind: kindList}, "(comma-separated, empty for none)"},
		{question{kind: kindFloat}, ""},
		{question{kind: kindInt}, ""},
	}
	for _, tc := range cases {
		if got := tc.q.hint(); got != tc.want {
			t.Errorf("hint() = %q, want %q", got, tc.want)
		}
	}
}

// TestStageQuestionKeysUnique verifies no questionnaire reuses a key, since
// answers are keyed by it.
func TestStageQuestionKeysUnique(t *testing.T) {
	forms := map[string][]question{
		"risk":         riskQuestions,
		"roi":          roiQuestions,
		"architecture": architectureQuestions,
		"readiness":    readinessQuestions,
	}
	for name, qs := range forms {
		seen := map[string]bool{}
		for _, q := range qs {
			if seen[q.key] {
				t.Errorf("%s questionnaire repeats key %q", name, q.key)
			}
			seen[q.key] = true
		}
	}
}
