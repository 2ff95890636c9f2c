package main

import (
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version   string         `json:"version"`
	ConfigDir string         `json:"config_dir"`
	Config    []checkResult  `json:"config"`
	Tools     []checkResult  `json:"tools"`
	Resources []checkResult  `json:"resources"`
	Summary   *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	quiet bool
}

// doctorEnv is what the checks inspect. Tests replace both functions.
type doctorEnv struct {
	lookPath   func(file string) (string, error)
	loadConfig func() (*config.Config, error)
}

func defaultDoctorEnv() *doctorEnv {
	return &doctorEnv{lookPath: exec.LookPath, loadConfig: config.Load}
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	return newDoctorCmdInternal(defaultDoctorEnv())
}

func newDoctorCmdInternal(env *doctorEnv) *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that export tools and resources are in place",
		Long: `Check quill's configuration, converters and bundled resources.

Runs a series of health checks across three categories:
  CONFIG    - config.yaml parses; daily_dir is usable
  TOOLS     - pandoc (required) and typst (PDF only) are on PATH
  RESOURCES - style.css and template.typ are present

Each check reports:
  ok - Check passed
  !! - Non-critical issue found
  XX - Exports will fail until this is fixed

Examples:
  quill doctor           # Run all health checks
  quill doctor --quiet   # Only show failures and warnings
  quill doctor --json    # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, env, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command. Failing checks are reported, not returned.
func runDoctor(cmd *cobra.Command, env *doctorEnv, flags *doctorFlags) error {
	printer := newPrinter(cmd)

	result := gatherDoctorChecks(env)

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	outputDoctorHuman(printer, result, flags.quiet)
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(env *doctorEnv) *doctorResult {
	cfg, configChecks := runConfigChecks(env)

	result := &doctorResult{
		Version:   version,
		ConfigDir: config.Dir(),
		Config:    configChecks,
		Tools:     runToolChecks(env, cfg),
		Resources: runResourceChecks(cfg),
		Summary:   &doctorSummary{},
	}

	allChecks := append(append(append([]checkResult{}, result.Config...), result.Tools...), result.Resources...)
	for _, check := range allChecks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	return result
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("quill doctor v%s\n", result.Version)
	printer.KeyValue("Config dir", result.ConfigDir)

	printCheckSection(printer, "CONFIG", result.Config, quiet)
	printCheckSection(printer, "TOOLS", result.Tools, quiet)
	printCheckSection(printer, "RESOURCES", result.Resources, quiet)

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// printCheckSection prints a section of checks. Quiet mode drops passing
// checks and sections with nothing else.
func printCheckSection(printer *output.Printer, title string, checks []checkResult, quiet bool) {
	if quiet {
		hasNonPass := false
		for _, check := range checks {
			if check.Status != checkPass {
				hasNonPass = true
				break
			}
		}
		if !hasNonPass {
			return
		}
	}

	printer.Section(title)

	for _, check := range checks {
		if quiet && check.Status == checkPass {
			continue
		}

		printer.Print("  %s  %s %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("     %s %s\n", hintPrefix(), printer.Muted(check.Hint))
		}
	}
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}

// hintPrefix returns the prefix for hint lines.
func hintPrefix() string {
	return "->"
}
