package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytecodealliance/target-lexicon/internal/driver"
	"github.com/bytecodealliance/target-lexicon/internal/logging"
	"github.com/bytecodealliance/target-lexicon/internal/observ"
	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

var errCheckFailed = errors.New("some triples failed the check")

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Verify that triples parse and canonicalize stably",
	Long: `Parse every triple (one per line, '#' starts a comment), format it and
reparse the canonical form. Use "-" to read from stdin. Without files the
[check].targets list from lexicon.toml is used.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("builtin", false, "also check the built-in list of well-known targets")
	checkCmd.Flags().Int("jobs", 0, "max parallel checks (0=auto)")
	checkCmd.Flags().Bool("strict", false, "fail inputs that are not already in canonical form")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	builtin, err := cmd.Flags().GetBool("builtin")
	if err != nil {
		return fmt.Errorf("failed to get builtin flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	quiet, err := quietFlag(cmd)
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	timer := observ.NewTimer()
	if timings {
		defer func() { fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) }()
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	endRead := timer.Begin("read inputs")
	inputs, err := collectCheckInputs(cmd.InOrStdin(), args, builtin, cfg.Check.Targets)
	if err != nil {
		return err
	}
	endRead(fmt.Sprintf("%d inputs", len(inputs)))
	if len(inputs) == 0 {
		return fmt.Errorf("nothing to check: pass files, --builtin, or set [check].targets in %s", configFileName)
	}
	if !cmd.Flags().Changed("jobs") && cfg.Check.Jobs > 0 {
		jobs = cfg.Check.Jobs
	}

	opts := driver.CheckOptions{Jobs: jobs, Strict: strict}
	var results []driver.CheckResult
	endCheck := timer.Begin("check")
	if shouldUseTUI(mode, len(inputs)) {
		results, err = runCheckWithUI(cmd.Context(), "checking triples", inputs, opts)
	} else {
		results, err = driver.CheckTriples(cmd.Context(), inputs, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	endCheck(checkLatency(results).String())

	endReport := timer.Begin("report")
	passed, failed := reportCheck(cmd.OutOrStdout(), results, quiet)
	endReport("")
	logging.Logger().Debug("check finished", zap.Int("passed", passed), zap.Int("failed", failed))
	if failed > 0 {
		return errCheckFailed
	}
	return nil
}

// collectCheckInputs gathers inputs from files (or stdin for "-"), then the
// built-in list, and falls back to the configured targets when neither is
// given.
func collectCheckInputs(stdin io.Reader, files []string, builtin bool, configured []string) ([]string, error) {
	var inputs []string
	for _, name := range files {
		var (
			batch []string
			err   error
		)
		if name == "-" {
			batch, err = driver.ReadTriples(stdin)
		} else {
			batch, err = readTriplesFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		inputs = append(inputs, batch...)
	}
	if builtin {
		inputs = append(inputs, triple.WellKnown()...)
	}
	if len(files) == 0 && !builtin {
		inputs = append(inputs, configured...)
	}
	return inputs, nil
}

func readTriplesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return driver.ReadTriples(f)
}

// reportCheck prints failures (and passes unless quiet) followed by a
// summary line.
func reportCheck(out io.Writer, results []driver.CheckResult, quiet bool) (passed, failed int) {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()
	for _, r := range results {
		switch {
		case !r.OK():
			fmt.Fprintf(out, "%s %s: %v\n", bad("FAIL"), r.Input, r.Err)
		case quiet:
		case r.Canonical != r.Input:
			fmt.Fprintf(out, "%s %s (canonical: %s)\n", ok("ok"), r.Input, r.Canonical)
		default:
			fmt.Fprintf(out, "%s %s\n", ok("ok"), r.Input)
		}
	}
	passed, failed = driver.Summary(results)
	summary := fmt.Sprintf("%d passed, %d failed", passed, failed)
	if failed > 0 {
		fmt.Fprintln(out, bad(summary))
	} else {
		fmt.Fprintln(out, ok(summary))
	}
	return passed, failed
}

func checkLatency(results []driver.CheckResult) observ.Latency {
	var l observ.Latency
	for _, r := range results {
		l.Add(r.Elapsed)
	}
	return l
}
