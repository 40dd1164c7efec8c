package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"notemark/internal/config"
	"notemark/internal/diag"
	"notemark/internal/diagfmt"
	"notemark/internal/driver"
	"notemark/internal/source"
	"notemark/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory|->",
	Short: "Validate inline markers in note files",
	Long:  `Check scans note text for inline markers and reports invalid dates, colors, priorities, tags, and assignee names. Pass "-" to read from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("no-warnings", false, "report only errors")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warnAsErr, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}

	fs, results, err := checkInput(cmd, path, cfg, jobs)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	results = reclassify(results, cfg, noWarnings, warnAsErr)

	color, err := useColor(cmd)
	if err != nil {
		return err
	}
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     color,
		PathMode:  pathMode,
		ShowHints: true,
		ShowFixes: suggest,
		Context:   true,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         pathMode,
		IncludeFixes:     suggest,
	}

	switch format {
	case "pretty":
		for idx, r := range results {
			if r.Bag == nil || r.Bag.Len() == 0 {
				continue
			}
			if idx > 0 {
				fmt.Fprintln(os.Stdout)
			}
			diagfmt.Pretty(os.Stdout, r.Bag, fs, prettyOpts)
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(os.Stdout, "%d files checked, %d diagnostics\n",
				len(results), driver.TotalDiagnostics(results))
		}
	case "json":
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			if r.Bag == nil {
				continue
			}
			output[displayPath(fs, r, fullPath)] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "msgpack":
		for _, r := range results {
			if r.Bag == nil {
				continue
			}
			if err := diagfmt.MsgPack(os.Stdout, r.Bag, fs, jsonOpts); err != nil {
				return fmt.Errorf("failed to encode diagnostics output: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if driver.HasErrors(results) {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // diagnostics already printed
	}
	return nil
}

// checkInput runs the checker over a file, a directory, or stdin.
func checkInput(cmd *cobra.Command, path string, cfg config.Config, jobs int) (*source.FileSet, []driver.CheckResult, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		analyzer := validate.NewAnalyzer(validate.WithPolicy(cfg.Policy()))
		fs := source.NewFileSet()
		id := fs.AddVirtual("<stdin>", data)
		bag := analyzer.Analyze(fs.Get(id))
		return fs, []driver.CheckResult{{Path: "<stdin>", FileID: id, Bag: bag}}, nil
	}

	return driver.CheckPath(cmd.Context(), path, driver.Options{
		Jobs:   jobs,
		Policy: cfg.Policy(),
	})
}

// reclassify rewrites result bags for the warning flags: dropping
// warnings entirely or escalating them to errors.
func reclassify(results []driver.CheckResult, cfg config.Config, noWarnings, warnAsErr bool) []driver.CheckResult {
	if !noWarnings && !warnAsErr {
		return results
	}
	out := make([]driver.CheckResult, len(results))
	for i, r := range results {
		out[i] = r
		if r.Bag == nil {
			continue
		}
		bag := diag.NewBag(cfg.Policy().MaxDiagnostics)
		for _, d := range r.Bag.Items() {
			if d.Severity == diag.SevWarning {
				if noWarnings {
					continue
				}
				d.Severity = diag.SevError
			}
			bag.Add(d)
		}
		out[i].Bag = bag
	}
	return out
}

func displayPath(fs *source.FileSet, r driver.CheckResult, fullPath bool) string {
	file := fs.Get(r.FileID)
	mode := "auto"
	if fullPath {
		mode = "absolute"
	}
	return file.FormatPath(mode, fs.BaseDir())
}
