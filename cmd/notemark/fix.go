package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notemark/internal/diag"
	"notemark/internal/driver"
	"notemark/internal/fix"
	"notemark/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|directory>",
	Short: "Apply quick fixes for marker diagnostics",
	Long:  `Fix rewrites note files by applying the suggested replacement of each diagnostic. By default only the first applicable fix runs; use --all to apply every non-conflicting one.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every non-conflicting fix")
	fixCmd.Flags().String("id", "", "apply the fix with the given identifier")
	fixCmd.Flags().Bool("list", false, "list applicable fixes without applying them")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runFix(cmd *cobra.Command, args []string) error {
	path := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("failed to get id flag: %w", err)
	}
	listOnly, err := cmd.Flags().GetBool("list")
	if err != nil {
		return fmt.Errorf("failed to get list flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if applyAll && targetID != "" {
		return fmt.Errorf("--all and --id cannot be used together")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fs, results, err := driver.CheckPath(cmd.Context(), path, driver.Options{
		Jobs:   jobs,
		Policy: cfg.Policy(),
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	diagnostics := make([]diag.Diagnostic, 0)
	for _, r := range results {
		if r.Bag == nil {
			continue
		}
		diagnostics = append(diagnostics, r.Bag.Items()...)
	}

	if listOnly {
		listFixes(fs, diagnostics)
		return nil
	}

	opts := fix.ApplyOptions{Mode: fix.ApplyModeOnce}
	switch {
	case applyAll:
		opts.Mode = fix.ApplyModeAll
	case targetID != "":
		opts.Mode = fix.ApplyModeID
		opts.TargetID = targetID
	}

	result, err := fix.Apply(fs, diagnostics, opts)
	if err != nil {
		if errors.Is(err, fix.ErrNoFixes) {
			fmt.Fprintln(os.Stdout, "no applicable fixes")
			return nil
		}
		return fmt.Errorf("fix failed: %w", err)
	}

	for _, applied := range result.Applied {
		fmt.Fprintf(os.Stdout, "applied %s: %s (%s)\n", applied.ID, applied.Label, applied.PrimaryPath)
	}
	for _, skipped := range result.Skipped {
		fmt.Fprintf(os.Stdout, "skipped %s: %s\n", skipped.ID, skipped.Reason)
	}
	for _, change := range result.FileChanges {
		fmt.Fprintf(os.Stdout, "updated %s (%d edits)\n", change.Path, change.EditCount)
	}
	return nil
}

func listFixes(fs *source.FileSet, diagnostics []diag.Diagnostic) {
	count := 0
	for _, d := range diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}
		count++
		id := fix.FixID(d)
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(os.Stdout, "%s  %s:%d:%d  %s\n",
			id, file.FormatPath("auto", fs.BaseDir()), start.Line, start.Col, d.Fixes[0].Label)
	}
	if count == 0 {
		fmt.Fprintln(os.Stdout, "no applicable fixes")
	}
}
