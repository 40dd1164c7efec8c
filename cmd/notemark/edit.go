package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"notemark/internal/complete"
	"notemark/internal/editor"
	"notemark/internal/validate"
)

var editCmd = &cobra.Command{
	Use:   "edit [flags] [text]",
	Short: "Edit a note line interactively",
	Long:  `Edit opens a single-line editor with live marker validation, a debounced diagnostic tooltip, tab completion, and ctrl+f quick fixes. The final text prints to stdout on accept.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("edit requires an interactive terminal")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []editor.Option{
		editor.WithAnalyzer(validate.NewAnalyzer(validate.WithPolicy(cfg.Policy()))),
		editor.WithCompletions(complete.NewSource(cfg.SourceOptions()...)),
		editor.WithDebounce(time.Duration(cfg.DebounceMs()) * time.Millisecond),
	}
	if len(args) == 1 {
		opts = append(opts, editor.WithInitialValue(args[0]))
	}

	final, err := editor.Run(opts...)
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	if final != "" {
		fmt.Fprintln(os.Stdout, final)
	}
	return nil
}
