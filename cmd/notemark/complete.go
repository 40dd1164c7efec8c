package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notemark/internal/complete"
)

var completeCmd = &cobra.Command{
	Use:   "complete [flags] <text>",
	Short: "Show completion candidates for a partial marker",
	Long:  `Complete prints the ranked completion candidates for the marker being typed at the cursor position (end of text by default).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func init() {
	completeCmd.Flags().Int("cursor", -1, "cursor byte offset (-1 = end of text)")
	completeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	completeCmd.Flags().Bool("assist", false, "use the assistant panel limit instead of the popup limit")
}

func runComplete(cmd *cobra.Command, args []string) error {
	text := args[0]

	cursor, err := cmd.Flags().GetInt("cursor")
	if err != nil {
		return fmt.Errorf("failed to get cursor flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	assist, err := cmd.Flags().GetBool("assist")
	if err != nil {
		return fmt.Errorf("failed to get assist flag: %w", err)
	}
	if cursor < 0 || cursor > len(text) {
		cursor = len(text)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	src := complete.NewSource(cfg.SourceOptions()...)
	candidates := src.At(text, cursor)
	if assist {
		candidates = src.Assist(text, cursor)
	}

	switch format {
	case "pretty":
		if len(candidates) == 0 {
			fmt.Fprintln(os.Stdout, "no completions")
			return nil
		}
		for _, c := range candidates {
			if c.Detail != "" {
				fmt.Fprintf(os.Stdout, "%-16s %s\n", c.Value, c.Detail)
			} else {
				fmt.Fprintln(os.Stdout, c.Value)
			}
		}
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(candidates); err != nil {
			return fmt.Errorf("failed to encode candidates: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
