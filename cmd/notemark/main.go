package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notemark/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "notemark",
	Short: "Inline note markup checker and assistant",
	Long:  `Notemark validates inline note markers (tags, dates, priorities, colors, assignees) and serves quick fixes and completions`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "path to notemark.toml (default: nearest upward)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "cap diagnostics per file (0 = config/default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
