// Package cli implements the pwsafe-dump command tree: Cobra sub-commands,
// slog for diagnostics, and golang.org/x/term for interactive passphrase
// entry. The root persistent flags are registered with Viper; commands read
// flag values from their bound variables, so environment variables do not
// override them.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose   bool
	logFormat string
)

// rootCmd is the base command when pwsafe-dump is invoked without a
// sub-command.
var rootCmd = &cobra.Command{
	Use:   "pwsafe-dump",
	Short: "Read-only inspector for Password Safe v3 vaults",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{Level: level}
		if logFormat == "json" {
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
		} else {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
		}
	},
}

// Execute runs the command tree. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	viper.BindPFlags(rootCmd.PersistentFlags())
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
