// Package commands wires the anytimectl sub-commands (mean, abtest) to
// the core packages via cobra.
package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nibzard/anytime/cliconfig"
)

const (
	exitSuccess         = 0
	exitConfigError     = 2
	exitAssumptionError = 3
)

var (
	verbose bool
	logDir  string
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "anytimectl",
	Short: "anytimectl drives peeking-safe streaming inference over tabular input",
	Long: `anytimectl consumes a tabular file and a YAML run spec and emits per-row
progress plus a final confidence-sequence snapshot, backed by
anytime's time-uniform inference core.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		defaults := cliconfig.LoadDefaults()
		if !cmd.Flags().Changed("verbose") {
			verbose = defaults.Verbose
		}
		log = cliconfig.InitLogging(verbose, logDir)
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return exitSuccess
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory for rotated log files (default ./logs)")
	rootCmd.AddCommand(meanCmd)
	rootCmd.AddCommand(abtestCmd)
}
