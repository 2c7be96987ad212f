package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clozeiz",
	Short: "Turn study notes into fill-in-the-blank quizzes",
	Long: `clozeiz builds multiple-choice, fill-in-the-blank quizzes from any text.

Run without arguments to open the terminal UI, or use "generate" to print
or export a quiz from a file or stdin.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides CLOZEIZ_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error or off")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
