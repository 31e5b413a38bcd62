package root

import (
	"github.com/spf13/cobra"

	"git.canoozie.net/riddling/propgraph/pkg/config"
	"git.canoozie.net/riddling/propgraph/pkg/model"
)

func NewRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "graphcheck",
		Short: "Inspect and validate property graph documents",
		Long: `graphcheck loads vertices and edges from a YAML document and checks
that every element carries an identifier that is unique within its kind.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			logger, err := cfg.Logger()
			if err != nil {
				return err
			}
			model.SetDefaultLogger(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error); overrides PROPGRAPH_LOG_LEVEL")

	// add sub-commands
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newDumpCommand())

	return rootCmd
}
