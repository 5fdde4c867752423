package cli

import (
	"fmt"

	"github.com/luisfurquim/goose"
	"github.com/spf13/cobra"

	"github.com/vitalvas/swaggerdoc/swagger"
)

// CliG groups the log channels of the command line tool.
type CliG struct {
	Serve goose.Alert `json:"Serve"`
}

// Goose logs request failures of the serve command.
var Goose CliG

// Execute runs the swaggerdoc CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swaggerdoc",
		Short: "Generate and serve Swagger 2.0 documents from route manifests",
		Long: "swaggerdoc reads a manifest of routes and their validation rules, " +
			"assembles the Swagger 2.0 discovery document and validates it.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetCount("verbose")
			if err != nil {
				return err
			}
			setVerbosity(verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringP("manifest", "m", "", "Route manifest path (YAML or JSON)")
	cmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeatable)")

	// Flag errors (like unknown flags) become usage errors with the help text.
	cmd.SetFlagErrorFunc(flagError)
	for _, sub := range []*cobra.Command{newGenerateCmd(), newValidateCmd(), newServeCmd()} {
		sub.SetFlagErrorFunc(flagError)
		cmd.AddCommand(sub)
	}

	return cmd
}

func flagError(c *cobra.Command, err error) error {
	return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
}

// setVerbosity raises every log channel. Errors are always logged.
func setVerbosity(count int) {
	level := goose.Alert(1 + count)

	swagger.Goose.Loader = level
	swagger.Goose.Assemble = level
	swagger.Goose.Serve = level
	Goose.Serve = level
}
