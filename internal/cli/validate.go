package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a manifest and the document it produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strict, err := cmd.Flags().GetBool("strict")
			if err != nil {
				return err
			}
			return runValidate(cmd, strict)
		},
	}

	cmd.Flags().Bool("strict", false, "Fail when any diagnostic is reported")

	return cmd
}

func runValidate(cmd *cobra.Command, strict bool) error {
	p, err := loadPipeline(cmd, true)
	if err != nil {
		return err
	}

	doc, diags, err := p.docs.Document(cmd.Context(), "")
	diags = append(p.diags, diags...)
	printDiagnostics(cmd.ErrOrStderr(), diags)
	if err != nil {
		return err
	}

	var operations int
	for _, item := range doc.Paths {
		operations += len(item)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d resources, %d paths, %d operations\n",
		len(p.docs.Registry().Resources()), len(doc.Paths), operations)

	if strict && len(diags) > 0 {
		return fmt.Errorf("validate: %d diagnostics: %w", len(diags), ErrDiagnostics)
	}

	return nil
}
