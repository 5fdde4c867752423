package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// GenerateConfig captures the inputs of the generate command.
type GenerateConfig struct {
	Format     string
	Filter     string
	Output     string
	NoValidate bool
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the discovery document of a manifest",
		Example: strings.TrimSpace(`  swaggerdoc -m routes.yaml generate
  swaggerdoc -m routes.yaml generate --format yaml --filter beta -o swagger.yaml`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveGenerateConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("format", "json", "Output format (json|yaml)")
	flags.String("filter", "", "Include only operations gated by this filter tag")
	flags.StringP("output", "o", "", "Output file (stdout when omitted)")
	flags.Bool("no-validate", false, "Skip schema validation of the document")

	return cmd
}

func resolveGenerateConfig(flags *pflag.FlagSet) (*GenerateConfig, error) {
	var (
		cfg GenerateConfig
		err error
	)

	if cfg.Format, err = flags.GetString("format"); err != nil {
		return nil, err
	}
	if cfg.Filter, err = flags.GetString("filter"); err != nil {
		return nil, err
	}
	if cfg.Output, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.NoValidate, err = flags.GetBool("no-validate"); err != nil {
		return nil, err
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case "json", "yaml":
	default:
		return nil, newUsageError(fmt.Sprintf("generate: unsupported --format %q (allowed: json, yaml)", cfg.Format))
	}

	return &cfg, nil
}

func runGenerate(cmd *cobra.Command, cfg *GenerateConfig) error {
	p, err := loadPipeline(cmd, !cfg.NoValidate)
	if err != nil {
		return err
	}

	doc, diags, err := p.docs.Document(cmd.Context(), cfg.Filter)
	printDiagnostics(cmd.ErrOrStderr(), append(p.diags, diags...))
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		if err := encode(cmd.OutOrStdout(), cfg.Format, doc); err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		return nil
	}

	return writeFile(cfg.Output, func(w io.Writer) error {
		return encode(w, cfg.Format, doc)
	})
}

// writeFile creates path and fills it with write. A failed close is
// reported, since it can lose buffered output.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("generate: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("generate: close %s: %w", path, err)
	}

	return nil
}

func encode(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
