package cmd

import (
	"fmt"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/devantler-tech/fagen/pkg/cli/flags"
	"github.com/devantler-tech/fagen/pkg/fsutil"
	jsonschemagenerator "github.com/devantler-tech/fagen/pkg/fsutil/generator/jsonschema"
	yamlgenerator "github.com/devantler-tech/fagen/pkg/fsutil/generator/yaml"
	"github.com/devantler-tech/fagen/pkg/ui/notify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// schemaOptions holds the values of the schema command flags.
type schemaOptions struct {
	output string
	force  bool
}

func newSchemaCmd(fs afero.Fs) *cobra.Command {
	opts := &schemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the fagen configuration file",
		Long: "Prints the JSON schema of the fagen configuration file, for use with editors " +
			"and validators. With --output the schema is written to a file instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchema(cmd, fs, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.output, flags.OutputFlagName, "o", "", "file to write the schema to")
	cmd.Flags().BoolVarP(&opts.force, flags.ForceFlagName, "f", false, "overwrite an existing schema file")

	return cmd
}

func runSchema(cmd *cobra.Command, fs afero.Fs, opts *schemaOptions) error {
	gen := jsonschemagenerator.NewGenerator()

	if opts.output == "" {
		out, err := gen.Generate(v1alpha1.ConfigFile{}, yamlgenerator.Options{})
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		if err != nil {
			return fmt.Errorf("print schema: %w", err)
		}

		return nil
	}

	output, err := fsutil.ExpandHomePath(opts.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	existed, err := afero.Exists(fs, output)
	if err != nil {
		return fmt.Errorf("%w: failed to check file %s: %w", fsutil.ErrWrite, output, err)
	}

	if existed && !opts.force {
		notify.Warningf(cmd.OutOrStdout(), "skipped '%s', file exists use --force to overwrite", output)

		return nil
	}

	_, err = gen.Generate(v1alpha1.ConfigFile{}, yamlgenerator.Options{Fs: fs, Output: output, Force: true})
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	notify.Generatef(cmd.OutOrStdout(), "wrote '%s'", output)

	return nil
}
