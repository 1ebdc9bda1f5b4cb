package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/devantler-tech/fagen/pkg/cli/flags"
	"github.com/devantler-tech/fagen/pkg/fsutil"
	"github.com/devantler-tech/fagen/pkg/fsutil/scaffolder"
	"github.com/devantler-tech/fagen/pkg/ui/notify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initOptions holds the values of the init command flags.
type initOptions struct {
	output string
	force  bool
	schema v1alpha1.Schema
}

// newInitCmd creates the init command, which scaffolds a sample configuration and template.
func newInitCmd(fs afero.Fs) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a sample fagen configuration and component template",
		Long: "Writes " + scaffolder.ConfigFile + " and the default component template into the output " +
			"directory. Existing files are kept unless --force is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, fs, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.output, flags.OutputFlagName, "o", ".", "directory to scaffold into")
	cmd.Flags().BoolVarP(&opts.force, flags.ForceFlagName, "f", false, "overwrite existing files")
	cmd.Flags().Var(&opts.schema, flags.SchemaFlagName,
		"icon schema of the sample configuration (explicit or derived, default derived)")

	return cmd
}

func runInit(cmd *cobra.Command, fs afero.Fs, opts *initOptions) error {
	start := time.Now()

	output, err := fsutil.ExpandHomePath(opts.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	err = scaffolder.NewScaffolder(fs, opts.schema, cmd.OutOrStdout()).Scaffold(output, opts.force)
	if err != nil {
		return fmt.Errorf("scaffold project: %w", err)
	}

	notify.SuccessWithElapsedf(
		cmd.OutOrStdout(),
		flags.MaybeElapsed(cmd, start),
		"initialized fagen project in %s",
		output,
	)
	notify.Infof(
		cmd.OutOrStdout(),
		"run 'fagen --config %s' to generate the components",
		filepath.Join(output, scaffolder.ConfigFile),
	)

	return nil
}
