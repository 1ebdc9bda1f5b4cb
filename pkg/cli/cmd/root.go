package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/devantler-tech/fagen/pkg/cli/flags"
	"github.com/devantler-tech/fagen/pkg/cli/parallel"
	"github.com/devantler-tech/fagen/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/fagen/pkg/fsutil"
	"github.com/devantler-tech/fagen/pkg/fsutil/configmanager/icons"
	"github.com/devantler-tech/fagen/pkg/fsutil/generator/component"
	"github.com/devantler-tech/fagen/pkg/svc/iconbatch"
	"github.com/devantler-tech/fagen/pkg/ui/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// defaultLogLevel keeps ordinary runs limited to notify output.
const defaultLogLevel = "warn"

// ErrNoConfigFile is returned when the root command runs without --config.
var ErrNoConfigFile = errors.New("no config file specified, please provide one with the --config flag")

// rootOptions holds the values of the root command flags.
type rootOptions struct {
	config      string
	template    string
	extension   string
	concurrency int64
	logLevel    string
	schema      v1alpha1.Schema
}

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return newRootCmd(afero.NewOsFs(), version, commit, date)
}

// newRootCmd builds the root command on top of fs.
func newRootCmd(fs afero.Fs, version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fagen",
		Short: "Generate Font Awesome icon components from a config file",
		Long: "fagen reads a configuration file listing Font Awesome icons and writes one component " +
			"per icon by rendering a template with the icon name, import path and component name.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, fs, opts)
		},
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.Flags().StringVarP(&opts.config, flags.ConfigFlagName, "c", "",
		"path to the icon configuration file (json, yaml or toml)")
	cmd.Flags().StringVarP(&opts.template, flags.TemplateFlagName, "t", component.DefaultTemplatePath,
		"path to the component template")
	cmd.Flags().StringVarP(&opts.extension, flags.ExtensionFlagName, "e", iconbatch.DefaultExtension,
		"file extension of the generated components")
	cmd.Flags().Int64Var(&opts.concurrency, flags.ConcurrencyFlagName, 0,
		"maximum number of components generated at once (0 uses the number of CPUs)")
	cmd.Flags().Var(&opts.schema, flags.SchemaFlagName,
		"require every icon to use this schema (explicit or derived)")

	cmd.PersistentFlags().StringVar(&opts.logLevel, flags.LogLevelFlagName, defaultLogLevel,
		"diagnostic log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().Bool(flags.TimingFlagName, false, "show elapsed time after the command succeeds")

	cmd.AddCommand(newInitCmd(fs))
	cmd.AddCommand(newSchemaCmd(fs))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	return errorhandler.NewExecutor().Execute(cmd)
}

// --- internals ---

// runGenerate loads the configuration and template, then generates every component.
func runGenerate(cmd *cobra.Command, fs afero.Fs, opts *rootOptions) error {
	start := time.Now()

	if strings.TrimSpace(opts.config) == "" {
		return ErrNoConfigFile
	}

	logger, err := newLogger(os.Stderr, opts.logLevel)
	if err != nil {
		return err
	}

	configPath, err := fsutil.ExpandHomePath(opts.config)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	cfg, err := icons.NewConfigManager(fs, opts.schema).Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"config": configPath,
		"icons":  len(cfg.Icons),
		"schema": cfg.Schema(),
	}).Debug("loaded config")

	templatePath, err := fsutil.ExpandHomePath(opts.template)
	if err != nil {
		return fmt.Errorf("resolve template path: %w", err)
	}

	renderer, err := component.LoadFile(fs, templatePath)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}

	driver := iconbatch.NewDriver(renderer, fs, cmd.OutOrStdout())
	driver.Executor = parallel.NewExecutor(opts.concurrency)
	driver.Extension = strings.TrimPrefix(opts.extension, ".")
	driver.Logger = logger

	summary, err := driver.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	notify.SuccessWithElapsedf(
		cmd.OutOrStdout(),
		flags.MaybeElapsed(cmd, start),
		"generated %d components in %s",
		len(summary.Generated),
		summary.Output,
	)

	return nil
}

// newLogger creates the diagnostic logger written to out.
// Diagnostics bypass the command's error writer, which the error handler captures.
func newLogger(out io.Writer, level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flags.LogLevelFlagName, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return logger, nil
}
