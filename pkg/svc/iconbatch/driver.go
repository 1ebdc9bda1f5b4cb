package iconbatch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/devantler-tech/fagen/pkg/cli/parallel"
	"github.com/devantler-tech/fagen/pkg/fsutil"
	"github.com/devantler-tech/fagen/pkg/ui/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultExtension is the extension of generated component files.
const DefaultExtension = "tsx"

// Renderer renders the component source for one icon.
type Renderer interface {
	Render(renderContext v1alpha1.RenderContext) (string, error)
}

// Driver runs the resolve, render and emit pipeline for every icon in a config.
type Driver struct {
	// Renderer is shared by all jobs and must be safe for concurrent use.
	Renderer Renderer
	// Fs is the filesystem components are written to.
	Fs afero.Fs
	// Writer receives one confirmation line per generated component.
	Writer io.Writer
	// Executor bounds how many icons are processed at once.
	Executor *parallel.Executor
	// Extension is the file extension of generated components, without the dot.
	Extension string
	// Logger receives per-step debug output.
	Logger logrus.FieldLogger
}

// Summary describes a successful run.
type Summary struct {
	// Output is the directory components were written to.
	Output string
	// Generated lists the written files, sorted.
	Generated []string
}

// NewDriver creates a Driver with default settings.
func NewDriver(renderer Renderer, fs afero.Fs, writer io.Writer) *Driver {
	return &Driver{
		Renderer:  renderer,
		Fs:        fs,
		Writer:    writer,
		Executor:  parallel.NewExecutor(0),
		Extension: DefaultExtension,
		Logger:    logrus.StandardLogger(),
	}
}

// Run generates a component for every icon in cfg.
//
// The output directory is created even when cfg has no icons. The first failing
// icon fails the run; files written for other icons are left in place.
func (d *Driver) Run(ctx context.Context, cfg *v1alpha1.Config) (Summary, error) {
	err := fsutil.EnsureDir(d.Fs, cfg.Output)
	if err != nil {
		return Summary{}, fmt.Errorf("prepare output directory: %w", err)
	}

	writer := parallel.NewSyncWriter(d.Writer)
	results := parallel.NewResults[string]()
	tasks := make([]parallel.Task, 0, len(cfg.Icons))

	for _, icon := range cfg.Icons {
		tasks = append(tasks, func(_ context.Context) error {
			path, genErr := d.generate(cfg.Output, icon)
			if genErr != nil {
				return fmt.Errorf("icon %s: %w", icon.Name, genErr)
			}

			results.Add(path)
			notify.Generatef(writer, "Generated component: %s", filepath.Base(path))

			return nil
		})
	}

	err = d.executor().Execute(ctx, tasks...)
	if err != nil {
		return Summary{}, fmt.Errorf("generate components: %w", err)
	}

	generated := results.Values()
	slices.Sort(generated)

	return Summary{Output: cfg.Output, Generated: generated}, nil
}

func (d *Driver) generate(output string, icon v1alpha1.IconDescriptor) (string, error) {
	renderContext := v1alpha1.NewRenderContext(icon)

	logger := d.logger().WithFields(logrus.Fields{
		"icon":      icon.Name,
		"component": icon.ComponentName,
	})
	logger.WithField("path", renderContext.IconPath).Debug("resolved icon path")

	content, err := d.Renderer.Render(renderContext)
	if err != nil {
		return "", err
	}

	path, err := fsutil.EmitFile(d.Fs, output, icon.ComponentName, d.extension(), content)
	if err != nil {
		return "", err
	}

	logger.WithField("file", path).Debug("wrote component")

	return path, nil
}

func (d *Driver) executor() *parallel.Executor {
	if d.Executor == nil {
		return parallel.NewExecutor(0)
	}

	return d.Executor
}

func (d *Driver) extension() string {
	if d.Extension == "" {
		return DefaultExtension
	}

	return d.Extension
}

func (d *Driver) logger() logrus.FieldLogger {
	if d.Logger == nil {
		return logrus.StandardLogger()
	}

	return d.Logger
}
