// Package scaffolder writes the starter files of a new fagen project.
package scaffolder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/devantler-tech/fagen/pkg/fsutil"
	"github.com/devantler-tech/fagen/pkg/fsutil/generator"
	"github.com/devantler-tech/fagen/pkg/fsutil/generator/component"
	yamlgenerator "github.com/devantler-tech/fagen/pkg/fsutil/generator/yaml"
	"github.com/devantler-tech/fagen/pkg/ui/notify"
	"github.com/spf13/afero"
)

const (
	// ConfigFile is the default filename of the sample configuration.
	ConfigFile = "fagen.yaml"

	// DefaultOutput is the component directory written into the sample configuration.
	DefaultOutput = "src/components/icons"
)

// Scaffolder generates the configuration file and component template of a fagen project.
type Scaffolder struct {
	Fs              afero.Fs
	Config          v1alpha1.Config
	ConfigGenerator generator.Generator[v1alpha1.ConfigFile, yamlgenerator.Options]
	// Template is the component template source written to TemplatePath.
	Template string
	// TemplatePath is relative to the scaffold output directory.
	TemplatePath string
	Writer       io.Writer
}

// NewScaffolder creates a Scaffolder that writes a sample config for schema and the default template.
func NewScaffolder(fs afero.Fs, schema v1alpha1.Schema, writer io.Writer) *Scaffolder {
	return &Scaffolder{
		Fs:              fs,
		Config:          SampleConfig(schema),
		ConfigGenerator: yamlgenerator.NewGenerator[v1alpha1.ConfigFile](),
		Template:        component.DefaultTemplate,
		TemplatePath:    component.DefaultTemplatePath,
		Writer:          writer,
	}
}

// SampleConfig returns the starter configuration for schema. SchemaNone selects the derived schema.
func SampleConfig(schema v1alpha1.Schema) v1alpha1.Config {
	github := v1alpha1.Derived{Style: v1alpha1.StyleBrands, Tier: v1alpha1.TierFree}
	house := v1alpha1.Derived{Style: v1alpha1.StyleSolid, Tier: v1alpha1.TierFree}

	var githubSource, houseSource v1alpha1.PathSource = github, house

	if schema == v1alpha1.SchemaExplicit {
		githubSource = v1alpha1.Explicit{Path: v1alpha1.Resolve(github)}
		houseSource = v1alpha1.Explicit{Path: v1alpha1.Resolve(house)}
	}

	return v1alpha1.Config{
		Output: DefaultOutput,
		Icons: []v1alpha1.IconDescriptor{
			{Name: "faGithub", ComponentName: "Github", Source: githubSource},
			{Name: "faHouse", ComponentName: "House", Source: houseSource},
		},
	}
}

// Scaffold writes the configuration file and the template into output.
// Existing files are kept unless force is set.
func (s *Scaffolder) Scaffold(output string, force bool) error {
	configPath := filepath.Join(output, ConfigFile)

	err := s.generateFile(ConfigFile, configPath, force, func() error {
		_, genErr := s.ConfigGenerator.Generate(
			v1alpha1.NewConfigFile(s.Config),
			yamlgenerator.Options{Fs: s.Fs, Output: configPath, Force: true},
		)

		return genErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigGeneration, err)
	}

	templatePath := filepath.Join(output, s.TemplatePath)

	err = s.generateFile(s.TemplatePath, templatePath, force, func() error {
		_, writeErr := fsutil.TryWriteFile(s.Fs, s.Template, templatePath, true)

		return writeErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTemplateGeneration, err)
	}

	return nil
}

// generateFile runs write unless path exists and force is unset, and reports what happened.
func (s *Scaffolder) generateFile(displayName, path string, force bool, write func() error) error {
	existed, err := s.exists(path)
	if err != nil {
		return err
	}

	if existed && !force {
		notify.Warningf(s.Writer, "skipped '%s', file exists use --force to overwrite", displayName)

		return nil
	}

	err = write()
	if err != nil {
		return err
	}

	action := "created"
	if existed {
		action = "overwrote"
	}

	notify.Generatef(s.Writer, "%s '%s'", action, displayName)

	return nil
}

func (s *Scaffolder) exists(path string) (bool, error) {
	_, err := s.Fs.Stat(path)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: failed to check file %s: %w", fsutil.ErrWrite, path, err)
	}
}
