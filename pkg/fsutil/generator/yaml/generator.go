// Package yamlgenerator renders Go values as YAML files.
package yamlgenerator

import (
	"fmt"

	"github.com/devantler-tech/fagen/pkg/fsutil"
	"github.com/devantler-tech/fagen/pkg/fsutil/marshaller"
	"github.com/spf13/afero"
)

// Options defines options for generators when generating files.
type Options struct {
	// Fs is the filesystem Output is written to. Defaults to the OS filesystem.
	Fs afero.Fs
	// Output is the file path to write to. Nothing is written when empty.
	Output string
	// Force overwrites Output when it already exists.
	Force bool
}

// Generator generates YAML for models of type T.
type Generator[T any] struct {
	Marshaller marshaller.Marshaller[T]
}

// NewGenerator creates and returns a new Generator instance.
func NewGenerator[T any]() *Generator[T] {
	return &Generator[T]{Marshaller: marshaller.NewYAMLMarshaller[T]()}
}

// Generate marshals model and writes it to opts.Output when set.
func (g *Generator[T]) Generate(model T, opts Options) (string, error) {
	out, err := g.Marshaller.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("marshal model: %w", err)
	}

	if opts.Output == "" {
		return out, nil
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	_, err = fsutil.TryWriteFile(fs, out, opts.Output, opts.Force)
	if err != nil {
		return "", fmt.Errorf("write yaml: %w", err)
	}

	return out, nil
}
