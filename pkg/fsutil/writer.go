package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/spf13/afero"
)

// Component output.

// EnsureDir recursively creates dir. It succeeds silently if dir already exists,
// so concurrent callers may race on the same directory.
func EnsureDir(fs afero.Fs, dir string) error {
	if dir == "" {
		return ErrEmptyOutputPath
	}

	err := fs.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return fmt.Errorf("%w: failed to create directory %s: %w", ErrWrite, dir, err)
	}

	return nil
}

// EmitFile writes the rendered component to outputDir/<componentName>Icon.<extension>,
// creating outputDir if needed and truncating any existing file.
//
// Returns the path of the written file.
func EmitFile(fs afero.Fs, outputDir, componentName, extension, content string) (string, error) {
	if componentName == "" {
		return "", ErrEmptyComponentName
	}

	err := EnsureDir(fs, outputDir)
	if err != nil {
		return "", err
	}

	output := filepath.Join(outputDir, v1alpha1.FileName(componentName, extension))

	err = afero.WriteFile(fs, output, []byte(content), filePermUserRW)
	if err != nil {
		return "", fmt.Errorf("%w: failed to write file %s: %w", ErrWrite, output, err)
	}

	return output, nil
}

// File writing operations.

// TryWriteFile writes content to a file path, handling force/overwrite logic.
//
// Parameters:
//   - fs: The filesystem to write to
//   - content: The content to write to the file
//   - output: The output file path
//   - force: If true, overwrites existing files; if false, skips existing files
//
// Returns:
//   - bool: Whether the file was written
//   - error: ErrEmptyOutputPath if output is empty, or write error
func TryWriteFile(fs afero.Fs, content string, output string, force bool) (bool, error) {
	if output == "" {
		return false, ErrEmptyOutputPath
	}

	output = filepath.Clean(output)

	if !force {
		_, err := fs.Stat(output)
		if err == nil {
			return false, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("%w: failed to check file %s: %w", ErrWrite, output, err)
		}
	}

	err := EnsureDir(fs, filepath.Dir(output))
	if err != nil {
		return false, err
	}

	err = afero.WriteFile(fs, output, []byte(content), filePermUserRW)
	if err != nil {
		return false, fmt.Errorf("%w: failed to write file %s: %w", ErrWrite, output, err)
	}

	return true, nil
}
