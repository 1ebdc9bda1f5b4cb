package component

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/iancoleman/strcase"
	"github.com/spf13/afero"
)

// DefaultTemplatePath is where the template is read from, relative to the working directory.
const DefaultTemplatePath = "templates/icon_template.tsx"

// Generator renders icon components from a parsed template.
// The parsed template is never modified, so a Generator is safe for concurrent use.
type Generator struct {
	template *template.Template
}

// Load parses source as a component template.
func Load(name, source string) (*Generator, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(templateFuncs(nil)).
		Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTemplateLoad, name, err)
	}

	return &Generator{template: tmpl}, nil
}

// LoadFile reads and parses the component template at path.
func LoadFile(fs afero.Fs, path string) (*Generator, error) {
	source, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTemplateLoad, path, err)
	}

	return Load(filepath.Base(path), string(source))
}

// Name returns the template name.
func (g *Generator) Name() string {
	return g.template.Name()
}

// Render substitutes the render context into the template.
func (g *Generator) Render(renderContext v1alpha1.RenderContext) (string, error) {
	values := renderContext.Values()

	// Clone so the placeholder functions bound below stay local to this call.
	tmpl, err := g.template.Clone()
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrTemplateRender, g.Name(), err)
	}

	tmpl.Funcs(templateFuncs(values))

	var out strings.Builder

	err = tmpl.Execute(&out, values)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrTemplateRender, g.Name(), err)
	}

	return out.String(), nil
}

// templateFuncs returns the helper functions plus one function per placeholder.
// Placeholder functions look their value up in values, which is nil at parse time.
func templateFuncs(values map[string]string) template.FuncMap {
	funcs := template.FuncMap{
		"kebab":      strcase.ToKebab,
		"snake":      strcase.ToSnake,
		"camel":      strcase.ToCamel,
		"lowerCamel": strcase.ToLowerCamel,
	}

	for _, key := range []string{v1alpha1.KeyIconName, v1alpha1.KeyIconPath, v1alpha1.KeyComponentName} {
		funcs[key] = placeholder(key, values)
	}

	return funcs
}

func placeholder(key string, values map[string]string) func() (string, error) {
	return func() (string, error) {
		value, ok := values[key]
		if !ok {
			return "", fmt.Errorf("%w: %s", errMissingPlaceholder, key)
		}

		return value, nil
	}
}
