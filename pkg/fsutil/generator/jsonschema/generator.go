// Package jsonschemagenerator renders the JSON schema of the fagen configuration file.
package jsonschemagenerator

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/devantler-tech/fagen/pkg/fsutil"
	yamlgenerator "github.com/devantler-tech/fagen/pkg/fsutil/generator/yaml"
	"github.com/invopop/jsonschema"
	"github.com/spf13/afero"
)

const (
	// Title is the title of the generated schema.
	Title = "fagen Configuration"
	// Description is the description of the generated schema.
	Description = "JSON schema for fagen icon configuration files (fagen.yaml, fagen.json, fagen.toml)"
)

// Property descriptions keyed by JSON name.
//
//nolint:gochecknoglobals
var descriptions = map[string]string{
	"icons":          "Icons to generate components for.",
	"output":         "Directory the generated components are written to.",
	"name":           "Font Awesome icon name, e.g. faGithub.",
	"component_name": "Component name without the Icon suffix, e.g. Github.",
	"path":           "Import path of the icon package. Use instead of style and icon_type.",
	"style":          "Icon style used to derive the import path.",
	"icon_type":      "License tier used to derive the import path.",
}

// Generator renders the configuration schema as indented JSON.
type Generator struct {
	reflector *jsonschema.Reflector
}

// NewGenerator creates a Generator for v1alpha1.ConfigFile documents.
func NewGenerator() *Generator {
	return &Generator{
		reflector: &jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
			Mapper:                    enumMapper,
		},
	}
}

// Generate reflects model into a JSON schema and writes it to opts.Output when set.
func (g *Generator) Generate(model v1alpha1.ConfigFile, opts yamlgenerator.Options) (string, error) {
	schema := g.reflector.Reflect(&model)

	customizeSchema(schema)

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}

	content := string(out) + "\n"

	if opts.Output == "" {
		return content, nil
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	_, err = fsutil.TryWriteFile(fs, content, opts.Output, opts.Force)
	if err != nil {
		return "", fmt.Errorf("write schema: %w", err)
	}

	return content, nil
}

// customizeSchema adds metadata, descriptions and the icon schema alternatives.
func customizeSchema(schema *jsonschema.Schema) {
	schema.ID = ""
	schema.Title = Title
	schema.Description = Description

	walkSchema(schema, func(s *jsonschema.Schema) {
		if s.Properties == nil {
			return
		}

		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if description, ok := descriptions[pair.Key]; ok && pair.Value != nil {
				pair.Value.Description = description
			}
		}
	})

	icons, ok := schema.Properties.Get("icons")
	if !ok || icons == nil || icons.Items == nil {
		return
	}

	icons.Items.OneOf = []*jsonschema.Schema{
		{
			Title:    string(v1alpha1.SchemaExplicit),
			Required: []string{"path"},
			Not: &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
				{Required: []string{"style"}},
				{Required: []string{"icon_type"}},
			}},
		},
		{
			Title:    string(v1alpha1.SchemaDerived),
			Required: []string{"style", "icon_type"},
			Not:      &jsonschema.Schema{Required: []string{"path"}},
		},
	}
}

// walkSchema traverses the schema tree and calls fn on each node.
func walkSchema(schema *jsonschema.Schema, fn func(*jsonschema.Schema)) {
	if schema == nil {
		return
	}

	fn(schema)

	if schema.Properties != nil {
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			walkSchema(pair.Value, fn)
		}
	}

	if schema.Items != nil {
		walkSchema(schema.Items, fn)
	}
}

// enumMapper maps string enums implementing v1alpha1.EnumValuer to enum schemas.
func enumMapper(t reflect.Type) *jsonschema.Schema {
	if !reflect.PointerTo(t).Implements(reflect.TypeFor[v1alpha1.EnumValuer]()) {
		return nil
	}

	valuer, ok := reflect.New(t).Interface().(v1alpha1.EnumValuer)
	if !ok {
		return nil
	}

	values := valuer.ValidValues()
	enum := make([]any, len(values))

	for i, value := range values {
		enum[i] = value
	}

	return &jsonschema.Schema{Type: "string", Enum: enum}
}
