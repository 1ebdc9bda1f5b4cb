package icons

import (
	"bytes"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/devantler-tech/fagen/pkg/fsutil/configmanager"
	"github.com/devantler-tech/fagen/pkg/utils/envvar"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// defaultConfigType is used when the file extension does not name a supported format.
const defaultConfigType = "json"

// ConfigManager loads icon configuration files.
type ConfigManager struct {
	// Fs is the filesystem config files are read from.
	Fs afero.Fs
	// Schema restricts the accepted icon schema. SchemaNone accepts either.
	Schema v1alpha1.Schema
}

// Compile-time interface compliance verification.
var _ configmanager.ConfigManager[v1alpha1.Config] = (*ConfigManager)(nil)

// NewConfigManager creates a config manager reading from fs.
func NewConfigManager(fs afero.Fs, schema v1alpha1.Schema) *ConfigManager {
	return &ConfigManager{Fs: fs, Schema: schema}
}

// Load reads and parses the configuration file at path.
//
// Read failures wrap configmanager.ErrConfigRead; malformed documents, invalid
// enum values, missing fields and schema violations wrap configmanager.ErrConfigParse.
func (m *ConfigManager) Load(path string) (*v1alpha1.Config, error) {
	data, err := afero.ReadFile(m.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", configmanager.ErrConfigRead, path, err)
	}

	file, err := decode(data, configType(path))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", configmanager.ErrConfigParse, path, err)
	}

	config, err := m.convert(file)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", configmanager.ErrConfigParse, path, err)
	}

	return config, nil
}

// configType maps a file extension to a viper config type.
func configType(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	switch ext {
	case "yml":
		return "yaml"
	case "json", "yaml", "toml":
		return ext
	default:
		return defaultConfigType
	}
}

func decode(data []byte, format string) (*v1alpha1.ConfigFile, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType(format)

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid %s document: %w", format, err)
	}

	decoderConfig := func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = false
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			styleDecodeHook(),
			tierDecodeHook(),
		)
	}

	var file v1alpha1.ConfigFile

	err = viperInstance.Unmarshal(&file, decoderConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &file, nil
}

// styleDecodeHook converts string values into validated v1alpha1.Style values.
func styleDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeFor[v1alpha1.Style]() {
			return data, nil
		}

		return v1alpha1.ParseStyle(reflect.ValueOf(data).String())
	}
}

// tierDecodeHook converts string values into validated v1alpha1.Tier values.
func tierDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeFor[v1alpha1.Tier]() {
			return data, nil
		}

		return v1alpha1.ParseTier(reflect.ValueOf(data).String())
	}
}

func (m *ConfigManager) convert(file *v1alpha1.ConfigFile) (*v1alpha1.Config, error) {
	if file.Icons == nil {
		return nil, fmt.Errorf("%w: icons", ErrMissingField)
	}

	if file.Output == nil {
		return nil, fmt.Errorf("%w: output", ErrMissingField)
	}

	// ${VAR} placeholders are expanded before the emptiness check.
	output := envvar.Expand(*file.Output)
	if output == "" {
		return nil, fmt.Errorf("%w: output", ErrMissingField)
	}

	config := &v1alpha1.Config{
		Icons:  make([]v1alpha1.IconDescriptor, 0, len(*file.Icons)),
		Output: output,
	}

	schema := m.Schema

	for index, iconFile := range *file.Icons {
		field := fmt.Sprintf("icons[%d]", index)

		icon, err := convertIcon(field, iconFile)
		if err != nil {
			return nil, err
		}

		switch {
		case schema == v1alpha1.SchemaNone:
			schema = icon.Source.Schema()
		case icon.Source.Schema() != schema && m.Schema != v1alpha1.SchemaNone:
			return nil, fmt.Errorf("%w: %s uses the %s schema, expected %s",
				ErrUnexpectedSchema, field, icon.Source.Schema(), schema)
		case icon.Source.Schema() != schema:
			return nil, fmt.Errorf("%w: %s uses the %s schema, earlier icons use %s",
				ErrMixedSchema, field, icon.Source.Schema(), schema)
		}

		config.Icons = append(config.Icons, icon)
	}

	return config, nil
}

func convertIcon(field string, iconFile v1alpha1.IconFile) (v1alpha1.IconDescriptor, error) {
	if isEmpty(iconFile.Name) {
		return v1alpha1.IconDescriptor{}, fmt.Errorf("%w: %s.name", ErrMissingField, field)
	}

	if isEmpty(iconFile.ComponentName) {
		return v1alpha1.IconDescriptor{}, fmt.Errorf("%w: %s.component_name", ErrMissingField, field)
	}

	source, err := convertSource(field, iconFile)
	if err != nil {
		return v1alpha1.IconDescriptor{}, err
	}

	return v1alpha1.IconDescriptor{
		Name:          *iconFile.Name,
		ComponentName: *iconFile.ComponentName,
		Source:        source,
	}, nil
}

func convertSource(field string, iconFile v1alpha1.IconFile) (v1alpha1.PathSource, error) {
	derived := iconFile.Style != nil || iconFile.IconType != nil

	switch {
	case iconFile.Path != nil && derived:
		return nil, fmt.Errorf("%w: %s sets path together with style/icon_type", ErrMixedSchema, field)
	case iconFile.Path != nil && *iconFile.Path == "":
		return nil, fmt.Errorf("%w: %s.path", ErrMissingField, field)
	case iconFile.Path != nil:
		return v1alpha1.Explicit{Path: *iconFile.Path}, nil
	case iconFile.Style == nil && iconFile.IconType == nil:
		return nil, fmt.Errorf("%w: %s.path or %s.style and %s.icon_type", ErrMissingField, field, field, field)
	case iconFile.Style == nil:
		return nil, fmt.Errorf("%w: %s.style", ErrMissingField, field)
	case iconFile.IconType == nil:
		return nil, fmt.Errorf("%w: %s.icon_type", ErrMissingField, field)
	default:
		return v1alpha1.Derived{Style: *iconFile.Style, Tier: *iconFile.IconType}, nil
	}
}

func isEmpty(value *string) bool {
	return value == nil || *value == ""
}
