package v1alpha1

// --- File Types ---

// ConfigFile is the on-disk layout of a fagen configuration file.
// Pointer fields distinguish absent keys from empty values.
type ConfigFile struct {
	Icons  *[]IconFile `json:"icons"  mapstructure:"icons"`
	Output *string     `json:"output" mapstructure:"output"`
}

// IconFile is the on-disk layout of one icon object.
// Path belongs to the explicit schema; Style and IconType to the derived schema.
type IconFile struct {
	Name          *string `json:"name"                mapstructure:"name"`
	ComponentName *string `json:"component_name"      mapstructure:"component_name"`
	Path          *string `json:"path,omitempty"      mapstructure:"path"`
	Style         *Style  `json:"style,omitempty"     mapstructure:"style"`
	IconType      *Tier   `json:"icon_type,omitempty" mapstructure:"icon_type"`
}

// NewConfigFile builds the on-disk layout for cfg.
func NewConfigFile(cfg Config) ConfigFile {
	icons := make([]IconFile, 0, len(cfg.Icons))

	for _, icon := range cfg.Icons {
		iconFile := IconFile{
			Name:          ptrTo(icon.Name),
			ComponentName: ptrTo(icon.ComponentName),
		}

		switch src := icon.Source.(type) {
		case Explicit:
			iconFile.Path = ptrTo(src.Path)
		case Derived:
			iconFile.Style = ptrTo(src.Style)
			iconFile.IconType = ptrTo(src.Tier)
		}

		icons = append(icons, iconFile)
	}

	return ConfigFile{Icons: &icons, Output: ptrTo(cfg.Output)}
}

func ptrTo[T any](value T) *T {
	return &value
}
