package v1alpha1

// --- Core Types ---

// Config is a parsed fagen configuration file. It is immutable once loaded.
type Config struct {
	// Icons lists the icons to generate components for, in file order.
	Icons []IconDescriptor
	// Output is the directory the generated components are written to.
	Output string
}

// Schema reports which icon schema the config uses. A config without icons has no schema.
func (c *Config) Schema() Schema {
	if len(c.Icons) == 0 {
		return SchemaNone
	}

	return c.Icons[0].Source.Schema()
}

// IconDescriptor describes a single icon to generate a wrapper component for.
type IconDescriptor struct {
	// Name is the Font Awesome icon name, e.g. "faGithub".
	Name string
	// ComponentName is the component name without the "Icon" suffix, e.g. "Github".
	ComponentName string
	// Source determines the import path of the icon.
	Source PathSource
}

// --- Path Sources ---

// PathSource is the tagged union of the two ways an icon import path can be supplied.
// The only implementations are Explicit and Derived.
type PathSource interface {
	// Schema reports the configuration schema the source belongs to.
	Schema() Schema

	isPathSource()
}

// Explicit is a path supplied verbatim by the configuration.
type Explicit struct {
	Path string
}

// Derived is a path computed from an icon style and license tier.
type Derived struct {
	Style Style
	Tier  Tier
}

// Schema returns SchemaExplicit.
func (Explicit) Schema() Schema { return SchemaExplicit }

// Schema returns SchemaDerived.
func (Derived) Schema() Schema { return SchemaDerived }

func (Explicit) isPathSource() {}
func (Derived) isPathSource()  {}

// Schema identifies one of the two mutually exclusive icon object layouts.
type Schema string

const (
	// SchemaNone is reported for configs without icons.
	SchemaNone Schema = ""
	// SchemaExplicit is the { name, path, component_name } layout.
	SchemaExplicit Schema = "explicit"
	// SchemaDerived is the { name, component_name, style, icon_type } layout.
	SchemaDerived Schema = "derived"
)

// --- Render Context ---

// Template placeholder names.
const (
	KeyIconName      = "icon_name"
	KeyIconPath      = "icon_path"
	KeyComponentName = "component_name"
)

// RenderContext holds the values substituted into the template for one icon.
type RenderContext struct {
	IconName      string
	IconPath      string
	ComponentName string
}

// NewRenderContext resolves the icon path and builds the render context for an icon.
func NewRenderContext(icon IconDescriptor) RenderContext {
	return RenderContext{
		IconName:      icon.Name,
		IconPath:      Resolve(icon.Source),
		ComponentName: icon.ComponentName,
	}
}

// Values returns the context as a placeholder map. A new map is returned on every call.
func (c RenderContext) Values() map[string]string {
	return map[string]string{
		KeyIconName:      c.IconName,
		KeyIconPath:      c.IconPath,
		KeyComponentName: c.ComponentName,
	}
}
