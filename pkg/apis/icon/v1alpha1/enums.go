package v1alpha1

import (
	"fmt"
	"slices"
	"strings"
)

// --- Style Types ---

// Style defines the visual variant of a Font Awesome icon family.
type Style string

const (
	// StyleSolid is the solid style.
	StyleSolid Style = "solid"
	// StyleRegular is the regular style.
	StyleRegular Style = "regular"
	// StyleLight is the light style.
	StyleLight Style = "light"
	// StyleThin is the thin style.
	StyleThin Style = "thin"
	// StyleDuotone is the duotone style.
	StyleDuotone Style = "duotone"
	// StyleBrands is the brands style.
	StyleBrands Style = "brands"
)

// ValidStyles returns all supported styles.
func ValidStyles() []Style {
	return []Style{StyleSolid, StyleRegular, StyleLight, StyleThin, StyleDuotone, StyleBrands}
}

// ParseStyle converts a raw configuration value into a Style.
func ParseStyle(value string) (Style, error) {
	var style Style

	err := style.Set(value)
	if err != nil {
		return "", err
	}

	return style, nil
}

// Set for Style (pflag.Value interface).
func (s *Style) Set(value string) error {
	for _, style := range ValidStyles() {
		if strings.EqualFold(value, string(style)) {
			*s = style

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %q (valid options: %s)",
		ErrInvalidStyle,
		value,
		strings.Join(s.ValidValues(), ", "),
	)
}

// IsValid checks if the style value is supported.
func (s *Style) IsValid() bool {
	return slices.Contains(ValidStyles(), *s)
}

// String returns the string representation of the Style.
func (s *Style) String() string {
	return string(*s)
}

// Type returns the type of the Style.
func (s *Style) Type() string {
	return "Style"
}

// ValidValues returns all valid Style values as strings.
func (s *Style) ValidValues() []string {
	values := make([]string, 0, len(ValidStyles()))
	for _, style := range ValidStyles() {
		values = append(values, string(style))
	}

	return values
}

// --- Tier Types ---

// Tier defines the license class of an icon set, which selects its package.
type Tier string

const (
	// TierPro is the Font Awesome Pro tier.
	TierPro Tier = "pro"
	// TierFree is the Font Awesome Free tier.
	TierFree Tier = "free"
)

// ValidTiers returns all supported tiers.
func ValidTiers() []Tier {
	return []Tier{TierPro, TierFree}
}

// ParseTier converts a raw configuration value into a Tier.
func ParseTier(value string) (Tier, error) {
	var tier Tier

	err := tier.Set(value)
	if err != nil {
		return "", err
	}

	return tier, nil
}

// Set for Tier (pflag.Value interface).
func (t *Tier) Set(value string) error {
	for _, tier := range ValidTiers() {
		if strings.EqualFold(value, string(tier)) {
			*t = tier

			return nil
		}
	}

	return fmt.Errorf("%w: %q (valid options: %s, %s)", ErrInvalidTier, value, TierPro, TierFree)
}

// IsValid checks if the tier value is supported.
func (t *Tier) IsValid() bool {
	return slices.Contains(ValidTiers(), *t)
}

// String returns the string representation of the Tier.
func (t *Tier) String() string {
	return string(*t)
}

// Type returns the type of the Tier.
func (t *Tier) Type() string {
	return "Tier"
}

// ValidValues returns all valid Tier values as strings.
func (t *Tier) ValidValues() []string {
	return []string{string(TierPro), string(TierFree)}
}

// --- Schema Values ---

// ValidSchemas returns the selectable icon schemas.
func ValidSchemas() []Schema {
	return []Schema{SchemaExplicit, SchemaDerived}
}

// Set for Schema (pflag.Value interface). An empty value selects SchemaNone.
func (s *Schema) Set(value string) error {
	if value == "" {
		*s = SchemaNone

		return nil
	}

	for _, schema := range ValidSchemas() {
		if strings.EqualFold(value, string(schema)) {
			*s = schema

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %q (valid options: %s)",
		ErrInvalidSchema,
		value,
		strings.Join(s.ValidValues(), ", "),
	)
}

// String returns the string representation of the Schema.
func (s *Schema) String() string {
	return string(*s)
}

// Type returns the type of the Schema.
func (s *Schema) Type() string {
	return "Schema"
}

// ValidValues returns all valid Schema values as strings.
func (s *Schema) ValidValues() []string {
	return []string{string(SchemaExplicit), string(SchemaDerived)}
}

// EnumValuer is implemented by string enums that can list their accepted values.
type EnumValuer interface {
	ValidValues() []string
}

var (
	_ EnumValuer = (*Style)(nil)
	_ EnumValuer = (*Tier)(nil)
	_ EnumValuer = (*Schema)(nil)
)
