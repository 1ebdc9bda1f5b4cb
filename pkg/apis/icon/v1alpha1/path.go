package v1alpha1

import "fmt"

const (
	// PackageScope is the npm scope all derived icon packages live under.
	PackageScope = "@fortawesome"
	// PackageSuffix is the fixed suffix of derived icon package names.
	PackageSuffix = "svg-icons"

	componentSuffix = "Icon"
)

// Resolve returns the import path for an icon path source.
//
// Explicit paths are returned unchanged. Derived paths follow the Font Awesome
// package naming convention, e.g. Derived{StyleBrands, TierFree} resolves to
// "@fortawesome/free-brands-svg-icons".
func Resolve(source PathSource) string {
	switch src := source.(type) {
	case Explicit:
		return src.Path
	case Derived:
		return fmt.Sprintf("%s/%s-%s-%s", PackageScope, src.Tier, src.Style, PackageSuffix)
	default:
		return ""
	}
}

// FileName returns the file name generated for a component, e.g. "GithubIcon.tsx".
func FileName(componentName, extension string) string {
	return componentName + componentSuffix + "." + extension
}
