// Package v1alpha1 contains the fagen configuration model.
//
// A Config lists icons and the output directory. Each IconDescriptor carries a
// PathSource: either an Explicit import path or a Derived one computed from a
// Style and Tier by Resolve.
package v1alpha1
