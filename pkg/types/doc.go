// Package types defines the Vessel and RecipeBook interfaces, the Element
// variant, and the standard error types for the alchemy engine.
//
// Implementations live in internal/alchemy; pkg/alchemy exposes the
// constructors.
package types
