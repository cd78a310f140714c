// Package worlderr defines the error taxonomy the engine surfaces: kinds,
// not types, as sentinel errors meant to be matched with errors.Is and
// wrapped with fmt.Errorf's %w at call sites.
package worlderr

import "errors"

var (
	// ErrDuplicateItem is returned by World.Add when the item already
	// exists in the world.
	ErrDuplicateItem = errors.New("item already exists in world")

	// ErrInvalidDimensions is returned by World.Add/Teleport when width or
	// height is not strictly positive.
	ErrInvalidDimensions = errors.New("width and height must be positive")

	// ErrInvalidCellSize is returned by world.New (and config.Load) when
	// cellSize is not strictly positive.
	ErrInvalidCellSize = errors.New("cell size must be positive")

	// ErrUnknownItem is returned by Move/Remove/Check/GetBox/Teleport when
	// the item is not present in the world.
	ErrUnknownItem = errors.New("item not found in world")

	// ErrNotResolved is returned by Touch/Slide/Bounce when called on a
	// Collision before Resolve has classified it.
	ErrNotResolved = errors.New("collision has not been resolved")
)
