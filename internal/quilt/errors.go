package quilt

import "errors"

var (
	// ErrCapacity is returned when the patch store already holds MaxPatches.
	ErrCapacity = errors.New("patch store is full")

	// ErrFormat is returned for a malformed project document.
	ErrFormat = errors.New("invalid project format")

	// ErrMixedColors is returned by strict grouping when the selection
	// spans more than one color.
	ErrMixedColors = errors.New("selected patches have different colors")

	// ErrNoSuchPatch is returned for a stored patch index out of range.
	ErrNoSuchPatch = errors.New("no such stored patch")
)
