package maze

import "errors"

var (
	// ErrInvalidDimension indicates a width or height that is not positive,
	// or a cell count too large to index.
	ErrInvalidDimension = errors.New("maze: invalid width or height")
	// ErrUnknownDirection indicates a direction value outside North, South, West, East.
	ErrUnknownDirection = errors.New("maze: direction not recognized")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrEmptyGrid indicates a numeric grid with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidMask indicates a cell value outside 0..15.
	ErrInvalidMask = errors.New("maze: cell mask out of range")
	// ErrAsymmetricPassage indicates a passage bit without the matching opposite bit.
	ErrAsymmetricPassage = errors.New("maze: passage is not symmetric")
	// ErrCycle indicates the passage graph contains a loop.
	ErrCycle = errors.New("maze: passage graph contains a cycle")
	// ErrDisconnected indicates some cells are not reachable from the others.
	ErrDisconnected = errors.New("maze: passage graph is disconnected")
	// ErrProgramDefect marks an internal invariant violation. It is never a
	// user-facing condition; generators panic with an error wrapping it.
	ErrProgramDefect = errors.New("maze: program defect")
)
