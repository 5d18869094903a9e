package engine

import "errors"

// Rule violations are recoverable: callers surface them as rejected moves and
// leave board state untouched.
var (
	ErrOutOfBounds        = errors.New("square out of bounds")
	ErrNonPlayableSquare  = errors.New("square is not playable")
	ErrNoPieceAtSource    = errors.New("no piece at source square")
	ErrNotYourPiece       = errors.New("piece belongs to another player")
	ErrFriendlyCapture    = errors.New("cannot capture a friendly piece")
	ErrPinnedPiece        = errors.New("piece is pinned to its king")
	ErrIllegalDestination = errors.New("destination is not a legal move")
	ErrMoveIntoCheck      = errors.New("king cannot move onto an attacked square")
	ErrCheckUnresolved    = errors.New("move does not resolve check")
)
