package engine

import "fmt"

// ValidateMove runs the full legality check for a candidate move without any
// side effect, so callers can decide whether to persist before anything is
// applied. Returns nil when the move is legal, otherwise one of the sentinel
// rule errors wrapped with the offending coordinates.
func ValidateMove(from, to Position, color Color, pieces []Piece, s *Session) error {
	for _, sq := range []Position{from, to} {
		if !InBounds(sq.X, sq.Y) {
			return fmt.Errorf("(%d,%d): %w", sq.X, sq.Y, ErrOutOfBounds)
		}
		if inBlockedCorner(sq.X, sq.Y) {
			return fmt.Errorf("(%d,%d): %w", sq.X, sq.Y, ErrNonPlayableSquare)
		}
	}
	mover := PieceAt(pieces, from.X, from.Y)
	if mover == nil {
		return fmt.Errorf("(%d,%d): %w", from.X, from.Y, ErrNoPieceAtSource)
	}
	if mover.Color != color {
		return fmt.Errorf("piece at (%d,%d) is %s: %w", from.X, from.Y, mover.Color, ErrNotYourPiece)
	}
	if target := PieceAt(pieces, to.X, to.Y); target != nil && target.Color.Team() == mover.Color.Team() {
		return fmt.Errorf("(%d,%d): %w", to.X, to.Y, ErrFriendlyCapture)
	}

	candidates := LegalMoves(*mover, pieces, s)
	if !containsDestination(candidates, to) {
		return fmt.Errorf("%s to (%d,%d): %w", mover.Type, to.X, to.Y, ErrIllegalDestination)
	}
	filtered := FilterByPin(*mover, candidates, pieces)
	if !containsDestination(filtered, to) {
		return fmt.Errorf("%s at (%d,%d): %w", mover.Type, from.X, from.Y, ErrPinnedPiece)
	}
	if !WouldResolveCheck(from, to, color, pieces) {
		return fmt.Errorf("%s to (%d,%d): %w", mover.Type, to.X, to.Y, ErrCheckUnresolved)
	}
	// A king may never step onto an attacked square, check or no check.
	if mover.Type == King && SquareAttackedBy(opposingTeam(color), to.X, to.Y, pieces) {
		return fmt.Errorf("(%d,%d): %w", to.X, to.Y, ErrMoveIntoCheck)
	}
	return nil
}

// PlayableMoves is the canonical fully-filtered move set for a piece:
// pseudo-legal generation, pin filtering, check resolution and king safety in
// one place. Both the per-piece legality queries and the restricted-squares
// aggregation go through here so the rules cannot drift apart.
func PlayableMoves(piece Piece, pieces []Piece, s *Session) []MoveOption {
	moves := FilterByPin(piece, LegalMoves(piece, pieces, s), pieces)
	kept := moves[:0:0]
	opposing := opposingTeam(piece.Color)
	for _, mv := range moves {
		if !WouldResolveCheck(piece.Pos(), Position{X: mv.X, Y: mv.Y}, piece.Color, pieces) {
			continue
		}
		if piece.Type == King && SquareAttackedBy(opposing, mv.X, mv.Y, pieces) {
			continue
		}
		kept = append(kept, mv)
	}
	return kept
}

func containsDestination(moves []MoveOption, to Position) bool {
	for _, mv := range moves {
		if mv.X == to.X && mv.Y == to.Y {
			return true
		}
	}
	return false
}
