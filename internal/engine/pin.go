package engine

// PinState describes whether a piece is pinned against its own king and, if
// so, the axis it may still move along. Direction is the unit step from the
// king through the piece; movement both ways along that line stays legal.
type PinState struct {
	IsPinned  bool     `json:"isPinned"`
	Direction Position `json:"pinDirection,omitempty"`
}

// PinOn scans outward from the piece away from its king. The first occupied
// square decides: a teammate shields the piece, an enemy pins it only if that
// enemy's type attacks along the scanned axis.
func PinOn(piece Piece, pieces []Piece) PinState {
	if piece.Type == King {
		return PinState{}
	}
	king := FindKing(piece.Color, pieces)
	if king == nil {
		return PinState{}
	}
	dx := piece.X - king.X
	dy := piece.Y - king.Y
	if dx == 0 && dy == 0 {
		return PinState{}
	}
	aligned := dx == 0 || dy == 0 || abs(dx) == abs(dy)
	if !aligned {
		return PinState{}
	}
	step := Position{X: sign(dx), Y: sign(dy)}

	// Another piece between king and this one already absorbs the line.
	if !PathClear(king.X, king.Y, piece.X, piece.Y, pieces) {
		return PinState{}
	}

	x, y := piece.X+step.X, piece.Y+step.Y
	dist := 1
	for IsValidSquare(x, y) {
		occupant := PieceAt(pieces, x, y)
		if occupant == nil {
			x += step.X
			y += step.Y
			dist++
			continue
		}
		if occupant.Color.Team() == piece.Color.Team() {
			return PinState{}
		}
		if pinsAlongAxis(*occupant, step, dist, piece, pieces) {
			return PinState{IsPinned: true, Direction: step}
		}
		return PinState{}
	}
	return PinState{}
}

// pinsAlongAxis reports whether the enemy blocker's piece type projects an
// attack back down the scanned axis toward the king.
func pinsAlongAxis(enemy Piece, step Position, dist int, pinned Piece, pieces []Piece) bool {
	orthogonal := step.X == 0 || step.Y == 0
	switch enemy.Type {
	case Queen:
		return true
	case Rook:
		return orthogonal
	case Bishop:
		return !orthogonal
	case Pawn:
		// A pawn only reaches one square along its forward diagonals.
		return dist == 1 && Attacks(enemy, pinned.X, pinned.Y, pieces)
	}
	return false
}

// FilterByPin drops every candidate move that leaves the pin axis. A pinned
// knight keeps no moves: none of its destinations are colinear with any line.
func FilterByPin(piece Piece, moves []MoveOption, pieces []Piece) []MoveOption {
	pin := PinOn(piece, pieces)
	if !pin.IsPinned {
		return moves
	}
	kept := moves[:0:0]
	for _, mv := range moves {
		if mv.IsCastle {
			continue
		}
		dx := mv.X - piece.X
		dy := mv.Y - piece.Y
		if colinear(dx, dy, pin.Direction) {
			kept = append(kept, mv)
		}
	}
	return kept
}

func colinear(dx, dy int, axis Position) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	// The displacement must lie on the same line as the axis vector.
	if dx*axis.Y != dy*axis.X {
		return false
	}
	if axis.X != 0 {
		return dx != 0
	}
	return dy != 0
}
