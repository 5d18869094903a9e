package engine

// CheckStatus reports a king under attack: which team it belongs to, its
// color and where it stands. A nil status means no check.
type CheckStatus struct {
	Team     Team     `json:"team"`
	Color    Color    `json:"color"`
	Position Position `json:"position"`
}

// IsKingInCheck reports whether any opposing-team piece attacks the king's
// square.
func IsKingInCheck(king Piece, pieces []Piece) bool {
	return SquareAttackedBy(opposingTeam(king.Color), king.X, king.Y, pieces)
}

// KingAttackers enumerates every opposing-team piece currently attacking the
// king. The count drives check resolution: more than one attacker can only be
// answered by a king move.
func KingAttackers(king Piece, pieces []Piece) []Piece {
	opposing := opposingTeam(king.Color)
	attackers := []Piece{}
	for i := range pieces {
		if pieces[i].Color.Team() != opposing {
			continue
		}
		if Attacks(pieces[i], king.X, king.Y, pieces) {
			attackers = append(attackers, pieces[i])
		}
	}
	return attackers
}

// KingCheckStatus returns the check payload for a color's king, or nil when
// the king is absent or safe.
func KingCheckStatus(c Color, pieces []Piece) *CheckStatus {
	king := FindKing(c, pieces)
	if king == nil || !IsKingInCheck(*king, pieces) {
		return nil
	}
	return &CheckStatus{Team: c.Team(), Color: c, Position: king.Pos()}
}

// IsSquareBetween reports whether (x, y) lies strictly on the straight-line
// segment from (x1, y1) to (x2, y2). Non-colinear squares and the endpoints
// themselves fail.
func IsSquareBetween(x, y, x1, y1, x2, y2 int) bool {
	dx := x2 - x1
	dy := y2 - y1
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return false
	}
	sx, sy := sign(dx), sign(dy)
	cx, cy := x1+sx, y1+sy
	for cx != x2 || cy != y2 {
		if cx == x && cy == y {
			return true
		}
		cx += sx
		cy += sy
	}
	return false
}

// WouldResolveCheck decides whether moving the piece at from to to leaves the
// mover's king out of check. With no check active any move passes. A king
// move passes when the destination is not attacked. Otherwise a single
// attacker must be captured or blocked, and a double check admits no
// non-king answer.
func WouldResolveCheck(from, to Position, color Color, pieces []Piece) bool {
	king := FindKing(color, pieces)
	if king == nil {
		return true
	}
	if !IsKingInCheck(*king, pieces) {
		return true
	}
	mover := PieceAt(pieces, from.X, from.Y)
	if mover != nil && mover.Type == King {
		return !SquareAttackedBy(opposingTeam(color), to.X, to.Y, pieces)
	}
	attackers := KingAttackers(*king, pieces)
	if len(attackers) > 1 {
		return false
	}
	if len(attackers) == 0 {
		return true
	}
	attacker := attackers[0]
	if to.X == attacker.X && to.Y == attacker.Y {
		return true
	}
	return IsSquareBetween(to.X, to.Y, attacker.X, attacker.Y, king.X, king.Y)
}
