package engine

var (
	rookDirs   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	bishopDirs = []Position{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	royalDirs  = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	knightDirs = []Position{{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: 1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: -1, Y: -2}}
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// PathClear walks unit steps from just past (x1, y1) up to but not including
// (x2, y2) and reports whether every intermediate square is empty. Blocked
// corner squares on the path also fail: sliders never pass through the
// non-playable regions.
func PathClear(x1, y1, x2, y2 int, pieces []Piece) bool {
	dx, dy := sign(x2-x1), sign(y2-y1)
	x, y := x1+dx, y1+dy
	for x != x2 || y != y2 {
		if !IsValidSquare(x, y) {
			return false
		}
		if PieceAt(pieces, x, y) != nil {
			return false
		}
		x += dx
		y += dy
	}
	return true
}

// Attacks reports whether the piece currently attacks (tx, ty). Used for
// check detection, pin evaluation and castling transit safety.
func Attacks(p Piece, tx, ty int, pieces []Piece) bool {
	dx := tx - p.X
	dy := ty - p.Y
	if dx == 0 && dy == 0 {
		return false
	}
	switch p.Type {
	case King:
		return abs(dx) <= 1 && abs(dy) <= 1
	case Queen:
		if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
			return false
		}
		return PathClear(p.X, p.Y, tx, ty, pieces)
	case Rook:
		if dx != 0 && dy != 0 {
			return false
		}
		return PathClear(p.X, p.Y, tx, ty, pieces)
	case Bishop:
		if abs(dx) != abs(dy) {
			return false
		}
		return PathClear(p.X, p.Y, tx, ty, pieces)
	case Knight:
		return (abs(dx) == 2 && abs(dy) == 1) || (abs(dx) == 1 && abs(dy) == 2)
	case Pawn:
		// A pawn only attacks its two forward-diagonal squares, and only
		// when an opponent actually stands there.
		fx, fy := PawnDirection(p.Color)
		if fy != 0 {
			if dy != fy || abs(dx) != 1 {
				return false
			}
		} else {
			if dx != fx || abs(dy) != 1 {
				return false
			}
		}
		target := PieceAt(pieces, tx, ty)
		return target != nil && target.Color.Team() != p.Color.Team()
	}
	return false
}

// SquareAttackedBy reports whether any piece of the given team attacks
// (x, y).
func SquareAttackedBy(team Team, x, y int, pieces []Piece) bool {
	for i := range pieces {
		if pieces[i].Color.Team() != team {
			continue
		}
		if Attacks(pieces[i], x, y, pieces) {
			return true
		}
	}
	return false
}
