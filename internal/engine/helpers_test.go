package engine

import "fmt"

// testPiece builds a piece with a deterministic id for position setup in
// tests.
func testPiece(c Color, t PieceType, x, y int) Piece {
	return Piece{
		ID:    fmt.Sprintf("%s-%s-%d-%d", c, t, x, y),
		X:     x,
		Y:     y,
		Color: c,
		Team:  c.Team(),
		Type:  t,
	}
}

// removeAt drops the piece occupying (x, y) from the set.
func removeAt(pieces []Piece, x, y int) []Piece {
	out := pieces[:0:0]
	for _, p := range pieces {
		if p.X == x && p.Y == y {
			continue
		}
		out = append(out, p)
	}
	return out
}

// destinations indexes move options by target square.
func destinations(moves []MoveOption) map[Position]MoveOption {
	out := make(map[Position]MoveOption, len(moves))
	for _, mv := range moves {
		out[Position{X: mv.X, Y: mv.Y}] = mv
	}
	return out
}
