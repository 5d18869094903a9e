package engine

import "sort"

// Restrictor identifies one piece contributing to a restricted square.
type Restrictor struct {
	PieceID string `json:"pieceId"`
	PieceX  int    `json:"pieceX"`
	PieceY  int    `json:"pieceY"`
}

// RestrictedSquare is a square at least one of the player's pieces can reach,
// with every contributing piece recorded. Multiple attackers accumulate in
// RestrictedBy.
type RestrictedSquare struct {
	Index        int          `json:"index"`
	X            int          `json:"x"`
	Y            int          `json:"y"`
	RestrictedBy []Restrictor `json:"restrictedBy"`
}

// RestrictedSet is the aggregated payload: the flat index list drives
// highlighting, SquaresInfo carries the per-square attribution.
type RestrictedSet struct {
	Squares     []int              `json:"squares"`
	SquaresInfo []RestrictedSquare `json:"squaresInfo"`
}

// RestrictedSquares unions the legal destinations of every piece the color
// owns. Pin filtering always applies; when the color's king is in check the
// set is further narrowed to moves that resolve it, so the payload only ever
// shows playable squares.
func RestrictedSquares(c Color, pieces []Piece, s *Session) RestrictedSet {
	byIndex := make(map[int]*RestrictedSquare)
	for i := range pieces {
		piece := pieces[i]
		if piece.Color != c {
			continue
		}
		for _, mv := range PlayableMoves(piece, pieces, s) {
			idx := SquareIndex(mv.X, mv.Y)
			sq, ok := byIndex[idx]
			if !ok {
				sq = &RestrictedSquare{Index: idx, X: mv.X, Y: mv.Y}
				byIndex[idx] = sq
			}
			sq.RestrictedBy = append(sq.RestrictedBy, Restrictor{
				PieceID: piece.ID,
				PieceX:  piece.X,
				PieceY:  piece.Y,
			})
		}
	}

	set := RestrictedSet{Squares: make([]int, 0, len(byIndex)), SquaresInfo: make([]RestrictedSquare, 0, len(byIndex))}
	for idx := range byIndex {
		set.Squares = append(set.Squares, idx)
	}
	sort.Ints(set.Squares)
	for _, idx := range set.Squares {
		set.SquaresInfo = append(set.SquaresInfo, *byIndex[idx])
	}
	return set
}
