package engine

// MoveOption is a single candidate destination for a piece. CanCapture is set
// when the destination currently holds an opponent piece. Castle candidates
// carry the king's destination square plus the side marker.
type MoveOption struct {
	X          int        `json:"x"`
	Y          int        `json:"y"`
	CanCapture bool       `json:"canCapture"`
	IsCastle   bool       `json:"isCastle,omitempty"`
	CastleType CastleSide `json:"castleType,omitempty"`
}

// LegalMoves computes the pseudo-legal destinations for a piece: occupancy,
// bounds and blocked-corner rules are applied here, while check and pin
// filtering layer on top (FilterByPin, WouldResolveCheck). The session feeds
// castling candidate evaluation and may be nil to skip castling.
func LegalMoves(piece Piece, pieces []Piece, s *Session) []MoveOption {
	switch piece.Type {
	case Pawn:
		return pawnMoves(piece, pieces)
	case Knight:
		return stepMoves(piece, pieces, knightDirs)
	case Bishop:
		return slideMoves(piece, pieces, bishopDirs)
	case Rook:
		return slideMoves(piece, pieces, rookDirs)
	case Queen:
		return slideMoves(piece, pieces, royalDirs)
	case King:
		moves := stepMoves(piece, pieces, royalDirs)
		if s != nil {
			for _, side := range []CastleSide{KingSide, QueenSide} {
				if CanCastle(piece, pieces, side, s) {
					entry := castleTable[piece.Color][side]
					moves = append(moves, MoveOption{
						X:          entry.KingTo.X,
						Y:          entry.KingTo.Y,
						IsCastle:   true,
						CastleType: side,
					})
				}
			}
		}
		return moves
	}
	return nil
}

// slideMoves walks each direction vector until the board edge, a blocked
// corner, or an occupied square. An opponent's square is included as a
// capture; iteration never continues past it.
func slideMoves(piece Piece, pieces []Piece, dirs []Position) []MoveOption {
	moves := []MoveOption{}
	for _, dir := range dirs {
		x, y := piece.X+dir.X, piece.Y+dir.Y
		for IsValidSquare(x, y) {
			occupant := PieceAt(pieces, x, y)
			if occupant == nil {
				moves = append(moves, MoveOption{X: x, Y: y})
				x += dir.X
				y += dir.Y
				continue
			}
			if occupant.Color.Team() != piece.Color.Team() {
				moves = append(moves, MoveOption{X: x, Y: y, CanCapture: true})
			}
			break
		}
	}
	return moves
}

func stepMoves(piece Piece, pieces []Piece, dirs []Position) []MoveOption {
	moves := []MoveOption{}
	for _, dir := range dirs {
		x, y := piece.X+dir.X, piece.Y+dir.Y
		if !IsValidSquare(x, y) {
			continue
		}
		occupant := PieceAt(pieces, x, y)
		if occupant == nil {
			moves = append(moves, MoveOption{X: x, Y: y})
		} else if occupant.Color.Team() != piece.Color.Team() {
			moves = append(moves, MoveOption{X: x, Y: y, CanCapture: true})
		}
	}
	return moves
}

// pawnMoves generates forward pushes along the color's fixed axis and the two
// perpendicular diagonal captures. There is no move-only diagonal and no en
// passant; the two-step push is only available from the starting rank/file.
func pawnMoves(piece Piece, pieces []Piece) []MoveOption {
	moves := []MoveOption{}
	fx, fy := PawnDirection(piece.Color)

	oneX, oneY := piece.X+fx, piece.Y+fy
	if IsValidSquare(oneX, oneY) && PieceAt(pieces, oneX, oneY) == nil {
		moves = append(moves, MoveOption{X: oneX, Y: oneY})
		twoX, twoY := piece.X+2*fx, piece.Y+2*fy
		if onPawnStartSquare(piece) && IsValidSquare(twoX, twoY) && PieceAt(pieces, twoX, twoY) == nil {
			moves = append(moves, MoveOption{X: twoX, Y: twoY})
		}
	}

	var diagonals []Position
	if fy != 0 {
		diagonals = []Position{{X: piece.X - 1, Y: piece.Y + fy}, {X: piece.X + 1, Y: piece.Y + fy}}
	} else {
		diagonals = []Position{{X: piece.X + fx, Y: piece.Y - 1}, {X: piece.X + fx, Y: piece.Y + 1}}
	}
	for _, sq := range diagonals {
		if !IsValidSquare(sq.X, sq.Y) {
			continue
		}
		occupant := PieceAt(pieces, sq.X, sq.Y)
		if occupant != nil && occupant.Color.Team() != piece.Color.Team() {
			moves = append(moves, MoveOption{X: sq.X, Y: sq.Y, CanCapture: true})
		}
	}
	return moves
}
