package engine

type CastleSide string

const (
	KingSide  CastleSide = "KING_SIDE"
	QueenSide CastleSide = "QUEEN_SIDE"
)

type castleEntry struct {
	KingFrom Position
	KingTo   Position
	RookFrom Position
	RookTo   Position
	// Between lists the squares strictly between king and rook, all of
	// which must be empty. Transit lists the squares the king occupies or
	// crosses, none of which may be attacked by the opposing team.
	Between []Position
	Transit []Position
}

// castleTable fixes the geometry for the eight color/side combinations. The
// king always moves two squares along its home rank or file and the rook
// lands on the square the king crossed.
var castleTable = map[Color]map[CastleSide]castleEntry{
	Yellow: {
		QueenSide: {
			KingFrom: Position{X: 6, Y: 0}, KingTo: Position{X: 4, Y: 0},
			RookFrom: Position{X: 3, Y: 0}, RookTo: Position{X: 5, Y: 0},
			Between: []Position{{X: 4, Y: 0}, {X: 5, Y: 0}},
			Transit: []Position{{X: 6, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 0}},
		},
		KingSide: {
			KingFrom: Position{X: 6, Y: 0}, KingTo: Position{X: 8, Y: 0},
			RookFrom: Position{X: 10, Y: 0}, RookTo: Position{X: 7, Y: 0},
			Between: []Position{{X: 7, Y: 0}, {X: 8, Y: 0}, {X: 9, Y: 0}},
			Transit: []Position{{X: 6, Y: 0}, {X: 7, Y: 0}, {X: 8, Y: 0}},
		},
	},
	Red: {
		QueenSide: {
			KingFrom: Position{X: 7, Y: 13}, KingTo: Position{X: 5, Y: 13},
			RookFrom: Position{X: 3, Y: 13}, RookTo: Position{X: 6, Y: 13},
			Between: []Position{{X: 4, Y: 13}, {X: 5, Y: 13}, {X: 6, Y: 13}},
			Transit: []Position{{X: 7, Y: 13}, {X: 6, Y: 13}, {X: 5, Y: 13}},
		},
		KingSide: {
			KingFrom: Position{X: 7, Y: 13}, KingTo: Position{X: 9, Y: 13},
			RookFrom: Position{X: 10, Y: 13}, RookTo: Position{X: 8, Y: 13},
			Between: []Position{{X: 8, Y: 13}, {X: 9, Y: 13}},
			Transit: []Position{{X: 7, Y: 13}, {X: 8, Y: 13}, {X: 9, Y: 13}},
		},
	},
	Blue: {
		QueenSide: {
			KingFrom: Position{X: 0, Y: 7}, KingTo: Position{X: 0, Y: 5},
			RookFrom: Position{X: 0, Y: 3}, RookTo: Position{X: 0, Y: 6},
			Between: []Position{{X: 0, Y: 4}, {X: 0, Y: 5}, {X: 0, Y: 6}},
			Transit: []Position{{X: 0, Y: 7}, {X: 0, Y: 6}, {X: 0, Y: 5}},
		},
		KingSide: {
			KingFrom: Position{X: 0, Y: 7}, KingTo: Position{X: 0, Y: 9},
			RookFrom: Position{X: 0, Y: 10}, RookTo: Position{X: 0, Y: 8},
			Between: []Position{{X: 0, Y: 8}, {X: 0, Y: 9}},
			Transit: []Position{{X: 0, Y: 7}, {X: 0, Y: 8}, {X: 0, Y: 9}},
		},
	},
	Green: {
		QueenSide: {
			KingFrom: Position{X: 13, Y: 6}, KingTo: Position{X: 13, Y: 4},
			RookFrom: Position{X: 13, Y: 3}, RookTo: Position{X: 13, Y: 5},
			Between: []Position{{X: 13, Y: 4}, {X: 13, Y: 5}},
			Transit: []Position{{X: 13, Y: 6}, {X: 13, Y: 5}, {X: 13, Y: 4}},
		},
		KingSide: {
			KingFrom: Position{X: 13, Y: 6}, KingTo: Position{X: 13, Y: 8},
			RookFrom: Position{X: 13, Y: 10}, RookTo: Position{X: 13, Y: 7},
			Between: []Position{{X: 13, Y: 7}, {X: 13, Y: 8}, {X: 13, Y: 9}},
			Transit: []Position{{X: 13, Y: 6}, {X: 13, Y: 7}, {X: 13, Y: 8}},
		},
	},
}

// CastleDestination returns the king's destination square for a color/side
// combination, and whether the combination exists.
func CastleDestination(c Color, side CastleSide) (Position, bool) {
	entry, ok := castleTable[c][side]
	if !ok {
		return Position{}, false
	}
	return entry.KingTo, true
}

// castleRookMove resolves a committed king move back to its rook relocation.
// Returns false when the king move is not a castle.
func castleRookMove(c Color, from, to Position) (rookFrom, rookTo Position, ok bool) {
	for _, entry := range castleTable[c] {
		if entry.KingFrom == from && entry.KingTo == to {
			return entry.RookFrom, entry.RookTo, true
		}
	}
	return Position{}, Position{}, false
}

// Session holds the per-game accumulated state the pure rule functions need:
// the set of pieces that have completed a move, which gates castling. It is
// created fresh per game and must be reset rather than shared across games.
type Session struct {
	moved map[string]bool
}

func NewSession() *Session {
	return &Session{moved: make(map[string]bool)}
}

func (s *Session) Reset() {
	s.moved = make(map[string]bool)
}

// MarkMoved records that the piece completed a move. A king move forfeits
// castling on both sides, so it also marks both of that color's rooks.
func (s *Session) MarkMoved(p Piece, pieces []Piece) {
	s.moved[p.ID] = true
	if p.Type != King {
		return
	}
	for i := range pieces {
		if pieces[i].Color == p.Color && pieces[i].Type == Rook {
			s.moved[pieces[i].ID] = true
		}
	}
}

func (s *Session) pieceHasMoved(p Piece) bool {
	if p.HasMoved {
		return true
	}
	return s != nil && s.moved[p.ID]
}

// SessionFromMoves rebuilds the moved-piece tracking for a replayed move
// sequence, so navigation to a historical position restores castling rights
// exactly as they stood there.
func SessionFromMoves(moves []Move) *Session {
	s := NewSession()
	pieces := InitialPieces()
	for _, mv := range moves {
		if mover := PieceAt(pieces, mv.FromX, mv.FromY); mover != nil {
			s.MarkMoved(*mover, pieces)
		}
		pieces = ApplyMove(pieces, mv)
	}
	return s
}

// CanCastle reports whether the king may castle on the given side: king and
// rook unmoved, the rook on its starting square, the squares between them
// empty, and no square the king stands on or crosses attacked by the
// opposing team. A king in check fails the transit test on its own square.
func CanCastle(king Piece, pieces []Piece, side CastleSide, s *Session) bool {
	if king.Type != King {
		return false
	}
	entry, ok := castleTable[king.Color][side]
	if !ok {
		return false
	}
	if king.Pos() != entry.KingFrom || s.pieceHasMoved(king) {
		return false
	}
	rook := PieceAt(pieces, entry.RookFrom.X, entry.RookFrom.Y)
	if rook == nil || rook.Type != Rook || rook.Color != king.Color || s.pieceHasMoved(*rook) {
		return false
	}
	for _, sq := range entry.Between {
		if PieceAt(pieces, sq.X, sq.Y) != nil {
			return false
		}
	}
	opposing := opposingTeam(king.Color)
	for _, sq := range entry.Transit {
		if SquareAttackedBy(opposing, sq.X, sq.Y, pieces) {
			return false
		}
	}
	return true
}

func opposingTeam(c Color) Team {
	if c.Team() == TeamRedYellow {
		return TeamBlueGreen
	}
	return TeamRedYellow
}
