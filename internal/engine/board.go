package engine

import "fmt"

// BoardSize is the side length of the four-player board. The playable area is
// the 14x14 grid minus a 3x3 blocked region in each corner.
const BoardSize = 14

type PieceType string

const (
	Pawn   PieceType = "pawn"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Rook   PieceType = "rook"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Green  Color = "green"
)

// TurnOrder is the fixed rotation of play.
var TurnOrder = []Color{Red, Blue, Yellow, Green}

type Team int

const (
	TeamRedYellow Team = 1
	TeamBlueGreen Team = 2
)

// Team returns the alliance the color belongs to. Red and yellow face each
// other and form team 1; blue and green form team 2.
func (c Color) Team() Team {
	if c == Red || c == Yellow {
		return TeamRedYellow
	}
	return TeamBlueGreen
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Piece struct {
	ID       string    `json:"id"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Color    Color     `json:"color"`
	Team     Team      `json:"team"`
	Type     PieceType `json:"pieceType"`
	HasMoved bool      `json:"hasMoved"`
}

func (p Piece) Pos() Position {
	return Position{X: p.X, Y: p.Y}
}

// InBounds reports whether the coordinates fall inside the 14x14 grid,
// blocked corners included.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// inBlockedCorner reports whether the square belongs to one of the four 3x3
// non-playable corner regions.
func inBlockedCorner(x, y int) bool {
	return (x < 3 || x > 10) && (y < 3 || y > 10)
}

// IsValidSquare reports whether a piece may occupy or move through (x, y).
func IsValidSquare(x, y int) bool {
	return InBounds(x, y) && !inBlockedCorner(x, y)
}

// SquareIndex flattens board coordinates into the y*14+x index used by the
// restricted-squares payload.
func SquareIndex(x, y int) int {
	return y*BoardSize + x
}

// PieceAt returns the piece occupying (x, y), or nil. At most one piece
// occupies a square at any time.
func PieceAt(pieces []Piece, x, y int) *Piece {
	for i := range pieces {
		if pieces[i].X == x && pieces[i].Y == y {
			return &pieces[i]
		}
	}
	return nil
}

// PieceByID returns the piece with the given id, or nil.
func PieceByID(pieces []Piece, id string) *Piece {
	for i := range pieces {
		if pieces[i].ID == id {
			return &pieces[i]
		}
	}
	return nil
}

// PawnDirection returns the fixed forward axis for a color's pawns. Each army
// pushes its pawns toward the center of the board.
func PawnDirection(c Color) (dx, dy int) {
	switch c {
	case Red:
		return 0, -1
	case Yellow:
		return 0, 1
	case Blue:
		return 1, 0
	case Green:
		return -1, 0
	}
	return 0, 0
}

// onPawnStartSquare reports whether a pawn still stands on its color's fixed
// starting rank or file, which gates the two-step advance.
func onPawnStartSquare(p Piece) bool {
	switch p.Color {
	case Red:
		return p.Y == 12
	case Yellow:
		return p.Y == 1
	case Blue:
		return p.X == 1
	case Green:
		return p.X == 12
	}
	return false
}

// backRank lists each army's home pieces from its queenside rook onward.
// Yellow and green mirror the red/blue king-queen order.
var backRank = map[Color][]PieceType{
	Red:    {Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook},
	Blue:   {Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook},
	Yellow: {Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook},
	Green:  {Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook},
}

// InitialPieces builds the standard four-player starting position: each army
// occupies eight back-rank squares plus eight pawns along one edge of the
// playable cross.
func InitialPieces() []Piece {
	pieces := make([]Piece, 0, 64)
	add := func(c Color, t PieceType, x, y int) {
		pieces = append(pieces, Piece{
			ID:    fmt.Sprintf("%s-%s-%d-%d", c, t, x, y),
			X:     x,
			Y:     y,
			Color: c,
			Team:  c.Team(),
			Type:  t,
		})
	}
	for i, t := range backRank[Yellow] {
		add(Yellow, t, 3+i, 0)
		add(Yellow, Pawn, 3+i, 1)
	}
	for i, t := range backRank[Red] {
		add(Red, t, 3+i, 13)
		add(Red, Pawn, 3+i, 12)
	}
	for i, t := range backRank[Blue] {
		add(Blue, t, 0, 3+i)
		add(Blue, Pawn, 1, 3+i)
	}
	for i, t := range backRank[Green] {
		add(Green, t, 13, 3+i)
		add(Green, Pawn, 12, 3+i)
	}
	return pieces
}

// FindKing returns the king of the given color, or nil if it has been
// captured.
func FindKing(c Color, pieces []Piece) *Piece {
	for i := range pieces {
		if pieces[i].Color == c && pieces[i].Type == King {
			return &pieces[i]
		}
	}
	return nil
}
