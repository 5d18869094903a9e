package engine

import (
	"errors"
	"testing"
)

func TestValidateMoveErrors(t *testing.T) {
	tests := []struct {
		name    string
		pieces  []Piece
		from    Position
		to      Position
		color   Color
		wantErr error
	}{
		{
			name:    "source out of bounds",
			pieces:  []Piece{testPiece(Yellow, King, 6, 0)},
			from:    Position{X: -1, Y: 5},
			to:      Position{X: 0, Y: 5},
			color:   Yellow,
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "destination out of bounds",
			pieces:  []Piece{testPiece(Yellow, King, 6, 0), testPiece(Yellow, Rook, 7, 7)},
			from:    Position{X: 7, Y: 7},
			to:      Position{X: 7, Y: 14},
			color:   Yellow,
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "destination in blocked corner",
			pieces:  []Piece{testPiece(Yellow, King, 6, 0), testPiece(Yellow, Queen, 5, 5)},
			from:    Position{X: 5, Y: 5},
			to:      Position{X: 12, Y: 12},
			color:   Yellow,
			wantErr: ErrNonPlayableSquare,
		},
		{
			name:    "empty source square",
			pieces:  []Piece{testPiece(Yellow, King, 6, 0)},
			from:    Position{X: 7, Y: 7},
			to:      Position{X: 7, Y: 8},
			color:   Yellow,
			wantErr: ErrNoPieceAtSource,
		},
		{
			name: "teammate's piece is still not yours",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Red, Rook, 7, 7),
			},
			from:    Position{X: 7, Y: 7},
			to:      Position{X: 7, Y: 8},
			color:   Yellow,
			wantErr: ErrNotYourPiece,
		},
		{
			name: "capture of an allied piece",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Yellow, Rook, 7, 7),
				testPiece(Red, Pawn, 7, 10),
			},
			from:    Position{X: 7, Y: 7},
			to:      Position{X: 7, Y: 10},
			color:   Yellow,
			wantErr: ErrFriendlyCapture,
		},
		{
			name: "destination not in the movement pattern",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Yellow, Rook, 7, 7),
			},
			from:    Position{X: 7, Y: 7},
			to:      Position{X: 8, Y: 8},
			color:   Yellow,
			wantErr: ErrIllegalDestination,
		},
		{
			name: "pinned piece leaving the pin line",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Yellow, Rook, 6, 3),
				testPiece(Blue, Queen, 6, 9),
			},
			from:    Position{X: 6, Y: 3},
			to:      Position{X: 8, Y: 3},
			color:   Yellow,
			wantErr: ErrPinnedPiece,
		},
		{
			name: "move ignoring an active check",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Yellow, Rook, 3, 5),
				testPiece(Blue, Rook, 6, 9),
			},
			from:    Position{X: 3, Y: 5},
			to:      Position{X: 3, Y: 4},
			color:   Yellow,
			wantErr: ErrCheckUnresolved,
		},
		{
			name: "king stepping onto an attacked square",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Blue, Rook, 5, 9),
			},
			from:    Position{X: 6, Y: 0},
			to:      Position{X: 5, Y: 0},
			color:   Yellow,
			wantErr: ErrMoveIntoCheck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMove(tt.from, tt.to, tt.color, tt.pieces, NewSession())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateMove = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMoveAccepts(t *testing.T) {
	tests := []struct {
		name   string
		pieces []Piece
		from   Position
		to     Position
		color  Color
	}{
		{
			name: "plain rook slide",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Yellow, Rook, 7, 7),
			},
			from:  Position{X: 7, Y: 7},
			to:    Position{X: 7, Y: 12},
			color: Yellow,
		},
		{
			name: "capture of an opponent",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Yellow, Rook, 7, 7),
				testPiece(Blue, Pawn, 7, 10),
			},
			from:  Position{X: 7, Y: 7},
			to:    Position{X: 7, Y: 10},
			color: Yellow,
		},
		{
			name: "pinned rook sliding along the pin line",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Yellow, Rook, 6, 3),
				testPiece(Blue, Queen, 6, 9),
			},
			from:  Position{X: 6, Y: 3},
			to:    Position{X: 6, Y: 9},
			color: Yellow,
		},
		{
			name: "interposition resolving a check",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Yellow, Rook, 3, 5),
				testPiece(Blue, Rook, 6, 9),
			},
			from:  Position{X: 3, Y: 5},
			to:    Position{X: 6, Y: 5},
			color: Yellow,
		},
		{
			name: "king escaping a check",
			pieces: []Piece{
				testPiece(Yellow, King, 6, 0),
				testPiece(Blue, Rook, 6, 9),
			},
			from:  Position{X: 6, Y: 0},
			to:    Position{X: 5, Y: 0},
			color: Yellow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateMove(tt.from, tt.to, tt.color, tt.pieces, NewSession()); err != nil {
				t.Fatalf("ValidateMove = %v, want nil", err)
			}
		})
	}
}

func TestPlayableMovesMatchValidation(t *testing.T) {
	pieces := []Piece{
		testPiece(Yellow, King, 6, 0),
		testPiece(Yellow, Rook, 6, 3),
		testPiece(Yellow, Knight, 9, 4),
		testPiece(Blue, Queen, 6, 9),
	}
	s := NewSession()

	for _, p := range pieces {
		if p.Color != Yellow {
			continue
		}
		for _, mv := range PlayableMoves(p, pieces, s) {
			to := Position{X: mv.X, Y: mv.Y}
			if err := ValidateMove(p.Pos(), to, Yellow, pieces, s); err != nil {
				t.Errorf("%s at %+v: playable move to %+v rejected: %v", p.Type, p.Pos(), to, err)
			}
		}
	}
}
