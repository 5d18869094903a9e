package engine

import "testing"

func TestIsValidSquare(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "center", x: 7, y: 7, want: true},
		{name: "edge of playable cross", x: 0, y: 7, want: true},
		{name: "top-left corner", x: 0, y: 0, want: false},
		{name: "top-left corner boundary", x: 2, y: 2, want: false},
		{name: "first playable past corner", x: 3, y: 0, want: true},
		{name: "bottom-right corner", x: 13, y: 13, want: false},
		{name: "bottom-right inner corner", x: 11, y: 11, want: false},
		{name: "negative", x: -1, y: 5, want: false},
		{name: "beyond edge", x: 14, y: 5, want: false},
		{name: "corner column but central row", x: 1, y: 7, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSquare(tt.x, tt.y); got != tt.want {
				t.Fatalf("IsValidSquare(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBlockedCornerCount(t *testing.T) {
	blocked := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if InBounds(x, y) && !IsValidSquare(x, y) {
				blocked++
			}
		}
	}
	if blocked != 36 {
		t.Fatalf("blocked squares = %d, want 36", blocked)
	}
}

func TestInitialPieces(t *testing.T) {
	pieces := InitialPieces()
	if len(pieces) != 64 {
		t.Fatalf("initial piece count = %d, want 64", len(pieces))
	}

	kings := map[Color]Position{
		Yellow: {X: 6, Y: 0},
		Red:    {X: 7, Y: 13},
		Blue:   {X: 0, Y: 7},
		Green:  {X: 13, Y: 6},
	}
	for color, want := range kings {
		king := FindKing(color, pieces)
		if king == nil {
			t.Fatalf("no %s king", color)
		}
		if king.Pos() != want {
			t.Errorf("%s king at %+v, want %+v", color, king.Pos(), want)
		}
	}

	seen := map[Position]string{}
	for _, p := range pieces {
		if !IsValidSquare(p.X, p.Y) {
			t.Errorf("piece %s on invalid square (%d,%d)", p.ID, p.X, p.Y)
		}
		if other, ok := seen[p.Pos()]; ok {
			t.Errorf("pieces %s and %s share (%d,%d)", other, p.ID, p.X, p.Y)
		}
		seen[p.Pos()] = p.ID
		if p.Team != p.Color.Team() {
			t.Errorf("piece %s team = %d, want %d", p.ID, p.Team, p.Color.Team())
		}
		if p.HasMoved {
			t.Errorf("piece %s starts with HasMoved set", p.ID)
		}
	}
}

func TestTeams(t *testing.T) {
	if Red.Team() != TeamRedYellow || Yellow.Team() != TeamRedYellow {
		t.Error("red and yellow should share team 1")
	}
	if Blue.Team() != TeamBlueGreen || Green.Team() != TeamBlueGreen {
		t.Error("blue and green should share team 2")
	}
}

func TestSquareIndex(t *testing.T) {
	if got := SquareIndex(4, 8); got != 116 {
		t.Fatalf("SquareIndex(4,8) = %d, want 116", got)
	}
	if got := SquareIndex(0, 0); got != 0 {
		t.Fatalf("SquareIndex(0,0) = %d, want 0", got)
	}
}
