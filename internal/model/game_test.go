package model

import (
	"testing"

	"github.com/fourchess/fourchess-backend/internal/engine"
	"github.com/rs/zerolog"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame("test-game", zerolog.Nop())
	for _, id := range []string{"p-red", "p-blue", "p-yellow", "p-green"} {
		if _, err := g.AddPlayer(id); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func wsMove(fromX, fromY, toX, toY int) WSMove {
	return WSMove{
		From: engine.Position{X: fromX, Y: fromY},
		To:   engine.Position{X: toX, Y: toY},
	}
}

func TestAddPlayerSeatsInTurnOrder(t *testing.T) {
	g := NewGame("seats", zerolog.Nop())

	colors := make([]engine.Color, 0, 4)
	for _, id := range []string{"a", "b", "c", "d"} {
		c, err := g.AddPlayer(id)
		if err != nil {
			t.Fatal(err)
		}
		colors = append(colors, c)
	}
	for i, want := range engine.TurnOrder {
		if colors[i] != want {
			t.Errorf("seat %d = %s, want %s", i, colors[i], want)
		}
	}

	if _, err := g.AddPlayer("e"); err == nil {
		t.Error("fifth player should be rejected")
	}
	// Rejoining returns the existing seat.
	c, err := g.AddPlayer("b")
	if err != nil || c != engine.Blue {
		t.Errorf("rejoin = (%s, %v), want (blue, nil)", c, err)
	}
}

func TestMakeMoveEnforcesTurnOrder(t *testing.T) {
	g := newTestGame(t)

	if err := g.MakeMove("p-yellow", wsMove(5, 1, 5, 2)); err == nil {
		t.Error("yellow should not move before red")
	}
	if err := g.MakeMove("outsider", wsMove(5, 12, 5, 11)); err == nil {
		t.Error("unseated player should be rejected")
	}
	if err := g.MakeMove("p-red", wsMove(5, 12, 5, 11)); err != nil {
		t.Fatalf("red's opening move rejected: %v", err)
	}

	state := g.GetState()
	if state.ToMove != engine.Blue {
		t.Errorf("ToMove = %s, want blue after red's move", state.ToMove)
	}
	if state.LastMove == nil || state.LastMove.MoveNumber != 1 {
		t.Errorf("LastMove = %+v", state.LastMove)
	}
	if engine.PieceAt(state.Pieces, 5, 11) == nil {
		t.Error("red pawn should be on (5,11)")
	}
}

func TestMakeMoveRejectionLeavesStateUntouched(t *testing.T) {
	g := newTestGame(t)
	before := g.GetState()

	if err := g.MakeMove("p-red", wsMove(5, 12, 5, 8)); err == nil {
		t.Fatal("a four-square pawn push should be rejected")
	}

	after := g.GetState()
	if after.ToMove != before.ToMove || len(after.MoveHistory) != 0 {
		t.Error("rejected move should not change game state")
	}
}

func TestNavigateAndForkThroughGame(t *testing.T) {
	g := newTestGame(t)
	script := []struct {
		player string
		move   WSMove
	}{
		{"p-red", wsMove(5, 12, 5, 11)},
		{"p-blue", wsMove(1, 5, 2, 5)},
		{"p-yellow", wsMove(5, 1, 5, 2)},
		{"p-green", wsMove(12, 5, 11, 5)},
	}
	for _, s := range script {
		if err := g.MakeMove(s.player, s.move); err != nil {
			t.Fatalf("%s: %v", s.player, err)
		}
	}

	if err := g.Navigate(WSNavigate{Branch: engine.MainBranch, Index: 2}); err != nil {
		t.Fatal(err)
	}
	state := g.GetState()
	if state.CurrentIndex != 2 || state.ToMove != engine.Yellow {
		t.Fatalf("after navigate: index=%d toMove=%s, want 2/yellow", state.CurrentIndex, state.ToMove)
	}
	if engine.PieceAt(state.Pieces, 11, 5) != nil {
		t.Error("green's later move should be rewound off the board")
	}

	// A different yellow move here forks a branch.
	if err := g.MakeMove("p-yellow", wsMove(6, 1, 6, 2)); err != nil {
		t.Fatal(err)
	}
	state = g.GetState()
	if state.BranchCreated == nil {
		t.Fatal("diverging move should announce a branch")
	}
	if state.CurrentBranch == engine.MainBranch {
		t.Error("game should now be on the forked branch")
	}
	if state.CurrentIndex != 3 {
		t.Errorf("index = %d, want 3", state.CurrentIndex)
	}
	if len(state.MoveHistory) != 5 {
		t.Errorf("recorded moves = %d, want 5", len(state.MoveHistory))
	}

	// Navigating back to main restores the original line.
	if err := g.Navigate(WSNavigate{Branch: engine.MainBranch, Index: 4}); err != nil {
		t.Fatal(err)
	}
	state = g.GetState()
	if engine.PieceAt(state.Pieces, 11, 5) == nil {
		t.Error("main line should still contain green's move")
	}
	if state.BranchCreated != nil {
		t.Error("navigation should clear the branch notice")
	}
}

func TestCapturedPiecesTrackReplay(t *testing.T) {
	g := newTestGame(t)
	script := []struct {
		player string
		move   WSMove
	}{
		{"p-red", wsMove(3, 12, 3, 10)},
		{"p-blue", wsMove(1, 9, 2, 9)},
		{"p-yellow", wsMove(5, 1, 5, 2)},
		{"p-green", wsMove(12, 5, 11, 5)},
		{"p-red", wsMove(3, 10, 2, 9)}, // takes the blue pawn
	}
	for _, s := range script {
		if err := g.MakeMove(s.player, s.move); err != nil {
			t.Fatalf("%s: %v", s.player, err)
		}
	}

	state := g.GetState()
	if len(state.CapturedPieces.Blue) != 1 {
		t.Fatalf("blue captures = %d, want 1", len(state.CapturedPieces.Blue))
	}

	// Rewinding before the capture empties the list again.
	if err := g.Navigate(WSNavigate{Branch: engine.MainBranch, Index: 4}); err != nil {
		t.Fatal(err)
	}
	state = g.GetState()
	if len(state.CapturedPieces.Blue) != 0 {
		t.Errorf("blue captures after rewind = %d, want 0", len(state.CapturedPieces.Blue))
	}
}

func TestResetPreservesSeats(t *testing.T) {
	g := newTestGame(t)
	if err := g.MakeMove("p-red", wsMove(5, 12, 5, 11)); err != nil {
		t.Fatal(err)
	}

	g.Reset()
	state := g.GetState()
	if len(state.MoveHistory) != 0 || state.CurrentIndex != 0 {
		t.Error("reset should discard the move history")
	}
	if state.ToMove != engine.Red {
		t.Errorf("ToMove = %s, want red", state.ToMove)
	}
	if len(state.Pieces) != len(engine.InitialPieces()) {
		t.Error("reset should restore the full initial layout")
	}
	if state.Players.Blue.ID != "p-blue" {
		t.Error("reset should keep the seated players")
	}
}

func TestLegalMovesAt(t *testing.T) {
	g := newTestGame(t)

	moves, err := g.LegalMovesAt(engine.Position{X: 5, Y: 12})
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 2 {
		t.Errorf("red pawn options = %d, want 2", len(moves))
	}

	if _, err := g.LegalMovesAt(engine.Position{X: 7, Y: 7}); err == nil {
		t.Error("empty square should return an error")
	}
}
