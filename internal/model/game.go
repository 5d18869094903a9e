package model

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/fourchess/fourchess-backend/internal/engine"
	"github.com/fourchess/fourchess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
)

// GameConnections tracks the live websocket connections for one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game owns a single four-player game: the engine session and branching move
// history, the seat assignments, and the observers to notify. All rule
// decisions are delegated to the engine over the current piece snapshot; the
// game only serializes writes and rebuilds state by replay after each commit.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	history     *engine.History
	session     *engine.Session
	connections *GameConnections
	log         zerolog.Logger
}

type GameState struct {
	Pieces         []engine.Piece       `json:"pieces"`
	ToMove         engine.Color         `json:"toMove"`
	MoveHistory    []engine.Move        `json:"moveHistory"`
	CurrentBranch  string               `json:"currentBranch"`
	CurrentIndex   int                  `json:"currentIndex"`
	CapturedPieces CapturedPieces       `json:"capturedPieces"`
	Check          *engine.CheckStatus  `json:"check"`
	LastMove       *engine.Move         `json:"lastMove"`
	BranchCreated  *engine.BranchNotice `json:"branchCreated"`
	Players        Players              `json:"players"`
}

type CapturedPieces struct {
	Red    []engine.Piece `json:"red"`
	Blue   []engine.Piece `json:"blue"`
	Yellow []engine.Piece `json:"yellow"`
	Green  []engine.Piece `json:"green"`
}

func NewGame(id string, log zerolog.Logger) *Game {
	return &Game{
		ID:          id,
		state:       newGameState(),
		history:     engine.NewHistory(log),
		session:     engine.NewSession(),
		connections: NewGameConnections(),
		log:         log.With().Str("game", id).Logger(),
	}
}

func newGameState() GameState {
	return GameState{
		Pieces:        engine.InitialPieces(),
		ToMove:        engine.Red,
		MoveHistory:   []engine.Move{},
		CurrentBranch: engine.MainBranch,
	}
}

// AddPlayer seats the player in the first free seat, in turn order.
func (g *Game) AddPlayer(playerID string) (engine.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seats := []*ClientPlayer{
		&g.state.Players.Red,
		&g.state.Players.Blue,
		&g.state.Players.Yellow,
		&g.state.Players.Green,
	}
	for i, seat := range seats {
		if seat.ID == playerID {
			return seat.Color, nil
		}
		if seat.ID == "" {
			seat.ID = playerID
			seat.Color = engine.TurnOrder[i]
			return seat.Color, nil
		}
	}
	return "", errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seatColor(playerID) != ""
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	p := g.state.Players
	return p.Red.ID == "" || p.Blue.ID == "" || p.Yellow.ID == "" || p.Green.ID == ""
}

func (g *Game) seatColor(playerID string) engine.Color {
	p := g.state.Players
	for _, seat := range []ClientPlayer{p.Red, p.Blue, p.Yellow, p.Green} {
		if seat.ID != "" && seat.ID == playerID {
			return seat.Color
		}
	}
	return ""
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// MakeMove validates and commits a move for the submitting player. The move
// is fully validated with no side effect first; only then is it recorded in
// the history and the board rebuilt by replay, so a rejection never touches
// game state.
func (g *Game) MakeMove(playerID string, move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	color := g.seatColor(playerID)
	if color == "" {
		return errors.New("player not seated in this game")
	}
	if g.state.ToMove != color {
		return errors.New("not your turn")
	}

	if err := engine.ValidateMove(move.From, move.To, color, g.state.Pieces, g.session); err != nil {
		return err
	}

	mover := engine.PieceAt(g.state.Pieces, move.From.X, move.From.Y)
	in := engine.MoveInput{From: move.From, To: move.To, PieceType: mover.Type}
	if captured := engine.PieceAt(g.state.Pieces, move.To.X, move.To.Y); captured != nil {
		in.CapturedPieceID = captured.ID
	}

	rec, notice := g.history.Submit(in)
	g.rebuild()
	g.state.LastMove = &rec
	g.state.BranchCreated = notice
	if notice != nil {
		g.log.Info().Str("branch", notice.Name).Str("parent", notice.Parent).Msg("branch created")
	}

	go g.broadcastState()
	return nil
}

// Navigate rewinds or fast-forwards the game to a historical position on any
// branch. The board is rebuilt by replay from the initial layout.
func (g *Game) Navigate(nav WSNavigate) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.history.SetPosition(nav.Branch, nav.Index); err != nil {
		return err
	}
	g.rebuild()
	g.state.BranchCreated = nil
	line := g.history.LineMoves(g.history.CurrentBranch())
	if idx := g.history.CurrentIndex(); idx > 0 && idx <= len(line) {
		mv := line[idx-1]
		g.state.LastMove = &mv
	} else {
		g.state.LastMove = nil
	}

	go g.broadcastState()
	return nil
}

// Reset wipes the game back to the initial layout and discards the entire
// branch tree.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	players := g.state.Players
	g.history.Reset()
	g.session.Reset()
	g.state = newGameState()
	g.state.Players = players

	go g.broadcastState()
}

// rebuild recomputes the derived state after the history moved: piece
// snapshot, castling session, capture lists, turn and check flag.
func (g *Game) rebuild() {
	branch := g.history.CurrentBranch()
	index := g.history.CurrentIndex()

	g.state.Pieces = g.history.ReplayAt(branch, index)
	line := g.history.LineMoves(branch)
	if index > len(line) {
		index = len(line)
	}
	g.session = engine.SessionFromMoves(line[:index])

	g.state.MoveHistory = g.history.Moves()
	g.state.CurrentBranch = branch
	g.state.CurrentIndex = g.history.CurrentIndex()
	g.state.CapturedPieces = capturedFrom(g.state.Pieces)
	g.state.ToMove = engine.TurnOrder[g.history.CurrentIndex()%len(engine.TurnOrder)]
	g.state.Check = g.checkStatus()
}

// checkStatus reports the first king in check, scanning from the player to
// move so the active player's predicament wins ties.
func (g *Game) checkStatus() *engine.CheckStatus {
	start := 0
	for i, c := range engine.TurnOrder {
		if c == g.state.ToMove {
			start = i
			break
		}
	}
	for i := 0; i < len(engine.TurnOrder); i++ {
		c := engine.TurnOrder[(start+i)%len(engine.TurnOrder)]
		if status := engine.KingCheckStatus(c, g.state.Pieces); status != nil {
			return status
		}
	}
	return nil
}

// capturedFrom diffs the current snapshot against the initial layout; any
// starting piece missing from the board has been captured. Deterministic
// under replay, so navigation keeps the capture lists honest.
func capturedFrom(pieces []engine.Piece) CapturedPieces {
	captured := CapturedPieces{
		Red:    []engine.Piece{},
		Blue:   []engine.Piece{},
		Yellow: []engine.Piece{},
		Green:  []engine.Piece{},
	}
	for _, initial := range engine.InitialPieces() {
		if engine.PieceByID(pieces, initial.ID) != nil {
			continue
		}
		switch initial.Color {
		case engine.Red:
			captured.Red = append(captured.Red, initial)
		case engine.Blue:
			captured.Blue = append(captured.Blue, initial)
		case engine.Yellow:
			captured.Yellow = append(captured.Yellow, initial)
		case engine.Green:
			captured.Green = append(captured.Green, initial)
		}
	}
	return captured
}

// LegalMovesAt returns the fully filtered move options for the piece at the
// square, for drag highlighting.
func (g *Game) LegalMovesAt(pos engine.Position) ([]engine.MoveOption, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	piece := engine.PieceAt(g.state.Pieces, pos.X, pos.Y)
	if piece == nil {
		return nil, engine.ErrNoPieceAtSource
	}
	return engine.PlayableMoves(*piece, g.state.Pieces, g.session), nil
}

// RestrictedFor aggregates every square the color's pieces can reach, with
// attribution.
func (g *Game) RestrictedFor(color engine.Color) engine.RestrictedSet {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.RestrictedSquares(color, g.state.Pieces, g.session)
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.seatColor(playerID) != "" || g.canSpectate()
	g.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	g.log.Debug().Str("player", playerID).Msg("connection registered")

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.state
	g.mu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		g.log.Error().Err(err).Msg("marshal game state")
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		})
		if err != nil {
			g.log.Warn().Err(err).Str("player", playerID).Msg("dropping connection")
			delete(g.connections.connections, playerID)
		}
	}
}
