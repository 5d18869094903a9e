package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// MainBranch is the trunk every game starts on.
const MainBranch = "main"

// Move is the committed record handed to persistence and replayed to rebuild
// board state. MoveNumber is the move's position within its branch's linear
// view, contiguous from 1, never a global sequence number.
type Move struct {
	FromX            int       `json:"fromX"`
	FromY            int       `json:"fromY"`
	ToX              int       `json:"toX"`
	ToY              int       `json:"toY"`
	PieceType        PieceType `json:"pieceType"`
	MoveNumber       int       `json:"moveNumber"`
	BranchName       string    `json:"branchName"`
	ParentBranchName string    `json:"parentBranchName"`
	IsBranch         bool      `json:"isBranch"`
	CapturedPieceID  string    `json:"capturedPieceId,omitempty"`
}

// MoveInput is a submitted move before the history assigns branch metadata.
type MoveInput struct {
	From            Position
	To              Position
	PieceType       PieceType
	CapturedPieceID string
}

// BranchNotice announces a freshly forked branch to the consuming layer.
type BranchNotice struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

// History is the append-only branching move log for one game. Moves are keyed
// by (moveNumber, branchName, parentBranchName); rewinding and playing a
// different move forks a named branch instead of discarding the original
// continuation. Board state is always rebuilt by full replay from the initial
// layout, never by incremental undo.
type History struct {
	moves        []Move
	branchPoints map[int][]string

	currentBranch string
	currentIndex  int

	log zerolog.Logger
	now func() time.Time
}

func NewHistory(log zerolog.Logger) *History {
	return &History{
		branchPoints:  make(map[int][]string),
		currentBranch: MainBranch,
		log:           log,
		now:           time.Now,
	}
}

// Reset discards the whole tree. This is the only way branches are ever
// deleted.
func (h *History) Reset() {
	h.moves = nil
	h.branchPoints = make(map[int][]string)
	h.currentBranch = MainBranch
	h.currentIndex = 0
}

func (h *History) CurrentBranch() string { return h.currentBranch }
func (h *History) CurrentIndex() int     { return h.currentIndex }

// Moves returns the full submission-order log, all branches interleaved.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// BranchPoints returns the historical index -> forked branch names map.
func (h *History) BranchPoints() map[int][]string {
	out := make(map[int][]string, len(h.branchPoints))
	for idx, names := range h.branchPoints {
		out[idx] = append([]string(nil), names...)
	}
	return out
}

// ownMoves returns the moves recorded directly on a branch, in order.
func (h *History) ownMoves(branch string) []Move {
	own := []Move{}
	for _, mv := range h.moves {
		if mv.BranchName == branch {
			own = append(own, mv)
		}
	}
	return own
}

// LineMoves builds a branch's linear view: the parent line truncated at the
// fork point, then the branch's own moves. A branch whose records cannot be
// located degrades to whatever prefix is recoverable rather than corrupting
// the tree.
func (h *History) LineMoves(branch string) []Move {
	own := h.ownMoves(branch)
	if branch == MainBranch {
		return own
	}
	if len(own) == 0 {
		h.log.Warn().Str("branch", branch).Msg("branch has no recorded moves, treating as empty line")
		return nil
	}
	first := own[0]
	parentLine := h.LineMoves(first.ParentBranchName)
	forkAt := first.MoveNumber - 1
	if forkAt < 0 || forkAt > len(parentLine) {
		h.log.Warn().
			Str("branch", branch).
			Int("forkPoint", first.MoveNumber).
			Int("parentLen", len(parentLine)).
			Msg("branch fork point outside parent line, clamping")
		if forkAt < 0 {
			forkAt = 0
		} else {
			forkAt = len(parentLine)
		}
	}
	line := make([]Move, 0, forkAt+len(own))
	line = append(line, parentLine[:forkAt]...)
	line = append(line, own...)
	return line
}

// Submit records a move against the current position. Behind the tip of the
// active line it either follows the recorded continuation, re-enters an
// existing branch forked at this index, or forks a new one; at the tip it
// simply extends the active branch. The returned notice is non-nil only when
// a branch was created.
func (h *History) Submit(in MoveInput) (Move, *BranchNotice) {
	line := h.LineMoves(h.currentBranch)
	if h.currentIndex > len(line) {
		h.log.Warn().
			Int("index", h.currentIndex).
			Int("lineLen", len(line)).
			Str("branch", h.currentBranch).
			Msg("history index beyond line tip, clamping")
		h.currentIndex = len(line)
	}

	if h.currentIndex < len(line) {
		next := line[h.currentIndex]
		if moveMatches(next, in) {
			// Following the recorded continuation: adopt its branch and
			// keep the known line intact.
			h.currentBranch = next.BranchName
			h.currentIndex++
			return next, nil
		}
		for _, name := range h.branchPoints[h.currentIndex] {
			own := h.ownMoves(name)
			if len(own) == 0 {
				h.log.Warn().Str("branch", name).Msg("branch point references branch without moves")
				continue
			}
			if own[0].ParentBranchName != h.currentBranch {
				continue
			}
			if moveMatches(own[0], in) {
				h.currentBranch = name
				h.currentIndex++
				return own[0], nil
			}
		}
		return h.fork(in)
	}

	mv := Move{
		FromX:            in.From.X,
		FromY:            in.From.Y,
		ToX:              in.To.X,
		ToY:              in.To.Y,
		PieceType:        in.PieceType,
		MoveNumber:       h.currentIndex + 1,
		BranchName:       h.currentBranch,
		ParentBranchName: h.parentOf(h.currentBranch),
		CapturedPieceID:  in.CapturedPieceID,
	}
	h.moves = append(h.moves, mv)
	h.currentIndex++
	return mv, nil
}

// fork creates a new branch at the current index. The name encodes the move
// number and the parent branch path, so nested branches stay addressable.
func (h *History) fork(in MoveInput) (Move, *BranchNotice) {
	moveNumber := h.currentIndex + 1
	suffix := strconv.FormatInt(h.now().UnixMilli(), 36)
	name := fmt.Sprintf("%s/branch-%d-%s", h.currentBranch, moveNumber, suffix)

	mv := Move{
		FromX:            in.From.X,
		FromY:            in.From.Y,
		ToX:              in.To.X,
		ToY:              in.To.Y,
		PieceType:        in.PieceType,
		MoveNumber:       moveNumber,
		BranchName:       name,
		ParentBranchName: h.currentBranch,
		IsBranch:         true,
		CapturedPieceID:  in.CapturedPieceID,
	}
	h.branchPoints[h.currentIndex] = append(h.branchPoints[h.currentIndex], name)
	h.moves = append(h.moves, mv)
	h.currentBranch = name
	h.currentIndex++
	return mv, &BranchNotice{Name: name, Parent: mv.ParentBranchName}
}

func (h *History) parentOf(branch string) string {
	if branch == MainBranch {
		return ""
	}
	own := h.ownMoves(branch)
	if len(own) == 0 {
		return MainBranch
	}
	return own[0].ParentBranchName
}

func moveMatches(mv Move, in MoveInput) bool {
	return mv.FromX == in.From.X && mv.FromY == in.From.Y &&
		mv.ToX == in.To.X && mv.ToY == in.To.Y
}

// SetPosition points the history at an arbitrary (branch, index) pair for
// navigation. The index is clamped to the branch's line.
func (h *History) SetPosition(branch string, index int) error {
	if branch != MainBranch && len(h.ownMoves(branch)) == 0 {
		return fmt.Errorf("unknown branch %q", branch)
	}
	line := h.LineMoves(branch)
	if index < 0 {
		index = 0
	}
	if index > len(line) {
		index = len(line)
	}
	h.currentBranch = branch
	h.currentIndex = index
	return nil
}

// Replay rebuilds the piece set at a branch's tip from the fixed initial
// layout. Deterministic by construction; cost is linear in line depth.
func (h *History) Replay(branch string) []Piece {
	line := h.LineMoves(branch)
	return h.ReplayAt(branch, len(line))
}

// ReplayAt rebuilds the piece set after the first index moves of a branch's
// line.
func (h *History) ReplayAt(branch string, index int) []Piece {
	line := h.LineMoves(branch)
	if index < 0 {
		index = 0
	}
	if index > len(line) {
		index = len(line)
	}
	pieces := InitialPieces()
	for _, mv := range line[:index] {
		pieces = ApplyMove(pieces, mv)
	}
	return pieces
}

// ApplyMove returns a new piece set with the move applied: the destination
// occupant is removed, the mover relocated and flagged moved, and a castling
// king move drags its rook along per the castling table.
func ApplyMove(pieces []Piece, mv Move) []Piece {
	out := make([]Piece, 0, len(pieces))
	for _, p := range pieces {
		if p.X == mv.ToX && p.Y == mv.ToY {
			continue
		}
		if mv.CapturedPieceID != "" && p.ID == mv.CapturedPieceID {
			continue
		}
		out = append(out, p)
	}
	for i := range out {
		if out[i].X == mv.FromX && out[i].Y == mv.FromY {
			mover := &out[i]
			from := mover.Pos()
			mover.X = mv.ToX
			mover.Y = mv.ToY
			mover.HasMoved = true
			if mover.Type == King {
				applyCastleRook(out, mover.Color, from, Position{X: mv.ToX, Y: mv.ToY})
			}
			break
		}
	}
	return out
}

func applyCastleRook(pieces []Piece, c Color, from, to Position) {
	rookFrom, rookTo, ok := castleRookMove(c, from, to)
	if !ok {
		return
	}
	for i := range pieces {
		if pieces[i].Pos() == rookFrom && pieces[i].Type == Rook && pieces[i].Color == c {
			pieces[i].X = rookTo.X
			pieces[i].Y = rookTo.Y
			pieces[i].HasMoved = true
			return
		}
	}
}
