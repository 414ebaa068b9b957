package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/nickelliottpimm/nodi-boardgame/board"
	"github.com/nickelliottpimm/nodi-boardgame/move"
	"github.com/nickelliottpimm/nodi-boardgame/movegen"
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrIllegalAction = errors.New("illegal action")
	// ErrNoLegalActions is returned when the side to move cannot act at
	// all. What that means for the game result is the caller's rule to
	// define; the engine only surfaces it.
	ErrNoLegalActions = errors.New("no legal actions")
)

// Game is the turn container: the current board, the side to move, and a
// history of the immutable boards that led here. It doesn't care how it is
// played; AI players and interactive shells drive it from outside.
type snapshot struct {
	board  *board.Board
	onturn board.Player
}

type Game struct {
	board   *board.Board
	onturn  board.Player
	over    bool
	winner  board.Player
	history []snapshot
}

// NewGame starts a game from the standard layout. Black moves first.
func NewGame() *Game {
	return NewGameFromBoard(board.NewGameBoard(), board.Black)
}

// NewGameFromBoard starts a game from an arbitrary position.
func NewGameFromBoard(b *board.Board, onturn board.Player) *Game {
	g := &Game{board: b, onturn: onturn}
	g.checkTerminal()
	return g
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Player {
	return g.onturn
}

// Status reports whether the game is over and, if so, who won.
func (g *Game) Status() (over bool, winner board.Player) {
	return g.over, g.winner
}

// Turns returns the number of boards in the history, i.e. the number of
// turn-consuming actions played so far.
func (g *Game) Turns() int {
	return len(g.history)
}

// PlayAction applies an action for the side on turn. Free rotations
// (post-rotation value >= 3) do not pass the turn. Returns
// ErrIllegalAction if the action does not apply cleanly.
func (g *Game) PlayAction(a *move.Action) error {
	if g.over {
		return ErrGameOver
	}
	pc := g.board.At(a.From())
	if pc == nil || pc.Owner() != g.onturn {
		return ErrIllegalAction
	}
	nb := ApplyAction(g.board, a)
	if nb == g.board {
		// The transition function refused it.
		return ErrIllegalAction
	}
	g.history = append(g.history, snapshot{board: g.board, onturn: g.onturn})
	g.board = nb
	endsTurn := true
	if a.Type() == move.ActionRotate {
		endsTurn = RotationEndsTurn(nb, a.From())
	}
	if endsTurn {
		g.onturn = g.onturn.Opponent()
	}
	g.checkTerminal()
	log.Debug().
		Str("action", a.ShortDescription()).
		Stringer("onturn", g.onturn).
		Bool("endsTurn", endsTurn).
		Msg("played action")
	return nil
}

// Undo steps back to the previous snapshot, restoring both the board and
// the player who was on turn, so free rotations rewind correctly.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.New("nothing to undo")
	}
	s := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.board = s.board
	g.onturn = s.onturn
	g.over = false
	g.checkTerminal()
	return nil
}

// NoLegalActions reports whether side has no action of any kind available,
// including value-2 rotations that AllActions leaves to interactive
// callers.
func (g *Game) NoLegalActions(side board.Player) bool {
	for _, pos := range g.board.Pieces(side) {
		if !movegen.LegalActionsFor(g.board, pos).Empty() {
			return false
		}
	}
	return true
}

func (g *Game) checkTerminal() {
	for _, side := range []board.Player{board.Black, board.White} {
		if g.board.KeyCount(side) == 0 {
			g.over = true
			g.winner = side.Opponent()
			return
		}
	}
}

// IsOver reports terminal state for an arbitrary board: a side with zero
// key counters remaining has lost.
func IsOver(b *board.Board) (over bool, winner board.Player) {
	if b.KeyCount(board.Black) == 0 {
		return true, board.White
	}
	if b.KeyCount(board.White) == 0 {
		return true, board.Black
	}
	return false, 0
}
